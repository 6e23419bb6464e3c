package types

type Config struct {
	Environment string `envconfig:"ENVIRONMENT" default:"development"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat   string `envconfig:"LOG_FORMAT" default:"text"` // text or json

	// Pickup codes look like CS-1234
	PickupCodePrefix string `envconfig:"PICKUP_CODE_PREFIX" default:"CS"`
	PickupCodeDigits int    `envconfig:"PICKUP_CODE_DIGITS" default:"4"`

	// Print human readable notifications to stdout alongside the log
	ConsoleOutput bool `envconfig:"CONSOLE_OUTPUT" default:"true"`
}
