package main

import (
	"fmt"

	"curativos/internal/utils"

	"github.com/urfave/cli/v2"
)

var pickupCodeCommand = &cli.Command{
	Name:  "pickup-code",
	Usage: "Generate pickup codes in the configured format",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:    "count",
			Aliases: []string{"c"},
			Usage:   "Number of codes to generate",
			Value:   1,
		},
	},
	Action: func(c *cli.Context) error {
		config, err := loadConfig(c.String("env-prefix"))
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		count := c.Int("count")
		for range count {
			fmt.Fprintln(c.App.Writer, utils.PickupCode(config.PickupCodePrefix, config.PickupCodeDigits))
		}
		return nil
	},
}
