package main

import (
	"fmt"
	"io"
	"strings"

	"curativos/internal/donation"
	"curativos/internal/notify"
	"curativos/pkg/types"

	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func loadConfig(prefix string) (*types.Config, error) {
	c := new(types.Config)
	if err := envconfig.Process(prefix, c); err != nil {
		return nil, fmt.Errorf("process environment config: %w", err)
	}

	if c.LogLevel == "" {
		c.LogLevel = "info"
	}

	if c.PickupCodePrefix == "" {
		c.PickupCodePrefix = "CS"
	}

	if c.PickupCodeDigits <= 0 {
		c.PickupCodeDigits = 4
	}

	return c, nil
}

func newLogger(config *types.Config, w io.Writer) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetOutput(w)

	switch strings.ToLower(config.LogFormat) {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	case "", "text":
		logger.SetFormatter(&logrus.TextFormatter{DisableColors: true})
	default:
		return nil, fmt.Errorf("unknown log format %q", config.LogFormat)
	}

	level, err := logrus.ParseLevel(config.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	logger.SetLevel(level)

	logger.WithField("environment", config.Environment).Debug("logger configured")

	return logger, nil
}

type deps struct {
	config  *types.Config
	logger  *logrus.Logger
	service *donation.Service
}

// setup loads config and wires the donation service for a command. Console
// notifications go to the app writer, log entries to the app error writer.
func setup(c *cli.Context, detailed bool) (*deps, error) {
	config, err := loadConfig(c.String("env-prefix"))
	if err != nil {
		return nil, err
	}

	logger, err := newLogger(config, c.App.ErrWriter)
	if err != nil {
		return nil, err
	}

	notifiers := notify.Multi{notify.NewLogNotifier(logger)}
	if config.ConsoleOutput {
		console := notify.NewConsoleNotifier(c.App.Writer)
		console.Detailed = detailed
		notifiers = append(notifiers, console)
	}

	return &deps{
		config:  config,
		logger:  logger,
		service: donation.New(notifiers, config),
	}, nil
}
