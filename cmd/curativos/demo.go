package main

import (
	"fmt"

	"curativos/internal/messages"
	"curativos/internal/seed"

	"github.com/k0kubun/pp/v3"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var demoCommand = &cli.Command{
	Name:  "demo",
	Usage: "Run the sample roster through both request outcomes",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "dump",
			Usage: "Pretty print the roster before running it",
		},
		&cli.BoolFlag{
			Name:  "detailed",
			Usage: "Print sign up confirmations and the messages for each donation",
		},
	},
	Action: demo,
}

func demo(c *cli.Context) error {
	rt, err := setup(c, c.Bool("detailed"))
	if err != nil {
		return err
	}

	roster := seed.Demo()

	if c.Bool("dump") {
		printer := pp.New()
		printer.SetOutput(c.App.Writer)
		printer.SetColoringEnabled(false)
		printer.Println(roster)
	}

	if c.Bool("detailed") && rt.config.ConsoleOutput {
		for _, d := range roster.Donors {
			fmt.Fprintf(c.App.Writer, "%s\n\n", messages.DonorConfirmation(d.Name(), d.DressingType()))
		}
		for _, r := range roster.Recipients {
			fmt.Fprintf(c.App.Writer, "%s\n\n", messages.RecipientConfirmation(r.Name()))
		}
	}

	matched := 0
	for _, req := range roster.Requests {
		if _, ok := rt.service.RequestDonation(req.Recipient, req.Dressing, roster.Donors); ok {
			matched++
		}
	}

	rt.logger.WithFields(logrus.Fields{
		"requests": len(roster.Requests),
		"matched":  matched,
	}).Debug("demo finished")

	return nil
}
