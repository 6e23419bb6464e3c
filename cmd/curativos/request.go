package main

import (
	"fmt"
	"strings"

	"curativos/internal/seed"
	"curativos/pkg/types"

	"github.com/urfave/cli/v2"
)

var requestCommand = &cli.Command{
	Name:  "request",
	Usage: "Request a dressing for one recipient",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "name",
			Usage:    "Recipient name",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "contact",
			Usage: "Recipient contact, usually an email",
		},
		&cli.StringFlag{
			Name:     "region",
			Usage:    "Recipient region",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "dressing",
			Aliases:  []string{"d"},
			Usage:    "Dressing type being requested",
			Required: true,
		},
		&cli.StringSliceFlag{
			Name:  "donor",
			Usage: "Candidate donor as name|contact|region|dressingType, in match order. Defaults to the sample donors",
		},
		&cli.BoolFlag{
			Name:  "detailed",
			Usage: "Print recipient and donor messages on a match",
		},
	},
	Action: request,
}

func request(c *cli.Context) error {
	donors, err := parseDonorSpecs(c.StringSlice("donor"))
	if err != nil {
		return err
	}

	if len(donors) == 0 {
		donors = seed.Donors()
	}

	rt, err := setup(c, c.Bool("detailed"))
	if err != nil {
		return err
	}

	dressing := types.NewDressing(c.String("dressing"))
	recipient := types.NewRecipient(c.String("name"), c.String("contact"), c.String("region"), dressing.Type)

	rt.service.RequestDonation(recipient, dressing, donors)

	return nil
}

func parseDonorSpecs(specs []string) ([]*types.Donor, error) {
	donors := make([]*types.Donor, 0, len(specs))
	for _, spec := range specs {
		donor, err := parseDonorSpec(spec)
		if err != nil {
			return nil, err
		}
		donors = append(donors, donor)
	}
	return donors, nil
}

// parseDonorSpec reads name|contact|region|dressingType. Fields are taken
// verbatim, whitespace included.
func parseDonorSpec(spec string) (*types.Donor, error) {
	parts := strings.Split(spec, "|")
	if len(parts) != 4 {
		return nil, fmt.Errorf("%w: %q has %d fields, want name|contact|region|dressingType", types.ErrInvalidDonorSpec, spec, len(parts))
	}

	return types.NewDonor(parts[0], parts[1], parts[2], parts[3]), nil
}
