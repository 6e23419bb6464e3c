package seed

import "curativos/pkg/types"

type userSeed struct {
	Name         string
	Contact      string
	Region       string
	DressingType string
}

var donorSeeds = []userSeed{
	{Name: "AnaLú", Contact: "minhalinda@gmail.com", Region: "Zona Norte", DressingType: "Curativo X"},
	{Name: "Eurofarma", Contact: "contatodoacao@eurofarma.com.br", Region: "Zona Norte", DressingType: "Curativo Y"},
}

var recipientSeeds = []userSeed{
	{Name: "Jane", Contact: "tiajane@gmail.com", Region: "Zona Oeste", DressingType: "Curativo z"},
	{Name: "Elvira", Contact: "elvirabrunoleme@gmail.com", Region: "Zona Norte", DressingType: "Curativo Y"},
}

// Request is one recipient asking for one dressing.
type Request struct {
	Recipient *types.Recipient
	Dressing  types.Dressing
}

// Roster is the hard-coded demonstration data set.
type Roster struct {
	Donors     []*types.Donor
	Recipients []*types.Recipient
	Requests   []Request
}

func Donors() []*types.Donor {
	donors := make([]*types.Donor, 0, len(donorSeeds))
	for _, d := range donorSeeds {
		donors = append(donors, types.NewDonor(d.Name, d.Contact, d.Region, d.DressingType))
	}
	return donors
}

func Recipients() []*types.Recipient {
	recipients := make([]*types.Recipient, 0, len(recipientSeeds))
	for _, r := range recipientSeeds {
		recipients = append(recipients, types.NewRecipient(r.Name, r.Contact, r.Region, r.DressingType))
	}
	return recipients
}

// Demo builds a fresh roster. Jane asks for Curativo X, which nobody offers in
// Zona Oeste, and Elvira asks for Curativo Y, which Eurofarma offers in Zona
// Norte.
func Demo() *Roster {
	recipients := Recipients()

	return &Roster{
		Donors:     Donors(),
		Recipients: recipients,
		Requests: []Request{
			{Recipient: recipients[0], Dressing: types.NewDressing("Curativo X")},
			{Recipient: recipients[1], Dressing: types.NewDressing("Curativo Y")},
		},
	}
}
