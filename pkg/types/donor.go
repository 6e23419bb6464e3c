package types

// Donor offers a dressing type within a region.
type Donor struct {
	*User
}

func NewDonor(name, contact, region, dressingType string) *Donor {
	return &Donor{User: NewUser(name, contact, RoleDonor, region, dressingType)}
}
