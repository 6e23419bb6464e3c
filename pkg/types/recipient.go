package types

// Recipient requests a dressing type within a region.
type Recipient struct {
	*User
}

func NewRecipient(name, contact, region, dressingType string) *Recipient {
	return &Recipient{User: NewUser(name, contact, RoleRecipient, region, dressingType)}
}
