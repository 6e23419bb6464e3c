package types

type Role string

const (
	RoleDonor     Role = "Donor"
	RoleRecipient Role = "Recipient"
)

func (r Role) String() string {
	return string(r)
}

// User is the shared record behind donors and recipients. Any value is
// accepted for any field.
type User struct {
	name         string
	contact      string
	role         Role
	region       string
	dressingType string
}

func NewUser(name, contact string, role Role, region, dressingType string) *User {
	return &User{
		name:         name,
		contact:      contact,
		role:         role,
		region:       region,
		dressingType: dressingType,
	}
}

func (u *User) Name() string {
	return u.name
}

func (u *User) SetName(name string) {
	u.name = name
}

func (u *User) Contact() string {
	return u.contact
}

func (u *User) SetContact(contact string) {
	u.contact = contact
}

func (u *User) Role() Role {
	return u.role
}

// SetRole overwrites the role, including on a Donor or Recipient.
func (u *User) SetRole(role Role) {
	u.role = role
}

func (u *User) Region() string {
	return u.region
}

func (u *User) SetRegion(region string) {
	u.region = region
}

func (u *User) DressingType() string {
	return u.dressingType
}

func (u *User) SetDressingType(dressingType string) {
	u.dressingType = dressingType
}
