package messages

import (
	"fmt"
	"strings"

	"curativos/pkg/types"
)

// DonorConfirmation acknowledges a donor sign up.
func DonorConfirmation(name, dressingType string) string {
	return fmt.Sprintf(
		"Hi %s!\nWe received your sign up as a donor.\nAs soon as someone needs %s in your region we will let you know.\nThank you.",
		name, dressingType,
	)
}

// RecipientConfirmation acknowledges a recipient sign up.
func RecipientConfirmation(name string) string {
	return fmt.Sprintf(
		"Hi %s!\nYour request was registered.\nWe will look for a matching donation and send you a pickup code once there is one.",
		name,
	)
}

// Donated is the one line report of a fulfilled request.
func Donated(donorName, dressingType, recipientName string) string {
	return fmt.Sprintf("%s donated a %s dressing to %s", donorName, dressingType, recipientName)
}

// NoDonor is the report of a request nobody could fulfil.
func NoDonor(dressingType, region string) string {
	return fmt.Sprintf("no donor available for %s in region %s", dressingType, region)
}

// RecipientPickup tells the recipient what was matched and how to collect it.
func RecipientPickup(d types.Donation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s!\n", d.RecipientName)
	fmt.Fprintf(&b, "Good news: we found a donation matching the %s you asked for.\n\n", d.DressingType)
	fmt.Fprintf(&b, "Region: %s\n", d.Region)
	fmt.Fprintf(&b, "Pickup code: %s\n\n", d.PickupCode)
	b.WriteString("Bring this code and a photo ID when collecting.")
	return b.String()
}

// DonorThanks lets the donor know their dressing went to someone.
func DonorThanks(d types.Donation) string {
	return fmt.Sprintf(
		"Hi %s!\nYour %s donation has been paired with %s, who will collect it in the next few days.\nThank you.",
		d.DonorName, d.DressingType, d.RecipientName,
	)
}
