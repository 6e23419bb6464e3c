package notify

import (
	"fmt"
	"io"
	"sync"

	"curativos/internal/messages"
	"curativos/pkg/types"

	"github.com/sirupsen/logrus"
)

// Notifier receives the two outcomes of a donation request.
type Notifier interface {
	Donated(donation types.Donation)
	NoDonor(dressing types.Dressing, recipient *types.Recipient)
}

const (
	EventDonation = "donation"
	EventNoDonor  = "no_donor"
)

type LogNotifier struct {
	logger logrus.FieldLogger
}

func NewLogNotifier(logger logrus.FieldLogger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Donated(donation types.Donation) {
	n.logger.WithFields(logrus.Fields{
		"event":        EventDonation,
		"donationID":   donation.ID,
		"pickupCode":   donation.PickupCode,
		"donor":        donation.DonorName,
		"recipient":    donation.RecipientName,
		"region":       donation.Region,
		"dressingType": donation.DressingType,
	}).Info(messages.Donated(donation.DonorName, donation.DressingType, donation.RecipientName))
}

func (n *LogNotifier) NoDonor(dressing types.Dressing, recipient *types.Recipient) {
	n.logger.WithFields(logrus.Fields{
		"event":        EventNoDonor,
		"recipient":    recipient.Name(),
		"region":       recipient.Region(),
		"dressingType": dressing.Type,
	}).Warn(messages.NoDonor(dressing.Type, recipient.Region()))
}

// ConsoleNotifier writes plain text lines, one per outcome. With Detailed set
// a match also prints the recipient and donor messages.
type ConsoleNotifier struct {
	mu       sync.Mutex
	w        io.Writer
	Detailed bool
}

func NewConsoleNotifier(w io.Writer) *ConsoleNotifier {
	return &ConsoleNotifier{w: w}
}

func (n *ConsoleNotifier) Donated(donation types.Donation) {
	n.mu.Lock()
	defer n.mu.Unlock()

	fmt.Fprintln(n.w, messages.Donated(donation.DonorName, donation.DressingType, donation.RecipientName))
	if !n.Detailed {
		return
	}

	fmt.Fprintf(n.w, "\n%s\n\n%s\n\n", messages.RecipientPickup(donation), messages.DonorThanks(donation))
}

func (n *ConsoleNotifier) NoDonor(dressing types.Dressing, recipient *types.Recipient) {
	n.mu.Lock()
	defer n.mu.Unlock()

	fmt.Fprintln(n.w, messages.NoDonor(dressing.Type, recipient.Region()))
}

// Multi fans every notification out in order.
type Multi []Notifier

func (m Multi) Donated(donation types.Donation) {
	for _, n := range m {
		n.Donated(donation)
	}
}

func (m Multi) NoDonor(dressing types.Dressing, recipient *types.Recipient) {
	for _, n := range m {
		n.NoDonor(dressing, recipient)
	}
}
