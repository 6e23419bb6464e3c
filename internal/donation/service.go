package donation

import (
	"time"

	"curativos/internal/notify"
	"curativos/internal/utils"
	"curativos/pkg/types"
)

type Service struct {
	notifier     notify.Notifier
	pickupPrefix string
	pickupDigits int

	now    func() time.Time
	nextID func() string
}

func New(notifier notify.Notifier, config *types.Config) *Service {
	if notifier == nil {
		notifier = notify.Multi{}
	}

	s := &Service{
		notifier:     notifier,
		pickupPrefix: utils.DefaultPickupPrefix,
		pickupDigits: utils.DefaultPickupDigits,
		now:          time.Now,
		nextID:       utils.NanoID,
	}

	if config != nil {
		if config.PickupCodePrefix != "" {
			s.pickupPrefix = config.PickupCodePrefix
		}
		if config.PickupCodeDigits > 0 {
			s.pickupDigits = config.PickupCodeDigits
		}
	}

	return s
}

// Donate reports donor handing dressing over to recipient. Neither party is
// modified.
func (s *Service) Donate(donor *types.Donor, dressing types.Dressing, recipient *types.Recipient) types.Donation {
	donation := types.Donation{
		ID:               s.nextID(),
		PickupCode:       utils.PickupCode(s.pickupPrefix, s.pickupDigits),
		DonorName:        donor.Name(),
		DonorContact:     donor.Contact(),
		RecipientName:    recipient.Name(),
		RecipientContact: recipient.Contact(),
		Region:           recipient.Region(),
		DressingType:     dressing.Type,
		CreatedAt:        s.now(),
	}

	s.notifier.Donated(donation)

	return donation
}

// RequestDonation has the first matching donor in donors donate to recipient.
// When nobody matches a no donor notification is sent and false is returned.
// The donors slice is left as it was, so a donor can match again later.
func (s *Service) RequestDonation(recipient *types.Recipient, dressing types.Dressing, donors []*types.Donor) (types.Donation, bool) {
	donor, idx := FindDonor(recipient.Region(), dressing, donors)
	if idx < 0 {
		s.notifier.NoDonor(dressing, recipient)
		return types.Donation{}, false
	}

	return s.Donate(donor, dressing, recipient), true
}

// FindDonor scans donors in order and returns the first whose dressing type
// and region both equal the request, compared exactly. The index is -1 when
// there is none. Nil entries are skipped.
func FindDonor(region string, dressing types.Dressing, donors []*types.Donor) (*types.Donor, int) {
	for i, donor := range donors {
		if donor == nil || donor.User == nil {
			continue
		}

		if donor.DressingType() == dressing.Type && donor.Region() == region {
			return donor, i
		}
	}

	return nil, -1
}
