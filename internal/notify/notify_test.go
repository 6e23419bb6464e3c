package notify

import (
	"bytes"
	"testing"

	"curativos/pkg/types"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDonation = types.Donation{
	ID:            "abc123",
	PickupCode:    "CS-1234",
	DonorName:     "Eurofarma",
	RecipientName: "Elvira",
	Region:        "Zona Norte",
	DressingType:  "Curativo Y",
}

func TestLogNotifierDonated(t *testing.T) {
	logger, hook := test.NewNullLogger()
	NewLogNotifier(logger).Donated(testDonation)

	require.Len(t, hook.Entries, 1)
	entry := hook.LastEntry()
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "Eurofarma donated a Curativo Y dressing to Elvira", entry.Message)
	assert.Equal(t, EventDonation, entry.Data["event"])
	assert.Equal(t, "CS-1234", entry.Data["pickupCode"])
	assert.Equal(t, "abc123", entry.Data["donationID"])
}

func TestLogNotifierNoDonor(t *testing.T) {
	logger, hook := test.NewNullLogger()
	recipient := types.NewRecipient("Jane", "tiajane@gmail.com", "Zona Oeste", "Curativo z")
	NewLogNotifier(logger).NoDonor(types.NewDressing("Curativo X"), recipient)

	require.Len(t, hook.Entries, 1)
	entry := hook.LastEntry()
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, "no donor available for Curativo X in region Zona Oeste", entry.Message)
	assert.Equal(t, EventNoDonor, entry.Data["event"])
	assert.Equal(t, "Jane", entry.Data["recipient"])
}

func TestConsoleNotifier(t *testing.T) {
	t.Run("donated", func(t *testing.T) {
		var buf bytes.Buffer
		NewConsoleNotifier(&buf).Donated(testDonation)
		assert.Equal(t, "Eurofarma donated a Curativo Y dressing to Elvira\n", buf.String())
	})

	t.Run("donated detailed", func(t *testing.T) {
		var buf bytes.Buffer
		n := NewConsoleNotifier(&buf)
		n.Detailed = true
		n.Donated(testDonation)

		out := buf.String()
		assert.Contains(t, out, "Eurofarma donated a Curativo Y dressing to Elvira\n")
		assert.Contains(t, out, "Pickup code: CS-1234")
		assert.Contains(t, out, "Hi Eurofarma!")
	})

	t.Run("no donor", func(t *testing.T) {
		var buf bytes.Buffer
		recipient := types.NewRecipient("Jane", "tiajane@gmail.com", "Zona Oeste", "Curativo z")
		NewConsoleNotifier(&buf).NoDonor(types.NewDressing("Curativo X"), recipient)
		assert.Equal(t, "no donor available for Curativo X in region Zona Oeste\n", buf.String())
	})
}

func TestMulti(t *testing.T) {
	logger, hook := test.NewNullLogger()
	var buf bytes.Buffer

	m := Multi{NewLogNotifier(logger), NewConsoleNotifier(&buf)}
	m.Donated(testDonation)
	m.NoDonor(types.NewDressing("Curativo X"), types.NewRecipient("Jane", "", "Zona Oeste", ""))

	assert.Len(t, hook.Entries, 2)
	assert.Equal(t,
		"Eurofarma donated a Curativo Y dressing to Elvira\nno donor available for Curativo X in region Zona Oeste\n",
		buf.String(),
	)
}
