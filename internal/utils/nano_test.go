package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNanoID(t *testing.T) {
	id := NanoID()
	assert.Len(t, id, NanoidSize)
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-zA-Z]+$`), id)

	assert.Len(t, NanoIDSize(8), 8)
	assert.Len(t, NanoIDSize(0), NanoidSize)
	assert.Len(t, NanoIDSize(-3), NanoidSize)
}

func TestPickupCode(t *testing.T) {
	tests := []struct {
		name    string
		prefix  string
		digits  int
		pattern string
	}{
		{name: "defaults", prefix: "", digits: 0, pattern: `^CS-\d{4}$`},
		{name: "custom prefix", prefix: "UBS", digits: 4, pattern: `^UBS-\d{4}$`},
		{name: "more digits", prefix: "CS", digits: 6, pattern: `^CS-\d{6}$`},
		{name: "negative digits", prefix: "CS", digits: -2, pattern: `^CS-\d{4}$`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code := PickupCode(tt.prefix, tt.digits)
			require.Regexp(t, regexp.MustCompile(tt.pattern), code)
		})
	}
}
