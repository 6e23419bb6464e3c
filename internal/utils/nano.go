package utils

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

var (
	NanoidSize     = 21
	nanoidAlphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitAlphabet  = "0123456789"
)

func NanoID() string {
	return NanoIDSize(NanoidSize)
}

func NanoIDSize(size int) string {
	if size <= 0 {
		size = NanoidSize
	}

	return gonanoid.MustGenerate(nanoidAlphabet, size)
}

const (
	DefaultPickupPrefix = "CS"
	DefaultPickupDigits = 4
)

// PickupCode returns a code such as CS-0427. Codes are random, not unique.
func PickupCode(prefix string, digits int) string {
	if prefix == "" {
		prefix = DefaultPickupPrefix
	}

	if digits <= 0 {
		digits = DefaultPickupDigits
	}

	return fmt.Sprintf("%s-%s", prefix, gonanoid.MustGenerate(digitAlphabet, digits))
}
