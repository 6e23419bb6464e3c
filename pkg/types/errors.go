package types

import "errors"

var ErrInvalidDonorSpec = errors.New("invalid donor spec")
