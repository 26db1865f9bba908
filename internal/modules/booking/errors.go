package booking

import "errors"

var ErrInvalidRequest = errors.New("invalid booking request")
