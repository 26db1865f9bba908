package order

import "errors"

var ErrInvalidRequest = errors.New("invalid order request")
