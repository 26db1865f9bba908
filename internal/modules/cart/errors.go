package cart

import "errors"

var ErrInvalidRequest = errors.New("invalid cart request")
