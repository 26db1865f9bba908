package catalog

import "errors"

var ErrInvalidCategory = errors.New("category must be food, accessory or service")
