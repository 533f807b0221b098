package service

import "errors"

// ErrNilGenerator is returned by NewContentService when no generator is supplied.
var ErrNilGenerator = errors.New("generator cannot be nil")
