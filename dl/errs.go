package dl

import "errors"

var (
	ErrUnknownKind = errors.New("unknown kind")
	ErrBadField    = errors.New("bad field")
)
