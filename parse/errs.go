package parse

import (
	"errors"
	"fmt"
)

var (
	ErrParse    = errors.New("parse error")
	ErrShape    = fmt.Errorf("%w: unexpected document shape", ErrParse)
	ErrEllipsis = fmt.Errorf("%w: misplaced ellipsis", ErrParse)
)
