package console

import (
	"errors"

	"github.com/wishingwell/ls8/translate"
)

var f = translate.From

var (
	ErrNotTerminal = errors.New(f("stdin is not a terminal"))
	ErrUnsupported = errors.New(f("raw console unsupported on this platform"))
)
