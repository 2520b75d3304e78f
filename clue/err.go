package clue

import (
	"errors"

	"github.com/wishingwell/ls8/translate"
)

var f = translate.From

var (
	ErrNoRoom = errors.New(f("no room number in payload output"))
)
