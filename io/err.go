package io

import (
	"errors"

	"github.com/Higgs32584/cow/translate"
)

var f = translate.From

var (
	// Console errors
	ErrNoOutput = errors.New(f("no output attached"))
)
