package transform

import "errors"

var (
	errNonFiniteSample = errors.New("sample not representable as a finite float64")
	errSizeMismatch    = errors.New("input length does not match plan size")
	errUnknownType     = errors.New("unknown kernel type")
)
