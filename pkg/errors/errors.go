package errors

import "fmt"

var (
	// Base error; every error in inktag inherits from this
	Err = fmt.Errorf("inktag error")

	// Format and system errors
	ErrDecode        = fmt.Errorf("decoding error (%w)", Err)
	ErrEncode        = fmt.Errorf("encoding error (%w)", Err)
	ErrRecordFile    = fmt.Errorf("error accessing record file (%w)", Err)
	ErrUnknownFormat = fmt.Errorf("unknown format (%w)", Err)
	ErrInvalidConfig = fmt.Errorf("invalid configuration (%w)", Err)

	// Reconciliation errors
	ErrReconcile = fmt.Errorf("reconciliation error (%w)", Err)
)
