package domain

import "errors"

var (
	ErrNotFound          = errors.New("resource not found")
	ErrUnknownOperation  = errors.New("operation not found")
	ErrMissingParameter  = errors.New("missing required parameter")
	ErrInvalidParameter  = errors.New("invalid parameter")
	ErrInvalidDate       = errors.New("invalid date input")
	ErrDatasetNotLoaded  = errors.New("dataset is not loaded")
	ErrMissingColumn     = errors.New("required column missing from source sheet")
	ErrExportFailed      = errors.New("table export failed")
	ErrComputationFailed = errors.New("report computation failed")
	ErrUnsupportedFormat = errors.New("unsupported export format")
	ErrUnknownTable      = errors.New("unknown report table")
)
