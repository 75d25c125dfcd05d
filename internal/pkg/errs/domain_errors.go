package errs

import "errors"

// Sentinel errors shared by the usecase and handler layers
var (
	// Catalog errors
	ErrOfferNotFound = errors.New("offer not found")

	// Storage errors
	ErrStorageWrite = errors.New("reservation could not be saved")
	ErrStorageRead  = errors.New("reservation could not be read")
)
