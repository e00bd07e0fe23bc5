package listing

import "errors"

var (
	// ErrInvalidCategory is returned when a listing names an unknown category.
	ErrInvalidCategory = errors.New("unknown listing category")
	// ErrInvalidCity is returned when a listing names a city outside the catalog.
	ErrInvalidCity = errors.New("unknown city")
	// ErrNotOwner is returned when a profile edits a listing it does not own.
	ErrNotOwner = errors.New("listing does not belong to this profile")
	// ErrPhotoLimit is returned when a listing already carries the maximum
	// number of photos allowed by the owner's plan.
	ErrPhotoLimit = errors.New("photo limit reached for this plan")
)
