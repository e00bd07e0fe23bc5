package rating

import "errors"

// ErrDuplicateRating indicates a client already rated this listing. The
// original rating and the listing aggregates are left untouched.
var ErrDuplicateRating = errors.New("a rating from this client email already exists for the listing")

// ErrInvalidScore indicates a star score or sub-score outside the 1-5 range.
var ErrInvalidScore = errors.New("scores must be between 1 and 5")
