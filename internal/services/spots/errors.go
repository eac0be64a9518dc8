package spots

import "errors"

// ErrSpotNotFound is returned when no spot matches a lookup. Listing an empty
// collection returns it too: callers cannot tell "no documents at all" from
// "genuinely not found", which mirrors the long-standing API contract.
var ErrSpotNotFound = errors.New("tourist spot not found")

// ErrCreateSpot is returned when spot insertion fails.
var ErrCreateSpot = errors.New("failed to create tourist spot")

// ErrUpdateSpot is returned when spot update fails.
var ErrUpdateSpot = errors.New("failed to update tourist spot")

// ErrDeleteSpot is returned when spot deletion fails.
var ErrDeleteSpot = errors.New("failed to delete tourist spot")

// ErrListSpots is returned when listing spots fails.
var ErrListSpots = errors.New("failed to list tourist spots")

// ErrNoneModified is returned when an update matched or changed zero
// documents. The store cannot distinguish a missing id from an update that
// wrote identical values, so both surface as a write failure.
var ErrNoneModified = errors.New("no tourist spot was modified")

// ErrOwnerMismatch is returned when the requested owner email differs from
// the verified session identity.
var ErrOwnerMismatch = errors.New("forbidden access")

// ErrCreateSpotsRepo is returned when spots repository creation fails.
var ErrCreateSpotsRepo = errors.New("failed to create spots repository")
