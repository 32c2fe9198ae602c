package usecase

import "errors"

var (
	// ErrRideNotFound is returned when no ride matches the given id
	ErrRideNotFound = errors.New("ride not found")

	// ErrInvalidTransition is returned when a lifecycle action is applied
	// from the wrong state
	ErrInvalidTransition = errors.New("invalid ride state transition")

	// ErrNotRideDriver is returned when a driver acts on a ride bound to
	// someone else
	ErrNotRideDriver = errors.New("ride is not assigned to this driver")

	// ErrNotRideRider is returned when a rider acts on another rider's ride
	ErrNotRideRider = errors.New("ride does not belong to this rider")

	// ErrOTPMismatch is returned when the supplied pickup code is wrong
	ErrOTPMismatch = errors.New("pickup OTP does not match")

	// ErrNoDriversAvailable is the soft failure of an exhausted claim loop;
	// the ride stays in searching
	ErrNoDriversAvailable = errors.New("no drivers available")

	// ErrRideNotSearching is returned when matching is requested for a ride
	// that is not waiting for a driver
	ErrRideNotSearching = errors.New("ride is not searching for a driver")

	// ErrTipNotAllowed is returned when a tip is added to a ride that is
	// not completed
	ErrTipNotAllowed = errors.New("tip is only allowed on a completed ride")

	// ErrScheduleTooSoon is returned when a scheduled time is under the
	// minimum lead
	ErrScheduleTooSoon = errors.New("scheduled time is too soon")

	// ErrInvalidTip is returned for non-positive tip amounts
	ErrInvalidTip = errors.New("tip amount must be positive")

	// ErrInvalidRating is returned for ratings outside 1..5
	ErrInvalidRating = errors.New("rating must be between 1 and 5")

	// ErrDriverNotFound is returned when no driver profile exists for a user
	ErrDriverNotFound = errors.New("driver not found")

	// ErrStopNotAllowed is returned when a stop is added to a terminal ride
	ErrStopNotAllowed = errors.New("cannot add a stop to a finished ride")

	// ErrShareNotAllowed is returned when sharing a ride that is not active
	ErrShareNotAllowed = errors.New("only active rides can be shared")
)
