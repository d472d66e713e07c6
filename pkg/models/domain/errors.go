package domain

import "errors"

// Failure classes of a reporting run. None of them are retried; each one
// aborts the invocation before anything is posted to the channel.
var (
	// ErrInvalidDate marks an unparseable reporting date or timezone.
	ErrInvalidDate = errors.New("invalid date")
	// ErrInvalidTimestamp marks a period boundary that is not YYYY-MM-DD.
	ErrInvalidTimestamp = errors.New("invalid timestamp")
	// ErrMissingField marks a billing response without a required section.
	ErrMissingField = errors.New("missing field in response")
	// ErrMalformedCost marks an amount that does not parse as a decimal.
	ErrMalformedCost = errors.New("malformed cost amount")
	// ErrTransport marks a failed billing API round trip.
	ErrTransport = errors.New("cost explorer request failed")
	// ErrSend marks a failed notification delivery.
	ErrSend = errors.New("notification send failed")
)
