package rates

import "errors"

// Validation and ingestion error taxonomy. All of these are recoverable and
// surfaced to the submitter; storage failures are wrapped as
// ErrStorageUnavailable and retried upstream, never here.
var (
	ErrReferenceNotFound  = errors.New("reference not found")
	ErrOutOfRange         = errors.New("value out of range")
	ErrInvalidEnum        = errors.New("invalid enum value")
	ErrRateLimited        = errors.New("rate limited")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// errHoneypot marks a bot submission. It never leaves the package: the
// handler answers with the normal success shape so scrapers learn nothing.
var errHoneypot = errors.New("honeypot tripped")
