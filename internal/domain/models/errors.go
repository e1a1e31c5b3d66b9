package models

import "errors"

// Domain error kinds surfaced by the core services. Handlers map these to
// HTTP statuses; anything else is reported as a generic internal error.
var (
	ErrFloorNotFound         = errors.New("floor not found")
	ErrCaptureFailed         = errors.New("backup capture failed")
	ErrNoSnapshotAvailable   = errors.New("no backup snapshots found to restore")
	ErrEnrichmentUnavailable = errors.New("ai enrichment unavailable")
	ErrValidation            = errors.New("invalid payload")
	ErrInvalidCredentials    = errors.New("invalid credentials")
)
