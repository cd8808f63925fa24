package domain

import "errors"

var (
	// ErrConfiguration is returned for invalid or missing configuration
	// before any simulation progress has been made.
	ErrConfiguration = errors.New("invalid configuration")

	// ErrResolutionMismatch is returned when a restart file's coarsest grid
	// spacing differs from the configured one.
	ErrResolutionMismatch = errors.New("checkpoint base resolution does not match configuration")

	// ErrCheckpointFormat is returned when a checkpoint is missing expected
	// per-level data.
	ErrCheckpointFormat = errors.New("malformed checkpoint")

	// ErrNumericalStall is returned when the time step collapses below the
	// stall threshold and the run cannot make progress.
	ErrNumericalStall = errors.New("time step collapsed below stall threshold")

	// ErrCollectiveProtocol is returned when a collective operation is
	// entered inconsistently across the process group.
	ErrCollectiveProtocol = errors.New("collective protocol violation")

	// ErrSanityCheck is returned when a required collaborator is missing at
	// setup time.
	ErrSanityCheck = errors.New("driver sanity check failed")
)
