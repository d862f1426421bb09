package repository

import "context"

// SequenceRepository allocates register number sequences. The counter is
// durable and strictly monotonic within a year; a new year starts over at 1.
type SequenceRepository interface {
	// Next returns the next sequence value for the given year.
	Next(ctx context.Context, year int) (int64, error)
}
