// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// ValidationError reports a raw input record that violates a structural
// or value invariant. The offending record is rejected at ingestion;
// the rest of the batch continues.
type ValidationError struct {
	// Record identifies the rejected record (composition, DOI, or row number).
	Record string

	// Field is the offending field name.
	Field string

	// Reason says what was wrong with the value.
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid record %s: field %s: %s", e.Record, e.Field, e.Reason)
}

// DuplicateKeyError reports a literature source_id collision without an
// explicit correction flag. The entry is not stored.
type DuplicateKeyError struct {
	SourceID string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("entry %s already present (pass correction to replace)", e.SourceID)
}

// PreconditionError reports an analysis invoked on empty or insufficient
// data. Analyses raise it rather than returning an all-zero result, which
// would be indistinguishable from "no gaps found".
type PreconditionError struct {
	// Op names the analysis that was refused.
	Op string

	// Reason says which precondition failed.
	Reason string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}
