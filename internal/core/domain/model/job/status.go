package job

import (
	"fmt"

	"inspection/internal/pkg/errs"
)

// Status represents the lifecycle state of an inspection job.
// It implements a state machine with defined transitions to ensure
// jobs follow the correct business workflow.
//
// State transitions:
//
//	Open ──> Assigned ──> Completed
//
// Assignment is single-shot: an assigned job is never re-assigned and a
// completed job accepts no further transitions. Open is never re-entered.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and the API.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Open is the initial status when a job is first created.
	// Jobs in this status are waiting to be assigned to an inspector.
	Open

	// Assigned indicates the job has been assigned to an inspector.
	// Exactly one assignment exists and it has no completion time.
	Assigned

	// Completed indicates the job's assignment has been completed.
	// This is a final state with no further transitions allowed.
	Completed
)

// getStatusStrings returns a map of Status values to their string representations.
// The strings are the canonical uppercase values used at the API boundary.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Open:      "OPEN",
		Assigned:  "ASSIGNED",
		Completed: "COMPLETED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Open:      "OPEN",
		Assigned:  "ASSIGNED",
		Completed: "COMPLETED",
	}
}

// StatusFromString parses the canonical uppercase representation.
// Returns a value-is-invalid error for anything outside OPEN, ASSIGNED, COMPLETED.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status, allowed values are OPEN, ASSIGNED, COMPLETED", s),
	)
}

// Validate checks if the Status value is valid.
// Valid statuses are: Open, Assigned, Completed.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the canonical name of the status: "OPEN", "ASSIGNED" or
// "COMPLETED" for valid values, "UNKNOWN" otherwise.
// Implements the fmt.Stringer interface.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// ValidateAssign checks if the status allows assignment without performing
// the transition. Only Open jobs may be assigned; a second assign attempt on
// an already-assigned or completed job is a conflict, never a silent success.
func (s Status) ValidateAssign() error {
	if s != Open {
		return errs.NewConflictError(
			fmt.Sprintf("job can only be assigned while OPEN, current status is %s", s),
		)
	}
	return nil
}

// ValidateCanHaveAssignment validates the consistency between job status and
// the presence of an assignment.
//
// Business rules:
//   - Open jobs must not have an assignment
//   - Assigned and Completed jobs must have exactly one assignment
func (s Status) ValidateCanHaveAssignment(hasAssignment bool) error {
	if hasAssignment && s == Open {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have an assignment", s),
		)
	}

	if !hasAssignment && (s == Assigned || s == Completed) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have no assignment", s),
		)
	}

	return nil
}

// Assign transitions the status to Assigned.
//
// Valid transitions:
//   - Open -> Assigned
//
// Returns a conflict error from any other status.
func (s Status) Assign() (Status, error) {
	if err := s.ValidateAssign(); err != nil {
		return 0, err
	}

	return Assigned, nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - Assigned -> Completed
//
// Returns a conflict error from any other status. Completed is a final
// state with no further transitions possible.
func (s Status) Complete() (Status, error) {
	if s != Assigned {
		return 0, errs.NewConflictError(
			fmt.Sprintf("job can only be completed while ASSIGNED, current status is %s", s),
		)
	}

	return Completed, nil
}
