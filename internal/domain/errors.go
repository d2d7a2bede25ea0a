package domain

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateSale       = errors.New("sale already recorded")
	ErrSaleNotFound        = errors.New("sale not found")
	ErrPayoutNotFound      = errors.New("payout not found")
	ErrPayoutImmutable     = errors.New("completed payout cannot be modified")
	ErrInvalidPayoutStatus = errors.New("invalid payout status transition")
	ErrDuplicateAssignment = errors.New("contributor already assigned to project with this role")
	ErrAssignmentNotFound  = errors.New("assignment not found")
	ErrPercentOutOfRange   = errors.New("commission percentage must be within [0, 100]")
	ErrPermissionDenied    = errors.New("caller lacks required role")
)

// MissingFieldError marks a sale that cannot be normalized because a required
// field resolved from no alias.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// MalformedRowError marks a single bad CSV row. The row is skipped; the rest
// of the batch proceeds.
type MalformedRowError struct {
	Line   int
	Reason string
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("malformed row %d: %s", e.Line, e.Reason)
}
