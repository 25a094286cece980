package models

import "fmt"

// Rule names carried by domain errors so callers can match on the violated
// rule without parsing messages.
const (
	RuleEmptyEntry             = "EmptyEntry"
	RuleMixedAmountLine        = "MixedAmountLine"
	RuleZeroAmountLine         = "ZeroAmountLine"
	RuleUnbalanced             = "Unbalanced"
	RuleDuplicateAccountNumber = "DuplicateAccountNumber"
	RuleAccountInUse           = "AccountInUse"
	RuleAlreadyPosted          = "AlreadyPosted"
	RuleAlreadyReversed        = "AlreadyReversed"
	RuleNotPosted              = "NotPosted"
	RuleUnsupportedChartType   = "UnsupportedChartType"
)

// ValidationError reports a broken entry invariant. Always recoverable by the
// caller fixing the input.
type ValidationError struct {
	Rule    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed (%s): %s", e.Rule, e.Message)
}

func NewValidationError(rule, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Rule: rule, Message: fmt.Sprintf(format, args...)}
}

// NotFoundError reports a missing account or entry within the tenant's scope.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// ConflictError reports an operation rejected because it would violate a
// state rule (duplicate number, wrong status, account still referenced).
type ConflictError struct {
	Rule    string
	Message string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflict (%s): %s", e.Rule, e.Message)
}

func NewConflictError(rule, format string, args ...interface{}) *ConflictError {
	return &ConflictError{Rule: rule, Message: fmt.Sprintf(format, args...)}
}
