package apperr

import "fmt"

type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func NewValidationWrap(msg string, err error) *ValidationError {
	return &ValidationError{Message: msg, Err: err}
}

// ServiceError means a request could not be answered at all, not even by the fallback strategy.
type ServiceError struct {
	Message string
	Err     error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

func NewService(msg string, err error) *ServiceError {
	return &ServiceError{Message: msg, Err: err}
}

// Kind classifies why a search strategy failed.
type Kind int

const (
	KindUnknown Kind = iota
	KindCollaboratorUnavailable
	KindDataAbsent
	KindComputationFailure
)

func (k Kind) String() string {
	switch k {
	case KindCollaboratorUnavailable:
		return "collaborator_unavailable"
	case KindDataAbsent:
		return "data_absent"
	case KindComputationFailure:
		return "computation_failure"
	default:
		return "unknown"
	}
}

// StrategyError is returned by a search strategy. The router downgrades it to the fallback.
type StrategyError struct {
	Algorithm string
	Kind      Kind
	Err       error
}

func (e *StrategyError) Error() string {
	return fmt.Sprintf("%s strategy failed (%s): %v", e.Algorithm, e.Kind, e.Err)
}

func (e *StrategyError) Unwrap() error {
	return e.Err
}

func NewStrategy(algorithm string, kind Kind, err error) *StrategyError {
	return &StrategyError{Algorithm: algorithm, Kind: kind, Err: err}
}
