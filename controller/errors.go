package controller

import "errors"

var (
	ErrMissingDependency = errors.New("controller: missing dependency")
	ErrInvalidConfig     = errors.New("controller: invalid config")
)

// DependencyError reports which collaborator was not supplied to New.
type DependencyError struct {
	Name string
}

func (e *DependencyError) Error() string {
	return ErrMissingDependency.Error() + ": " + e.Name
}

func (e *DependencyError) Unwrap() error {
	return ErrMissingDependency
}
