package opt

import "github.com/pkg/errors"

var (
	// ErrIndexOutOfRange is returned when an objective index does not designate a live objective.
	ErrIndexOutOfRange = errors.New("objective index out of range")
	// ErrNotOrderable is returned when registering a term that cannot be maximized.
	ErrNotOrderable = errors.New("objective term is not of an orderable sort")
	// ErrScope is returned when popping more scopes than are open.
	ErrScope = errors.New("invalid scope")
	// ErrNoModel is returned when a model is requested but the last check was not satisfiable.
	ErrNoModel = errors.New("no model available")
	// ErrAdjusterInUse is returned when changing the adjuster of an objective that was already maximized.
	ErrAdjusterInUse = errors.New("adjuster already in use")
)
