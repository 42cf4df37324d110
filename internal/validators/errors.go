package validators

import "errors"

var (
	// ErrInvalidShape is the root of every validation failure. Callers
	// match it with [errors.Is]; the wrapping message names the violated
	// rule and the offending shape id.
	ErrInvalidShape = errors.New("invalid shape data")

	ErrEmptyShapeID      = errors.New("shape id is empty")
	ErrUnknownShapeType  = errors.New("unknown shape type")
	ErrInvalidCoordinate = errors.New("coordinate out of range")
	ErrInvalidRadius     = errors.New("circle radius must be positive")
	ErrMissingGeometry   = errors.New("required geometry field is missing")
	ErrTooFewPoints      = errors.New("geometry has too few points")
	ErrTooManyPoints     = errors.New("geometry exceeds point limit")
	ErrDuplicateShapeIDs = errors.New("duplicate shape ids in batch")
	ErrNoShapesProvided  = errors.New("no shapes provided")
)
