package validators

import (
	"context"

	"github.com/MKhiriev/zone-keeper/models"
)

// ShapeValidator is the structural and domain validation gate run before
// every persist or transmit of shape data. Implementations must be
// stateless and safe for concurrent use.
type ShapeValidator interface {
	// ValidateShape checks a single shape against the data model
	// invariants. Returns an error wrapping [ErrInvalidShape] describing
	// the first violated rule, or nil.
	ValidateShape(ctx context.Context, shape models.Shape) error

	// ValidateBatch checks every shape of a batch plus batch-level rules
	// (duplicate ids). A batch is rejected as a whole on the first
	// failure.
	ValidateBatch(ctx context.Context, shapes []models.Shape) error
}
