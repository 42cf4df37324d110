// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/zone-keeper/models"
)

// allowedShapeTypes is the exhaustive set of ShapeType values accepted by
// the validator. Any ShapeType not present here is considered invalid.
var allowedShapeTypes = map[models.ShapeType]struct{}{
	models.Circle:    {},
	models.Rectangle: {},
	models.Polygon:   {},
	models.Polyline:  {},
}

// shapeValidator is the default implementation of [ShapeValidator].
// It is stateless; a single instance can be shared by every component.
type shapeValidator struct{}

// NewShapeValidator constructs a new ShapeValidator.
func NewShapeValidator() ShapeValidator {
	return &shapeValidator{}
}

// ValidateShape implements [ShapeValidator]. Rules are checked in order:
// id, shape type, base coordinate, then the geometry fields meaningful
// for the shape type. The first violation aborts validation.
func (v *shapeValidator) ValidateShape(_ context.Context, shape models.Shape) error {
	if shape.ID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidShape, ErrEmptyShapeID)
	}

	if _, ok := allowedShapeTypes[shape.ShapeType]; !ok {
		return v.fail(shape.ID, fmt.Errorf("%w: %q", ErrUnknownShapeType, shape.ShapeType))
	}

	if !shape.BaseCoordinate.Valid() {
		return v.fail(shape.ID, fmt.Errorf("%w: base coordinate", ErrInvalidCoordinate))
	}

	switch shape.ShapeType {
	case models.Circle:
		if shape.Radius == nil {
			return v.fail(shape.ID, fmt.Errorf("%w: radius", ErrMissingGeometry))
		}
		if *shape.Radius <= 0 {
			return v.fail(shape.ID, ErrInvalidRadius)
		}

	case models.Rectangle:
		if shape.SecondCoordinate == nil {
			return v.fail(shape.ID, fmt.Errorf("%w: second coordinate", ErrMissingGeometry))
		}
		if !shape.SecondCoordinate.Valid() {
			return v.fail(shape.ID, fmt.Errorf("%w: second coordinate", ErrInvalidCoordinate))
		}

	case models.Polygon:
		if err := v.validatePath(shape.PolygonCoordinates, models.MinPolygonPoints); err != nil {
			return v.fail(shape.ID, err)
		}

	case models.Polyline:
		if err := v.validatePath(shape.PolylineCoordinates, models.MinPolylinePoints); err != nil {
			return v.fail(shape.ID, err)
		}
	}

	return nil
}

// ValidateBatch implements [ShapeValidator]. Every shape must pass
// ValidateShape and ids must be unique within the batch; any failure
// rejects the whole batch.
func (v *shapeValidator) ValidateBatch(ctx context.Context, shapes []models.Shape) error {
	if len(shapes) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidShape, ErrNoShapesProvided)
	}

	seen := make(map[string]struct{}, len(shapes))
	for i := range shapes {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := v.ValidateShape(ctx, shapes[i]); err != nil {
			return err
		}

		if _, dup := seen[shapes[i].ID]; dup {
			return v.fail(shapes[i].ID, ErrDuplicateShapeIDs)
		}
		seen[shapes[i].ID] = struct{}{}
	}

	return nil
}

func (v *shapeValidator) validatePath(points []models.Coordinate, minPoints int) error {
	if len(points) < minPoints {
		return fmt.Errorf("%w: got %d, need at least %d", ErrTooFewPoints, len(points), minPoints)
	}
	if len(points) > models.MaxGeometryPoints {
		return fmt.Errorf("%w: got %d, limit %d", ErrTooManyPoints, len(points), models.MaxGeometryPoints)
	}
	for i, p := range points {
		if !p.Valid() {
			return fmt.Errorf("%w: point %d", ErrInvalidCoordinate, i)
		}
	}
	return nil
}

func (v *shapeValidator) fail(shapeID string, cause error) error {
	return fmt.Errorf("%w: shape %s: %w", ErrInvalidShape, shapeID, cause)
}
