package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/zone-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCircle(id string) models.Shape {
	r := 500.0
	return models.Shape{
		ID:             id,
		Title:          "Zone " + id,
		ShapeType:      models.Circle,
		BaseCoordinate: models.Coordinate{Latitude: 55.75, Longitude: 37.61},
		Radius:         &r,
	}
}

func manyPoints(n int) []models.Coordinate {
	pts := make([]models.Coordinate, n)
	for i := range pts {
		pts[i] = models.Coordinate{Latitude: float64(i % 80), Longitude: float64(i % 170)}
	}
	return pts
}

func TestValidateShape(t *testing.T) {
	v := NewShapeValidator()
	ctx := context.Background()

	negRadius := -5.0
	zeroRadius := 0.0
	second := models.Coordinate{Latitude: 10, Longitude: 10}
	badSecond := models.Coordinate{Latitude: 91, Longitude: 10}

	tests := []struct {
		name    string
		shape   models.Shape
		wantErr error
	}{
		{name: "valid circle", shape: validCircle("c1")},
		{
			name: "valid rectangle",
			shape: models.Shape{
				ID: "r1", ShapeType: models.Rectangle,
				BaseCoordinate:   models.Coordinate{Latitude: 1, Longitude: 1},
				SecondCoordinate: &second,
			},
		},
		{
			name: "valid polygon",
			shape: models.Shape{
				ID: "p1", ShapeType: models.Polygon,
				BaseCoordinate:     models.Coordinate{Latitude: 1, Longitude: 1},
				PolygonCoordinates: manyPoints(3),
			},
		},
		{
			name: "valid polyline",
			shape: models.Shape{
				ID: "l1", ShapeType: models.Polyline,
				BaseCoordinate:      models.Coordinate{Latitude: 1, Longitude: 1},
				PolylineCoordinates: manyPoints(2),
			},
		},
		{
			name:    "empty id",
			shape:   models.Shape{ShapeType: models.Circle},
			wantErr: ErrEmptyShapeID,
		},
		{
			name: "unknown type",
			shape: models.Shape{
				ID: "x1", ShapeType: "triangle",
				BaseCoordinate: models.Coordinate{Latitude: 1, Longitude: 1},
			},
			wantErr: ErrUnknownShapeType,
		},
		{
			name: "base coordinate out of range",
			shape: models.Shape{
				ID: "x2", ShapeType: models.Circle,
				BaseCoordinate: models.Coordinate{Latitude: 95, Longitude: 0},
			},
			wantErr: ErrInvalidCoordinate,
		},
		{
			name: "circle without radius",
			shape: models.Shape{
				ID: "x3", ShapeType: models.Circle,
				BaseCoordinate: models.Coordinate{Latitude: 1, Longitude: 1},
			},
			wantErr: ErrMissingGeometry,
		},
		{
			name: "negative radius",
			shape: models.Shape{
				ID: "x4", ShapeType: models.Circle,
				BaseCoordinate: models.Coordinate{Latitude: 1, Longitude: 1},
				Radius:         &negRadius,
			},
			wantErr: ErrInvalidRadius,
		},
		{
			name: "zero radius",
			shape: models.Shape{
				ID: "x5", ShapeType: models.Circle,
				BaseCoordinate: models.Coordinate{Latitude: 1, Longitude: 1},
				Radius:         &zeroRadius,
			},
			wantErr: ErrInvalidRadius,
		},
		{
			name: "rectangle with invalid second corner",
			shape: models.Shape{
				ID: "x6", ShapeType: models.Rectangle,
				BaseCoordinate:   models.Coordinate{Latitude: 1, Longitude: 1},
				SecondCoordinate: &badSecond,
			},
			wantErr: ErrInvalidCoordinate,
		},
		{
			name: "polygon with two points",
			shape: models.Shape{
				ID: "x7", ShapeType: models.Polygon,
				BaseCoordinate:     models.Coordinate{Latitude: 1, Longitude: 1},
				PolygonCoordinates: manyPoints(2),
			},
			wantErr: ErrTooFewPoints,
		},
		{
			name: "polyline above point limit",
			shape: models.Shape{
				ID: "x8", ShapeType: models.Polyline,
				BaseCoordinate:      models.Coordinate{Latitude: 1, Longitude: 1},
				PolylineCoordinates: manyPoints(1001),
			},
			wantErr: ErrTooManyPoints,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateShape(ctx, tt.shape)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidShape)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateBatch(t *testing.T) {
	v := NewShapeValidator()
	ctx := context.Background()

	t.Run("valid batch", func(t *testing.T) {
		err := v.ValidateBatch(ctx, []models.Shape{validCircle("a"), validCircle("b")})
		assert.NoError(t, err)
	})

	t.Run("empty batch", func(t *testing.T) {
		err := v.ValidateBatch(ctx, nil)
		assert.ErrorIs(t, err, ErrNoShapesProvided)
	})

	t.Run("duplicate ids reject whole batch", func(t *testing.T) {
		err := v.ValidateBatch(ctx, []models.Shape{validCircle("a"), validCircle("a")})
		assert.ErrorIs(t, err, ErrDuplicateShapeIDs)
	})

	t.Run("one bad shape rejects whole batch", func(t *testing.T) {
		bad := validCircle("c")
		*bad.Radius = -1
		err := v.ValidateBatch(ctx, []models.Shape{validCircle("a"), bad})
		assert.ErrorIs(t, err, ErrInvalidRadius)
	})
}
