package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/zone-keeper/models"
)

// shapeRow mirrors one row of the shapes table with nullable columns
// expanded into database/sql wrapper types.
type shapeRow struct {
	ID                  string
	Title               string
	Memo                string
	Address             string
	ShapeType           string
	BaseLat             float64
	BaseLng             float64
	Radius              sql.NullFloat64
	SecondLat           sql.NullFloat64
	SecondLng           sql.NullFloat64
	PolygonCoordinates  sql.NullString
	PolylineCoordinates sql.NullString
	Color               string
	CreatedAt           time.Time
	UpdatedAt           time.Time
	FlightStartDate     sql.NullTime
	FlightEndDate       sql.NullTime
	DeletedAt           sql.NullTime
}

// values returns the row fields in shapeColumns order for INSERT binding.
func (r shapeRow) values() []any {
	return []any{
		r.ID,
		r.Title,
		r.Memo,
		r.Address,
		r.ShapeType,
		r.BaseLat,
		r.BaseLng,
		r.Radius,
		r.SecondLat,
		r.SecondLng,
		r.PolygonCoordinates,
		r.PolylineCoordinates,
		r.Color,
		r.CreatedAt,
		r.UpdatedAt,
		r.FlightStartDate,
		r.FlightEndDate,
		r.DeletedAt,
	}
}

// scanTargets returns scan destinations in shapeColumns order.
func (r *shapeRow) scanTargets() []any {
	return []any{
		&r.ID,
		&r.Title,
		&r.Memo,
		&r.Address,
		&r.ShapeType,
		&r.BaseLat,
		&r.BaseLng,
		&r.Radius,
		&r.SecondLat,
		&r.SecondLng,
		&r.PolygonCoordinates,
		&r.PolylineCoordinates,
		&r.Color,
		&r.CreatedAt,
		&r.UpdatedAt,
		&r.FlightStartDate,
		&r.FlightEndDate,
		&r.DeletedAt,
	}
}

func newShapeRow(shape models.Shape) (shapeRow, error) {
	row := shapeRow{
		ID:        shape.ID,
		Title:     shape.Title,
		Memo:      shape.Memo,
		Address:   shape.Address,
		ShapeType: string(shape.ShapeType),
		BaseLat:   shape.BaseCoordinate.Latitude,
		BaseLng:   shape.BaseCoordinate.Longitude,
		Color:     shape.Color,
		CreatedAt: shape.CreatedAt,
		UpdatedAt: shape.UpdatedAt,
	}

	if shape.Radius != nil {
		row.Radius = sql.NullFloat64{Float64: *shape.Radius, Valid: true}
	}
	if shape.SecondCoordinate != nil {
		row.SecondLat = sql.NullFloat64{Float64: shape.SecondCoordinate.Latitude, Valid: true}
		row.SecondLng = sql.NullFloat64{Float64: shape.SecondCoordinate.Longitude, Valid: true}
	}

	var err error
	if row.PolygonCoordinates, err = encodePath(shape.PolygonCoordinates); err != nil {
		return shapeRow{}, fmt.Errorf("encode polygon coordinates: %w", err)
	}
	if row.PolylineCoordinates, err = encodePath(shape.PolylineCoordinates); err != nil {
		return shapeRow{}, fmt.Errorf("encode polyline coordinates: %w", err)
	}

	row.FlightStartDate = nullTime(shape.FlightStartDate)
	row.FlightEndDate = nullTime(shape.FlightEndDate)
	row.DeletedAt = nullTime(shape.DeletedAt)

	return row, nil
}

func (r shapeRow) toShape() (models.Shape, error) {
	shape := models.Shape{
		ID:             r.ID,
		Title:          r.Title,
		Memo:           r.Memo,
		Address:        r.Address,
		ShapeType:      models.ShapeType(r.ShapeType),
		BaseCoordinate: models.Coordinate{Latitude: r.BaseLat, Longitude: r.BaseLng},
		Color:          r.Color,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}

	if r.Radius.Valid {
		radius := r.Radius.Float64
		shape.Radius = &radius
	}
	if r.SecondLat.Valid && r.SecondLng.Valid {
		shape.SecondCoordinate = &models.Coordinate{Latitude: r.SecondLat.Float64, Longitude: r.SecondLng.Float64}
	}

	var err error
	if shape.PolygonCoordinates, err = decodePath(r.PolygonCoordinates); err != nil {
		return models.Shape{}, fmt.Errorf("decode polygon coordinates: %w", err)
	}
	if shape.PolylineCoordinates, err = decodePath(r.PolylineCoordinates); err != nil {
		return models.Shape{}, fmt.Errorf("decode polyline coordinates: %w", err)
	}

	shape.FlightStartDate = timePtr(r.FlightStartDate)
	shape.FlightEndDate = timePtr(r.FlightEndDate)
	shape.DeletedAt = timePtr(r.DeletedAt)

	return shape, nil
}

// encodePath stores an ordered coordinate sequence as a JSON text column.
func encodePath(points []models.Coordinate) (sql.NullString, error) {
	if len(points) == 0 {
		return sql.NullString{}, nil
	}
	raw, err := json.Marshal(points)
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: string(raw), Valid: true}, nil
}

func decodePath(column sql.NullString) ([]models.Coordinate, error) {
	if !column.Valid || column.String == "" {
		return nil, nil
	}
	var points []models.Coordinate
	if err := json.Unmarshal([]byte(column.String), &points); err != nil {
		return nil, err
	}
	return points, nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	c := t.Time
	return &c
}
