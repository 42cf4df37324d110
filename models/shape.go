package models

import "time"

// ShapeType defines which geometry fields of a [Shape] are meaningful.
type ShapeType string

const (
	Circle    ShapeType = "circle"
	Rectangle ShapeType = "rectangle"
	Polygon   ShapeType = "polygon"
	Polyline  ShapeType = "polyline"
)

// Geometry point limits shared by the validator and the conflict resolver.
const (
	MinPolygonPoints  = 3
	MinPolylinePoints = 2
	MaxGeometryPoints = 1000
)

// Shape represents a single drone no-fly/permission zone placed on the map.
// It is the unit of synchronization between the local store and the remote
// per-user collection.
type Shape struct {
	// ID is the unique identifier of the shape. It is assigned once at
	// creation, never mutated, and is the sole merge key during
	// reconciliation.
	ID string `json:"id"`

	// Title is the user-visible name of the zone.
	Title string `json:"title"`

	// Memo contains optional free-text user notes.
	Memo string `json:"memo"`

	// Address is the reverse-geocoded address of BaseCoordinate,
	// produced by an external geocoding collaborator.
	Address string `json:"address"`

	// ShapeType selects the geometry kind of this zone.
	ShapeType ShapeType `json:"shapeType"`

	// BaseCoordinate is the anchor point of every geometry kind:
	// circle center, first rectangle corner, or first path point.
	BaseCoordinate Coordinate `json:"baseCoordinate"`

	// Radius is the circle radius in meters. Meaningful only when
	// ShapeType is Circle.
	Radius *float64 `json:"radius,omitempty"`

	// SecondCoordinate is the opposite rectangle corner. Meaningful only
	// when ShapeType is Rectangle.
	SecondCoordinate *Coordinate `json:"secondCoordinate,omitempty"`

	// PolygonCoordinates is the ordered polygon ring (at least 3 points).
	PolygonCoordinates []Coordinate `json:"polygonCoordinates,omitempty"`

	// PolylineCoordinates is the ordered path (at least 2 points).
	PolylineCoordinates []Coordinate `json:"polylineCoordinates,omitempty"`

	// Color is the display color identifier. All active shapes of a user
	// are kept at a single unified color; see the color synchronization
	// step of the remote store.
	Color string `json:"color"`

	// CreatedAt is set once at creation and never mutated.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is bumped on every local mutation and is the basis for
	// last-writer-wins comparison during reconciliation.
	UpdatedAt time.Time `json:"updatedAt"`

	// FlightStartDate and FlightEndDate define the active/expired
	// lifecycle window. A shape with no end date is permanently active.
	FlightStartDate *time.Time `json:"flightStartDate,omitempty"`
	FlightEndDate   *time.Time `json:"flightEndDate,omitempty"`

	// DeletedAt marks a tombstone: the shape is excluded from all active
	// views but the remote record is retained so other devices learn of
	// the deletion.
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

// IsDeleted reports whether the shape is a tombstone.
func (s *Shape) IsDeleted() bool {
	return s.DeletedAt != nil
}

// IsExpired reports whether the shape's flight window has passed at the
// given instant. A shape without an end date never expires.
func (s *Shape) IsExpired(now time.Time) bool {
	return s.FlightEndDate != nil && s.FlightEndDate.Before(now)
}

// IsActive reports whether the shape should appear in active views:
// not a tombstone and not expired.
func (s *Shape) IsActive(now time.Time) bool {
	return !s.IsDeleted() && !s.IsExpired(now)
}

// NewerThan reports whether this shape should win a last-writer-wins
// comparison against other. Ties favor other (the remote side, by
// convention of all call sites).
func (s *Shape) NewerThan(other *Shape) bool {
	return s.UpdatedAt.After(other.UpdatedAt)
}

// Clone returns a deep copy of the shape. Geometry slices and optional
// pointers are copied so the result can be mutated independently.
func (s *Shape) Clone() Shape {
	out := *s

	if s.Radius != nil {
		r := *s.Radius
		out.Radius = &r
	}
	if s.SecondCoordinate != nil {
		c := *s.SecondCoordinate
		out.SecondCoordinate = &c
	}
	if s.PolygonCoordinates != nil {
		out.PolygonCoordinates = append([]Coordinate(nil), s.PolygonCoordinates...)
	}
	if s.PolylineCoordinates != nil {
		out.PolylineCoordinates = append([]Coordinate(nil), s.PolylineCoordinates...)
	}
	out.FlightStartDate = cloneTime(s.FlightStartDate)
	out.FlightEndDate = cloneTime(s.FlightEndDate)
	out.DeletedAt = cloneTime(s.DeletedAt)

	return out
}

// SameGeometry reports whether two shapes carry an identical geometry
// block (type, base coordinate and all type-specific fields). The
// conflict resolver treats the geometry block as a single unit.
func (s *Shape) SameGeometry(other *Shape) bool {
	if s.ShapeType != other.ShapeType || s.BaseCoordinate != other.BaseCoordinate {
		return false
	}
	if !equalFloatPtr(s.Radius, other.Radius) {
		return false
	}
	if !equalCoordPtr(s.SecondCoordinate, other.SecondCoordinate) {
		return false
	}
	return equalCoords(s.PolygonCoordinates, other.PolygonCoordinates) &&
		equalCoords(s.PolylineCoordinates, other.PolylineCoordinates)
}

// TableName returns the name of the local database table associated with
// the Shape model.
func (s *Shape) TableName() string {
	return "shapes"
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

func equalFloatPtr(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func equalCoordPtr(a, b *Coordinate) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func equalCoords(a, b []Coordinate) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
