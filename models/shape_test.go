package models

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoordinate_Valid(t *testing.T) {
	tests := []struct {
		name  string
		coord Coordinate
		want  bool
	}{
		{name: "valid point", coord: Coordinate{Latitude: 55.75, Longitude: 37.61}, want: true},
		{name: "lat upper bound", coord: Coordinate{Latitude: 90, Longitude: 0}, want: true},
		{name: "lat below range", coord: Coordinate{Latitude: -90.0001, Longitude: 0}, want: false},
		{name: "lng above range", coord: Coordinate{Latitude: 0, Longitude: 180.5}, want: false},
		{name: "nan latitude", coord: Coordinate{Latitude: math.NaN(), Longitude: 0}, want: false},
		{name: "inf longitude", coord: Coordinate{Latitude: 0, Longitude: math.Inf(1)}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.coord.Valid())
		})
	}
}

func TestShape_Lifecycle(t *testing.T) {
	now := time.Now().UTC()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	active := Shape{ID: "a", Title: "Zone A"}
	assert.True(t, active.IsActive(now), "shape without end date is permanently active")

	expired := Shape{ID: "b", FlightEndDate: &past}
	assert.True(t, expired.IsExpired(now))
	assert.False(t, expired.IsActive(now))

	upcoming := Shape{ID: "c", FlightEndDate: &future}
	assert.False(t, upcoming.IsExpired(now))

	deleted := Shape{ID: "d", DeletedAt: &now}
	assert.True(t, deleted.IsDeleted())
	assert.False(t, deleted.IsActive(now))
}

func TestShape_NewerThan_TiesFavorOther(t *testing.T) {
	ts := time.Now().UTC()
	local := Shape{ID: "s", UpdatedAt: ts}
	remote := Shape{ID: "s", UpdatedAt: ts}

	assert.False(t, local.NewerThan(&remote), "equal timestamps must not report newer")

	local.UpdatedAt = ts.Add(time.Second)
	assert.True(t, local.NewerThan(&remote))
}

func TestShape_Clone_IsDeep(t *testing.T) {
	radius := 500.0
	end := time.Now().UTC()
	src := Shape{
		ID:                 "s1",
		ShapeType:          Polygon,
		Radius:             &radius,
		PolygonCoordinates: []Coordinate{{1, 1}, {2, 2}, {3, 3}},
		FlightEndDate:      &end,
	}

	cp := src.Clone()
	require.Equal(t, src, cp)

	cp.PolygonCoordinates[0] = Coordinate{9, 9}
	*cp.Radius = 1
	*cp.FlightEndDate = end.Add(time.Hour)

	assert.Equal(t, Coordinate{1, 1}, src.PolygonCoordinates[0])
	assert.Equal(t, 500.0, *src.Radius)
	assert.Equal(t, end, *src.FlightEndDate)
}

func TestShape_SameGeometry(t *testing.T) {
	r1, r2 := 100.0, 200.0
	base := Coordinate{Latitude: 10, Longitude: 20}

	a := Shape{ShapeType: Circle, BaseCoordinate: base, Radius: &r1}
	b := Shape{ShapeType: Circle, BaseCoordinate: base, Radius: &r1}
	assert.True(t, a.SameGeometry(&b))

	b.Radius = &r2
	assert.False(t, a.SameGeometry(&b))

	c := Shape{ShapeType: Polyline, BaseCoordinate: base, PolylineCoordinates: []Coordinate{{1, 1}, {2, 2}}}
	d := Shape{ShapeType: Polyline, BaseCoordinate: base, PolylineCoordinates: []Coordinate{{1, 1}, {2, 3}}}
	assert.False(t, c.SameGeometry(&d))
}

func TestResolveStoreMode(t *testing.T) {
	assert.Equal(t, LocalAndRemote, ResolveStoreMode(true, true))
	assert.Equal(t, LocalOnly, ResolveStoreMode(true, false))
	assert.Equal(t, LocalOnly, ResolveStoreMode(false, true))
	assert.Equal(t, LocalOnly, ResolveStoreMode(false, false))
}
