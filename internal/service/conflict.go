package service

import (
	"sync"
	"time"

	"github.com/MKhiriev/zone-keeper/models"
)

// EditField names a mergeable group of shape fields. All geometry
// columns move together as FieldGeometry.
type EditField string

const (
	FieldTitle       EditField = "title"
	FieldMemo        EditField = "memo"
	FieldAddress     EditField = "address"
	FieldColor       EditField = "color"
	FieldFlightDates EditField = "flightDates"
	FieldGeometry    EditField = "geometry"
)

// EditSession tracks one shape under active editing on this device.
// While a session is open, incoming realtime updates for the shape are
// not applied directly; the watcher raises the remote-changes flag
// instead, and the merge happens once at save time via Resolve.
type EditSession struct {
	mu               sync.Mutex
	snapshot         models.Shape
	editing          map[EditField]bool
	hasRemoteChanges bool
}

// BeginEdit opens a session with a pre-edit snapshot of the shape.
func BeginEdit(shape models.Shape) *EditSession {
	return &EditSession{
		snapshot: shape.Clone(),
		editing:  make(map[EditField]bool),
	}
}

// ShapeID returns the id of the shape under edit.
func (e *EditSession) ShapeID() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshot.ID
}

// MarkEditing flags a field group the user is currently typing into.
// A marked field keeps the edited value even when it still equals the
// snapshot.
func (e *EditSession) MarkEditing(field EditField) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.editing[field] = true
}

// NoteRemoteChange records that the shape changed remotely while the
// session was open.
func (e *EditSession) NoteRemoteChange() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.hasRemoteChanges = true
}

// HasRemoteChanges reports whether Resolve has remote input to merge.
func (e *EditSession) HasRemoteChanges() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.hasRemoteChanges
}

// Resolve merges the edited shape against the latest remote copy,
// field group by field group. A group takes the edited value when the
// user touched it (it differs from the pre-edit snapshot, or it is
// marked as being edited); otherwise it takes the remote value when
// someone else changed it remotely; otherwise the untouched edited
// value stays. The result carries a fresh UpdatedAt so it wins the
// subsequent last-writer comparison.
func (e *EditSession) Resolve(edited, remote models.Shape) models.Shape {
	e.mu.Lock()
	defer e.mu.Unlock()

	result := edited.Clone()

	if !e.localWins(FieldTitle, edited.Title != e.snapshot.Title) &&
		remote.Title != e.snapshot.Title {
		result.Title = remote.Title
	}
	if !e.localWins(FieldMemo, edited.Memo != e.snapshot.Memo) &&
		remote.Memo != e.snapshot.Memo {
		result.Memo = remote.Memo
	}
	if !e.localWins(FieldAddress, edited.Address != e.snapshot.Address) &&
		remote.Address != e.snapshot.Address {
		result.Address = remote.Address
	}
	if !e.localWins(FieldColor, edited.Color != e.snapshot.Color) &&
		remote.Color != e.snapshot.Color {
		result.Color = remote.Color
	}

	if !e.localWins(FieldFlightDates, flightDatesDiffer(edited, e.snapshot)) &&
		flightDatesDiffer(remote, e.snapshot) {
		result.FlightStartDate = cloneTimePtr(remote.FlightStartDate)
		result.FlightEndDate = cloneTimePtr(remote.FlightEndDate)
	}

	// geometry is all-or-nothing
	if !e.localWins(FieldGeometry, !edited.SameGeometry(&e.snapshot)) &&
		!remote.SameGeometry(&e.snapshot) {
		copyGeometry(&result, remote)
	}

	result.UpdatedAt = time.Now().UTC()
	e.hasRemoteChanges = false
	return result
}

func (e *EditSession) localWins(field EditField, changedLocally bool) bool {
	return changedLocally || e.editing[field]
}

func flightDatesDiffer(a, b models.Shape) bool {
	return !equalTimePtr(a.FlightStartDate, b.FlightStartDate) ||
		!equalTimePtr(a.FlightEndDate, b.FlightEndDate)
}

func equalTimePtr(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

func cloneTimePtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

func copyGeometry(dst *models.Shape, src models.Shape) {
	dst.ShapeType = src.ShapeType
	dst.BaseCoordinate = src.BaseCoordinate

	dst.Radius = nil
	if src.Radius != nil {
		r := *src.Radius
		dst.Radius = &r
	}

	dst.SecondCoordinate = nil
	if src.SecondCoordinate != nil {
		c := *src.SecondCoordinate
		dst.SecondCoordinate = &c
	}

	dst.PolygonCoordinates = append([]models.Coordinate(nil), src.PolygonCoordinates...)
	dst.PolylineCoordinates = append([]models.Coordinate(nil), src.PolylineCoordinates...)
}
