package grid

// EditState is the grid's edit-session state.
type EditState int

const (
	EditNone EditState = iota
	EditNew
	EditExisting
)

// String returns the state name.
func (s EditState) String() string {
	switch s {
	case EditNew:
		return "new"
	case EditExisting:
		return "edit"
	default:
		return "none"
	}
}

// editSession holds the item currently being created or edited and the
// per-column staged values. Only one session exists per grid; starting
// a new one silently replaces any active session (last writer wins).
type editSession[T any] struct {
	state  EditState
	item   T
	staged map[string]any
}

// begin stages each editable column's current value from item and
// enters the given state.
func (s *editSession[T]) begin(state EditState, item T, columns []*Column[T]) {
	s.state = state
	s.item = item
	s.staged = make(map[string]any)
	for _, c := range columns {
		if c.Editable && c.GetValue != nil {
			s.staged[c.ID] = c.GetValue(item)
		}
	}
}

// values copies the staged mapping, restricted to editable columns, for
// handing to event subscribers.
func (s *editSession[T]) values(columns []*Column[T]) map[string]any {
	out := make(map[string]any, len(s.staged))
	for _, c := range columns {
		if !c.Editable {
			continue
		}
		if v, ok := s.staged[c.ID]; ok {
			out[c.ID] = v
		}
	}
	return out
}

// clear drops the session without touching the data source.
func (s *editSession[T]) clear() {
	var zero T
	s.state = EditNone
	s.item = zero
	s.staged = nil
}
