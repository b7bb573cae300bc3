package grid

// RowChange is the shared mutable context handed to every cancellable
// row-event subscriber, in registration order. Any subscriber may call
// Cancel to veto the operation; later subscribers are then skipped and
// no mutation occurs.
type RowChange[T any] struct {
	Item      T
	Values    map[string]any // staged values by column ID; nil for removes
	cancelled bool
}

// Cancel vetoes the pending operation.
func (c *RowChange[T]) Cancel() {
	c.cancelled = true
}

// Cancelled reports whether a subscriber has vetoed the operation.
func (c *RowChange[T]) Cancelled() bool {
	return c.cancelled
}

// isSafeToProceed runs the veto protocol: with no subscribers the
// operation proceeds; otherwise subscribers run synchronously one at a
// time and the first Cancel short-circuits the rest.
func isSafeToProceed[T any](subs []func(*RowChange[T]), change *RowChange[T]) bool {
	for _, fn := range subs {
		fn(change)
		if change.cancelled {
			return false
		}
	}
	return true
}

// SortState describes the single active sort column in a read request.
type SortState struct {
	Field     string
	Direction Direction
}

// FilterState describes one column's active filter in a read request.
type FilterState struct {
	Field  string
	Search string
	Method FilterMethod
}

// ReadRequest is dispatched to ReadData subscribers in remote mode. The
// host services it by querying its store for exactly one page of
// pre-filtered, pre-sorted items and calling SetData with the result
// and the unpaged total.
type ReadRequest struct {
	Page     int
	PageSize int
	Sort     *SortState
	Filters  []FilterState
}
