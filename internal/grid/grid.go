package grid

// EditMode selects how the host presents the row editor.
type EditMode int

const (
	EditModeForm EditMode = iota
	EditModePopup
)

// Options is the host-supplied grid configuration.
type Options struct {
	PageSize           int
	MaxPaginationLinks int
	UseInternalEditing bool
	Sortable           bool
	Editable           bool
	Filterable         bool
	FilterMethod       FilterMethod
	EditMode           EditMode
	TotalItems         int // remote mode only; zero degrades to a single page
}

// DefaultOptions returns the recognized option defaults.
func DefaultOptions() Options {
	return Options{
		PageSize:           5,
		MaxPaginationLinks: 5,
		UseInternalEditing: true,
		Sortable:           true,
		FilterMethod:       Contains,
		EditMode:           EditModeForm,
	}
}

// Grid is the data-management core of the data grid: it owns the column
// registry, the lazily recomputed filtered and display caches, the edit
// session and the event hooks. All state transitions happen on a single
// logical thread; the grid does no locking of its own.
type Grid[T any] struct {
	opts Options

	columns []*Column[T]
	source  Source[T]
	factory func() T

	currentPage int
	totalItems  int
	sortColumn  *Column[T]

	filtered     []T
	dirtyFilter  bool
	display      []T
	dirtyDisplay bool

	editing   editSession[T]
	popupOpen bool

	selected     T
	hasSelection bool

	rowInserting []func(*RowChange[T])
	rowUpdating  []func(*RowChange[T])
	rowRemoving  []func(*RowChange[T])

	rowInserted        []func(item T, values map[string]any)
	rowUpdated         []func(item T, values map[string]any)
	rowRemoved         []func(item T)
	selectedRowChanged []func(item T)
	pageChanged        []func(page int)
	viewChanged        []func()
	readData           []func(ReadRequest)
}

// New creates a grid with the given options. Zero PageSize and
// MaxPaginationLinks fall back to the defaults.
func New[T any](opts Options) *Grid[T] {
	if opts.PageSize < 1 {
		opts.PageSize = 5
	}
	if opts.MaxPaginationLinks < 1 {
		opts.MaxPaginationLinks = 5
	}
	return &Grid[T]{
		opts:         opts,
		currentPage:  1,
		totalItems:   opts.TotalItems,
		dirtyFilter:  true,
		dirtyDisplay: true,
	}
}

// Options returns the grid configuration.
func (g *Grid[T]) Options() Options {
	return g.opts
}

// SetItemFactory registers the constructor used for new-row creation.
func (g *Grid[T]) SetItemFactory(fn func() T) {
	g.factory = fn
}

// AddColumn registers a column. Registration order is display order. A
// column with no explicit filter method inherits the grid default.
func (g *Grid[T]) AddColumn(c *Column[T]) *Column[T] {
	if c.Filter.Method == Contains {
		c.Filter.Method = g.opts.FilterMethod
	}
	g.columns = append(g.columns, c)
	return c
}

// Columns returns the registry in registration order.
func (g *Grid[T]) Columns() []*Column[T] {
	return g.columns
}

// ColumnByID looks up a registered column.
func (g *Grid[T]) ColumnByID(id string) *Column[T] {
	for _, c := range g.columns {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// SetSource replaces the raw data source and invalidates both caches.
func (g *Grid[T]) SetSource(src Source[T]) {
	g.source = src
	g.invalidate()
	g.notifyViewChanged()
}

// SetData is the remote-mode completion path: the host supplies the
// page of items returned by its loader plus the unpaged total.
func (g *Grid[T]) SetData(items []T, total int) {
	g.source = NewFixedSource(items...)
	g.totalItems = total
	g.invalidate()
	g.notifyViewChanged()
}

// remoteMode reports whether an external loader services reads.
func (g *Grid[T]) remoteMode() bool {
	return len(g.readData) > 0
}

// invalidate marks both derived caches stale. They are recomputed
// lazily on the next read, never eagerly at the mutation site.
func (g *Grid[T]) invalidate() {
	g.dirtyFilter = true
	g.dirtyDisplay = true
}

func (g *Grid[T]) sourceItems() []T {
	if g.source == nil {
		return nil
	}
	return g.source.Items()
}

// Rows returns the current display window, recomputing each stale cache
// exactly once.
func (g *Grid[T]) Rows() []T {
	if g.dirtyFilter {
		g.refilter()
	}
	if g.dirtyDisplay {
		g.repage()
	}
	return g.display
}

func (g *Grid[T]) refilter() {
	g.filtered = computeFiltered(g.sourceItems(), g.columns, g.sortColumn, g.remoteMode())
	g.dirtyFilter = false
	g.dirtyDisplay = true
}

func (g *Grid[T]) repage() {
	if g.remoteMode() {
		g.display = g.filtered
	} else {
		g.LastPage() // clamps currentPage before slicing
		g.display = pageSlice(g.filtered, g.currentPage, g.opts.PageSize)
	}
	g.dirtyDisplay = false
}

// FilteredCount returns the filtered-cache length, recomputing if stale.
func (g *Grid[T]) FilteredCount() int {
	if g.dirtyFilter {
		g.refilter()
	}
	return len(g.filtered)
}

// effectiveTotal is the externally supplied total in remote mode, or
// the filtered count in local mode.
func (g *Grid[T]) effectiveTotal() int {
	if g.remoteMode() {
		return g.totalItems
	}
	return g.FilteredCount()
}

// Total returns the effective total item count: the loader-supplied
// total in remote mode, the filtered count in local mode.
func (g *Grid[T]) Total() int {
	return g.effectiveTotal()
}

// CurrentPage returns the current page without clamping.
func (g *Grid[T]) CurrentPage() int {
	return g.currentPage
}

// LastPage returns the final page number, always at least 1. Reading it
// also clamps the current page downward when the item count has shrunk
// beneath it, so a read can mutate state.
func (g *Grid[T]) LastPage() int {
	lp := lastPageFor(g.effectiveTotal(), g.opts.PageSize)
	if g.currentPage > lp {
		g.currentPage = lp
		g.dirtyDisplay = true
	}
	return lp
}

// PageLinks returns the visible pagination link range, centered on the
// current page and clamped to [1, LastPage].
func (g *Grid[T]) PageLinks() (first, last int) {
	return linkWindow(g.currentPage, g.opts.MaxPaginationLinks, g.LastPage())
}

// GoToPage navigates to page n, clamped into [1, LastPage]. A page
// change fires the page-changed notification and, in remote mode,
// dispatches a read request.
func (g *Grid[T]) GoToPage(n int) {
	lp := g.LastPage()
	if n < 1 {
		n = 1
	}
	if n > lp {
		n = lp
	}
	if n == g.currentPage {
		return
	}
	g.currentPage = n
	g.dirtyDisplay = true
	for _, fn := range g.pageChanged {
		fn(n)
	}
	if g.remoteMode() {
		g.dispatchRead()
	}
	g.notifyViewChanged()
}

// NextPage advances one page.
func (g *Grid[T]) NextPage() {
	g.GoToPage(g.currentPage + 1)
}

// PrevPage goes back one page.
func (g *Grid[T]) PrevPage() {
	g.GoToPage(g.currentPage - 1)
}

// SortClick handles a click on a column header. Clicking any sortable
// column flips that column's stored direction, resets every other
// column to Ascending and makes it the sole active sort column.
func (g *Grid[T]) SortClick(c *Column[T]) {
	if !g.opts.Sortable || c == nil || !c.Sortable {
		return
	}
	for _, other := range g.columns {
		if other != c {
			other.Direction = Ascending
		}
	}
	if c.Direction == Ascending {
		c.Direction = Descending
	} else {
		c.Direction = Ascending
	}
	g.sortColumn = c
	g.invalidate()
	if g.remoteMode() {
		g.dispatchRead()
	}
	g.notifyViewChanged()
}

// SortColumn returns the active sort column, if any.
func (g *Grid[T]) SortColumn() *Column[T] {
	return g.sortColumn
}

// SetFilter updates a column's filter text and invalidates the caches.
func (g *Grid[T]) SetFilter(columnID, search string) {
	if !g.opts.Filterable {
		return
	}
	c := g.ColumnByID(columnID)
	if c == nil || !c.Filterable || c.Kind == KindCommand {
		return
	}
	c.Filter.Search = search
	g.invalidate()
	if g.remoteMode() {
		g.dispatchRead()
	}
	g.notifyViewChanged()
}

// Refresh triggers an initial or explicit reload: a read dispatch in
// remote mode, a cache invalidation in local mode.
func (g *Grid[T]) Refresh() {
	if g.remoteMode() {
		g.dispatchRead()
	} else {
		g.invalidate()
	}
	g.notifyViewChanged()
}

// dispatchRead hands the current page/sort/filter state to every
// ReadData subscriber, one at a time. Subscriber failures are not
// caught here; they propagate to the triggering operation's caller.
func (g *Grid[T]) dispatchRead() {
	req := ReadRequest{
		Page:     g.currentPage,
		PageSize: g.opts.PageSize,
	}
	if g.sortColumn != nil {
		req.Sort = &SortState{Field: g.sortColumn.Field, Direction: g.sortColumn.Direction}
	}
	for _, c := range g.columns {
		if c.Kind == KindCommand || c.Filter.Search == "" {
			continue
		}
		req.Filters = append(req.Filters, FilterState{
			Field:  c.Field,
			Search: c.Filter.Search,
			Method: c.Filter.Method,
		})
	}
	for _, fn := range g.readData {
		fn(req)
	}
}

// EditState returns the edit-session state.
func (g *Grid[T]) EditState() EditState {
	return g.editing.state
}

// EditingItem returns the item under edit or creation.
func (g *Grid[T]) EditingItem() (T, bool) {
	if g.editing.state == EditNone {
		var zero T
		return zero, false
	}
	return g.editing.item, true
}

// PopupOpen reports whether the popup editor should be shown.
func (g *Grid[T]) PopupOpen() bool {
	return g.popupOpen
}

// StagedValue returns the staged cell value for an editable column.
func (g *Grid[T]) StagedValue(columnID string) (any, bool) {
	if g.editing.state == EditNone {
		return nil, false
	}
	v, ok := g.editing.staged[columnID]
	return v, ok
}

// SetStagedValue updates a staged cell value. Only editable columns of
// an active session accept writes.
func (g *Grid[T]) SetStagedValue(columnID string, value any) {
	if g.editing.state == EditNone {
		return
	}
	c := g.ColumnByID(columnID)
	if c == nil || !c.Editable {
		return
	}
	g.editing.staged[columnID] = value
}

// BeginNew allocates a fresh item via the registered factory, stages
// each editable column's value from it and enters the New state. An
// already-active session is silently replaced.
func (g *Grid[T]) BeginNew() {
	if !g.opts.Editable || g.factory == nil {
		return
	}
	g.editing.begin(EditNew, g.factory(), g.columns)
	if g.opts.EditMode == EditModePopup {
		g.popupOpen = true
	}
	g.notifyViewChanged()
}

// BeginEdit stages each editable column's current value from item and
// enters the Edit state.
func (g *Grid[T]) BeginEdit(item T) {
	if !g.opts.Editable {
		return
	}
	g.editing.begin(EditExisting, item, g.columns)
	if g.opts.EditMode == EditModePopup {
		g.popupOpen = true
	}
	g.notifyViewChanged()
}

// Save commits the active edit session. A veto from any inserting or
// updating subscriber aborts the commit and leaves the session open so
// the user can retry. Returns whether the commit happened.
func (g *Grid[T]) Save() bool {
	if g.editing.state == EditNone {
		return false
	}

	item := g.editing.item
	values := g.editing.values(g.columns)
	isNew := g.editing.state == EditNew

	change := &RowChange[T]{Item: item, Values: values}
	gate := g.rowUpdating
	if isNew {
		gate = g.rowInserting
	}
	if !isSafeToProceed(gate, change) {
		return false
	}

	if isNew && g.opts.UseInternalEditing {
		if ms, ok := g.source.(MutableSource[T]); ok {
			ms.Append(item)
		}
	}

	// New rows always take the staged values; there is no prior state
	// to fall back to. Edited rows take them only under internal
	// editing, so a host managing its own persistence is not
	// second-guessed.
	if g.opts.UseInternalEditing || isNew {
		for _, c := range g.columns {
			if !c.Editable || c.SetValue == nil {
				continue
			}
			if v, ok := values[c.ID]; ok {
				c.SetValue(item, v)
			}
		}
	}

	if isNew {
		for _, fn := range g.rowInserted {
			fn(item, values)
		}
		g.invalidate()
	} else {
		for _, fn := range g.rowUpdated {
			fn(item, values)
		}
	}

	g.editing.clear()
	g.popupOpen = false
	g.notifyViewChanged()
	return true
}

// CancelEdit drops the edit session without touching the data source.
func (g *Grid[T]) CancelEdit() {
	g.editing.clear()
	g.popupOpen = false
	g.notifyViewChanged()
}

// Delete removes an item after the remove gate clears it. The in-memory
// removal is skipped when internal editing is off, the source is not
// mutable or the item is absent; the removed notification fires in
// every non-vetoed case so the host can persist the change itself.
func (g *Grid[T]) Delete(item T) bool {
	change := &RowChange[T]{Item: item}
	if !isSafeToProceed(g.rowRemoving, change) {
		return false
	}

	if g.opts.UseInternalEditing {
		if ms, ok := g.source.(MutableSource[T]); ok && ms.Contains(item) {
			ms.Remove(item)
		}
	}

	for _, fn := range g.rowRemoved {
		fn(item)
	}
	g.invalidate()
	g.notifyViewChanged()
	return true
}

// SelectRow sets the selected row and fires the selection notification.
// Selection is locked while an edit session is active.
func (g *Grid[T]) SelectRow(item T) {
	if g.editing.state != EditNone {
		return
	}
	g.selected = item
	g.hasSelection = true
	for _, fn := range g.selectedRowChanged {
		fn(item)
	}
	g.notifyViewChanged()
}

// SelectedRow returns the selected row, if any.
func (g *Grid[T]) SelectedRow() (T, bool) {
	if !g.hasSelection {
		var zero T
		return zero, false
	}
	return g.selected, true
}

// ClearSelection drops the selected row without firing the selection
// notification.
func (g *Grid[T]) ClearSelection() {
	var zero T
	g.selected = zero
	g.hasSelection = false
}

func (g *Grid[T]) notifyViewChanged() {
	for _, fn := range g.viewChanged {
		fn()
	}
}

// OnRowInserting subscribes a cancellable insert gate handler.
func (g *Grid[T]) OnRowInserting(fn func(*RowChange[T])) {
	g.rowInserting = append(g.rowInserting, fn)
}

// OnRowUpdating subscribes a cancellable update gate handler.
func (g *Grid[T]) OnRowUpdating(fn func(*RowChange[T])) {
	g.rowUpdating = append(g.rowUpdating, fn)
}

// OnRowRemoving subscribes a cancellable remove gate handler.
func (g *Grid[T]) OnRowRemoving(fn func(*RowChange[T])) {
	g.rowRemoving = append(g.rowRemoving, fn)
}

// OnRowInserted subscribes an insert notification handler.
func (g *Grid[T]) OnRowInserted(fn func(item T, values map[string]any)) {
	g.rowInserted = append(g.rowInserted, fn)
}

// OnRowUpdated subscribes an update notification handler.
func (g *Grid[T]) OnRowUpdated(fn func(item T, values map[string]any)) {
	g.rowUpdated = append(g.rowUpdated, fn)
}

// OnRowRemoved subscribes a remove notification handler.
func (g *Grid[T]) OnRowRemoved(fn func(item T)) {
	g.rowRemoved = append(g.rowRemoved, fn)
}

// OnSelectedRowChanged subscribes a selection notification handler.
func (g *Grid[T]) OnSelectedRowChanged(fn func(item T)) {
	g.selectedRowChanged = append(g.selectedRowChanged, fn)
}

// OnPageChanged subscribes a page-change notification handler.
func (g *Grid[T]) OnPageChanged(fn func(page int)) {
	g.pageChanged = append(g.pageChanged, fn)
}

// OnViewChanged subscribes a re-render trigger, fired after every
// state-mutating operation completes.
func (g *Grid[T]) OnViewChanged(fn func()) {
	g.viewChanged = append(g.viewChanged, fn)
}

// OnReadData subscribes an external loader. Subscribing switches the
// grid into remote mode: sort, filter and pagination are delegated to
// the loader and local recomputation passes data through unchanged.
func (g *Grid[T]) OnReadData(fn func(ReadRequest)) {
	g.readData = append(g.readData, fn)
}
