package grid

// lastPageFor computes the 1-based final page number for a total item
// count. At least one page always exists, even for an empty grid.
func lastPageFor(total, pageSize int) int {
	if pageSize < 1 {
		return 1
	}
	lp := (total + pageSize - 1) / pageSize
	if lp < 1 {
		lp = 1
	}
	return lp
}

// linkWindow computes the range of visible pagination links, centered
// on the current page and clamped to [1, last].
func linkWindow(current, width, last int) (first, lastVisible int) {
	if width < 1 {
		width = 1
	}
	first = current - width/2
	if first < 1 {
		first = 1
	}
	lastVisible = first + width - 1
	if lastVisible > last {
		lastVisible = last
	}
	return first, lastVisible
}

// pageSlice returns the page window of the filtered sequence. Page
// clamping is the caller's responsibility via LastPage.
func pageSlice[T any](filtered []T, page, pageSize int) []T {
	if pageSize < 1 {
		return filtered
	}
	start := (page - 1) * pageSize
	if start < 0 {
		start = 0
	}
	if start >= len(filtered) {
		return nil
	}
	end := start + pageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end]
}
