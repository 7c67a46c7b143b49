package types

// Page sizes offered by the record browser.
var PageSizeOptions = []int{25, 50, 100}

const DefaultPageSize = 25

// PageCount returns ceil(total/pageSize). A non-positive page size counts as
// a single page holding everything.
func PageCount(total, pageSize int) int {
	if total <= 0 {
		return 0
	}
	if pageSize <= 0 {
		return 1
	}
	return (total + pageSize - 1) / pageSize
}

// PageBounds returns the half-open slice bounds [start, end) for 1-indexed
// page p over a dataset of n items.
func PageBounds(p, pageSize, n int) (int, int) {
	if p < 1 || pageSize <= 0 || n <= 0 {
		return 0, 0
	}
	start := (p - 1) * pageSize
	if start >= n {
		return 0, 0
	}
	end := start + pageSize
	if end > n {
		end = n
	}
	return start, end
}
