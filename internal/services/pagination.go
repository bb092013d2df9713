package services

// Paginate returns the 1-based page of items for the given page size.
// Out-of-range pages yield an empty, non-nil slice.
func Paginate[T any](page, size int, items []T) []T {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		return []T{}
	}
	// Compare page counts before multiplying so huge pages cannot overflow.
	pages := len(items) / size
	if len(items)%size != 0 {
		pages++
	}
	if page > pages {
		return []T{}
	}
	start := (page - 1) * size
	end := len(items)
	if size < end-start {
		end = start + size
	}
	return items[start:end]
}
