package inmemory

import "strconv"

func formatUint(id uint64) string {
	return strconv.FormatUint(id, 10)
}

func paginate[T any](items []T, offset, limit int) []T {
	if offset < 0 {
		offset = 0
	}

	if offset >= len(items) {
		return []T{}
	}

	end := len(items)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}

	return items[offset:end]
}
