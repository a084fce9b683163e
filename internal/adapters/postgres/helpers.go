package postgres

import "strconv"

func formatUint(id uint64) string {
	return strconv.FormatUint(id, 10)
}
