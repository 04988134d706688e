package sqlite

import "database/sql"

// nullInt scans INTEGER columns that may be NULL in rows written by older
// releases (repeat had no default originally).
type nullInt struct {
	sql.NullInt64
}

func (n nullInt) value() int {
	if !n.Valid {
		return 0
	}
	return int(n.Int64)
}
