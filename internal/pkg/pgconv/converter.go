package pgconv

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// TextFromString maps "" to SQL NULL.
func TextFromString(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: s, Valid: true}
}

// StringFromText maps SQL NULL to "".
func StringFromText(pt pgtype.Text) string {
	if !pt.Valid {
		return ""
	}
	return pt.String
}

// TimeFromTimestamp reads a TIMESTAMP column as UTC. NULL is the zero time.
func TimeFromTimestamp(pt pgtype.Timestamp) time.Time {
	if !pt.Valid {
		return time.Time{}
	}
	return pt.Time.UTC()
}
