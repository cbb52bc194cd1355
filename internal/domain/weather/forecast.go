package weather

import (
	"strings"
	"time"
)

type Source string

const (
	SourceStored    Source = "stored"
	SourceGenerated Source = "generated"
)

// Forecast is immutable once written; the store has no update path.
type Forecast struct {
	LocationID  string
	DisplayName string
	Date        string
	Temperature int
	Condition   string
	Source      Source
	CreatedAt   time.Time
}

// LocationID is the store key component for a display name ("Paris " → "paris").
func LocationID(location string) string {
	return strings.ToLower(strings.TrimSpace(location))
}
