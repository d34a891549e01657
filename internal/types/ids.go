package types

import (
	"time"

	"github.com/google/uuid"
)

// ReportID represents a UUIDv7 validation report identifier.
// String alias enables type safety while maintaining JSON string
// serialization. UUIDv7 time-ordering ensures sequential inserts cluster in
// B-tree indexes.
type ReportID string

// NewReportID generates a UUIDv7 report identifier.
// Panics on clock regression (uuid.Must); acceptable for ID generation.
func NewReportID() ReportID {
	return ReportID(uuid.Must(uuid.NewV7()).String())
}

// ParseReportID validates and converts a string to ReportID.
// Rejects malformed UUIDs to prevent invalid IDs from entering the system.
func ParseReportID(s string) (ReportID, error) {
	_, err := uuid.Parse(s)
	if err != nil {
		return "", err
	}
	return ReportID(s), nil
}

// ReportIDTime extracts the timestamp embedded in a UUIDv7 ID.
// Enables time-based queries without a database lookup.
// Returns zero time for invalid UUIDs; caller should check IsZero().
func ReportIDTime(id ReportID) time.Time {
	u, err := uuid.Parse(string(id))
	if err != nil {
		return time.Time{}
	}
	sec, nsec := u.Time().UnixTime()
	return time.Unix(sec, nsec)
}
