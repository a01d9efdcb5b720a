package snapshots

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/preston-bernstein/nba-insights-service/internal/roster"
)

// RosterSnapshot is the persisted result of a successful refresh.
type RosterSnapshot struct {
	TakenAt  time.Time          `json:"takenAt"`
	Source   string             `json:"source"`
	Checksum string             `json:"checksum"`
	RawCount int                `json:"rawCount"`
	Report   roster.Report      `json:"report"`
	Names    []string           `json:"names"`
	Rows     []roster.SeasonRow `json:"rows"`
}

// Checksum hashes the table content (rows and names) so identical refreshes
// can be detected regardless of when they ran.
func Checksum(rows []roster.SeasonRow, names []string) (string, error) {
	h := xxhash.New()
	enc := json.NewEncoder(h)
	if err := enc.Encode(rows); err != nil {
		return "", err
	}
	if err := enc.Encode(names); err != nil {
		return "", err
	}
	return strconv.FormatUint(h.Sum64(), 16), nil
}
