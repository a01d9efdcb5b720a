package players

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
)

var seasonPattern = regexp.MustCompile(`^(\d{4})-(\d{2})$`)

// Shot is one field goal attempt from a shot log.
type Shot struct {
	GameID     string `json:"gameId"`
	GameDate   string `json:"gameDate,omitempty"`
	TeamID     int    `json:"teamId"`
	TeamName   string `json:"teamName,omitempty"`
	Period     int    `json:"period"`
	ActionType string `json:"actionType,omitempty"`
	ShotType   string `json:"shotType,omitempty"`
	Zone       string `json:"zone"`
	Area       string `json:"area,omitempty"`
	Range      string `json:"range,omitempty"`
	Distance   int    `json:"distance"`
	X          int    `json:"x"`
	Y          int    `json:"y"`
	Made       bool   `json:"made"`
}

// ZoneSummary counts attempts and makes in one court zone.
type ZoneSummary struct {
	Zone     string  `json:"zone"`
	Attempts int     `json:"attempts"`
	Made     int     `json:"made"`
	Pct      float64 `json:"pct"`
}

// ShotChart is a player's field goal attempts for one season, across every
// team the player appeared for.
type ShotChart struct {
	Player   string        `json:"player"`
	PlayerID int           `json:"playerId"`
	Season   string        `json:"season"`
	TeamIDs  []int         `json:"teamIds"`
	Attempts int           `json:"attempts"`
	Made     int           `json:"made"`
	Pct      float64       `json:"pct"`
	Zones    []ZoneSummary `json:"zones"`
	Shots    []Shot        `json:"shots"`
	Source   string        `json:"source"`
}

// Summarize recomputes totals and the per-zone breakdown from Shots. Zones
// are ordered by attempts, then name.
func (c *ShotChart) Summarize() {
	c.Attempts, c.Made = len(c.Shots), 0
	byZone := make(map[string]*ZoneSummary)
	for _, s := range c.Shots {
		z, ok := byZone[s.Zone]
		if !ok {
			z = &ZoneSummary{Zone: s.Zone}
			byZone[s.Zone] = z
		}
		z.Attempts++
		if s.Made {
			z.Made++
			c.Made++
		}
	}
	c.Pct = pct(c.Made, c.Attempts)
	c.Zones = make([]ZoneSummary, 0, len(byZone))
	for _, z := range byZone {
		z.Pct = pct(z.Made, z.Attempts)
		c.Zones = append(c.Zones, *z)
	}
	sort.Slice(c.Zones, func(i, j int) bool {
		if c.Zones[i].Attempts != c.Zones[j].Attempts {
			return c.Zones[i].Attempts > c.Zones[j].Attempts
		}
		return c.Zones[i].Zone < c.Zones[j].Zone
	})
}

func pct(made, attempts int) float64 {
	if attempts == 0 {
		return 0
	}
	return math.Round(float64(made)/float64(attempts)*1000) / 1000
}

// ValidSeason reports whether s is a season id such as "2022-23", where the
// second year follows the first.
func ValidSeason(s string) bool {
	m := seasonPattern.FindStringSubmatch(s)
	if m == nil {
		return false
	}
	start, _ := strconv.Atoi(m[1])
	end, _ := strconv.Atoi(m[2])
	return (start+1)%100 == end
}

// SeasonID builds the season id that starts in year ("2022" -> "2022-23").
func SeasonID(startYear int) string {
	return fmt.Sprintf("%d-%02d", startYear, (startYear+1)%100)
}
