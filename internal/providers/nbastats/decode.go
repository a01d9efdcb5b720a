package nbastats

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/preston-bernstein/nba-insights-service/internal/domain/players"
	"github.com/preston-bernstein/nba-insights-service/internal/providers"
)

const (
	setAllPlayers = "CommonAllPlayers"
	setCareer     = "SeasonTotalsRegularSeason"
	setShots      = "Shot_Chart_Detail"
)

var errMalformed = errors.New("nbastats: malformed result set")

// resultSet is one named table of a stats response, with columns looked up by header.
type resultSet struct {
	cols map[string]int
	rows []gjson.Result
}

func findResultSet(body []byte, name string) (resultSet, error) {
	if !gjson.ValidBytes(body) {
		return resultSet{}, errMalformed
	}
	doc := gjson.ParseBytes(body)
	sets := doc.Get("resultSets")
	if !sets.Exists() {
		sets = doc.Get("resultSet")
	}
	var found gjson.Result
	sets.ForEach(func(_, set gjson.Result) bool {
		if set.Get("name").String() == name {
			found = set
			return false
		}
		return true
	})
	if !found.Exists() {
		return resultSet{}, fmt.Errorf("%w: %s missing", errMalformed, name)
	}
	rs := resultSet{cols: make(map[string]int), rows: found.Get("rowSet").Array()}
	for i, h := range found.Get("headers").Array() {
		rs.cols[strings.ToUpper(h.String())] = i
	}
	return rs, nil
}

func (rs resultSet) cell(row gjson.Result, col string) gjson.Result {
	i, ok := rs.cols[col]
	if !ok {
		return gjson.Result{}
	}
	cells := row.Array()
	if i >= len(cells) {
		return gjson.Result{}
	}
	return cells[i]
}

func (rs resultSet) require(cols ...string) error {
	for _, c := range cols {
		if _, ok := rs.cols[c]; !ok {
			return fmt.Errorf("%w: column %s missing", errMalformed, c)
		}
	}
	return nil
}

func decodePlayerID(body []byte, name string) (int, error) {
	rs, err := findResultSet(body, setAllPlayers)
	if err != nil {
		return 0, err
	}
	if err := rs.require("PERSON_ID", "DISPLAY_FIRST_LAST"); err != nil {
		return 0, err
	}
	fallback := 0
	for _, row := range rs.rows {
		display := rs.cell(row, "DISPLAY_FIRST_LAST").String()
		id := int(rs.cell(row, "PERSON_ID").Int())
		if display == name {
			return id, nil
		}
		if fallback == 0 && strings.EqualFold(display, name) {
			fallback = id
		}
	}
	if fallback != 0 {
		return fallback, nil
	}
	return 0, fmt.Errorf("%s player %q: %w", providerName, name, providers.ErrNotFound)
}

// decodeSeasonTeams lists the teams a player appeared for in season, in
// table order. The multi-team total row carries team id 0 and is skipped.
func decodeSeasonTeams(body []byte, season string) ([]int, error) {
	rs, err := findResultSet(body, setCareer)
	if err != nil {
		return nil, err
	}
	if err := rs.require("SEASON_ID", "TEAM_ID"); err != nil {
		return nil, err
	}
	seen := make(map[int]struct{})
	var teams []int
	for _, row := range rs.rows {
		if rs.cell(row, "SEASON_ID").String() != season {
			continue
		}
		id := int(rs.cell(row, "TEAM_ID").Int())
		if id == 0 {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		teams = append(teams, id)
	}
	if len(teams) == 0 {
		return nil, fmt.Errorf("%s season %s: %w", providerName, season, providers.ErrNotFound)
	}
	return teams, nil
}

func decodeShots(body []byte) ([]players.Shot, error) {
	rs, err := findResultSet(body, setShots)
	if err != nil {
		return nil, err
	}
	if err := rs.require("LOC_X", "LOC_Y", "SHOT_MADE_FLAG"); err != nil {
		return nil, err
	}
	shots := make([]players.Shot, 0, len(rs.rows))
	for _, row := range rs.rows {
		shots = append(shots, players.Shot{
			GameID:     rs.cell(row, "GAME_ID").String(),
			GameDate:   rs.cell(row, "GAME_DATE").String(),
			TeamID:     int(rs.cell(row, "TEAM_ID").Int()),
			TeamName:   rs.cell(row, "TEAM_NAME").String(),
			Period:     int(rs.cell(row, "PERIOD").Int()),
			ActionType: rs.cell(row, "ACTION_TYPE").String(),
			ShotType:   rs.cell(row, "SHOT_TYPE").String(),
			Zone:       rs.cell(row, "SHOT_ZONE_BASIC").String(),
			Area:       rs.cell(row, "SHOT_ZONE_AREA").String(),
			Range:      rs.cell(row, "SHOT_ZONE_RANGE").String(),
			Distance:   int(rs.cell(row, "SHOT_DISTANCE").Int()),
			X:          int(rs.cell(row, "LOC_X").Int()),
			Y:          int(rs.cell(row, "LOC_Y").Int()),
			Made:       rs.cell(row, "SHOT_MADE_FLAG").Int() == 1,
		})
	}
	return shots, nil
}
