package livegames

import (
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/preston-bernstein/nba-insights-service/internal/domain/games"
	"github.com/preston-bernstein/nba-insights-service/internal/timeutil"
)

var errInvalidDocument = errors.New("invalid live game document")

// ParseGame decodes one live game document. key names the file and is used as
// the id when the document has none.
func ParseGame(key string, body []byte) (games.LiveGame, error) {
	if !gjson.ValidBytes(body) {
		return games.LiveGame{}, errInvalidDocument
	}
	doc := gjson.ParseBytes(body)
	if !doc.IsObject() {
		return games.LiveGame{}, errInvalidDocument
	}

	start, err := timeutil.ParseTimestamp(doc.Get("gameTimeUTC").String())
	if err != nil {
		return games.LiveGame{}, fmt.Errorf("gameTimeUTC: %w", err)
	}
	end, err := timeutil.ParseTimestamp(doc.Get("gameEt").String())
	if err != nil {
		return games.LiveGame{}, fmt.Errorf("gameEt: %w", err)
	}

	home, away := doc.Get("homeTeam"), doc.Get("awayTeam")
	if !home.IsObject() || !away.IsObject() {
		return games.LiveGame{}, fmt.Errorf("%w: missing teams", errInvalidDocument)
	}

	id := doc.Get("gameId").String()
	if id == "" {
		id = strings.TrimSuffix(path.Base(key), jsonSuffix)
	}

	return games.LiveGame{
		ID:        id,
		HomeTeam:  parseTeam(home, doc.Get("gameLeaders.homeLeaders")),
		AwayTeam:  parseTeam(away, doc.Get("gameLeaders.awayLeaders")),
		StartTime: start,
		EndTime:   end,
	}, nil
}

func parseTeam(team, leader gjson.Result) games.TeamLine {
	line := games.TeamLine{
		Name:    team.Get("teamName").String(),
		Tricode: team.Get("teamTricode").String(),
		Wins:    int(team.Get("wins").Int()),
		Losses:  int(team.Get("losses").Int()),
		Score:   int(team.Get("score").Int()),
		Leader: games.Leader{
			Name:     leader.Get("name").String(),
			Points:   int(leader.Get("points").Int()),
			Rebounds: int(leader.Get("rebounds").Int()),
			Assists:  int(leader.Get("assists").Int()),
		},
	}
	periods := team.Get("periods").Array()
	line.PeriodScores = make([]int, 0, len(periods))
	for _, p := range periods {
		line.PeriodScores = append(line.PeriodScores, int(p.Get("score").Int()))
	}
	return line
}
