package csvfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/preston-bernstein/nba-insights-service/internal/providers"
	"github.com/preston-bernstein/nba-insights-service/internal/roster"
)

const sample = `Rk,Player,Age,Tm,Pos,G,MP,FG%,PTS
1,Precious Achiuwa\achiupr01,24,TOT,PF-C,74,21.9,.501,7.6
1,Precious Achiuwa\achiupr01,24,TOR,C,25,17.5,.459,5.4
1,Precious Achiuwa\achiupr01,24,NYK,PF,49,24.2,.517,8.7
Rk,Player,Age,Tm,Pos,G,MP,FG%,PTS
2,Bam Adebayo,26,MIA,C,71,34.0,.521,
3,Short Row,22
`

func TestReadRowsMapsColumnsByHeader(t *testing.T) {
	rows, err := ReadRows(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 5 {
		t.Fatalf("expected 5 rows (repeated header skipped), got %d", len(rows))
	}
	first := rows[0]
	if first.Player != "Precious Achiuwa" || first.Team != "TOT" || first.Position != "PF-C" || first.Minutes != "21.9" {
		t.Fatalf("unexpected first row %+v", first)
	}
	if first.Stats["FG%"] != 0.501 || first.Stats["Age"] != 24 || first.Stats["PTS"] != 7.6 {
		t.Fatalf("unexpected stats %+v", first.Stats)
	}
	if _, ok := first.Stats["Rk"]; ok {
		t.Fatalf("did not expect rank column in stats")
	}

	bam := rows[3]
	if _, ok := bam.Stats["PTS"]; ok {
		t.Fatalf("expected empty PTS cell to be left out, got %+v", bam.Stats)
	}
	short := rows[4]
	if short.Player != "Short Row" || short.Minutes != "" {
		t.Fatalf("unexpected short row %+v", short)
	}
}

func TestReadRowsAcceptsTeamHeader(t *testing.T) {
	rows, err := ReadRows(strings.NewReader("\ufeffPlayer,Team,MP\nA,2TM,30\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 || rows[0].Team != "TOT" {
		t.Fatalf("unexpected rows %+v", rows)
	}
}

func TestReadRowsRequiresPlayerColumn(t *testing.T) {
	if _, err := ReadRows(strings.NewReader("Name,MP\nA,1\n")); !errors.Is(err, ErrMissingPlayerColumn) {
		t.Fatalf("expected ErrMissingPlayerColumn, got %v", err)
	}
	if _, err := ReadRows(strings.NewReader("")); err == nil {
		t.Fatalf("expected error on empty input")
	}
}

func TestProviderReadsFileAndListsNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "per_game.csv")
	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	p := New(path)

	names, err := p.FetchPlayerNames(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(names) != 3 || names[0] != "Precious Achiuwa" {
		t.Fatalf("unexpected names %v", names)
	}

	if _, err := p.FetchProfile(context.Background(), "Bam Adebayo"); !errors.Is(err, providers.ErrNotFound) {
		t.Fatalf("expected profiles to be unsupported, got %v", err)
	}
}

func TestProviderMissingFileIsUnavailable(t *testing.T) {
	p := New(filepath.Join(t.TempDir(), "missing.csv"))
	if _, err := p.FetchSeasonRows(context.Background()); !errors.Is(err, providers.ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}

func TestReadRowsMultiTeamTotalsSurviveNormalize(t *testing.T) {
	const traded = "Player,Team,MP,PTS\nA,3TM,20.0,10\nA,BOS,18.0,9\nA,LAL,22.0,11\nA,PHO,19.0,10\nB,MIA,30.0,15\n"
	rows, err := ReadRows(strings.NewReader(traded))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	res := roster.Normalize(rows)
	if len(res) != 2 || res[0].Player != "A" || res[0].Team != roster.DefaultTotalMarker || res[1].Player != "B" {
		t.Fatalf("unexpected clean rows %+v", res)
	}
}
