package livegames

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/preston-bernstein/nba-insights-service/internal/testutil"
)

func gameDoc(id, start string) string {
	return `{
		"gameId": "` + id + `",
		"gameTimeUTC": "` + start + `",
		"gameEt": "2024-01-02T03:00:00Z",
		"homeTeam": {"teamName": "Celtics", "teamTricode": "BOS", "wins": 30, "losses": 9, "score": 112,
			"periods": [{"period": 1, "score": 30}, {"period": 2, "score": 25}]},
		"awayTeam": {"teamName": "Lakers", "teamTricode": "LAL", "wins": 20, "losses": 19, "score": 104, "periods": []},
		"gameLeaders": {
			"homeLeaders": {"name": "Jayson Tatum", "points": 31, "rebounds": 8, "assists": 5},
			"awayLeaders": {"name": "LeBron James", "points": 25, "rebounds": 7, "assists": 9}
		}
	}`
}

func TestParseGameMapsFields(t *testing.T) {
	game, err := ParseGame("x.json", []byte(gameDoc("0022300500", "2024-01-02T00:30:00Z")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if game.ID != "0022300500" {
		t.Fatalf("unexpected id %s", game.ID)
	}
	if !game.StartTime.Equal(time.Date(2024, 1, 2, 0, 30, 0, 0, time.UTC)) {
		t.Fatalf("unexpected start %s", game.StartTime)
	}
	if game.HomeTeam.Tricode != "BOS" || game.HomeTeam.Score != 112 || game.HomeTeam.Wins != 30 {
		t.Fatalf("unexpected home team %+v", game.HomeTeam)
	}
	if len(game.HomeTeam.PeriodScores) != 2 || game.HomeTeam.PeriodScores[1] != 25 {
		t.Fatalf("unexpected period scores %v", game.HomeTeam.PeriodScores)
	}
	if game.AwayTeam.Leader.Name != "LeBron James" || game.AwayTeam.Leader.Assists != 9 {
		t.Fatalf("unexpected away leader %+v", game.AwayTeam.Leader)
	}
}

func TestParseGameFallsBackToKeyForID(t *testing.T) {
	doc := strings.Replace(gameDoc("", "2024-01-02T00:30:00Z"), `"gameId": "",`, "", 1)
	game, err := ParseGame("NBA_Live_Data/Current_Matches/bos_lal.json", []byte(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if game.ID != "bos_lal" {
		t.Fatalf("expected id from key, got %s", game.ID)
	}
}

func TestParseGameRejectsBadDocuments(t *testing.T) {
	cases := map[string]string{
		"not json":  `{`,
		"array":     `[]`,
		"bad start": gameDoc("1", "soon"),
		"no teams":  `{"gameTimeUTC":"2024-01-02T00:30:00Z","gameEt":"2024-01-02T03:00:00Z"}`,
		"no end":    `{"gameTimeUTC":"2024-01-02T00:30:00Z"}`,
	}
	for name, doc := range cases {
		if _, err := ParseGame("k.json", []byte(doc)); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestLocalSourceListsJSONFiles(t *testing.T) {
	dir := t.TempDir()
	for name, body := range map[string]string{
		"b.json":    "{}",
		"a.json":    "{}",
		"notes.txt": "x",
	} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.json"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	src := NewLocalSource(dir)
	keys, err := src.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(keys) != 2 || keys[0] != "a.json" || keys[1] != "b.json" {
		t.Fatalf("unexpected keys %v", keys)
	}
	if _, err := src.Read(context.Background(), "../escape.json"); err == nil {
		t.Fatalf("expected traversal key to be rejected")
	}
	if _, err := NewLocalSource(filepath.Join(dir, "missing")).List(context.Background()); err == nil {
		t.Fatalf("expected error for missing dir")
	}
}

func TestLoaderSkipsBadFilesAndSorts(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"late.json":   gameDoc("3", "2024-01-02T03:00:00Z"),
		"early.json":  gameDoc("2", "2024-01-02T00:30:00Z"),
		"early2.json": gameDoc("1", "2024-01-02T00:30:00Z"),
		"broken.json": `{"gameTimeUTC": 5`,
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	logger, buf := testutil.NewBufferLogger()
	loader := NewLoader(NewLocalSource(dir), logger, func(tricode string) string { return "logo/" + tricode })
	got, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 games, got %d", len(got))
	}
	if got[0].ID != "1" || got[1].ID != "2" || got[2].ID != "3" {
		t.Fatalf("unexpected order %s %s %s", got[0].ID, got[1].ID, got[2].ID)
	}
	if got[0].Source != "local" || got[0].HomeTeam.LogoURL != "logo/BOS" {
		t.Fatalf("unexpected enrichment %+v", got[0])
	}
	if !strings.Contains(buf.String(), "broken.json") {
		t.Fatalf("expected warning for broken file, got %s", buf.String())
	}
}

type stubSource struct {
	keys    []string
	listErr error
	readErr error
}

func (s stubSource) Name() string { return "stub" }

func (s stubSource) List(context.Context) ([]string, error) { return s.keys, s.listErr }

func (s stubSource) Read(context.Context, string) ([]byte, error) { return nil, s.readErr }

func TestLoaderPropagatesListErrorAndSkipsReadErrors(t *testing.T) {
	boom := errors.New("boom")
	if _, err := NewLoader(stubSource{listErr: boom}, nil, nil).Load(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected list error, got %v", err)
	}

	got, err := NewLoader(stubSource{keys: []string{"a.json"}, readErr: boom}, nil, nil).Load(context.Background())
	if err != nil || len(got) != 0 {
		t.Fatalf("expected read errors to be skipped, got %v %v", got, err)
	}
}

type fakeS3 struct {
	pages   []*s3.ListObjectsV2Output
	objects map[string]string
	calls   int
}

func (f *fakeS3) ListObjectsV2(_ context.Context, in *s3.ListObjectsV2Input, _ ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
	page := f.pages[f.calls]
	f.calls++
	return page, nil
}

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	body, ok := f.objects[aws.ToString(in.Key)]
	if !ok {
		return nil, errors.New("NoSuchKey")
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(body))}, nil
}

func TestS3SourcePagesAndFiltersKeys(t *testing.T) {
	prefix := "NBA_Live_Data/Current_Matches/"
	fake := &fakeS3{
		pages: []*s3.ListObjectsV2Output{
			{
				Contents:              []s3types.Object{{Key: aws.String(prefix + "a.json")}, {Key: aws.String(prefix)}},
				IsTruncated:           aws.Bool(true),
				NextContinuationToken: aws.String("next"),
			},
			{
				Contents:    []s3types.Object{{Key: aws.String(prefix + "b.json")}, {Key: aws.String(prefix + "readme.md")}},
				IsTruncated: aws.Bool(false),
			},
		},
		objects: map[string]string{
			prefix + "a.json": gameDoc("a", "2024-01-02T00:30:00Z"),
			prefix + "b.json": gameDoc("b", "2024-01-01T00:30:00Z"),
		},
	}
	src := NewS3SourceWithClient(fake, "ash-dcsc-project", prefix)

	keys, err := src.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(keys) != 2 {
		t.Fatalf("expected 2 json keys, got %v", keys)
	}

	fake.calls = 0
	got, err := NewLoader(src, nil, nil).Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "b" || got[0].Source != "s3" {
		t.Fatalf("unexpected games %+v", got)
	}

	if _, err := src.Read(context.Background(), "missing.json"); err == nil {
		t.Fatalf("expected error for missing object")
	}
}
