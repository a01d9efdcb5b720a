// Package csvfile reads a per-game season table exported as CSV.
package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/preston-bernstein/nba-insights-service/internal/providers"
	"github.com/preston-bernstein/nba-insights-service/internal/roster"
)

// ErrMissingPlayerColumn is returned when the header has no Player column.
var ErrMissingPlayerColumn = errors.New("csvfile: missing Player column")

// Provider serves the season table from a CSV file on disk. The file is
// read on every fetch so an updated export is picked up by the next refresh.
type Provider struct {
	providers.NoProfiles
	path string
	open func(name string) (io.ReadCloser, error)
}

// New creates a provider for the CSV at path.
func New(path string) *Provider {
	return &Provider{
		path: path,
		open: func(name string) (io.ReadCloser, error) { return os.Open(name) },
	}
}

// FetchSeasonRows parses the whole file.
func (p *Provider) FetchSeasonRows(ctx context.Context) ([]roster.SeasonRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := p.open(p.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", providers.ErrProviderUnavailable, err)
	}
	defer f.Close()
	return ReadRows(f)
}

// FetchPlayerNames lists the distinct players in the file.
func (p *Provider) FetchPlayerNames(ctx context.Context) ([]string, error) {
	rows, err := p.FetchSeasonRows(ctx)
	if err != nil {
		return nil, err
	}
	return roster.Names(rows), nil
}

// ReadRows decodes a season table with a header row. Columns are looked up by
// name; repeated header rows inside the body are skipped.
func ReadRows(r io.Reader) ([]roster.SeasonRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	hdr, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	for i := range hdr {
		hdr[i] = strings.TrimSpace(strings.TrimPrefix(hdr[i], "\ufeff"))
	}
	if indexOf(hdr, providers.ColumnPlayer) < 0 {
		return nil, ErrMissingPlayerColumn
	}

	var rows []roster.SeasonRow
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record: %w", err)
		}

		cells := make(map[string]string, len(hdr))
		for i, name := range hdr {
			if i < len(rec) {
				cells[name] = rec[i]
			}
		}
		player := stripSlug(cells[providers.ColumnPlayer])
		if player == "" || player == providers.ColumnPlayer {
			continue
		}
		cells[providers.ColumnPlayer] = player
		rows = append(rows, providers.RowFromCells(cells))
	}
	return rows, nil
}

func indexOf(hdr []string, name string) int {
	for i, h := range hdr {
		if strings.EqualFold(h, name) {
			return i
		}
	}
	return -1
}

// stripSlug drops the "\jamesle01" suffix some exports append to names.
func stripSlug(name string) string {
	if i := strings.IndexByte(name, '\\'); i >= 0 {
		name = name[:i]
	}
	return strings.TrimSpace(name)
}
