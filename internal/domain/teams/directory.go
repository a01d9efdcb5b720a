package teams

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultLogoBase hosts one PNG per abbreviation.
const DefaultLogoBase = "https://raw.githubusercontent.com/Kaushiknb11/Basketball_Analytics/main/Teams"

var defaultNames = map[string]string{
	"ATL": "Atlanta Hawks",
	"BRK": "Brooklyn Nets",
	"BOS": "Boston Celtics",
	"CHO": "Charlotte Hornets",
	"CHI": "Chicago Bulls",
	"CLE": "Cleveland Cavaliers",
	"DAL": "Dallas Mavericks",
	"DEN": "Denver Nuggets",
	"DET": "Detroit Pistons",
	"GSW": "Golden State Warriors",
	"HOU": "Houston Rockets",
	"IND": "Indiana Pacers",
	"LAC": "Los Angeles Clippers",
	"LAL": "Los Angeles Lakers",
	"MEM": "Memphis Grizzlies",
	"MIA": "Miami Heat",
	"MIL": "Milwaukee Bucks",
	"MIN": "Minnesota Timberwolves",
	"NOP": "New Orleans Pelicans",
	"NYK": "New York Knicks",
	"OKC": "Oklahoma City Thunder",
	"ORL": "Orlando Magic",
	"PHI": "Philadelphia 76ers",
	"PHO": "Phoenix Suns",
	"POR": "Portland Trail Blazers",
	"SAC": "Sacramento Kings",
	"SAS": "San Antonio Spurs",
	"TOR": "Toronto Raptors",
	"UTA": "Utah Jazz",
	"WAS": "Washington Wizards",
}

// defaultAliases maps league tricodes used by live feeds to the directory codes.
var defaultAliases = map[string]string{
	"BKN": "BRK",
	"CHA": "CHO",
	"PHX": "PHO",
}

// Directory resolves abbreviations to teams.
type Directory struct {
	logoBase string
	names    map[string]string
	aliases  map[string]string
}

// DirectoryFile is the YAML shape accepted by LoadDirectory.
type DirectoryFile struct {
	LogoBase string            `yaml:"logoBase"`
	Teams    map[string]string `yaml:"teams"`
	Aliases  map[string]string `yaml:"aliases"`
}

// NewDirectory returns the built-in thirty-team directory. An empty logoBase uses DefaultLogoBase.
func NewDirectory(logoBase string) *Directory {
	names := make(map[string]string, len(defaultNames))
	for abbr, name := range defaultNames {
		names[abbr] = name
	}
	aliases := make(map[string]string, len(defaultAliases))
	for alias, abbr := range defaultAliases {
		aliases[alias] = abbr
	}
	return &Directory{logoBase: resolveLogoBase(logoBase), names: names, aliases: aliases}
}

// LoadDirectory reads YAML overrides on top of the built-in directory.
func LoadDirectory(r io.Reader, logoBase string) (*Directory, error) {
	var file DirectoryFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil && err != io.EOF {
		return nil, fmt.Errorf("teams: decode directory: %w", err)
	}
	if file.LogoBase != "" {
		logoBase = file.LogoBase
	}
	dir := NewDirectory(logoBase)
	for abbr, name := range file.Teams {
		abbr = normalizeAbbr(abbr)
		if abbr == "" || strings.TrimSpace(name) == "" {
			continue
		}
		dir.names[abbr] = strings.TrimSpace(name)
	}
	for alias, abbr := range file.Aliases {
		alias, abbr = normalizeAbbr(alias), normalizeAbbr(abbr)
		if alias == "" || abbr == "" {
			continue
		}
		dir.aliases[alias] = abbr
	}
	return dir, nil
}

// Lookup returns the team for abbr. League tricodes such as BKN resolve
// through the alias table to the directory code. ok is false for unknown
// codes, including total markers.
func (d *Directory) Lookup(abbr string) (Team, bool) {
	abbr = normalizeAbbr(abbr)
	name, ok := d.names[abbr]
	if !ok {
		if target, aliased := d.aliases[abbr]; aliased {
			abbr = target
			name, ok = d.names[abbr]
		}
	}
	if !ok {
		return Team{}, false
	}
	return Team{Abbreviation: abbr, FullName: name, LogoURL: LogoURL(d.logoBase, abbr)}, true
}

// All lists teams sorted by abbreviation.
func (d *Directory) All() []Team {
	out := make([]Team, 0, len(d.names))
	for abbr := range d.names {
		team, _ := d.Lookup(abbr)
		out = append(out, team)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Abbreviation < out[j].Abbreviation })
	return out
}

// LogoURL builds {base}/{abbr}.png.
func LogoURL(base, abbr string) string {
	return resolveLogoBase(base) + "/" + normalizeAbbr(abbr) + ".png"
}

func resolveLogoBase(base string) string {
	base = strings.TrimRight(strings.TrimSpace(base), "/")
	if base == "" {
		return DefaultLogoBase
	}
	return base
}

func normalizeAbbr(abbr string) string {
	return strings.ToUpper(strings.TrimSpace(abbr))
}
