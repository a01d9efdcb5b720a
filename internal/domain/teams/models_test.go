package teams

import (
	"reflect"
	"strings"
	"testing"
)

func TestTeamJSONTags(t *testing.T) {
	type fieldCheck struct {
		name string
		tag  string
	}
	teamType := reflect.TypeOf(Team{})
	fields := []fieldCheck{
		{"Abbreviation", "abbreviation"},
		{"FullName", "fullName"},
		{"LogoURL", "logoUrl"},
	}
	for _, fc := range fields {
		f, ok := teamType.FieldByName(fc.name)
		if !ok {
			t.Fatalf("missing field %s", fc.name)
		}
		if tag := f.Tag.Get("json"); tag != fc.tag {
			t.Fatalf("field %s expected tag %s, got %s", fc.name, fc.tag, tag)
		}
	}
}

func TestDirectoryLookup(t *testing.T) {
	dir := NewDirectory("")
	team, ok := dir.Lookup(" pho ")
	if !ok {
		t.Fatal("expected PHO to resolve")
	}
	if team.FullName != "Phoenix Suns" || team.LogoURL != DefaultLogoBase+"/PHO.png" {
		t.Fatalf("unexpected team %+v", team)
	}
	if _, ok := dir.Lookup("TOT"); ok {
		t.Fatal("expected total marker to be unknown")
	}
	if got := len(dir.All()); got != 30 {
		t.Fatalf("expected 30 teams, got %d", got)
	}
}

func TestDirectoryLookupResolvesLeagueTricodes(t *testing.T) {
	dir := NewDirectory("")
	cases := map[string]string{"BKN": "BRK", "cha": "CHO", "PHX": "PHO", "BRK": "BRK"}
	for in, want := range cases {
		team, ok := dir.Lookup(in)
		if !ok || team.Abbreviation != want || team.LogoURL != DefaultLogoBase+"/"+want+".png" {
			t.Fatalf("Lookup(%q) = %+v ok=%v, want %s", in, team, ok, want)
		}
	}
	if got := len(dir.All()); got != 30 {
		t.Fatalf("aliases must not add teams, got %d", got)
	}
}

func TestLogoURLTrimsBase(t *testing.T) {
	if got := LogoURL("https://cdn.example.com/logos/", "lal"); got != "https://cdn.example.com/logos/LAL.png" {
		t.Fatalf("unexpected url %s", got)
	}
}

func TestLoadDirectoryOverrides(t *testing.T) {
	doc := `
logoBase: https://cdn.example.com
teams:
  sea: Seattle SuperSonics
  BOS: Boston Celtics (override)
  "": ignored
aliases:
  sonics: sea
`
	dir, err := LoadDirectory(strings.NewReader(doc), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sea, ok := dir.Lookup("SEA")
	if !ok || sea.FullName != "Seattle SuperSonics" || sea.LogoURL != "https://cdn.example.com/SEA.png" {
		t.Fatalf("unexpected team %+v ok=%v", sea, ok)
	}
	if alias, ok := dir.Lookup("SONICS"); !ok || alias.Abbreviation != "SEA" {
		t.Fatalf("expected alias to resolve, got %+v ok=%v", alias, ok)
	}
	if bos, _ := dir.Lookup("BOS"); bos.FullName != "Boston Celtics (override)" {
		t.Fatalf("expected override, got %+v", bos)
	}
}

func TestLoadDirectoryEmptyAndInvalid(t *testing.T) {
	if _, err := LoadDirectory(strings.NewReader(""), ""); err != nil {
		t.Fatalf("expected empty document to be accepted, got %v", err)
	}
	if _, err := LoadDirectory(strings.NewReader("teams: [oops"), ""); err == nil {
		t.Fatal("expected decode error")
	}
}
