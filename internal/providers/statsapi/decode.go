package statsapi

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/preston-bernstein/nba-insights-service/internal/domain/players"
	"github.com/preston-bernstein/nba-insights-service/internal/providers"
	"github.com/preston-bernstein/nba-insights-service/internal/roster"
)

var errUnexpectedShape = errors.New("statsapi: unexpected payload shape")

// unwrap returns the JSON document, following one level of string wrapping.
// The upstream serializes tables to JSON and then returns that string as JSON.
func unwrap(body []byte) (gjson.Result, error) {
	if !gjson.ValidBytes(body) {
		return gjson.Result{}, fmt.Errorf("statsapi: invalid json")
	}
	doc := gjson.ParseBytes(body)
	if doc.Type == gjson.String {
		inner := doc.String()
		if !gjson.Valid(inner) {
			return gjson.Result{}, fmt.Errorf("statsapi: invalid wrapped json")
		}
		doc = gjson.Parse(inner)
	}
	return doc, nil
}

// decodeDataset accepts records (`[{"Player":...}]`) and columns
// (`{"Player":{"0":...}}`) orientations.
func decodeDataset(body []byte) ([]roster.SeasonRow, error) {
	doc, err := unwrap(body)
	if err != nil {
		return nil, err
	}
	switch {
	case doc.IsArray():
		return decodeRecords(doc), nil
	case doc.IsObject():
		return decodeColumns(doc)
	default:
		return nil, errUnexpectedShape
	}
}

func decodeRecords(doc gjson.Result) []roster.SeasonRow {
	rows := make([]roster.SeasonRow, 0, len(doc.Array()))
	doc.ForEach(func(_, record gjson.Result) bool {
		if !record.IsObject() {
			return true
		}
		cells := make(map[string]string)
		record.ForEach(func(key, value gjson.Result) bool {
			cells[key.String()] = cellText(value)
			return true
		})
		rows = append(rows, providers.RowFromCells(cells))
		return true
	})
	return rows
}

func decodeColumns(doc gjson.Result) ([]roster.SeasonRow, error) {
	var order []string
	index := make(map[string]int)
	var cells []map[string]string

	valid := true
	doc.ForEach(func(column, values gjson.Result) bool {
		if !values.IsObject() {
			valid = false
			return false
		}
		name := column.String()
		values.ForEach(func(key, value gjson.Result) bool {
			id := key.String()
			pos, ok := index[id]
			if !ok {
				pos = len(order)
				index[id] = pos
				order = append(order, id)
				cells = append(cells, make(map[string]string))
			}
			cells[pos][name] = cellText(value)
			return true
		})
		return true
	})
	if !valid {
		return nil, errUnexpectedShape
	}

	rows := make([]roster.SeasonRow, 0, len(cells))
	for _, c := range cells {
		rows = append(rows, providers.RowFromCells(c))
	}
	return rows, nil
}

func cellText(value gjson.Result) string {
	switch value.Type {
	case gjson.Null:
		return ""
	case gjson.Number:
		return value.Raw
	default:
		return value.String()
	}
}

func decodeNames(body []byte) ([]string, error) {
	doc, err := unwrap(body)
	if err != nil {
		return nil, err
	}
	if !doc.IsArray() {
		return nil, errUnexpectedShape
	}
	names := make([]string, 0, len(doc.Array()))
	for _, v := range doc.Array() {
		if v.Type != gjson.String || v.String() == "" {
			continue
		}
		names = append(names, v.String())
	}
	return names, nil
}

var profileStats = []string{
	roster.StatPoints, roster.StatAssists, roster.StatRebounds, roster.StatBlocks,
	roster.StatSteals, roster.StatTurnovers, roster.StatDefReb, roster.StatOffReb,
	roster.StatFGPct, roster.StatTwoPct, roster.StatThreePct, roster.StatFTPct,
	providers.ColumnMinutes,
}

func decodeProfile(body []byte, name string) (players.Profile, error) {
	doc, err := unwrap(body)
	if err != nil {
		return players.Profile{}, err
	}
	if !doc.IsObject() {
		return players.Profile{}, errUnexpectedShape
	}

	text := func(keys ...string) string {
		for _, key := range keys {
			if v := doc.Get(gjson.Escape(key)); v.Exists() && v.Type != gjson.Null {
				return cellText(v)
			}
		}
		return ""
	}

	profile := players.Profile{
		Name:      text("API_Names", "Player", "name"),
		Team:      text("Tm", "Team"),
		Position:  text("Pos"),
		Age:       text("Age"),
		Birthday:  text("birthday"),
		Country:   text("country"),
		DraftYear: text("draft_year"),
		Height:    text("height"),
		Weight:    text("weight"),
		School:    text("school"),
		Source:    providerName,
	}
	if profile.Name == "" {
		profile.Name = name
	}
	for _, code := range profileStats {
		v := doc.Get(gjson.Escape(code))
		if v.Type != gjson.Number {
			continue
		}
		if profile.Stats == nil {
			profile.Stats = make(map[string]float64)
		}
		profile.Stats[code] = v.Float()
	}
	return profile, nil
}

func decodeImage(body []byte) (string, error) {
	doc, err := unwrap(body)
	if err != nil {
		return "", err
	}
	image := doc.Get("image").String()
	if image == "" {
		return "", providers.ErrNotFound
	}
	return image, nil
}
