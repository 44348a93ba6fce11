// Package scrape extracts per-match performance rows from a player's
// statistics page. A table parser runs first; when it finds nothing, a
// pattern scan over the page text takes over. Both produce RawRecords.
package scrape

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/araddon/dateparse"
)

// RawRecord is one parsed appearance before it is mapped to a match.
// Either HomeTeam/AwayTeam or Opponent/Venue is set.
type RawRecord struct {
	Date        string // YYYY-MM-DD
	Competition string // empty when the page has no competition column
	HomeTeam    string
	AwayTeam    string
	Opponent    string
	Venue       string // "H" or "A"
	HomeScore   int
	AwayScore   int
	Position    string
	Minutes     int
	Goals       int
	Assists     int
	Started     *bool
	Rating      *float64
}

// Parse runs the table parser and falls back to the text scan on zero rows.
func Parse(html []byte) []RawRecord {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil
	}
	if records := parseTables(doc); len(records) > 0 {
		return records
	}
	return ParseText(blockText(doc))
}

// ParseTable parses only table markup.
func ParseTable(html []byte) []RawRecord {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil
	}
	return parseTables(doc)
}

type column int

const (
	colDate column = iota
	colHome
	colAway
	colVenue
	colOpponent
	colResult
	colPosition
	colMinutes
	colGoals
	colAssists
	colStarted
	colRating
	colCompetition
)

// Header keywords, matched in order against the lower-cased header text.
var headerKeywords = []struct {
	keyword string
	col     column
}{
	{"competition", colCompetition},
	{"comp.", colCompetition},
	{"wettbewerb", colCompetition},
	{"date", colDate},
	{"home", colHome},
	{"away", colAway},
	{"venue", colVenue},
	{"h/a", colVenue},
	{"opponent", colOpponent},
	{"opp", colOpponent},
	{"result", colResult},
	{"score", colResult},
	{"pos", colPosition},
	{"min", colMinutes},
	{"goal", colGoals},
	{"assist", colAssists},
	{"start", colStarted},
	{"lineup", colStarted},
	{"rating", colRating},
}

func parseTables(doc *goquery.Document) []RawRecord {
	var records []RawRecord
	doc.Find("table").Each(func(_ int, table *goquery.Selection) {
		cols := detectColumns(table)
		if !usable(cols) {
			return
		}
		table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
			tds := tr.Find("td")
			if tds.Length() == 0 {
				return
			}
			cells := make([]string, tds.Length())
			tds.Each(func(i int, td *goquery.Selection) {
				cells[i] = cellText(td)
			})
			rec, err := parseRow(cols, cells)
			if err != nil {
				return
			}
			records = append(records, rec)
		})
	})
	return records
}

func detectColumns(table *goquery.Selection) map[column]int {
	cols := make(map[column]int)
	headers := table.Find("thead th")
	if headers.Length() == 0 {
		headers = table.Find("tr").First().Find("th")
	}
	headers.Each(func(i int, th *goquery.Selection) {
		text := strings.ToLower(cleanCell(th.Text()))
		if text == "" {
			text = strings.ToLower(th.AttrOr("title", ""))
		}
		for _, hk := range headerKeywords {
			if strings.Contains(text, hk.keyword) {
				if _, seen := cols[hk.col]; !seen {
					cols[hk.col] = i
				}
				return
			}
		}
	})
	return cols
}

func usable(cols map[column]int) bool {
	_, date := cols[colDate]
	_, result := cols[colResult]
	_, minutes := cols[colMinutes]
	_, home := cols[colHome]
	_, away := cols[colAway]
	_, opp := cols[colOpponent]
	return date && result && minutes && ((home && away) || opp)
}

func parseRow(cols map[column]int, cells []string) (RawRecord, error) {
	get := func(c column) string {
		i, ok := cols[c]
		if !ok || i >= len(cells) {
			return ""
		}
		return cells[i]
	}

	var rec RawRecord
	date, err := ParseDate(get(colDate))
	if err != nil {
		return rec, err
	}
	rec.Date = date

	home, away, err := parseScore(get(colResult))
	if err != nil {
		return rec, err
	}
	rec.HomeScore, rec.AwayScore = home, away

	if _, ok := cols[colOpponent]; ok {
		rec.Opponent = get(colOpponent)
		rec.Venue = parseVenue(get(colVenue))
		if rec.Opponent == "" {
			return rec, errors.New("missing opponent")
		}
	} else {
		rec.HomeTeam = get(colHome)
		rec.AwayTeam = get(colAway)
		if rec.HomeTeam == "" || rec.AwayTeam == "" {
			return rec, errors.New("missing team")
		}
	}

	rec.Competition = get(colCompetition)
	rec.Position = strings.ToUpper(get(colPosition))
	rec.Minutes = parseCount(get(colMinutes))
	rec.Goals = parseCount(get(colGoals))
	rec.Assists = parseCount(get(colAssists))
	if _, ok := cols[colStarted]; ok {
		rec.Started = parseStarted(get(colStarted))
	}
	if _, ok := cols[colRating]; ok {
		if r, err := strconv.ParseFloat(strings.Replace(get(colRating), ",", ".", 1), 64); err == nil {
			rec.Rating = &r
		}
	}
	return rec, nil
}

const datePattern = `[A-Z][a-z]{2,8}\.? \d{1,2}, \d{4}|\d{1,2}\.\d{1,2}\.\d{4}|\d{4}-\d{2}-\d{2}|\d{1,2}/\d{1,2}/\d{2,4}`

var textRow = regexp.MustCompile(
	`(` + datePattern + `)[ \t]+` +
		`([^\n]+?)[ \t]+(\d{1,2})[ \t]*[-:][ \t]*(\d{1,2})[ \t]+([^\n]+?)[ \t]+` +
		`\b(GK|CB|LB|RB|LWB|RWB|CDM|DM|CM|CAM|AM|LM|RM|LW|RW|SS|CF|ST)\b[ \t]+` +
		`(\d{1,3})'?` +
		`(?:[ \t]+(\d{1,2}|-))?(?:[ \t]+(\d{1,2}|-))?`)

// ParseText scans free text for lines shaped like
// "Feb 17, 2026 Brighton 2-1 NEC LW 90' 2 1". Lines that do not match are
// ignored.
func ParseText(text string) []RawRecord {
	var records []RawRecord
	for _, m := range textRow.FindAllStringSubmatch(text, -1) {
		date, err := ParseDate(m[1])
		if err != nil {
			continue
		}
		home, _ := strconv.Atoi(m[3])
		away, _ := strconv.Atoi(m[4])
		records = append(records, RawRecord{
			Date:      date,
			HomeTeam:  strings.TrimSpace(m[2]),
			AwayTeam:  strings.TrimSpace(m[5]),
			HomeScore: home,
			AwayScore: away,
			Position:  m[6],
			Minutes:   parseCount(m[7]),
			Goals:     parseCount(m[8]),
			Assists:   parseCount(m[9]),
		})
	}
	return records
}

var dateLayouts = []string{
	"Jan 2, 2006",
	"January 2, 2006",
	"02.01.2006",
	"2.1.2006",
	"2006-01-02",
	"1/2/06",
	"01/02/2006",
}

// ParseDate normalizes a date string to YYYY-MM-DD.
func ParseDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", errors.New("empty date")
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02"), nil
		}
	}
	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return "", fmt.Errorf("unrecognized date %q", s)
	}
	return t.Format("2006-01-02"), nil
}

var scorePattern = regexp.MustCompile(`(\d{1,2})\s*[-:]\s*(\d{1,2})`)

func parseScore(s string) (int, int, error) {
	m := scorePattern.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, fmt.Errorf("unrecognized result %q", s)
	}
	home, _ := strconv.Atoi(m[1])
	away, _ := strconv.Atoi(m[2])
	return home, away, nil
}

var digits = regexp.MustCompile(`\d+`)

// parseCount reads the first integer in s; "-" and blanks are zero.
func parseCount(s string) int {
	m := digits.FindString(s)
	if m == "" {
		return 0
	}
	n, _ := strconv.Atoi(m)
	return n
}

func parseVenue(s string) string {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "H", "HOME":
		return "H"
	case "A", "AWAY":
		return "A"
	}
	return ""
}

func parseStarted(s string) *bool {
	var v bool
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "y", "true", "1", "x", "✓", "starter", "s", "xi":
		v = true
	case "no", "n", "false", "0", "-", "sub", "bench":
		v = false
	default:
		return nil
	}
	return &v
}

func cleanCell(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// cellText falls back to the title or alt of a crest or link when the cell
// has no text.
func cellText(td *goquery.Selection) string {
	if text := cleanCell(td.Text()); text != "" {
		return text
	}
	for _, attr := range []string{"title", "alt"} {
		if v, ok := td.Find("[" + attr + "]").First().Attr(attr); ok {
			if v = cleanCell(v); v != "" {
				return v
			}
		}
	}
	return ""
}

// blockText renders the document body as text with a line break after every
// block-level element, so one table or list row ends up on one line.
func blockText(doc *goquery.Document) string {
	var b strings.Builder
	doc.Find("p, li, tr, h1, h2, h3, h4, div").Each(func(_ int, s *goquery.Selection) {
		if s.Find("p, li, tr, div").Length() > 0 {
			return
		}
		line := cleanCell(s.Text())
		if line != "" {
			b.WriteString(line)
			b.WriteByte('\n')
		}
	})
	return b.String()
}
