// Package report renders the run ledger and dataset summary as Markdown and HTML.
package report

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/masatokato67/kaigaigumi/internal/classify"
	"github.com/masatokato67/kaigaigumi/internal/database"
)

var md = goldmark.New(goldmark.WithExtensions(extension.Table))

// Dataset summarises the persisted JSON collections.
type Dataset struct {
	Players int
	Matches int
	Media   int
	Tiers   map[classify.Tier]int
}

// Input is everything a report shows.
type Input struct {
	Stats     *database.Stats
	Providers []database.ProviderStats
	Runs      []database.Run
	Dataset   Dataset
}

// Markdown assembles the report body.
func Markdown(in Input) string {
	sections := []string{"# kaigaigumi report", datasetSection(in.Dataset)}
	if in.Stats != nil {
		sections = append(sections, statsSection(in.Stats))
	}
	if len(in.Providers) > 0 {
		sections = append(sections, providerSection(in.Providers))
	}
	sections = append(sections, runsSection(in.Runs))
	return strings.Join(sections, "\n\n---\n\n") + "\n"
}

// HTML converts report Markdown into a standalone page.
func HTML(markdown string) (string, error) {
	var body bytes.Buffer
	if err := md.Convert([]byte(markdown), &body); err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	var page strings.Builder
	page.WriteString("<!DOCTYPE html>\n<html lang=\"ja\">\n<head>\n<meta charset=\"utf-8\">\n")
	page.WriteString("<title>" + html.EscapeString("kaigaigumi report") + "</title>\n</head>\n<body>\n")
	page.Write(body.Bytes())
	page.WriteString("</body>\n</html>\n")
	return page.String(), nil
}

func datasetSection(d Dataset) string {
	var b strings.Builder
	b.WriteString("## Dataset\n\n")
	fmt.Fprintf(&b, "- Players: %d\n- Matches: %d\n- Media documents: %d", d.Players, d.Matches, d.Media)
	if len(d.Tiers) > 0 {
		b.WriteString("\n\n| Tier | Matches |\n|---|---|")
		for _, t := range classify.Tiers {
			fmt.Fprintf(&b, "\n| %s | %d |", t, d.Tiers[t])
		}
	}
	return b.String()
}

func statsSection(s *database.Stats) string {
	return fmt.Sprintf("## Ledger\n\n- Runs: %d (%d ok, %d failed)\n- Fetch attempts: %d (%d failed)\n- Matches added: %d\n- Media generated: %d",
		s.TotalRuns, s.SuccessfulRuns, s.FailedRuns, s.FetchAttempts, s.FailedAttempts, s.MatchesAdded, s.MediaGenerated)
}

func providerSection(providers []database.ProviderStats) string {
	lines := []string{"## Providers", "", "| Provider | Attempts | Failed | Skipped | Matches |", "|---|---|---|---|---|"}
	for _, p := range providers {
		lines = append(lines, fmt.Sprintf("| %s | %d | %d | %d | %d |", p.Provider, p.Attempts, p.Failed, p.Skipped, p.Found))
	}
	return strings.Join(lines, "\n")
}

func runsSection(runs []database.Run) string {
	if len(runs) == 0 {
		return "## Recent runs\n\nNo runs recorded yet."
	}
	lines := []string{"## Recent runs", "", "| # | Command | Status | Started | Found | Added | Media |", "|---|---|---|---|---|---|---|"}
	var failures []string
	for _, r := range runs {
		lines = append(lines, fmt.Sprintf("| %d | %s | %s | %s | %d | %d | %d |",
			r.ID, r.Command, r.Status, r.StartedAt, r.MatchesFound, r.MatchesAdded, r.MediaGenerated))
		if r.Error != nil {
			failures = append(failures, fmt.Sprintf("- Run %d: %s", r.ID, *r.Error))
		}
	}
	if len(failures) > 0 {
		lines = append(lines, "", "**Errors:**", strings.Join(failures, "\n"))
	}
	return strings.Join(lines, "\n")
}
