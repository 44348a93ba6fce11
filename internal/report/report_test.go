package report

import (
	"strings"
	"testing"

	"github.com/masatokato67/kaigaigumi/internal/classify"
	"github.com/masatokato67/kaigaigumi/internal/database"
)

func ptr(s string) *string { return &s }

func sampleInput() Input {
	return Input{
		Stats: &database.Stats{TotalRuns: 2, SuccessfulRuns: 1, FailedRuns: 1, FetchAttempts: 6, FailedAttempts: 1, MatchesAdded: 3, MediaGenerated: 3},
		Providers: []database.ProviderStats{
			{Provider: "fotmob", Attempts: 3, Found: 12},
			{Provider: "sofascore", Attempts: 3, Failed: 1, Found: 4},
		},
		Runs: []database.Run{
			{ID: 2, Command: "run", Status: "failed", StartedAt: "2026-02-18 06:00:00", Error: ptr("saving matches: disk full")},
			{ID: 1, Command: "run", Status: "ok", StartedAt: "2026-02-17 06:00:00", MatchesFound: 16, MatchesAdded: 3, MediaGenerated: 3},
		},
		Dataset: Dataset{Players: 8, Matches: 120, Media: 118, Tiers: map[classify.Tier]int{classify.Excellent: 10, classify.Poor: 4}},
	}
}

func TestMarkdown(t *testing.T) {
	out := Markdown(sampleInput())

	for _, want := range []string{
		"# kaigaigumi report",
		"- Matches: 120",
		"| excellent | 10 |",
		"| good | 0 |",
		"- Runs: 2 (1 ok, 1 failed)",
		"| sofascore | 3 | 1 | 0 | 4 |",
		"| 1 | run | ok | 2026-02-17 06:00:00 | 16 | 3 | 3 |",
		"- Run 2: saving matches: disk full",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected report to contain %q\n%s", want, out)
		}
	}
}

func TestMarkdownEmptyLedger(t *testing.T) {
	out := Markdown(Input{})
	if !strings.Contains(out, "No runs recorded yet.") {
		t.Errorf("expected empty-ledger message, got:\n%s", out)
	}
	if strings.Contains(out, "## Providers") {
		t.Error("expected provider section omitted")
	}
}

func TestHTML(t *testing.T) {
	page, err := HTML(Markdown(sampleInput()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(page, "<!DOCTYPE html>") {
		t.Error("expected doctype")
	}
	if !strings.Contains(page, "<h1>kaigaigumi report</h1>") {
		t.Error("expected rendered heading")
	}
	if !strings.Contains(page, "<table>") || !strings.Contains(page, "<td>fotmob</td>") {
		t.Error("expected rendered tables")
	}
}
