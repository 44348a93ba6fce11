package reconcile

import (
	"testing"

	"github.com/masatokato67/kaigaigumi/internal/store"
)

func match(playerID, date string) store.Match {
	return store.Match{MatchID: MatchID(playerID, date), PlayerID: playerID, Date: date}
}

func TestMatchID(t *testing.T) {
	if got := MatchID("mitoma", "2026-02-17"); got != "mitoma-20260217" {
		t.Errorf("expected mitoma-20260217, got %s", got)
	}
}

func TestReconcileSkipsKnownIDs(t *testing.T) {
	existing := []store.Match{match("mitoma", "2026-02-10"), match("endo", "2026-02-08")}
	incoming := []store.Match{match("mitoma", "2026-02-10"), match("mitoma", "2026-02-17")}

	res := Reconcile(existing, incoming)
	if len(res.Added) != 1 || res.Added[0].MatchID != "mitoma-20260217" {
		t.Fatalf("expected only mitoma-20260217 added, got %v", res.AddedIDs())
	}
	if len(res.Matches) != 3 {
		t.Errorf("expected 3 merged matches, got %d", len(res.Matches))
	}
	if res.Matches[0].Date != "2026-02-17" || res.Matches[2].Date != "2026-02-08" {
		t.Errorf("expected date descending order, got %v", res.Matches)
	}
}

func TestReconcileDedupesIncoming(t *testing.T) {
	first := match("sano", "2026-01-20")
	first.PlayerStats.Goals = 1
	second := match("sano", "2026-01-20")
	second.PlayerStats.Goals = 3

	res := Reconcile(nil, []store.Match{first, second})
	if len(res.Matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(res.Matches))
	}
	if res.Matches[0].PlayerStats.Goals != 1 {
		t.Errorf("expected first occurrence kept, got goals=%d", res.Matches[0].PlayerStats.Goals)
	}
}

func TestReconcileFillsMissingID(t *testing.T) {
	res := Reconcile(nil, []store.Match{{PlayerID: "ueda", Date: "2026-03-01"}})
	if len(res.Added) != 1 || res.Added[0].MatchID != "ueda-20260301" {
		t.Errorf("expected derived id, got %v", res.AddedIDs())
	}
}

func TestReconcileRederivesStaleID(t *testing.T) {
	existing := []store.Match{match("ueda", "2026-03-01")}
	stale := store.Match{MatchID: "ueda-old", PlayerID: "ueda", Date: "2026-03-01"}
	moved := store.Match{MatchID: "ueda-20260301", PlayerID: "ueda", Date: "2026-03-04"}

	res := Reconcile(existing, []store.Match{stale, moved})
	if len(res.Added) != 1 || res.Added[0].MatchID != "ueda-20260304" {
		t.Errorf("expected only ueda-20260304 added, got %v", res.AddedIDs())
	}
	if len(res.Matches) != 2 {
		t.Errorf("expected 2 merged matches, got %d", len(res.Matches))
	}
}

func TestReconcileIsIdempotent(t *testing.T) {
	incoming := []store.Match{match("a", "2026-01-01"), match("b", "2026-01-03"), match("a", "2026-01-02")}

	first := Reconcile(nil, incoming)
	second := Reconcile(first.Matches, incoming)
	if len(second.Added) != 0 {
		t.Errorf("expected no additions on second run, got %v", second.AddedIDs())
	}
	if len(second.Matches) != len(first.Matches) {
		t.Errorf("expected %d matches, got %d", len(first.Matches), len(second.Matches))
	}

	ids := make(map[string]bool)
	for _, m := range second.Matches {
		if ids[m.MatchID] {
			t.Errorf("duplicate id %s", m.MatchID)
		}
		ids[m.MatchID] = true
	}
}

func TestSortByDateStable(t *testing.T) {
	matches := []store.Match{
		{MatchID: "x-1", Date: "2026-01-01"},
		{MatchID: "y-1", Date: "2026-01-05"},
		{MatchID: "z-1", Date: "2026-01-01"},
	}
	SortByDate(matches)
	want := []string{"y-1", "x-1", "z-1"}
	for i, id := range want {
		if matches[i].MatchID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, matches[i].MatchID)
		}
	}
}
