package pipeline

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/masatokato67/kaigaigumi/internal/classify"
	"github.com/masatokato67/kaigaigumi/internal/collect"
	"github.com/masatokato67/kaigaigumi/internal/config"
	"github.com/masatokato67/kaigaigumi/internal/database"
	"github.com/masatokato67/kaigaigumi/internal/provider"
	"github.com/masatokato67/kaigaigumi/internal/reconcile"
	"github.com/masatokato67/kaigaigumi/internal/store"
	"github.com/masatokato67/kaigaigumi/internal/synthesize"
)

// StepResult holds the result of a single pipeline step.
type StepResult struct {
	Name    string
	Summary string
	Err     error
}

// Result holds the results of a full pipeline run.
type Result struct {
	Steps     []StepResult
	Found     int
	Added     []string
	Generated int
}

// Err returns the first step error.
func (r *Result) Err() error {
	for _, s := range r.Steps {
		if s.Err != nil {
			return fmt.Errorf("%s: %w", strings.ToLower(s.Name), s.Err)
		}
	}
	return nil
}

// Pipeline runs fetch, reconcile, classify, synthesize and persist in order.
type Pipeline struct {
	cfg      *config.Config
	store    *store.Store
	ledger   *database.DB
	adapters []provider.Adapter
	synth    *synthesize.Synthesizer
}

// New creates a pipeline. ledger may be nil.
func New(cfg *config.Config, st *store.Store, ledger *database.DB, adapters []provider.Adapter, synth *synthesize.Synthesizer) *Pipeline {
	return &Pipeline{
		cfg:      cfg,
		store:    st,
		ledger:   ledger,
		adapters: adapters,
		synth:    synth,
	}
}

type snapshot struct {
	players    []store.Player
	matches    []store.Match
	media      []store.MatchMediaData
	highlights map[string]store.HighlightVideo
}

// load reads every collection once, before any step runs.
func (p *Pipeline) load() (*snapshot, error) {
	var s snapshot
	var err error
	if s.players, err = p.store.LoadPlayers(); err != nil {
		return nil, err
	}
	if s.matches, err = p.store.LoadMatches(); err != nil {
		return nil, err
	}
	if s.media, err = p.store.LoadMediaRatings(); err != nil {
		return nil, err
	}
	if s.highlights, err = p.store.LoadHighlights(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Run executes the full pipeline and records it in the ledger.
func (p *Pipeline) Run(ctx context.Context) *Result {
	r := &Result{}
	runID := p.startRun("run")

	snap, err := p.load()
	if err != nil {
		r.Steps = append(r.Steps, StepResult{Name: "Load", Err: err})
		p.finishRun(runID, r, 0)
		return r
	}

	// Step 1: Collect
	collected := p.runCollect(ctx, runID, snap.players)
	r.Found = collected.TotalFound
	r.Steps = append(r.Steps, StepResult{
		Name: "Collect",
		Summary: fmt.Sprintf("Found %d matches for %d players (%d skipped, %d failed, %d dropped)",
			collected.TotalFound, collected.Players, collected.Skipped, collected.Failed, collected.Dropped),
	})
	if err := ctx.Err(); err != nil {
		r.Steps[len(r.Steps)-1].Err = err
		p.finishRun(runID, r, len(snap.players))
		return r
	}

	// Step 2: Reconcile
	log.Println("Step 2/5: Reconciling matches...")
	merged := reconcile.Reconcile(snap.matches, collected.Matches)
	r.Added = merged.AddedIDs()
	r.Steps = append(r.Steps, StepResult{
		Name:    "Reconcile",
		Summary: fmt.Sprintf("Admitted %d new matches (%d total)", len(merged.Added), len(merged.Matches)),
	})

	// Step 3: Classify
	log.Println("Step 3/5: Classifying performances...")
	r.Steps = append(r.Steps, StepResult{Name: "Classify", Summary: tierSummary(classify.Count(merged.Added))})

	// Step 4: Synthesize
	log.Println("Step 4/5: Synthesizing media content...")
	media := snap.media
	if len(r.Added) == 0 {
		r.Steps = append(r.Steps, StepResult{Name: "Synthesize", Summary: "No new matches"})
	} else {
		var sr *synthesize.Result
		media, sr = p.synth.GenerateMissing(merged.Matches, snap.players, snap.media, r.Added, false)
		r.Generated = sr.Generated
		r.Steps = append(r.Steps, StepResult{
			Name:    "Synthesize",
			Summary: fmt.Sprintf("Generated %d media documents (%d skipped)", sr.Generated, sr.Skipped),
		})
	}

	// Step 5: Persist
	log.Println("Step 5/5: Persisting collections...")
	r.Steps = append(r.Steps, p.persist(merged, media, snap.highlights))

	p.finishRun(runID, r, len(snap.players))
	return r
}

// Fetch collects and reconciles matches without synthesizing content. When
// only is non-empty, just those players are fetched. Admitted match ids are
// returned in Result.Added so generation can target them later.
func (p *Pipeline) Fetch(ctx context.Context, only []string) *Result {
	r := &Result{}
	runID := p.startRun("fetch")

	snap, err := p.load()
	if err != nil {
		r.Steps = append(r.Steps, StepResult{Name: "Load", Err: err})
		p.finishRun(runID, r, 0)
		return r
	}
	players := filterPlayers(snap.players, only)

	collected := p.runCollect(ctx, runID, players)
	r.Found = collected.TotalFound
	r.Steps = append(r.Steps, StepResult{
		Name:    "Collect",
		Summary: fmt.Sprintf("Found %d matches for %d players", collected.TotalFound, collected.Players),
		Err:     ctx.Err(),
	})
	if ctx.Err() != nil {
		p.finishRun(runID, r, len(players))
		return r
	}

	merged := reconcile.Reconcile(snap.matches, collected.Matches)
	r.Added = merged.AddedIDs()
	r.Steps = append(r.Steps, StepResult{
		Name:    "Reconcile",
		Summary: fmt.Sprintf("Admitted %d new matches (%d total)", len(merged.Added), len(merged.Matches)),
	})
	r.Steps = append(r.Steps, p.persist(merged, snap.media, snap.highlights))

	p.finishRun(runID, r, len(players))
	return r
}

func filterPlayers(players []store.Player, only []string) []store.Player {
	if len(only) == 0 {
		return players
	}
	want := make(map[string]bool, len(only))
	for _, id := range only {
		want[id] = true
	}
	var out []store.Player
	for _, p := range players {
		if want[p.ID] {
			out = append(out, p)
		}
	}
	return out
}

// DryRun reports what a run would work on without touching the network or
// the data directory.
func (p *Pipeline) DryRun() *Result {
	r := &Result{}
	snap, err := p.load()
	if err != nil {
		r.Steps = append(r.Steps, StepResult{Name: "Load", Err: err})
		return r
	}

	var names []string
	for _, a := range p.adapters {
		n := 0
		for _, pl := range snap.players {
			if pl.ExternalID(a.Name()) != "" {
				n++
			}
		}
		names = append(names, fmt.Sprintf("%s: %d", a.Name(), n))
	}
	r.Steps = append(r.Steps, StepResult{
		Name:    "Collect",
		Summary: fmt.Sprintf("[dry-run] %d players; players with ids per source: %s", len(snap.players), strings.Join(names, ", ")),
	})
	r.Steps = append(r.Steps, StepResult{
		Name:    "Reconcile",
		Summary: fmt.Sprintf("[dry-run] %d matches already stored", len(snap.matches)),
	})
	r.Steps = append(r.Steps, StepResult{
		Name:    "Classify",
		Summary: "[dry-run] stored: " + tierSummary(classify.Count(snap.matches)),
	})

	have := make(map[string]bool, len(snap.media))
	for _, md := range snap.media {
		have[md.MatchID] = true
	}
	missing := 0
	for _, m := range snap.matches {
		if !have[m.MatchID] {
			missing++
		}
	}
	r.Steps = append(r.Steps, StepResult{
		Name:    "Synthesize",
		Summary: fmt.Sprintf("[dry-run] %d stored matches have no media data", missing),
	})
	r.Steps = append(r.Steps, StepResult{
		Name:    "Persist",
		Summary: fmt.Sprintf("[dry-run] Would write to %s", p.store.Dir()),
	})
	return r
}

func (p *Pipeline) runCollect(ctx context.Context, runID int64, players []store.Player) *collect.Result {
	log.Println("Step 1/5: Collecting matches...")
	collector := collect.NewCollector(p.adapters, p.cfg.Fetch.PlayerDelay, func(a collect.Attempt) {
		if p.ledger == nil || runID == 0 {
			return
		}
		if err := p.ledger.RecordFetchAttempt(runID, a.Provider, a.PlayerID, a.Status, a.Found, a.Error); err != nil {
			log.Printf("Failed to record fetch attempt: %v", err)
		}
	})
	return collector.Collect(ctx, players)
}

func (p *Pipeline) persist(merged *reconcile.Result, media []store.MatchMediaData, highlights map[string]store.HighlightVideo) StepResult {
	if len(merged.Added) == 0 {
		return StepResult{Name: "Persist", Summary: "Nothing to write"}
	}
	if err := p.store.SaveMatches(merged.Matches); err != nil {
		return StepResult{Name: "Persist", Err: err}
	}
	if err := p.store.SaveMediaRatings(media); err != nil {
		return StepResult{Name: "Persist", Err: err}
	}
	placeholders := store.EnsurePlaceholders(highlights, merged.Added)
	if err := p.store.SaveHighlights(highlights); err != nil {
		return StepResult{Name: "Persist", Err: err}
	}
	return StepResult{
		Name:    "Persist",
		Summary: fmt.Sprintf("Wrote %d matches, %d media documents, %d highlight placeholders", len(merged.Matches), len(media), placeholders),
	}
}

func (p *Pipeline) startRun(command string) int64 {
	if p.ledger == nil {
		return 0
	}
	id, err := p.ledger.StartRun(command)
	if err != nil {
		log.Printf("Failed to start ledger run: %v", err)
		return 0
	}
	return id
}

func (p *Pipeline) finishRun(id int64, r *Result, players int) {
	if p.ledger == nil || id == 0 {
		return
	}
	counts := database.RunCounts{
		Players:        players,
		MatchesFound:   r.Found,
		MatchesAdded:   len(r.Added),
		MediaGenerated: r.Generated,
	}
	if err := p.ledger.FinishRun(id, counts, r.Err()); err != nil {
		log.Printf("Failed to finish ledger run: %v", err)
	}
}

func tierSummary(counts map[classify.Tier]int) string {
	parts := make([]string, 0, len(classify.Tiers))
	for _, t := range classify.Tiers {
		parts = append(parts, fmt.Sprintf("%d %s", counts[t], t))
	}
	return strings.Join(parts, ", ")
}
