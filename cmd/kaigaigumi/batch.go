package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"github.com/masatokato67/kaigaigumi/internal/database"
	"github.com/masatokato67/kaigaigumi/internal/highlights"
	"github.com/masatokato67/kaigaigumi/internal/season"
)

// --- fetch command ---

var fetchPlayers []string

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch new matches from providers and merge them into matches.json",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		result := newPipeline(st, db).Fetch(ctx, splitIDs(fetchPlayers))
		printSteps(result.Steps)
		if err := result.Err(); err != nil {
			return err
		}

		if len(result.Added) > 0 {
			fmt.Printf("\nNew match ids: %s\n", strings.Join(result.Added, ","))
			fmt.Println("Generate content with: kaigaigumi generate --ids <ids>")
		}
		return nil
	},
}

func init() {
	fetchCmd.Flags().StringSliceVarP(&fetchPlayers, "player", "p", nil, "Only fetch these player ids")
}

// --- generate command ---

var (
	generateIDs   []string
	generateForce bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate media ratings, local voices and threads for matches",
	Long:  "Without --ids, every match lacking media data is generated. With --ids, only those matches are considered; --force replaces existing documents.",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		players, err := st.LoadPlayers()
		if err != nil {
			return err
		}
		matches, err := st.LoadMatches()
		if err != nil {
			return err
		}
		media, err := st.LoadMediaRatings()
		if err != nil {
			return err
		}

		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()
		runID, _ := db.StartRun("generate")

		updated, result := newSynthesizer().GenerateMissing(matches, players, media, splitIDs(generateIDs), generateForce)
		var saveErr error
		if result.Generated+result.Replaced > 0 {
			saveErr = st.SaveMediaRatings(updated)
		}
		db.FinishRun(runID, database.RunCounts{Players: len(players), MediaGenerated: result.Generated + result.Replaced}, saveErr)
		if saveErr != nil {
			return saveErr
		}

		fmt.Println("\nGeneration complete:")
		fmt.Printf("  Generated: %d\n", result.Generated)
		fmt.Printf("  Replaced: %d\n", result.Replaced)
		fmt.Printf("  Skipped: %d\n", result.Skipped)
		return nil
	},
}

func init() {
	generateCmd.Flags().StringSliceVar(&generateIDs, "ids", nil, "Match ids to generate (comma separated)")
	generateCmd.Flags().BoolVar(&generateForce, "force", false, "Replace existing media data for --ids")
}

// --- regenerate-threads command ---

var regenerateIDs []string

var regenerateThreadsCmd = &cobra.Command{
	Use:   "regenerate-threads",
	Short: "Replace the threads of existing media documents",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		players, err := st.LoadPlayers()
		if err != nil {
			return err
		}
		matches, err := st.LoadMatches()
		if err != nil {
			return err
		}
		media, err := st.LoadMediaRatings()
		if err != nil {
			return err
		}

		result := newSynthesizer().RegenerateThreads(media, matches, players, splitIDs(regenerateIDs))
		if result.Replaced > 0 {
			if err := st.SaveMediaRatings(media); err != nil {
				return err
			}
		}
		fmt.Printf("\nRegenerated threads for %d matches (%d skipped)\n", result.Replaced, result.Skipped)
		return nil
	},
}

func init() {
	regenerateThreadsCmd.Flags().StringSliceVar(&regenerateIDs, "ids", nil, "Match ids to regenerate (default: all)")
}

// --- update-stats command ---

var updatePlayer string

var updateStatsCmd = &cobra.Command{
	Use:   "update-stats",
	Short: "Recompute players' season stats from matches and media ratings",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		players, err := st.LoadPlayers()
		if err != nil {
			return err
		}
		matches, err := st.LoadMatches()
		if err != nil {
			return err
		}
		media, err := st.LoadMediaRatings()
		if err != nil {
			return err
		}

		changes, err := season.Recompute(players, matches, media, updatePlayer)
		if err != nil {
			return err
		}
		if err := st.SavePlayers(players); err != nil {
			return err
		}

		for _, c := range changes {
			fmt.Printf("%s: %d試合 %dG %dA %d分 平均%.1f (was %d試合 %dG %dA)\n",
				c.Name, c.After.Appearances, c.After.Goals, c.After.Assists, c.After.MinutesPlayed, c.After.AverageRating,
				c.Before.Appearances, c.Before.Goals, c.Before.Assists)
		}
		fmt.Printf("\nUpdated %d players\n", len(changes))
		return nil
	},
}

func init() {
	updateStatsCmd.Flags().StringVarP(&updatePlayer, "player", "p", "", "Only update this player id")
}

// --- sync-highlights command ---

var syncHighlightsCmd = &cobra.Command{
	Use:   "sync-highlights",
	Short: "Add highlight placeholders and link videos from channel feeds",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		players, err := st.LoadPlayers()
		if err != nil {
			return err
		}
		matches, err := st.LoadMatches()
		if err != nil {
			return err
		}
		videos, err := st.LoadHighlights()
		if err != nil {
			return err
		}

		channels := make([]highlights.Channel, len(cfg.Highlights.Channels))
		for i, ch := range cfg.Highlights.Channels {
			channels[i] = highlights.Channel{URL: ch.URL, Name: ch.Name}
		}
		syncer := highlights.NewSyncer(channels, cfg.Highlights.WindowDays,
			&http.Client{Timeout: cfg.Fetch.Timeout}, cfg.Fetch.UserAgent)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		result := syncer.Sync(ctx, videos, matches, players)
		if result.Placeholders+result.Linked > 0 {
			if err := st.SaveHighlights(videos); err != nil {
				return err
			}
		}

		fmt.Println("\nHighlight sync complete:")
		fmt.Printf("  Placeholders added: %d\n", result.Placeholders)
		fmt.Printf("  Videos scanned: %d\n", result.Videos)
		fmt.Printf("  Linked: %d\n", result.Linked)
		return nil
	},
}

// --- run command ---

var dryRun bool

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full pipeline: collect -> reconcile -> classify -> synthesize -> persist",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		pipe := newPipeline(st, db)
		if dryRun {
			printSteps(pipe.DryRun().Steps)
			return nil
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		result := pipe.Run(ctx)
		printSteps(result.Steps)
		if err := result.Err(); err != nil {
			return err
		}
		fmt.Printf("\nPipeline complete! %d new matches, %d media documents.\n", len(result.Added), result.Generated)
		return nil
	},
}

func init() {
	runCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be done without executing")
}

// --- schedule command ---

var runNow bool

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Run the pipeline on the configured cron schedule until interrupted",
	RunE: func(cmd *cobra.Command, args []string) error {
		loc, err := time.LoadLocation(cfg.Schedule.Timezone)
		if err != nil {
			return fmt.Errorf("loading timezone %q: %w", cfg.Schedule.Timezone, err)
		}

		st, err := openStore()
		if err != nil {
			return err
		}
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()
		pipe := newPipeline(st, db)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		job := func() {
			result := pipe.Run(ctx)
			if err := result.Err(); err != nil && !errors.Is(err, context.Canceled) {
				log.Printf("Scheduled run failed: %v", err)
				return
			}
			log.Printf("Scheduled run complete: %d new matches, %d media documents", len(result.Added), result.Generated)
		}

		c := cron.New(
			cron.WithLocation(loc),
			cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)),
		)
		entry, err := c.AddFunc(cfg.Schedule.Cron, job)
		if err != nil {
			return fmt.Errorf("parsing cron %q: %w", cfg.Schedule.Cron, err)
		}
		c.Start()
		log.Printf("Scheduler started (%s, %s), next run at %s",
			cfg.Schedule.Cron, loc, c.Entry(entry).Next.Format(time.RFC3339))

		if runNow {
			c.Entry(entry).WrappedJob.Run()
		}

		<-ctx.Done()
		log.Println("Shutting down...")
		<-c.Stop().Done()
		return nil
	},
}

func init() {
	scheduleCmd.Flags().BoolVar(&runNow, "now", false, "Also run once immediately")
}

