package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/masatokato67/kaigaigumi/internal/classify"
	"github.com/masatokato67/kaigaigumi/internal/config"
	"github.com/masatokato67/kaigaigumi/internal/database"
	"github.com/masatokato67/kaigaigumi/internal/fetch"
	"github.com/masatokato67/kaigaigumi/internal/pipeline"
	"github.com/masatokato67/kaigaigumi/internal/provider"
	"github.com/masatokato67/kaigaigumi/internal/report"
	"github.com/masatokato67/kaigaigumi/internal/store"
	"github.com/masatokato67/kaigaigumi/internal/synthesize"
)

var version = "dev"

var (
	verbose    bool
	configPath string
	cfg        *config.Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:     "kaigaigumi",
	Short:   "Match data and media content for Japanese players abroad",
	Long:    "kaigaigumi fetches match statistics for Japanese players in overseas leagues, merges them into the site's JSON data, and generates ratings, local voices and threads for each new match.",
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip config loading for init and version
		if cmd.Name() == "init" || cmd.Name() == "version" {
			setLogFlags("")
			return nil
		}

		_ = godotenv.Load(".env")

		path, err := config.ResolveConfigPath(configPath)
		if err != nil {
			return err
		}
		cfg, err = config.Load(path)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg.ApplyEnv()
		setLogFlags(cfg.Logging.Level)
		return nil
	},
}

func setLogFlags(level string) {
	if verbose || strings.EqualFold(level, "DEBUG") {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	} else {
		log.SetFlags(log.LstdFlags)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(regenerateThreadsCmd)
	rootCmd.AddCommand(updateStatsCmd)
	rootCmd.AddCommand(syncHighlightsCmd)
	rootCmd.AddCommand(addMatchCmd)
	rootCmd.AddCommand(addVoiceCmd)
	rootCmd.AddCommand(addThreadCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(scheduleCmd)
	rootCmd.AddCommand(reportCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("kaigaigumi", version)
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration in ~/.config/kaigaigumi/",
	RunE: func(cmd *cobra.Command, args []string) error {
		target := filepath.Join(config.ConfigDir(), "config.yaml")
		if _, err := os.Stat(target); err == nil {
			fmt.Printf("Config already exists: %s\n", target)
			return nil
		}

		if err := os.MkdirAll(config.ConfigDir(), 0o755); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}

		if err := os.WriteFile(target, config.DefaultConfigYAML, 0o644); err != nil {
			return fmt.Errorf("writing config: %w", err)
		}

		fmt.Printf("Created config: %s\n", target)
		fmt.Println("Edit it to point data.dir at the site's data directory and enable providers.")
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show dataset and run ledger status",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		dataset, err := loadDataset(st)
		if err != nil {
			return err
		}

		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		stats, err := db.GetStats()
		if err != nil {
			return fmt.Errorf("getting stats: %w", err)
		}
		lastRun, _ := db.GetLastRunDate()
		if lastRun == "" {
			lastRun = "never"
		}

		fmt.Printf("Data: %s\n", st.Dir())
		fmt.Printf("Ledger: %s\n\n", db.Path())
		fmt.Println("Dataset:")
		fmt.Printf("  Players: %d\n", dataset.Players)
		fmt.Printf("  Matches: %d\n", dataset.Matches)
		fmt.Printf("  Media documents: %d\n", dataset.Media)
		for _, t := range classify.Tiers {
			fmt.Printf("  %s: %d\n", t, dataset.Tiers[t])
		}
		fmt.Println("\nRuns:")
		fmt.Printf("  Total: %d (%d ok, %d failed)\n", stats.TotalRuns, stats.SuccessfulRuns, stats.FailedRuns)
		fmt.Printf("  Last successful: %s\n", lastRun)
		fmt.Printf("  Fetch attempts: %d (%d failed)\n", stats.FetchAttempts, stats.FailedAttempts)
		fmt.Printf("  Matches added: %d\n", stats.MatchesAdded)
		fmt.Printf("  Media generated: %d\n", stats.MediaGenerated)
		return nil
	},
}

// --- report command ---

var (
	reportHTML bool
	reportOut  string
	reportRuns int
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render the run ledger and dataset summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		dataset, err := loadDataset(st)
		if err != nil {
			return err
		}

		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		stats, err := db.GetStats()
		if err != nil {
			return err
		}
		providers, err := db.GetProviderStats()
		if err != nil {
			return err
		}
		runs, err := db.GetRecentRuns(reportRuns)
		if err != nil {
			return err
		}

		out := report.Markdown(report.Input{Stats: stats, Providers: providers, Runs: runs, Dataset: dataset})
		if reportHTML {
			if out, err = report.HTML(out); err != nil {
				return err
			}
		}

		if reportOut == "" {
			fmt.Print(out)
			return nil
		}
		if err := os.WriteFile(reportOut, []byte(out), 0o644); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		fmt.Printf("Wrote %s\n", reportOut)
		return nil
	},
}

func init() {
	reportCmd.Flags().BoolVar(&reportHTML, "html", false, "Render HTML instead of Markdown")
	reportCmd.Flags().StringVarP(&reportOut, "output", "o", "", "Write to file instead of stdout")
	reportCmd.Flags().IntVar(&reportRuns, "runs", 20, "Number of recent runs to include")
}

func loadDataset(st *store.Store) (report.Dataset, error) {
	players, err := st.LoadPlayers()
	if err != nil {
		return report.Dataset{}, err
	}
	matches, err := st.LoadMatches()
	if err != nil {
		return report.Dataset{}, err
	}
	media, err := st.LoadMediaRatings()
	if err != nil {
		return report.Dataset{}, err
	}
	return report.Dataset{
		Players: len(players),
		Matches: len(matches),
		Media:   len(media),
		Tiers:   classify.Count(matches),
	}, nil
}

// --- helpers ---

func openStore() (*store.Store, error) {
	return store.Open(cfg.Data.Dir)
}

func openDB() (*database.DB, error) {
	return database.Open(cfg.GetLedgerPath())
}

func newSynthesizer() *synthesize.Synthesizer {
	return synthesize.NewSynthesizer(synthesize.Options{
		Seed:        cfg.Synthesis.Seed,
		ThreadStyle: cfg.Synthesis.ThreadStyle,
	})
}

func newPipeline(st *store.Store, db *database.DB) *pipeline.Pipeline {
	client := fetch.NewClient(fetch.Options{
		UserAgent:         cfg.Fetch.UserAgent,
		Timeout:           cfg.Fetch.Timeout,
		RequestsPerMinute: cfg.Fetch.RequestsPerMinute,
	})
	return pipeline.New(cfg, st, db, provider.New(cfg, client), newSynthesizer())
}

func printSteps(steps []pipeline.StepResult) {
	for i, step := range steps {
		fmt.Printf("\nStep %d/%d: %s\n", i+1, len(steps), step.Name)
		if step.Err != nil {
			fmt.Printf("  Error: %v\n", step.Err)
		} else {
			fmt.Printf("  %s\n", step.Summary)
		}
	}
}

// splitIDs accepts repeated and comma-separated values.
func splitIDs(values []string) []string {
	var ids []string
	for _, v := range values {
		for _, id := range strings.Split(v, ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
	}
	return ids
}

func stamp() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05.000Z")
}
