package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/masatokato67/kaigaigumi/internal/prompt"
	"github.com/masatokato67/kaigaigumi/internal/reconcile"
	"github.com/masatokato67/kaigaigumi/internal/store"
)

// --- add-match command ---

var addMatchCmd = &cobra.Command{
	Use:   "add-match",
	Short: "Enter a match by hand",
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

		p := prompt.New(os.Stdin, os.Stdout)
		fmt.Println("=== 試合データ追加 ===")
		m, err := prompt.AddMatch(p, players, matches, time.Now())
		if errors.Is(err, prompt.ErrDuplicate) {
			fmt.Printf("❌ %v\n", err)
			return nil
		}
		if err != nil {
			return ignoreAbort(err)
		}

		matches = append(matches, m)
		reconcile.SortByDate(matches)
		if err := st.SaveMatches(matches); err != nil {
			return err
		}
		fmt.Printf("✅ 試合データを追加しました: %s\n", m.MatchID)

		videos, err := st.LoadHighlights()
		if err != nil {
			return err
		}
		if store.EnsurePlaceholders(videos, []store.Match{m}) > 0 {
			if err := st.SaveHighlights(videos); err != nil {
				return err
			}
		}

		generate, err := p.Confirm("メディア評価・現地の声・スレッドを生成しますか?", true)
		if err != nil || !generate {
			return ignoreAbort(err)
		}
		media, err := st.LoadMediaRatings()
		if err != nil {
			return err
		}
		media, result := newSynthesizer().GenerateMissing(matches, players, media, []string{m.MatchID}, false)
		if result.Generated == 0 {
			return nil
		}
		if err := st.SaveMediaRatings(media); err != nil {
			return err
		}
		fmt.Println("✅ メディアデータを生成しました")
		return nil
	},
}

// --- add-voice command ---

var addVoiceMatch string

var addVoiceCmd = &cobra.Command{
	Use:   "add-voice",
	Short: "Add local voices to a match's media data",
	RunE: func(cmd *cobra.Command, args []string) error {
		return addToMedia(addVoiceMatch, prompt.AddVoices, "現地の声")
	},
}

// --- add-thread command ---

var addThreadMatch string

var addThreadCmd = &cobra.Command{
	Use:   "add-thread",
	Short: "Add threads with replies to a match's media data",
	RunE: func(cmd *cobra.Command, args []string) error {
		return addToMedia(addThreadMatch, prompt.AddThread, "Xスレッド")
	},
}

func init() {
	addVoiceCmd.Flags().StringVarP(&addVoiceMatch, "match", "m", "", "Match id to add voices to")
	addThreadCmd.Flags().StringVarP(&addThreadMatch, "match", "m", "", "Match id to add threads to")
}

// addToMedia picks a media document by id, or interactively when matchID is
// empty, runs add on it and saves if anything was added.
func addToMedia(matchID string, add func(*prompt.Prompter, *store.MatchMediaData) (int, error), what string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	media, err := st.LoadMediaRatings()
	if err != nil {
		return err
	}
	if len(media) == 0 {
		fmt.Println("No media data yet. Run 'kaigaigumi generate' first.")
		return nil
	}

	p := prompt.New(os.Stdin, os.Stdout)
	idx := -1
	if matchID != "" {
		for i := range media {
			if media[i].MatchID == matchID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return fmt.Errorf("no media data for match %s", matchID)
		}
	} else {
		ids := make([]string, len(media))
		for i, md := range media {
			ids[i] = md.MatchID
		}
		if idx, err = p.Select("試合を選択してください:", ids, 0); err != nil {
			return ignoreAbort(err)
		}
	}

	added, err := add(p, &media[idx])
	if err != nil && !errors.Is(err, prompt.ErrAborted) {
		return err
	}
	if added == 0 {
		return nil
	}
	media[idx].LastUpdated = stamp()
	if err := st.SaveMediaRatings(media); err != nil {
		return err
	}
	fmt.Printf("✅ %d件の%sを追加しました (%s)\n", added, what, media[idx].MatchID)
	return nil
}

func ignoreAbort(err error) error {
	if errors.Is(err, prompt.ErrAborted) {
		return nil
	}
	return err
}
