package prompt

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/masatokato67/kaigaigumi/internal/reconcile"
	"github.com/masatokato67/kaigaigumi/internal/store"
)

// ErrDuplicate is returned when the entered match already exists.
var ErrDuplicate = errors.New("match already registered")

// Competitions offered for manual entry.
var Competitions = []string{
	"プレミアリーグ",
	"ラ・リーガ",
	"ブンデスリーガ",
	"セリエA",
	"リーグ・アン",
	"エールディヴィジ",
	"FAカップ",
	"EFLカップ",
	"チャンピオンズリーグ",
	"ヨーロッパリーグ",
	"カンファレンスリーグ",
	"DFBポカール",
	"コパ・デル・レイ",
}

// ManualMatch is a match typed in by hand.
type ManualMatch struct {
	PlayerID    string  `validate:"required"`
	Date        string  `validate:"required,datetime=2006-01-02"`
	Competition string  `validate:"required"`
	HomeTeam    string  `validate:"required"`
	AwayTeam    string  `validate:"required"`
	HomeScore   int     `validate:"min=0,max=20"`
	AwayScore   int     `validate:"min=0,max=20"`
	Minutes     int     `validate:"min=0,max=120"`
	Goals       int     `validate:"min=0,max=10"`
	Assists     int     `validate:"min=0,max=10"`
	Position    string  `validate:"required,oneof=GK CB LB RB LWB RWB CDM CM CAM LM RM LW RW CF ST"`
	Rating      float64 `validate:"min=0,max=10"`
	Starting    bool
	Notable     bool
}

// DefaultNotable is the suggested notable flag for manual entries.
func DefaultNotable(goals, assists int, rating float64) bool {
	return goals >= 1 || assists >= 1 || rating >= 7.5
}

// Match validates the entry and converts it.
func (mm ManualMatch) Match() (store.Match, error) {
	if err := validate.Struct(mm); err != nil {
		return store.Match{}, describe(err)
	}
	// NaN passes both min and max.
	if math.IsNaN(mm.Rating) {
		return store.Match{}, errors.New("invalid input: Rating is not a number")
	}
	return store.Match{
		MatchID:     reconcile.MatchID(mm.PlayerID, mm.Date),
		PlayerID:    mm.PlayerID,
		Date:        mm.Date,
		Competition: mm.Competition,
		HomeTeam:    store.TeamScore{Name: mm.HomeTeam, Score: mm.HomeScore},
		AwayTeam:    store.TeamScore{Name: mm.AwayTeam, Score: mm.AwayScore},
		PlayerStats: store.PlayerStats{
			MinutesPlayed: mm.Minutes,
			Goals:         mm.Goals,
			Assists:       mm.Assists,
			Starting:      mm.Starting,
			Position:      mm.Position,
			Rating:        math.Round(mm.Rating*10) / 10,
		},
		Notable: mm.Notable,
	}, nil
}

// AddMatch walks through manual match entry. It fails with ErrDuplicate as
// soon as the player and date identify an existing match.
func AddMatch(p *Prompter, players []store.Player, existing []store.Match, today time.Time) (store.Match, error) {
	if len(players) == 0 {
		return store.Match{}, errors.New("no players registered")
	}
	var mm ManualMatch
	var err error

	labels := make([]string, len(players))
	for i, pl := range players {
		labels[i] = fmt.Sprintf("%s (%s)", pl.Name.JA, pl.Club.ShortName)
	}
	idx, err := p.Select("選手を選択してください:", labels, 0)
	if err != nil {
		return store.Match{}, err
	}
	player := players[idx]
	mm.PlayerID = player.ID

	if mm.Date, err = p.Ask("試合日 (YYYY-MM-DD)", today.Format("2006-01-02"),
		field("required,datetime=2006-01-02", "use the YYYY-MM-DD format")); err != nil {
		return store.Match{}, err
	}
	id := reconcile.MatchID(mm.PlayerID, mm.Date)
	for _, m := range existing {
		if m.MatchID == id {
			return store.Match{}, fmt.Errorf("%w: %s", ErrDuplicate, id)
		}
	}

	ci, err := p.Select("大会を選択:", Competitions, 0)
	if err != nil {
		return store.Match{}, err
	}
	mm.Competition = Competitions[ci]

	required := field("required", "a value is required")
	if mm.HomeTeam, err = p.Ask("ホームチーム名", player.Club.ShortName, required); err != nil {
		return store.Match{}, err
	}
	if mm.HomeScore, err = p.AskInt("ホームスコア", "", 0, 20); err != nil {
		return store.Match{}, err
	}
	if mm.AwayTeam, err = p.Ask("アウェイチーム名", "", required); err != nil {
		return store.Match{}, err
	}
	if mm.AwayScore, err = p.AskInt("アウェイスコア", "", 0, 20); err != nil {
		return store.Match{}, err
	}
	if mm.Minutes, err = p.AskInt("出場時間 (分)", "90", 0, 120); err != nil {
		return store.Match{}, err
	}
	if mm.Goals, err = p.AskInt("ゴール数", "0", 0, 10); err != nil {
		return store.Match{}, err
	}
	if mm.Assists, err = p.AskInt("アシスト数", "0", 0, 10); err != nil {
		return store.Match{}, err
	}
	if mm.Starting, err = p.Confirm("先発出場ですか?", true); err != nil {
		return store.Match{}, err
	}

	position := strings.ToUpper(player.Position)
	if validate.Var(position, "oneof="+strings.Join(Positions, " ")) != nil {
		position = "CM"
	}
	answer, err := p.Ask("ポジション ("+strings.Join(Positions, "/")+")", position, func(s string) error {
		return field("oneof="+strings.Join(Positions, " "), "unknown position")(strings.ToUpper(s))
	})
	if err != nil {
		return store.Match{}, err
	}
	mm.Position = strings.ToUpper(answer)

	rating, err := p.Ask("レーティング (0.0-10.0)", "6.5", func(s string) error {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) || f < 0 || f > 10 {
			return errors.New("enter a number between 0.0 and 10.0")
		}
		return nil
	})
	if err != nil {
		return store.Match{}, err
	}
	mm.Rating, _ = strconv.ParseFloat(rating, 64)

	if mm.Notable, err = p.Confirm("注目試合としてマークしますか?", DefaultNotable(mm.Goals, mm.Assists, mm.Rating)); err != nil {
		return store.Match{}, err
	}

	return mm.Match()
}
