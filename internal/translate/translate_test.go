package translate

import (
	"testing"

	"golang.org/x/text/unicode/norm"
)

func TestTranslateExact(t *testing.T) {
	if got := Team("Brighton & Hove Albion"); got != "ブライトン" {
		t.Errorf("expected ブライトン, got %q", got)
	}
	if got := League("Premier League"); got != "プレミアリーグ" {
		t.Errorf("expected プレミアリーグ, got %q", got)
	}
}

func TestTranslateSubstringBothDirections(t *testing.T) {
	// name contains key
	if got := Team("1. FSV Mainz 05 II"); got != "マインツ" {
		t.Errorf("expected マインツ, got %q", got)
	}
	// key contains name
	if got := Team("Hotspur"); got != "トッテナム" {
		t.Errorf("expected トッテナム, got %q", got)
	}
}

func TestTranslateIsCaseSensitive(t *testing.T) {
	if got := Team("nec nijmegen"); got != "nec nijmegen" {
		t.Errorf("expected unchanged input, got %q", got)
	}
}

func TestTranslateFirstEntryWins(t *testing.T) {
	m := Mapping{
		{"Real", "first"},
		{"Real Madrid", "second"},
	}
	if got := Translate("Real Madrid CF", m); got != "first" {
		t.Errorf("expected insertion order to decide, got %q", got)
	}
	if got := Translate("Real Madrid", m); got != "second" {
		t.Errorf("expected exact hit to beat substring, got %q", got)
	}
}

func TestTranslateUnknownReturnsInput(t *testing.T) {
	for _, name := range []string{"Go Ahead Eagles", "", "Ψ"} {
		if got := Translate(name, Teams); got != name {
			t.Errorf("expected %q unchanged, got %q", name, got)
		}
	}
	if got := Translate("anything", nil); got != "anything" {
		t.Errorf("expected unchanged with empty mapping, got %q", got)
	}
}

func TestTranslateNormalizesDecomposedInput(t *testing.T) {
	decomposed := norm.NFD.String("Borussia Mönchengladbach")
	if got := Team(decomposed); got != "グラードバッハ" {
		t.Errorf("expected グラードバッハ, got %q", got)
	}
}

func TestSources(t *testing.T) {
	m := Mapping{{"Brighton & Hove Albion", "ブライトン"}, {"Brighton", "ブライトン"}, {"Arsenal", "アーセナル"}}
	got := m.Sources("ブライトン")
	if len(got) != 2 || got[0] != "Brighton & Hove Albion" || got[1] != "Brighton" {
		t.Errorf("expected both Brighton keys, got %v", got)
	}
	if got := m.Sources("チェルシー"); len(got) != 0 {
		t.Errorf("expected no sources, got %v", got)
	}
}
