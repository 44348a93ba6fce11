package prompt

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/masatokato67/kaigaigumi/internal/store"
)

var roleKeys = []string{store.RoleSupporter, store.RoleJournalist, store.RoleAnalyst}

// ManualVoice is a local voice typed in by hand.
type ManualVoice struct {
	Username       string `validate:"required"`
	RoleKey        string `validate:"required,oneof=supporter journalist analyst"`
	LanguageCode   string `validate:"required,langcode"`
	OriginalText   string `validate:"required"`
	TranslatedText string `validate:"required"`
}

// Voice validates the entry and converts it.
func (mv ManualVoice) Voice() (store.LocalVoice, error) {
	if err := validate.Struct(mv); err != nil {
		return store.LocalVoice{}, describe(err)
	}
	return store.LocalVoice{
		ID:             "v_" + uuid.NewString(),
		Username:       mv.Username,
		Role:           store.RoleLabels[mv.RoleKey],
		RoleKey:        mv.RoleKey,
		LanguageCode:   mv.LanguageCode,
		OriginalText:   mv.OriginalText,
		TranslatedText: mv.TranslatedText,
	}, nil
}

// AddVoices appends voices to md until the user stops, returning how many
// were added.
func AddVoices(p *Prompter, md *store.MatchMediaData) (int, error) {
	fmt.Fprintf(p.out, "現在の現地の声: %d件\n", len(md.LocalVoices))

	required := field("required", "a value is required")
	roleLabels := make([]string, len(roleKeys))
	for i, k := range roleKeys {
		roleLabels[i] = store.RoleLabels[k]
	}

	added := 0
	for {
		var mv ManualVoice
		var err error
		if mv.Username, err = p.Ask("ユーザー名 (例: @BrightonFan123)", "", required); err != nil {
			return added, err
		}
		ri, err := p.Select("役割:", roleLabels, 0)
		if err != nil {
			return added, err
		}
		mv.RoleKey = roleKeys[ri]

		if mv.LanguageCode, err = askLanguage(p, "言語"); err != nil {
			return added, err
		}

		if mv.OriginalText, err = p.Ask("原文", "", required); err != nil {
			return added, err
		}
		if mv.TranslatedText, err = p.Ask("翻訳文 (日本語)", "", required); err != nil {
			return added, err
		}

		voice, err := mv.Voice()
		if err != nil {
			return added, err
		}
		ok, err := p.Confirm("この内容で追加しますか?", true)
		if err != nil {
			return added, err
		}
		if ok {
			md.LocalVoices = append(md.LocalVoices, voice)
			added++
		}

		more, err := p.Confirm("続けて追加しますか?", false)
		if err != nil || !more {
			return added, err
		}
	}
}
