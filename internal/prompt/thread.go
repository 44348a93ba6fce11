package prompt

import (
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/masatokato67/kaigaigumi/internal/store"
)

// ManualReply is a thread reply typed in by hand.
type ManualReply struct {
	Username       string `validate:"required"`
	LanguageCode   string `validate:"required,langcode"`
	OriginalText   string `validate:"required"`
	TranslatedText string `validate:"required"`
	Likes          int    `validate:"min=0"`
}

// ManualThread is a thread typed in by hand.
type ManualThread struct {
	Username       string        `validate:"required"`
	LanguageCode   string        `validate:"required,langcode"`
	OriginalText   string        `validate:"required"`
	TranslatedText string        `validate:"required"`
	Likes          int           `validate:"min=0"`
	Retweets       int           `validate:"min=0"`
	Replies        []ManualReply `validate:"dive"`
	Verified       bool
}

// Thread validates the entry and converts it.
func (mt ManualThread) Thread() (store.XThread, error) {
	if err := validate.Struct(mt); err != nil {
		return store.XThread{}, describe(err)
	}
	replies := make([]store.ThreadReply, len(mt.Replies))
	for i, r := range mt.Replies {
		replies[i] = store.ThreadReply{
			ID:             "r_" + uuid.NewString(),
			Username:       r.Username,
			LanguageCode:   r.LanguageCode,
			OriginalText:   r.OriginalText,
			TranslatedText: r.TranslatedText,
			Likes:          r.Likes,
		}
	}
	return store.XThread{
		ID:             "t_" + uuid.NewString(),
		Username:       mt.Username,
		Verified:       mt.Verified,
		LanguageCode:   mt.LanguageCode,
		OriginalText:   mt.OriginalText,
		TranslatedText: mt.TranslatedText,
		Likes:          mt.Likes,
		Retweets:       mt.Retweets,
		Replies:        replies,
	}, nil
}

func askLanguage(p *Prompter, label string) (string, error) {
	lang, err := p.Ask(label+" ("+strings.Join(LanguageCodes, "/")+")", "EN", func(s string) error {
		return field("langcode", "unsupported language code")(strings.ToUpper(s))
	})
	return strings.ToUpper(lang), err
}

func askReply(p *Prompter) (ManualReply, error) {
	required := field("required", "a value is required")
	var r ManualReply
	var err error
	if r.Username, err = p.Ask("返信ユーザー名", "", required); err != nil {
		return r, err
	}
	if r.LanguageCode, err = askLanguage(p, "返信の言語"); err != nil {
		return r, err
	}
	if r.OriginalText, err = p.Ask("返信原文", "", required); err != nil {
		return r, err
	}
	if r.TranslatedText, err = p.Ask("返信翻訳", "", required); err != nil {
		return r, err
	}
	r.Likes, err = p.AskInt("いいね数", "0", 0, math.MaxInt32)
	return r, err
}

// AddThread appends threads to md until the user stops, returning how many
// were added. Each thread takes any number of replies.
func AddThread(p *Prompter, md *store.MatchMediaData) (int, error) {
	fmt.Fprintf(p.out, "現在のXスレッド: %d件\n", len(md.XThreads))

	required := field("required", "a value is required")
	added := 0
	for {
		var mt ManualThread
		var err error
		if mt.Username, err = p.Ask("ユーザー名 (例: @SkySports)", "", required); err != nil {
			return added, err
		}
		if mt.Verified, err = p.Confirm("認証済みアカウントですか?", false); err != nil {
			return added, err
		}
		if mt.LanguageCode, err = askLanguage(p, "言語"); err != nil {
			return added, err
		}
		if mt.OriginalText, err = p.Ask("原文", "", required); err != nil {
			return added, err
		}
		if mt.TranslatedText, err = p.Ask("翻訳文 (日本語)", "", required); err != nil {
			return added, err
		}
		if mt.Likes, err = p.AskInt("いいね数", "0", 0, math.MaxInt32); err != nil {
			return added, err
		}
		if mt.Retweets, err = p.AskInt("リツイート数", "0", 0, math.MaxInt32); err != nil {
			return added, err
		}

		for {
			more, err := p.Confirm("返信を追加しますか?", false)
			if err != nil {
				return added, err
			}
			if !more {
				break
			}
			r, err := askReply(p)
			if err != nil {
				return added, err
			}
			mt.Replies = append(mt.Replies, r)
			fmt.Fprintf(p.out, "✅ 返信を追加しました (計%d件)\n", len(mt.Replies))
		}

		thread, err := mt.Thread()
		if err != nil {
			return added, err
		}
		verified := ""
		if thread.Verified {
			verified = " ✓"
		}
		fmt.Fprintf(p.out, "%s%s [%s] ❤️ %d 🔁 %d 💬 %d\n",
			thread.Username, verified, thread.LanguageCode, thread.Likes, thread.Retweets, len(thread.Replies))

		ok, err := p.Confirm("この内容で追加しますか?", true)
		if err != nil {
			return added, err
		}
		if ok {
			md.XThreads = append(md.XThreads, thread)
			added++
		}

		more, err := p.Confirm("続けてスレッドを追加しますか?", false)
		if err != nil || !more {
			return added, err
		}
	}
}
