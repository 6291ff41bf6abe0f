// Package locale supplies localized labels and the flavor list from embedded
// go-i18n message files.
package locale

import (
	"embed"
	"fmt"
	"io/fs"
	"path"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed messages/*.toml
var messageFS embed.FS

// FlavorIDs are the message IDs of the offered flavors, in display order.
var FlavorIDs = []string{"Vanilla", "Chocolate", "RedVelvet", "SaltedCaramel", "Coffee"}

// Localizer resolves message IDs for one language.
type Localizer struct {
	tag language.Tag
	loc *i18n.Localizer
}

// NewBundle loads every embedded message file into a bundle defaulting to English.
func NewBundle() (*i18n.Bundle, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	files, err := fs.Glob(messageFS, "messages/*.toml")
	if err != nil {
		return nil, fmt.Errorf("list message files: %w", err)
	}
	for _, f := range files {
		if _, err := bundle.LoadMessageFileFS(messageFS, f); err != nil {
			return nil, fmt.Errorf("load %s: %w", path.Base(f), err)
		}
	}
	return bundle, nil
}

// New returns a Localizer for lang. Languages without a message file fall back
// to English.
func New(lang string) (*Localizer, error) {
	bundle, err := NewBundle()
	if err != nil {
		return nil, err
	}
	matcher := language.NewMatcher(bundle.LanguageTags())
	requested, _ := language.Parse(lang)
	_, idx, _ := matcher.Match(requested)
	tag := bundle.LanguageTags()[idx]
	return &Localizer{tag: tag, loc: i18n.NewLocalizer(bundle, tag.String())}, nil
}

func (l *Localizer) Tag() language.Tag { return l.tag }

// T returns the message for id, or id itself when the message is missing.
func (l *Localizer) T(id string) string {
	return l.TData(id, nil)
}

func (l *Localizer) TData(id string, data map[string]any) string {
	msg, err := l.loc.Localize(&i18n.LocalizeConfig{MessageID: id, TemplateData: data})
	if err != nil {
		return id
	}
	return msg
}

// Cupcakes renders a pluralised count such as "1 cupcake" or "6 cupcakes".
func (l *Localizer) Cupcakes(n int) string {
	msg, err := l.loc.Localize(&i18n.LocalizeConfig{
		MessageID:    "Cupcakes",
		PluralCount:  n,
		TemplateData: map[string]any{"Count": n},
	})
	if err != nil {
		return fmt.Sprintf("%d", n)
	}
	return msg
}

// Flavors returns the localized flavor labels in display order.
func (l *Localizer) Flavors() []string {
	out := make([]string, 0, len(FlavorIDs))
	for _, id := range FlavorIDs {
		out = append(out, l.T(id))
	}
	return out
}
