// Package i18n provides the localized labels used by the browser table.
package i18n

import (
	"embed"
	"fmt"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/de"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/fr"
	ut "github.com/go-playground/universal-translator"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFiles embed.FS

// Catalog holds every supported locale. It is read-only once built and safe
// for concurrent use.
type Catalog struct {
	uni      *ut.UniversalTranslator
	fallback ut.Translator
	locales  []string
	matcher  language.Matcher
}

// NewCatalog loads the embedded message files. English is the fallback and
// must define every id in Messages.
func NewCatalog() (*Catalog, error) {
	supported := []locales.Translator{en.New(), de.New(), fr.New()}
	uni := ut.New(supported[0], supported...)

	c := &Catalog{uni: uni, fallback: uni.GetFallback()}
	tags := make([]language.Tag, 0, len(supported))
	for _, l := range supported {
		tr, found := uni.GetTranslator(l.Locale())
		if !found {
			return nil, fmt.Errorf("failed to register locale %s", l.Locale())
		}
		if err := loadMessages(tr); err != nil {
			return nil, err
		}
		c.locales = append(c.locales, l.Locale())
		tags = append(tags, language.Make(l.Locale()))
	}
	c.matcher = language.NewMatcher(tags)

	for _, id := range Messages {
		if _, err := c.fallback.T(string(id)); err != nil {
			return nil, fmt.Errorf("failed to find %s in fallback catalog: %w", id, err)
		}
	}
	return c, nil
}

func loadMessages(tr ut.Translator) error {
	path := "locales/" + tr.Locale() + ".yaml"
	data, err := localeFiles.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	var msgs map[string]string
	if err := yaml.Unmarshal(data, &msgs); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	for id, text := range msgs {
		if err := tr.Add(id, text, false); err != nil {
			return fmt.Errorf("failed to add %s to %s: %w", id, tr.Locale(), err)
		}
	}
	return nil
}

// Locales returns the supported locale names, fallback first.
func (c *Catalog) Locales() []string {
	return append([]string(nil), c.locales...)
}

// Supports reports whether tag matches a catalog locale. Wildcards and
// undetermined tags never match.
func (c *Catalog) Supports(tag language.Tag) bool {
	if tag == language.Und {
		return false
	}
	_, _, conf := c.matcher.Match(tag)
	return conf != language.No
}

// Localizer returns a localizer for the supported locale closest to the
// given BCP 47 tag. Unparseable or unsupported tags get English.
func (c *Catalog) Localizer(locale string) *Localizer {
	idx := 0
	if tag, err := language.Parse(locale); err == nil {
		_, idx, _ = c.matcher.Match(tag)
	}
	name := c.locales[idx]
	tr, _ := c.uni.GetTranslator(name)
	return &Localizer{
		tr:       tr,
		fallback: c.fallback,
		tag:      language.Make(name),
	}
}

// Localizer translates message ids for one locale.
type Localizer struct {
	tr       ut.Translator
	fallback ut.Translator
	tag      language.Tag
}

// Translate never fails: a missing translation falls back to English, then
// to the id itself.
func (l *Localizer) Translate(id MessageID) string {
	if s, err := l.tr.T(string(id)); err == nil {
		return s
	}
	if s, err := l.fallback.T(string(id)); err == nil {
		return s
	}
	return string(id)
}

// Language is the tag labels should be collated under.
func (l *Localizer) Language() language.Tag {
	return l.tag
}
