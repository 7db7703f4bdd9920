/*
Package locale turns evaluation codes into display text.

PURPOSE:
  The evaluator returns semantic codes (message, advice, condition, field
  error). All human-readable text lives in per-locale YAML catalogs embedded
  in this package, so adding a language never touches evaluation logic.

CATALOG FILES:
  locales/<tag>.yaml

    locale: ja-JP
    date_layout: "2006年1月2日"
    messages:
      advice.submission_timing: "..."

  The file name must match the locale field. en-US is the base locale: it
  must define every key in RequiredKeys, and any key missing from another
  locale falls back to it.

FORMATTING:
  Messages are registered in an x/text catalog.Builder and rendered with a
  message.Printer, so numeric verbs (%.1f) use locale-aware formatting.

SEE ALSO:
  - render.go: Report built from a childcare.Result
  - childcare/types.go: code definitions
*/
package locale

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"

	"github.com/warp/leave-eligibility/childcare"
)

// BaseLocale is the canonical locale every key must exist in.
var BaseLocale = language.AmericanEnglish

// Label keys used by renderers in addition to the evaluator codes.
const (
	LabelEligible        = "label.eligible"
	LabelNotEligible     = "label.not_eligible"
	LabelOneYearBirthday = "label.one_year_birthday"
	LabelOneHalfBirthday = "label.one_half_year_birthday"
	LabelConditions      = "label.conditions"
	LabelAdvice          = "label.advice"
	LabelTenureAtBirth   = "label.tenure_at_birth"
)

const defaultDateLayout = "2006-01-02"

//go:embed locales/*.yaml
var embeddedFS embed.FS

type catalogFile struct {
	Locale     string            `yaml:"locale"`
	DateLayout string            `yaml:"date_layout"`
	Messages   map[string]string `yaml:"messages"`
}

// Catalog holds the messages of every loaded locale.
type Catalog struct {
	tags    []language.Tag // base locale first
	texts   map[language.Tag]map[string]string
	layouts map[language.Tag]string
	matcher language.Matcher
	builder *catalog.Builder
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the catalog built from the embedded locale files.
// It panics if they are invalid; tests guard against that.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := LoadFS(embeddedFS)
		if err != nil {
			panic(fmt.Sprintf("locale: load embedded catalogs: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// RequiredKeys lists every key the base locale must define.
func RequiredKeys() []string {
	keys := []string{
		LabelEligible, LabelNotEligible, LabelOneYearBirthday, LabelOneHalfBirthday,
		LabelConditions, LabelAdvice, LabelTenureAtBirth,
	}
	for _, c := range childcare.MessageCodes {
		keys = append(keys, c.Key())
	}
	for _, c := range childcare.ReasonCodes {
		keys = append(keys, c.Key())
	}
	for _, c := range childcare.ConditionCodes {
		keys = append(keys, c.Key())
	}
	return append(keys, childcare.FieldErrorKeys...)
}

// LoadFS loads locales/*.yaml from fsys.
func LoadFS(fsys fs.FS) (*Catalog, error) {
	paths, err := fs.Glob(fsys, "locales/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no locale catalogs found")
	}
	sort.Strings(paths)

	c := &Catalog{
		texts:   map[language.Tag]map[string]string{},
		layouts: map[language.Tag]string{},
		builder: catalog.NewBuilder(catalog.Fallback(BaseLocale)),
	}

	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", p, err)
		}
		if err := c.add(p, data); err != nil {
			return nil, err
		}
	}

	base, ok := c.texts[BaseLocale]
	if !ok {
		return nil, fmt.Errorf("base locale %s is not defined", BaseLocale)
	}
	var missing []string
	for _, key := range RequiredKeys() {
		if _, ok := base[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("base locale %s is missing keys: %s", BaseLocale, strings.Join(missing, ", "))
	}

	// Printers never see a missing key: base texts fill the gaps.
	for _, tag := range c.tags {
		if tag == BaseLocale {
			continue
		}
		for key, value := range base {
			if _, ok := c.texts[tag][key]; ok {
				continue
			}
			if err := c.builder.SetString(tag, key, value); err != nil {
				return nil, fmt.Errorf("register fallback %q for %s: %w", key, tag, err)
			}
		}
	}

	sort.SliceStable(c.tags, func(i, j int) bool {
		if c.tags[i] == BaseLocale || c.tags[j] == BaseLocale {
			return c.tags[i] == BaseLocale
		}
		return c.tags[i].String() < c.tags[j].String()
	})
	c.matcher = language.NewMatcher(c.tags)
	return c, nil
}

func (c *Catalog) add(p string, data []byte) error {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parse catalog %s: %w", p, err)
	}

	name := strings.TrimSuffix(path.Base(p), path.Ext(p))
	if strings.TrimSpace(file.Locale) != name {
		return fmt.Errorf("catalog %s: locale %q must match file name %q", p, file.Locale, name)
	}
	tag, err := language.Parse(name)
	if err != nil {
		return fmt.Errorf("catalog %s: parse locale tag: %w", p, err)
	}
	if _, exists := c.texts[tag]; exists {
		return fmt.Errorf("catalog %s: locale %s defined twice", p, tag)
	}
	if len(file.Messages) == 0 {
		return fmt.Errorf("catalog %s: messages are required", p)
	}

	texts := make(map[string]string, len(file.Messages))
	for key, value := range file.Messages {
		key = strings.TrimSpace(key)
		if key == "" {
			return fmt.Errorf("catalog %s: message key cannot be blank", p)
		}
		if err := c.builder.SetString(tag, key, value); err != nil {
			return fmt.Errorf("catalog %s: register %q: %w", p, key, err)
		}
		texts[key] = value
	}

	c.tags = append(c.tags, tag)
	c.texts[tag] = texts
	c.layouts[tag] = file.DateLayout
	return nil
}

// Supported returns the loaded locales, base locale first.
func (c *Catalog) Supported() []language.Tag {
	out := make([]language.Tag, len(c.tags))
	copy(out, c.tags)
	return out
}

// Match returns the best supported locale for the preferred tags, or the
// base locale when nothing matches.
func (c *Catalog) Match(preferred ...language.Tag) language.Tag {
	if len(preferred) == 0 {
		return BaseLocale
	}
	_, idx, conf := c.matcher.Match(preferred...)
	if conf == language.No {
		return BaseLocale
	}
	return c.tags[idx]
}

// ParseTag resolves a user-supplied locale string. ok is false when the
// string is malformed or matches no supported locale.
func (c *Catalog) ParseTag(s string) (tag language.Tag, ok bool) {
	parsed, err := language.Parse(strings.TrimSpace(s))
	if err != nil {
		return BaseLocale, false
	}
	_, idx, conf := c.matcher.Match(parsed)
	if conf == language.No {
		return BaseLocale, false
	}
	return c.tags[idx], true
}

// MatchAcceptLanguage resolves an Accept-Language header value, trying the
// listed languages by preference. ok is false when the header is empty,
// malformed, or names no supported locale.
func (c *Catalog) MatchAcceptLanguage(header string) (tag language.Tag, ok bool) {
	tags, _, err := language.ParseAcceptLanguage(strings.TrimSpace(header))
	if err != nil {
		return BaseLocale, false
	}
	for _, t := range tags {
		if match, found := c.ParseTag(t.String()); found {
			return match, true
		}
	}
	return BaseLocale, false
}

// Text returns the raw message for key, falling back to the base locale.
func (c *Catalog) Text(tag language.Tag, key string) (string, bool) {
	if texts, ok := c.texts[c.Match(tag)]; ok {
		if v, ok := texts[key]; ok {
			return v, true
		}
	}
	v, ok := c.texts[BaseLocale][key]
	return v, ok
}

// Printer returns an x/text printer bound to this catalog.
func (c *Catalog) Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(c.Match(tag), message.Catalog(c.builder))
}

// DateLayout returns the Go time layout used to display dates in tag.
func (c *Catalog) DateLayout(tag language.Tag) string {
	if layout := c.layouts[c.Match(tag)]; layout != "" {
		return layout
	}
	if layout := c.layouts[BaseLocale]; layout != "" {
		return layout
	}
	return defaultDateLayout
}
