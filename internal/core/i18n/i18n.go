// Package i18n resolves message keys to localized display strings.
package i18n

import (
	"embed"
	"fmt"
	"os"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yml
var localeFS embed.FS

// Fallback is the locale used when a key or locale is missing
const Fallback = "en"

var (
	supported = []language.Tag{
		language.English,
		language.SimplifiedChinese,
	}
	supportedNames = []string{"en", "zh-CN"}
	matcher        = language.NewMatcher(supported)

	tablesOnce sync.Once
	tables     map[string]map[string]string
	tablesErr  error
)

// Translate maps a message key to display text
type Translate func(key string) string

// Translator looks keys up in one locale, falling back to English and
// finally to the key itself.
type Translator struct {
	table    map[string]string
	fallback map[string]string
}

// New returns a translator for the supported locale closest to locale
func New(locale string) (*Translator, error) {
	all, err := loadTables()
	if err != nil {
		return nil, err
	}
	name := Match(locale)
	return &Translator{
		table:    all[name],
		fallback: all[Fallback],
	}, nil
}

// T translates key
func (t *Translator) T(key string) string {
	if v, ok := t.table[key]; ok {
		return v
	}
	if v, ok := t.fallback[key]; ok {
		return v
	}
	return key
}

// Func exposes T as an injectable function value
func (t *Translator) Func() Translate {
	return t.T
}

// Match picks the supported locale closest to a BCP 47 or POSIX locale
// string such as "zh_CN.UTF-8".
func Match(locale string) string {
	tag, err := language.Parse(posixToBCP47(locale))
	if err != nil {
		return Fallback
	}
	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return Fallback
	}
	return supportedNames[index]
}

// DetectLocale reads the process locale from the usual environment variables
func DetectLocale() string {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(key); v != "" && v != "C" && v != "POSIX" {
			return Match(v)
		}
	}
	return Fallback
}

func posixToBCP47(locale string) string {
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	return strings.ReplaceAll(locale, "_", "-")
}

func loadTables() (map[string]map[string]string, error) {
	tablesOnce.Do(func() {
		tables = make(map[string]map[string]string, len(supportedNames))
		for _, name := range supportedNames {
			data, err := localeFS.ReadFile("locales/" + name + ".yml")
			if err != nil {
				tablesErr = fmt.Errorf("failed to read locale %s: %w", name, err)
				return
			}
			table := make(map[string]string)
			if err := yaml.Unmarshal(data, &table); err != nil {
				tablesErr = fmt.Errorf("failed to parse locale %s: %w", name, err)
				return
			}
			tables[name] = table
		}
	})
	return tables, tablesErr
}
