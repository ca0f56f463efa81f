// Package catalog loads the embedded YAML message catalogs and registers
// them with golang.org/x/text/message.
package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// BaseLocale is the source locale. Other locales may omit its keys, which
// then fall back to the base text, but may not add keys of their own.
const BaseLocale = "en-US"

// file is one locales/<locale>/<namespace>.yaml document.
type file struct {
	Locale    string            `yaml:"locale"`
	Namespace string            `yaml:"namespace"`
	Messages  map[string]string `yaml:"messages"`
}

// Bundle holds the merged messages of every namespace file, per locale.
type Bundle struct {
	messages map[string]map[string]string
}

//go:embed locales/*/*.yaml
var localesFS embed.FS

var defaultBundle = mustLoadDefault()

// Default returns the embedded bundle, already registered with x/text.
func Default() *Bundle {
	return defaultBundle
}

// LoadEmbedded loads the catalogs compiled into this package.
func LoadEmbedded() (*Bundle, error) {
	return LoadFromFS(localesFS)
}

// LoadFromFS loads locales/*/*.yaml from fsys.
func LoadFromFS(fsys fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(fsys, "locales/*/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files found")
	}
	sort.Strings(paths)

	b := &Bundle{messages: map[string]map[string]string{}}
	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", p, err)
		}
		var f file
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("decode catalog %s: %w", p, err)
		}
		if err := b.add(p, f); err != nil {
			return nil, err
		}
	}
	if err := b.validate(); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Bundle) add(p string, f file) error {
	locale := strings.TrimSpace(f.Locale)
	if want := path.Base(path.Dir(p)); locale != want {
		return fmt.Errorf("catalog %s: locale %q must match directory %q", p, locale, want)
	}
	if want := strings.TrimSuffix(path.Base(p), ".yaml"); strings.TrimSpace(f.Namespace) != want {
		return fmt.Errorf("catalog %s: namespace %q must match file name %q", p, f.Namespace, want)
	}
	if len(f.Messages) == 0 {
		return fmt.Errorf("catalog %s: no messages", p)
	}

	messages, ok := b.messages[locale]
	if !ok {
		messages = make(map[string]string, len(f.Messages))
		b.messages[locale] = messages
	}
	for key, value := range f.Messages {
		key = strings.TrimSpace(key)
		if key == "" {
			return fmt.Errorf("catalog %s: blank message key", p)
		}
		if _, dup := messages[key]; dup {
			return fmt.Errorf("catalog %s: duplicate key %q in locale %q", p, key, locale)
		}
		messages[key] = value
	}
	return nil
}

func (b *Bundle) validate() error {
	base, ok := b.messages[BaseLocale]
	if !ok {
		return fmt.Errorf("base locale %s is not defined in catalogs", BaseLocale)
	}
	for locale, messages := range b.messages {
		if _, err := language.Parse(locale); err != nil {
			return fmt.Errorf("parse locale tag %q: %w", locale, err)
		}
		for key := range messages {
			if _, ok := base[key]; !ok {
				return fmt.Errorf("locale %s defines key %q absent from %s", locale, key, BaseLocale)
			}
		}
	}
	return nil
}

// Register installs every locale into the x/text default catalog, under the
// full tag and its base language. Keys a locale omits get the base text.
func (b *Bundle) Register() error {
	if b == nil {
		return nil
	}
	base := b.messages[BaseLocale]
	for _, locale := range b.Locales() {
		tags, err := registerTags(locale)
		if err != nil {
			return err
		}
		messages := b.messages[locale]
		for key, fallback := range base {
			value, ok := messages[key]
			if !ok {
				value = fallback
			}
			for _, tag := range tags {
				if err := message.SetString(tag, key, value); err != nil {
					return fmt.Errorf("register %s %q: %w", locale, key, err)
				}
			}
		}
	}
	return nil
}

func registerTags(locale string) ([]language.Tag, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale tag %q: %w", locale, err)
	}
	tags := []language.Tag{tag}
	if base, confidence := tag.Base(); confidence != language.No {
		if baseTag := language.Make(base.String()); baseTag != tag {
			tags = append(tags, baseTag)
		}
	}
	return tags, nil
}

// Locales returns the catalog locales in sorted order.
func (b *Bundle) Locales() []string {
	if b == nil {
		return nil
	}
	out := make([]string, 0, len(b.messages))
	for locale := range b.messages {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}

// Tags returns the catalog language tags with the base locale first, the
// order language.NewMatcher expects.
func (b *Bundle) Tags() []language.Tag {
	tags := []language.Tag{language.MustParse(BaseLocale)}
	for _, locale := range b.Locales() {
		if locale == BaseLocale {
			continue
		}
		tags = append(tags, language.MustParse(locale))
	}
	return tags
}

// Message returns the text for key in locale, falling back to the base
// locale when locale is unknown or lacks the key.
func (b *Bundle) Message(locale, key string) (string, bool) {
	if b == nil {
		return "", false
	}
	key = strings.TrimSpace(key)
	if value, ok := b.messages[strings.TrimSpace(locale)][key]; ok {
		return value, true
	}
	value, ok := b.messages[BaseLocale][key]
	return value, ok
}

func mustLoadDefault() *Bundle {
	b, err := LoadEmbedded()
	if err != nil {
		panic(err)
	}
	if err := b.Register(); err != nil {
		panic(err)
	}
	return b
}
