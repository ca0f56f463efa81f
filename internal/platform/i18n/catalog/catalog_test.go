package catalog

import (
	"strings"
	"testing"
	"testing/fstest"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func catalogFS(files map[string]string) fstest.MapFS {
	fsys := fstest.MapFS{}
	for name, body := range files {
		fsys[name] = &fstest.MapFile{Data: []byte(body)}
	}
	return fsys
}

func TestLoadEmbeddedHasExpectedLocales(t *testing.T) {
	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	got := bundle.Locales()
	if len(got) != 2 || got[0] != "de-DE" || got[1] != BaseLocale {
		t.Fatalf("Locales() = %v, want [de-DE en-US]", got)
	}
}

func TestEmbeddedLocalesDefineEveryBaseKey(t *testing.T) {
	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	for key := range bundle.messages[BaseLocale] {
		for _, locale := range bundle.Locales() {
			if _, ok := bundle.messages[locale][key]; !ok {
				t.Errorf("locale %s missing key %q", locale, key)
			}
		}
	}
}

func TestLoadFromFSRejectsDuplicateKeysAcrossNamespaces(t *testing.T) {
	_, err := LoadFromFS(catalogFS(map[string]string{
		"locales/en-US/core.yaml": "locale: \"en-US\"\nnamespace: \"core\"\nmessages:\n  \"a.key\": \"a\"\n",
		"locales/en-US/web.yaml":  "locale: \"en-US\"\nnamespace: \"web\"\nmessages:\n  \"a.key\": \"b\"\n",
	}))
	if err == nil || !strings.Contains(err.Error(), "duplicate key") {
		t.Fatalf("err = %v, want duplicate key error", err)
	}
}

func TestLoadFromFSRejectsLocaleMismatch(t *testing.T) {
	_, err := LoadFromFS(catalogFS(map[string]string{
		"locales/en-US/web.yaml": "locale: \"de-DE\"\nnamespace: \"web\"\nmessages:\n  \"a.key\": \"a\"\n",
	}))
	if err == nil || !strings.Contains(err.Error(), "must match directory") {
		t.Fatalf("err = %v, want locale mismatch error", err)
	}
}

func TestLoadFromFSRejectsNamespaceMismatch(t *testing.T) {
	_, err := LoadFromFS(catalogFS(map[string]string{
		"locales/en-US/web.yaml": "locale: \"en-US\"\nnamespace: \"core\"\nmessages:\n  \"a.key\": \"a\"\n",
	}))
	if err == nil || !strings.Contains(err.Error(), "must match file name") {
		t.Fatalf("err = %v, want namespace mismatch error", err)
	}
}

func TestLoadFromFSRequiresBaseLocale(t *testing.T) {
	_, err := LoadFromFS(catalogFS(map[string]string{
		"locales/de-DE/web.yaml": "locale: \"de-DE\"\nnamespace: \"web\"\nmessages:\n  \"a.key\": \"a\"\n",
	}))
	if err == nil || !strings.Contains(err.Error(), "base locale") {
		t.Fatalf("err = %v, want missing base locale error", err)
	}
}

func TestLoadFromFSRejectsKeysAbsentFromBase(t *testing.T) {
	_, err := LoadFromFS(catalogFS(map[string]string{
		"locales/en-US/web.yaml": "locale: \"en-US\"\nnamespace: \"web\"\nmessages:\n  \"a.key\": \"a\"\n",
		"locales/de-DE/web.yaml": "locale: \"de-DE\"\nnamespace: \"web\"\nmessages:\n  \"b.key\": \"b\"\n",
	}))
	if err == nil || !strings.Contains(err.Error(), `"b.key"`) {
		t.Fatalf("err = %v, want unknown key error", err)
	}
}

func TestLoadFromFSRejectsMalformedYAML(t *testing.T) {
	_, err := LoadFromFS(catalogFS(map[string]string{
		"locales/en-US/web.yaml": "locale: [\n",
	}))
	if err == nil || !strings.Contains(err.Error(), "decode catalog") {
		t.Fatalf("err = %v, want decode error", err)
	}
}

func TestMessageFallsBackToBaseLocale(t *testing.T) {
	bundle := Default()
	got, ok := bundle.Message("fr-FR", "web.not_found.message")
	if !ok || got != "The page you are looking for does not exist." {
		t.Fatalf("Message(fr-FR) = %q, %v", got, ok)
	}
	if got, ok := bundle.Message("de-DE", "web.not_found.message"); !ok || got != "Die gesuchte Seite existiert nicht." {
		t.Fatalf("Message(de-DE) = %q, %v", got, ok)
	}
	if _, ok := bundle.Message(BaseLocale, "web.missing"); ok {
		t.Fatalf("Message(missing) reported ok")
	}
}

func TestRegisterFillsMissingKeysFromBase(t *testing.T) {
	bundle, err := LoadFromFS(catalogFS(map[string]string{
		"locales/en-US/web.yaml": "locale: \"en-US\"\nnamespace: \"web\"\nmessages:\n  \"test.fill.greeting\": \"hello\"\n  \"test.fill.farewell\": \"bye\"\n",
		"locales/fr-FR/web.yaml": "locale: \"fr-FR\"\nnamespace: \"web\"\nmessages:\n  \"test.fill.greeting\": \"bonjour\"\n",
	}))
	if err != nil {
		t.Fatalf("LoadFromFS() error = %v", err)
	}
	if err := bundle.Register(); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	printer := message.NewPrinter(language.MustParse("fr-FR"))
	if got := printer.Sprintf("test.fill.greeting"); got != "bonjour" {
		t.Fatalf("greeting = %q, want bonjour", got)
	}
	if got := printer.Sprintf("test.fill.farewell"); got != "bye" {
		t.Fatalf("farewell = %q, want base fallback bye", got)
	}
}

func TestTagsListsBaseLocaleFirst(t *testing.T) {
	tags := Default().Tags()
	if len(tags) != 2 {
		t.Fatalf("tags = %v, want 2 entries", tags)
	}
	if tags[0] != language.MustParse(BaseLocale) {
		t.Fatalf("tags[0] = %v, want %s", tags[0], BaseLocale)
	}
}

func TestDefaultRegistersPrinterMessages(t *testing.T) {
	_ = Default()
	printer := message.NewPrinter(language.MustParse("de-DE"))
	if got := printer.Sprintf("web.time.minutes_ago", 5); got != "vor 5 Minuten" {
		t.Fatalf("Sprintf = %q, want %q", got, "vor 5 Minuten")
	}
}
