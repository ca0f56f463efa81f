package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/text/language"
)

var (
	enUS = language.MustParse("en-US")
	deDE = language.MustParse("de-DE")
)

func TestSupportedStartsWithBaseLocale(t *testing.T) {
	t.Parallel()

	tags := Supported()
	if len(tags) < 2 {
		t.Fatalf("Supported() = %v, want at least two locales", tags)
	}
	if tags[0] != enUS {
		t.Fatalf("Supported()[0] = %v, want %v", tags[0], enUS)
	}
}

func TestParseTag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value string
		want  language.Tag
		ok    bool
	}{
		{value: "de-DE", want: deDE, ok: true},
		{value: " de ", want: deDE, ok: true},
		{value: "en", want: enUS, ok: true},
		{value: "ja", ok: false},
		{value: "", ok: false},
		{value: "!!", ok: false},
	}
	for _, tc := range tests {
		got, ok := ParseTag(tc.value)
		if ok != tc.ok {
			t.Fatalf("ParseTag(%q) ok = %v, want %v", tc.value, ok, tc.ok)
		}
		if ok && got != tc.want {
			t.Fatalf("ParseTag(%q) = %v, want %v", tc.value, got, tc.want)
		}
	}
}

func TestDefaultTagFallsBackToBaseLocale(t *testing.T) {
	t.Parallel()

	if got := DefaultTag("de-DE"); got != deDE {
		t.Fatalf("DefaultTag(de-DE) = %v", got)
	}
	if got := DefaultTag("xx-invalid"); got != enUS {
		t.Fatalf("DefaultTag(invalid) = %v, want %v", got, enUS)
	}
}

func TestResolveTagPrecedence(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/dashboard?lang=de-DE", nil)
	req.AddCookie(&http.Cookie{Name: LangCookieName, Value: "en-US"})
	req.Header.Set("Accept-Language", "en-US")
	tag, persist := ResolveTag(req, enUS)
	if tag != deDE || !persist {
		t.Fatalf("query: ResolveTag = %v/%v, want %v/true", tag, persist, deDE)
	}

	req = httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: LangCookieName, Value: "de-DE"})
	req.Header.Set("Accept-Language", "en-US")
	tag, persist = ResolveTag(req, enUS)
	if tag != deDE || persist {
		t.Fatalf("cookie: ResolveTag = %v/%v, want %v/false", tag, persist, deDE)
	}

	req = httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.Header.Set("Accept-Language", "fr-FR, de;q=0.8")
	tag, _ = ResolveTag(req, enUS)
	if tag != deDE {
		t.Fatalf("accept-language: ResolveTag = %v, want %v", tag, deDE)
	}

	req = httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.Header.Set("Accept-Language", "ja")
	tag, _ = ResolveTag(req, deDE)
	if tag != deDE {
		t.Fatalf("fallback: ResolveTag = %v, want %v", tag, deDE)
	}

	if tag, _ := ResolveTag(nil, enUS); tag != enUS {
		t.Fatalf("nil request: ResolveTag = %v", tag)
	}
}

func TestResolveLocalizerPersistsQueryChoice(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/dashboard?lang=de", nil)
	rr := httptest.NewRecorder()
	loc, lang := ResolveLocalizer(rr, req, "en-US")
	if lang != "de-DE" {
		t.Fatalf("lang = %q, want de-DE", lang)
	}
	if got := loc.Sprintf("web.dashboard.customer_growth"); got != "Kundenwachstum" {
		t.Fatalf("localized = %q, want Kundenwachstum", got)
	}
	cookies := rr.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != LangCookieName || cookies[0].Value != "de-DE" {
		t.Fatalf("cookies = %v, want %s=de-DE", cookies, LangCookieName)
	}
}

func TestResolveLocalizerUsesDefaultLocaleWithoutCookie(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	_, lang := ResolveLocalizer(rr, httptest.NewRequest(http.MethodGet, "/", nil), "de-DE")
	if lang != "de-DE" {
		t.Fatalf("lang = %q, want de-DE", lang)
	}
	if len(rr.Result().Cookies()) != 0 {
		t.Fatalf("unexpected cookie for implicit locale")
	}
}
