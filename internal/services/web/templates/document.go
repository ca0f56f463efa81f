package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/socialcrm/internal/services/web/components/icon"
)

const (
	appNameKey          = "web.app.name"
	appDescriptionKey   = "web.app.description"
	navDashboardKey     = "web.nav.dashboard"
	defaultDocumentLang = "en-US"
)

// DocumentOptions configures the HTML document shell.
type DocumentOptions struct {
	// Title is the page title; the application name is appended.
	Title string
	// Lang is the html lang attribute; defaults to en-US.
	Lang string
	// Description overrides the localized meta description.
	Description string
	Loc         Localizer
	// Scripts renders at the end of body.
	Scripts templ.Component
}

// DocumentTitle formats "<page> | <app>", or just the app name when page is empty.
func DocumentTitle(page string, loc Localizer) string {
	appName := T(loc, appNameKey)
	page = strings.TrimSpace(page)
	if page == "" {
		return appName
	}
	return page + " | " + appName
}

// Document renders the full HTML skeleton around the children in ctx.
func Document(opts DocumentOptions) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		children := templ.GetChildren(ctx)
		if children == nil {
			children = templ.NopComponent
		}
		ctx = templ.ClearChildren(ctx)

		lang := strings.TrimSpace(opts.Lang)
		if lang == "" {
			lang = defaultDocumentLang
		}
		description := strings.TrimSpace(opts.Description)
		if description == "" {
			description = T(opts.Loc, appDescriptionKey)
		}

		var head strings.Builder
		head.WriteString(`<!doctype html><html lang="` + templ.EscapeString(lang) + `"><head>`)
		head.WriteString(`<meta charset="utf-8">`)
		head.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		head.WriteString(`<meta name="description" content="` + templ.EscapeString(description) + `">`)
		head.WriteString(`<title>` + templ.EscapeString(DocumentTitle(opts.Title, opts.Loc)) + `</title>`)
		head.WriteString(`<link rel="stylesheet" href="/static/app.css">`)
		head.WriteString(`<link rel="apple-touch-icon" sizes="180x180" href="/static/icon.svg">`)
		head.WriteString(`<link rel="icon" type="image/svg+xml" sizes="32x32" href="/static/icon.svg">`)
		head.WriteString(`<link rel="icon" type="image/svg+xml" sizes="16x16" href="/static/icon.svg">`)
		head.WriteString(`<link rel="manifest" href="/static/site.webmanifest">`)
		head.WriteString(`<link rel="icon" href="/static/icon.svg">`)
		head.WriteString(`</head><body class="min-h-screen bg-zinc-50 text-zinc-900 antialiased">`)
		if _, err := io.WriteString(w, head.String()); err != nil {
			return err
		}
		if err := icon.Sprite().Render(ctx, w); err != nil {
			return err
		}
		if err := children.Render(ctx, w); err != nil {
			return err
		}
		if opts.Scripts != nil {
			if err := opts.Scripts.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}
