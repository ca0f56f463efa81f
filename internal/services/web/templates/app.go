package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/socialcrm/internal/platform/icons"
	"github.com/louisbranch/socialcrm/internal/services/web/components/icon"
	"github.com/louisbranch/socialcrm/internal/services/web/components/layout"
	"github.com/louisbranch/socialcrm/internal/services/web/components/ui"
)

// MainID is the DOM id of the region HTMX requests swap.
const MainID = "main"

// AppLayout renders the document shell with top navigation and the main
// region around the children in ctx.
func AppLayout(opts DocumentOptions) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		children := templ.GetChildren(ctx)
		if children == nil {
			children = templ.NopComponent
		}
		ctx = templ.ClearChildren(ctx)
		body := templ.Join(appHeader(opts.Loc), AppMain(children))
		return Document(opts).Render(templ.WithChildren(ctx, body), w)
	})
}

// AppMain renders the swappable main region.
func AppMain(children ...templ.Component) templ.Component {
	return ui.Element("main", ui.Props{
		Class: "mx-auto w-full max-w-7xl p-4 md:p-8",
		Attrs: templ.Attributes{"id": MainID},
	}, children...)
}

func appHeader(loc Localizer) templ.Component {
	brand := ui.Element("a", ui.Props{
		Class: "text-lg font-semibold tracking-tight",
		Attrs: templ.Attributes{"href": "/"},
	}, ui.Text(T(loc, appNameKey)))
	dashboard := layout.Flex(layout.FlexProps{
		Justify: layout.JustifyStart,
		Class:   "gap-2 text-sm text-zinc-600 hover:text-zinc-900",
	}, icon.Icon(icons.IDChart, ""), ui.Element("a", ui.Props{
		Attrs: templ.Attributes{"href": "/dashboard", "hx-get": "/dashboard", "hx-target": "#" + MainID, "hx-push-url": "true"},
	}, ui.Text(T(loc, navDashboardKey))))
	bar := layout.Flex(layout.FlexProps{
		Class: "mx-auto max-w-7xl px-4 py-3 md:px-8",
	}, brand, ui.Element("nav", ui.Props{}, dashboard))
	return ui.Element("header", ui.Props{Class: "border-b bg-white"}, bar)
}
