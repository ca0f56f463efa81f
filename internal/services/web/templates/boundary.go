package templates

import (
	"github.com/a-h/templ"
	"github.com/louisbranch/socialcrm/internal/platform/icons"
	"github.com/louisbranch/socialcrm/internal/services/web/components/icon"
	"github.com/louisbranch/socialcrm/internal/services/web/components/layout"
	"github.com/louisbranch/socialcrm/internal/services/web/components/ui"
)

const boundaryActionClass = "inline-flex cursor-pointer items-center gap-1 rounded-sm bg-gray-600 px-2 py-1 font-extrabold uppercase text-white"

// CatchBoundaryOptions configures the error boundary.
type CatchBoundaryOptions struct {
	// Root is true when the failure happened outside any page module, in
	// which case the boundary offers a link home instead of history.back().
	Root bool
	Loc  Localizer
}

// CatchBoundary renders the error state shown when a page fails to render.
// The underlying error is never displayed.
func CatchBoundary(opts CatchBoundaryOptions) templ.Component {
	summary := layout.Flex(layout.FlexProps{
		Direction: layout.DirectionCol,
		Justify:   layout.JustifyCenter,
		Class:     "gap-2 text-center",
		Attrs:     templ.Attributes{"role": "alert"},
	},
		icon.Icon(icons.IDAlert, "h-8 w-8 text-red-600"),
		ui.Element("h1", ui.Props{Class: "text-xl font-semibold"}, ui.Text(T(opts.Loc, appErrorHeadingServerErrKey))),
		ui.Element("p", ui.Props{Class: "text-sm text-zinc-600"}, ui.Text(T(opts.Loc, appErrorMessageServerErrKey))),
	)

	tryAgain := ui.Element("button", ui.Props{
		Class: boundaryActionClass,
		Attrs: templ.Attributes{"type": "button", "onclick": "window.location.reload()", "data-action": "try-again"},
	}, icon.Icon(icons.IDRefresh, ""), ui.Text(T(opts.Loc, appErrorTryAgainKey)))

	var escape templ.Component
	if opts.Root {
		escape = ui.Element("a", ui.Props{
			Class: boundaryActionClass,
			Attrs: templ.Attributes{"href": "/", "data-action": "home"},
		}, icon.Icon(icons.IDHome, ""), ui.Text(T(opts.Loc, appErrorHomeKey)))
	} else {
		escape = ui.Element("a", ui.Props{
			Class: boundaryActionClass,
			Attrs: templ.Attributes{"href": "/", "onclick": "event.preventDefault(); window.history.back()", "data-action": "go-back"},
		}, icon.Icon(icons.IDArrowLeft, ""), ui.Text(T(opts.Loc, appErrorGoBackKey)))
	}

	actions := layout.Flex(layout.FlexProps{
		Justify: layout.JustifyStart,
		Class:   "flex-wrap gap-2",
	}, tryAgain, escape)

	return layout.Flex(layout.FlexProps{
		Direction: layout.DirectionCol,
		Justify:   layout.JustifyCenter,
		Class:     "min-w-0 flex-1 gap-6 p-4",
		Attrs:     templ.Attributes{"data-boundary": "catch"},
	}, summary, actions)
}
