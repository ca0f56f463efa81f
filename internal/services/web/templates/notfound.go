package templates

import (
	"github.com/a-h/templ"
	"github.com/louisbranch/socialcrm/internal/services/web/components/layout"
	"github.com/louisbranch/socialcrm/internal/services/web/components/ui"
)

// NotFound renders the not-found state. Custom children replace the default
// message; the navigation actions are always shown.
func NotFound(loc Localizer, children ...templ.Component) templ.Component {
	body := templ.Component(ui.Element("p", ui.Props{}, ui.Text(T(loc, notFoundMessageKey))))
	if len(children) > 0 {
		body = templ.Join(children...)
	}

	goBack := ui.Element("button", ui.Props{
		Class: "rounded-sm bg-emerald-500 px-2 py-1 text-sm font-black uppercase text-white",
		Attrs: templ.Attributes{"type": "button", "onclick": "window.history.back()", "data-action": "go-back"},
	}, ui.Text(T(loc, notFoundGoBackKey)))
	startOver := ui.Element("a", ui.Props{
		Class: "rounded-sm bg-cyan-600 px-2 py-1 text-sm font-black uppercase text-white",
		Attrs: templ.Attributes{"href": "/", "data-action": "start-over"},
	}, ui.Text(T(loc, notFoundStartOverKey)))

	return ui.Element("div", ui.Props{
		Class: "space-y-2 p-2",
		Attrs: templ.Attributes{"data-not-found": true},
	},
		ui.Element("div", ui.Props{Class: "text-gray-600"}, body),
		layout.Flex(layout.FlexProps{Justify: layout.JustifyStart, Class: "flex-wrap gap-2"}, goBack, startOver),
	)
}
