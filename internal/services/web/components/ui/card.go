package ui

import "github.com/a-h/templ"

const (
	cardClass            = "rounded-lg border bg-card text-card-foreground shadow-sm"
	cardHeaderClass      = "flex flex-col space-y-1.5 p-6"
	cardTitleClass       = "text-lg font-semibold leading-none tracking-tight"
	cardDescriptionClass = "text-sm text-muted-foreground"
	cardContentClass     = "p-6 pt-0"
	cardFooterClass      = "flex items-center p-6 pt-0"
)

// Card renders the bordered surface that groups dashboard content.
func Card(props Props, children ...templ.Component) templ.Component {
	return element("div", cardClass, props, children)
}

func CardHeader(props Props, children ...templ.Component) templ.Component {
	return element("div", cardHeaderClass, props, children)
}

func CardTitle(props Props, children ...templ.Component) templ.Component {
	return element("h3", cardTitleClass, props, children)
}

func CardDescription(props Props, children ...templ.Component) templ.Component {
	return element("p", cardDescriptionClass, props, children)
}

func CardContent(props Props, children ...templ.Component) templ.Component {
	return element("div", cardContentClass, props, children)
}

func CardFooter(props Props, children ...templ.Component) templ.Component {
	return element("div", cardFooterClass, props, children)
}

// Text renders escaped text.
func Text(value string) templ.Component {
	return templ.Raw(templ.EscapeString(value))
}
