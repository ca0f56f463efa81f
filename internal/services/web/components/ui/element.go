// Package ui holds the dashboard's presentational components.
package ui

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/socialcrm/internal/services/web/components/classnames"
)

// Props carries caller classes and passthrough attributes for a component.
type Props struct {
	Class string
	Attrs templ.Attributes
}

// element renders <tag class="base caller" attrs...>children</tag>. A "class"
// entry in attrs is merged into the class list instead of being forwarded.
func element(tag string, base string, props Props, children []templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		content := templ.Join(children...)
		if len(children) == 0 {
			content = templ.GetChildren(ctx)
		}
		if content == nil {
			content = templ.NopComponent
		}
		ctx = templ.ClearChildren(ctx)

		extra, _ := props.Attrs["class"].(string)
		attrs := make(templ.Attributes, len(props.Attrs))
		for key, value := range props.Attrs {
			if key != "class" {
				attrs[key] = value
			}
		}

		class := classnames.Merge(base, props.Class, extra)
		if _, err := io.WriteString(w, "<"+tag); err != nil {
			return err
		}
		if class != "" {
			if _, err := io.WriteString(w, ` class="`+templ.EscapeString(class)+`"`); err != nil {
				return err
			}
		}
		if err := templ.RenderAttributes(ctx, w, attrs); err != nil {
			return err
		}
		if _, err := io.WriteString(w, ">"); err != nil {
			return err
		}
		if err := content.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</"+tag+">")
		return err
	})
}

// Element renders an arbitrary tag with merged classes and forwarded
// attributes. Pages use it for markup that has no dedicated component.
func Element(tag string, props Props, children ...templ.Component) templ.Component {
	return element(tag, "", props, children)
}
