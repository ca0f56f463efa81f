package layout

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/google/uuid"
	"github.com/louisbranch/socialcrm/internal/services/web/components/classnames"
)

// Direction is the flex container orientation.
type Direction string

const (
	DirectionRow        Direction = "row"
	DirectionRowReverse Direction = "row-reverse"
	DirectionCol        Direction = "col"
	DirectionColReverse Direction = "col-reverse"
)

// Justify distributes children along the main axis.
type Justify string

const (
	JustifyStart   Justify = "start"
	JustifyEnd     Justify = "end"
	JustifyCenter  Justify = "center"
	JustifyBetween Justify = "between"
	JustifyAround  Justify = "around"
	JustifyEvenly  Justify = "evenly"
)

// Align positions children along the cross axis.
type Align string

const (
	AlignStart    Align = "start"
	AlignEnd      Align = "end"
	AlignCenter   Align = "center"
	AlignBaseline Align = "baseline"
	AlignStretch  Align = "stretch"
)

// Defaults applied to zero-valued props. Main-axis distribution defaults to
// space-between, not start.
const (
	DefaultDirection = DirectionRow
	DefaultJustify   = JustifyBetween
	DefaultAlign     = AlignCenter
)

// BaseClass marks every container rendered by Flex.
const BaseClass = "flex"

var directionClasses = map[Direction]string{
	DirectionRow:        "flex-row",
	DirectionRowReverse: "flex-row-reverse",
	DirectionCol:        "flex-col",
	DirectionColReverse: "flex-col-reverse",
}

var justifyClasses = map[Justify]string{
	JustifyStart:   "justify-start",
	JustifyEnd:     "justify-end",
	JustifyCenter:  "justify-center",
	JustifyBetween: "justify-between",
	JustifyAround:  "justify-around",
	JustifyEvenly:  "justify-evenly",
}

var alignClasses = map[Align]string{
	AlignStart:    "items-start",
	AlignEnd:      "items-end",
	AlignCenter:   "items-center",
	AlignBaseline: "items-baseline",
	AlignStretch:  "items-stretch",
}

// Directions lists every accepted Direction in declaration order.
func Directions() []Direction {
	return []Direction{DirectionRow, DirectionRowReverse, DirectionCol, DirectionColReverse}
}

// Justifications lists every accepted Justify in declaration order.
func Justifications() []Justify {
	return []Justify{JustifyStart, JustifyEnd, JustifyCenter, JustifyBetween, JustifyAround, JustifyEvenly}
}

// Alignments lists every accepted Align in declaration order.
func Alignments() []Align {
	return []Align{AlignStart, AlignEnd, AlignCenter, AlignBaseline, AlignStretch}
}

// InvalidValueError reports a prop value outside its closed set.
type InvalidValueError struct {
	Field string
	Value string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid flex %s %q", e.Field, e.Value)
}

// NodeRef receives the DOM id of the rendered container so scripts and
// sibling components can address the node after render.
type NodeRef struct {
	ID string
}

// FlexProps configures a Flex container. Zero values select the defaults.
type FlexProps struct {
	Direction Direction
	Justify   Justify
	Align     Align
	// Class is appended after the computed classes.
	Class string
	// Attrs are forwarded verbatim. A "class" entry is merged after Class.
	Attrs templ.Attributes
	// Ref, when set, is populated with the container id when Flex is called,
	// before any render. An id attribute of any type is stringified.
	Ref *NodeRef
}

// Classes resolves the container class list: the base class, one class per
// axis, then caller classes.
func (p FlexProps) Classes() (string, error) {
	direction := p.Direction
	if direction == "" {
		direction = DefaultDirection
	}
	directionClass, ok := directionClasses[direction]
	if !ok {
		return "", &InvalidValueError{Field: "direction", Value: string(direction)}
	}

	justify := p.Justify
	if justify == "" {
		justify = DefaultJustify
	}
	justifyClass, ok := justifyClasses[justify]
	if !ok {
		return "", &InvalidValueError{Field: "justify", Value: string(justify)}
	}

	align := p.Align
	if align == "" {
		align = DefaultAlign
	}
	alignClass, ok := alignClasses[align]
	if !ok {
		return "", &InvalidValueError{Field: "align", Value: string(align)}
	}

	return classnames.Merge(BaseClass, directionClass, justifyClass, alignClass, p.Class, attrClass(p.Attrs)), nil
}

// Flex renders a div container. Children passed explicitly take precedence
// over children supplied through templ.WithChildren. The returned component
// only reads its inputs, so it may be rendered concurrently.
func Flex(props FlexProps, children ...templ.Component) templ.Component {
	attrs := forwardedAttrs(props.Attrs)
	if props.Ref != nil {
		props.Ref.ID = resolveNodeID(attrs, props.Ref.ID)
		attrs["id"] = props.Ref.ID
	}
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		class, err := props.Classes()
		if err != nil {
			return err
		}

		content := templ.Join(children...)
		if len(children) == 0 {
			content = templ.GetChildren(ctx)
		}
		if content == nil {
			content = templ.NopComponent
		}
		ctx = templ.ClearChildren(ctx)

		if _, err := io.WriteString(w, `<div class="`+templ.EscapeString(class)+`"`); err != nil {
			return err
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
		_, err = io.WriteString(w, "</div>")
		return err
	})
}

func attrClass(attrs templ.Attributes) string {
	if attrs == nil {
		return ""
	}
	value, _ := attrs["class"].(string)
	return value
}

func forwardedAttrs(attrs templ.Attributes) templ.Attributes {
	out := make(templ.Attributes, len(attrs)+1)
	for key, value := range attrs {
		if key == "class" {
			continue
		}
		out[key] = value
	}
	return out
}

func resolveNodeID(attrs templ.Attributes, preset string) string {
	if id := attrString(attrs["id"]); strings.TrimSpace(id) != "" {
		return id
	}
	if preset = strings.TrimSpace(preset); preset != "" {
		return preset
	}
	return "flex-" + uuid.NewString()
}

func attrString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		// Boolean attributes carry no value.
		return ""
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
