// Package icon renders catalog icons as references into the Lucide sprite.
package icon

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/socialcrm/internal/platform/icons"
	"github.com/louisbranch/socialcrm/internal/services/web/components/classnames"
)

const baseClass = "h-4 w-4"

// Icon renders <svg><use href="#lucide-NAME"/></svg> for id. Unknown ids use
// the fallback glyph so a missing mapping never breaks a page.
func Icon(id icons.ID, class string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		href := "#" + icons.LucideSymbolID(icons.LucideNameOrDefault(id))
		_, err := io.WriteString(w, `<svg class="`+templ.EscapeString(classnames.Merge(baseClass, class))+
			`" aria-hidden="true" focusable="false" data-icon="`+templ.EscapeString(string(id))+
			`"><use href="`+templ.EscapeString(href)+`"></use></svg>`)
		return err
	})
}

// Sprite renders the hidden symbol sheet that Icon references. Render it once
// per document.
func Sprite() templ.Component {
	return templ.Raw(icons.LucideSprite())
}
