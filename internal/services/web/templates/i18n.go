package templates

import (
	"fmt"

	"github.com/louisbranch/socialcrm/internal/platform/i18n/catalog"
	"golang.org/x/text/message"
)

// Localizer formats catalog messages for one request language.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// T formats key through loc. Without a localizer the base-locale catalog
// text is used, and unknown keys render as the key itself.
func T(loc Localizer, key message.Reference, args ...any) string {
	if loc != nil {
		return loc.Sprintf(key, args...)
	}
	name, ok := key.(string)
	if !ok {
		return ""
	}
	format := name
	if text, found := catalog.Default().Message(catalog.BaseLocale, name); found {
		format = text
	}
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}
