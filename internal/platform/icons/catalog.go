package icons

import (
	"sort"
	"strings"
)

// ID identifies an icon independent of the glyph set used to draw it.
type ID string

const (
	IDUsers     ID = "users"
	IDBriefcase ID = "briefcase"
	IDMapPin    ID = "map-pin"
	IDTodo      ID = "todo"
	IDActivity  ID = "activity"
	IDAlert     ID = "alert"
	IDHome      ID = "home"
	IDArrowLeft ID = "arrow-left"
	IDRefresh   ID = "refresh"
	IDChart     ID = "chart"
)

// Definition describes a core icon entry.
type Definition struct {
	ID          ID
	Name        string
	Description string
}

var catalog = []Definition{
	{ID: IDUsers, Name: "Users", Description: "Client and contact totals."},
	{ID: IDBriefcase, Name: "Briefcase", Description: "Brands and accounts."},
	{ID: IDMapPin, Name: "Map Pin", Description: "Locations."},
	{ID: IDTodo, Name: "Todo", Description: "Projects and tasks."},
	{ID: IDActivity, Name: "Activity", Description: "Activity feed entries."},
	{ID: IDAlert, Name: "Alert", Description: "Error states."},
	{ID: IDHome, Name: "Home", Description: "Navigation to the start page."},
	{ID: IDArrowLeft, Name: "Arrow Left", Description: "Back navigation."},
	{ID: IDRefresh, Name: "Refresh", Description: "Retry actions."},
	{ID: IDChart, Name: "Chart", Description: "Charts and growth metrics."},
}

// Catalog returns a copy of the icon catalog definitions.
func Catalog() []Definition {
	result := make([]Definition, len(catalog))
	copy(result, catalog)
	return result
}

// Lookup returns the catalog definition for id.
func Lookup(id ID) (Definition, bool) {
	for _, def := range catalog {
		if def.ID == id {
			return def, true
		}
	}
	return Definition{}, false
}

// CatalogMarkdown renders the icon catalog as markdown.
func CatalogMarkdown() string {
	defs := Catalog()
	sort.Slice(defs, func(i, j int) bool { return defs[i].ID < defs[j].ID })

	var builder strings.Builder
	builder.WriteString("# Icon Catalog\n\n")
	builder.WriteString("| Icon ID | Name | Lucide | Description |\n")
	builder.WriteString("| --- | --- | --- | --- |\n")
	for _, def := range defs {
		builder.WriteString("| ")
		builder.WriteString(string(def.ID))
		builder.WriteString(" | ")
		builder.WriteString(def.Name)
		builder.WriteString(" | ")
		builder.WriteString(LucideNameOrDefault(def.ID))
		builder.WriteString(" | ")
		builder.WriteString(def.Description)
		builder.WriteString(" |\n")
	}
	return builder.String()
}
