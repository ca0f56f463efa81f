// Package icons defines the icon identifiers used by the dashboard.
//
// The catalog maps stable icon identifiers to human-readable labels and to
// the Lucide glyph that renders them. Components reference icons by ID and
// the document shell embeds the sprite once per page.
package icons
