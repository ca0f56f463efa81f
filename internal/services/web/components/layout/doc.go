// Package layout provides structural primitives for page composition.
//
// Flex renders a flexbox container from declarative direction, main-axis and
// cross-axis settings. Callers choose from closed sets of values and never
// spell utility classes themselves; the class vocabulary lives in the lookup
// tables in this package.
package layout
