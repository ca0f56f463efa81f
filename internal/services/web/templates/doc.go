// Package templates renders the page-level chrome shared by every module:
// the document shell, the error boundary and the not-found page.
package templates
