package models

// DefaultViewID is requested when no view is specified.
const DefaultViewID = "index"

// KnownViews maps the view ids served by the docs view service to their
// titles. The service stays the authority: ids outside this map are still
// requested.
var KnownViews = map[string]string{
	"architecture":  "Architecture Overview",
	"api-reference": "API Reference",
	"coverage":      "Coverage Report",
	"index":         "Documentation Index",
}

// IsKnownView reports whether viewID is one of [KnownViews].
func IsKnownView(viewID string) bool {
	_, ok := KnownViews[viewID]
	return ok
}
