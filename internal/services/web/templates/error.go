package templates

import "net/http"

const (
	appErrorPageTitleNotFoundKey  = "web.error.page_title_not_found"
	appErrorPageTitleServerErrKey = "web.error.page_title_server_error"
	appErrorHeadingServerErrKey   = "web.error.title_server_error"
	appErrorMessageServerErrKey   = "web.error.message_server_error"
	appErrorTryAgainKey           = "web.error.action_try_again"
	appErrorHomeKey               = "web.error.action_home"
	appErrorGoBackKey             = "web.error.action_go_back"

	notFoundMessageKey   = "web.not_found.message"
	notFoundGoBackKey    = "web.not_found.action_go_back"
	notFoundStartOverKey = "web.not_found.action_start_over"
)

// AppErrorPageTitle returns the browser page title for app error pages.
func AppErrorPageTitle(statusCode int, loc Localizer) string {
	if NormalizeAppErrorStatus(statusCode) == http.StatusNotFound {
		return T(loc, appErrorPageTitleNotFoundKey)
	}
	return T(loc, appErrorPageTitleServerErrKey)
}

// NormalizeAppErrorStatus folds every status other than 404 into 500.
func NormalizeAppErrorStatus(statusCode int) int {
	if statusCode == http.StatusNotFound {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
