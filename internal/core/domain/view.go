package domain

import "errors"

// View identifies one screen of the application. Exactly one view is
// active at any time.
type View string

const (
	ViewLanding        View = "LANDING"
	ViewLogin          View = "LOGIN"
	ViewSignUp         View = "SIGNUP"
	ViewVerify2FA      View = "VERIFY_2FA"
	ViewForgotPassword View = "FORGOT_PASSWORD"
	ViewDashboard      View = "DASHBOARD"
	ViewScraper        View = "SCRAPER"
	ViewContentStudio  View = "CONTENT_STUDIO"
	ViewVideoStudio    View = "VIDEO_STUDIO"
	ViewAITools        View = "AI_TOOLS"
	ViewPlanner        View = "PLANNER"
	ViewSocial         View = "SOCIAL"
	ViewAnalytics      View = "ANALYTICS"
	ViewStrategy       View = "STRATEGY"
	ViewAccount        View = "ACCOUNT"
)

var ErrUnknownView = errors.New("unknown view")

// publicViews are the screens reachable without an authenticated session.
var publicViews = map[View]struct{}{
	ViewLanding:        {},
	ViewLogin:          {},
	ViewSignUp:         {},
	ViewVerify2FA:      {},
	ViewForgotPassword: {},
}

var authenticatedViews = map[View]struct{}{
	ViewDashboard:     {},
	ViewScraper:       {},
	ViewContentStudio: {},
	ViewVideoStudio:   {},
	ViewAITools:       {},
	ViewPlanner:       {},
	ViewSocial:        {},
	ViewAnalytics:     {},
	ViewStrategy:      {},
	ViewAccount:       {},
}

// Valid reports whether v is a member of the view enumeration.
func (v View) Valid() bool {
	if _, ok := publicViews[v]; ok {
		return true
	}
	_, ok := authenticatedViews[v]
	return ok
}

// RequiresAuth reports whether v may only be shown while a session is
// authenticated.
func (v View) RequiresAuth() bool {
	_, ok := authenticatedViews[v]
	return ok
}
