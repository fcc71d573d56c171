// Package guard gates protected views on the current session.
package guard

import (
	"slices"

	"github.com/courseportal/portal-cli/internal/portal"
	"github.com/courseportal/portal-cli/internal/sessions"
)

// A Decision tells the shell what to do before rendering a protected view.
type Decision int

// All decisions.
const (
	// DecisionProceed renders the view.
	DecisionProceed Decision = iota
	// DecisionLoading renders a neutral loading state. Issued while the
	// session is still resolving; a guard must never redirect in that state.
	DecisionLoading
	// DecisionRedirectLogin sends an unauthenticated user to the login view.
	DecisionRedirectLogin
	// DecisionRedirectRoot sends an authenticated but unauthorized user to
	// the application root.
	DecisionRedirectRoot
)

// Check gates a view that admits the given roles. An empty allowed set means
// any authenticated user may proceed.
func Check(s sessions.Snapshot, allowed ...portal.Role) Decision {
	if s.Readiness == sessions.ReadinessResolving {
		return DecisionLoading
	}
	if s.Token == "" || s.Claims == nil {
		return DecisionRedirectLogin
	}
	if len(allowed) > 0 && !slices.Contains(allowed, s.Claims.Role) {
		return DecisionRedirectRoot
	}
	return DecisionProceed
}
