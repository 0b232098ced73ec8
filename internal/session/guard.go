// ABOUTME: Route guard decision for protected views
// ABOUTME: Pure function of session state, evaluated on every render

package session

// Decision is the route guard's verdict for a protected view
type Decision int

const (
	// Wait means the initial resolution is still in flight; render nothing
	// rather than flash a redirect to login.
	Wait Decision = iota
	// Allow renders the protected content.
	Allow
	// RedirectLogin sends the user to the login view, replacing history so
	// back navigation cannot return to the guarded view.
	RedirectLogin
)

// Decide returns the guard decision for the given session state
func Decide(s State) Decision {
	if s.Loading {
		return Wait
	}
	if s.Authenticated {
		return Allow
	}
	return RedirectLogin
}

func (d Decision) String() string {
	switch d {
	case Wait:
		return "wait"
	case Allow:
		return "allow"
	case RedirectLogin:
		return "redirect-login"
	default:
		return "unknown"
	}
}
