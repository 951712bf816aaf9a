// Package guard gates command execution on the session state.
package guard

// Action is the outcome of a guard decision.
type Action int

const (
	// Allow lets the requested operation run.
	Allow Action = iota

	// SignIn denies the operation and directs the user to authenticate
	// first; the originally requested operation is remembered.
	SignIn

	// Home denies the operation for lack of role and directs the user to
	// the default authenticated surface.
	Home
)

// Decision carries the action and, for SignIn, the location to remember.
type Decision struct {
	Action Action
	From   string
}

// Decide applies the gating rules: unauthenticated callers sign in first,
// an empty requiredRole admits any authenticated caller, and a role
// mismatch falls back to the default surface rather than an error page.
// from names the operation the caller was attempting.
func Decide(authenticated bool, role, requiredRole, from string) Decision {
	if !authenticated {
		return Decision{Action: SignIn, From: from}
	}
	if requiredRole == "" || role == requiredRole {
		return Decision{Action: Allow}
	}
	return Decision{Action: Home}
}
