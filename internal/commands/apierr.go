package commands

import (
	"errors"
	"fmt"
	"io"

	"taskdeck/internal/exitcode"
	"taskdeck/internal/service"
)

// apiError reports a backend failure and returns the exit code for it.
// A rejected credential clears the stored session so a later rehydration
// does not resurrect it, then directs the user back to login.
func apiError(env *Env, err error, errOut io.Writer) int {
	if errors.Is(err, service.ErrUnauthenticated) {
		if env.Session.Authenticated() {
			_ = env.Session.Logout()
		}
		fmt.Fprintln(errOut, "error: session expired (run: taskdeck login)")
		return exitcode.AuthError
	}
	if errors.Is(err, service.ErrNotFound) {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}
	fmt.Fprintf(errOut, "error: backend error: %v\n", err)
	return exitcode.BackendError
}
