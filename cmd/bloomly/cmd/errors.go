package cmd

import (
	"errors"
	"fmt"

	"github.com/nfrund/bloomly/internal/backend"
)

var errSignInRequired = errors.New("sign in required")

// backendError turns a failed backend call into the message shown to the
// user. An unreachable backend also names the URL that was tried.
func (a *cliApp) backendError(message string, err error) error {
	if backend.IsTransport(err) {
		return fmt.Errorf("%s (backend unreachable at %s)", message, a.deps.Backend.BaseURL())
	}
	return errors.New(message)
}
