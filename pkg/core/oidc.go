package core

import (
	"github.com/arthur-debert/stepkit/pkg/errors"
)

// GetIDToken would request an OIDC token for audience from the runner.
// Token exchange is not supported; the call always fails.
func (tk *Toolkit) GetIDToken(audience string) (string, error) {
	return "", errors.New(errors.ErrNotImplemented, "OIDC token requests are not supported").
		WithDetail("audience", audience)
}
