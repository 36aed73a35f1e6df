// File: internal/credential/reset.go
package credential

import "context"

// ResetProvider is the external auth collaborator that owns the password
// reset flow. Success is silent: no token or link is surfaced to the caller.
// An unknown email or an unreachable provider comes back as an error.
type ResetProvider interface {
	SendPasswordReset(ctx context.Context, email string) error
}
