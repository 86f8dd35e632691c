package notification

import "context"

// Mailer is the outbound email collaborator. Sends are fire-and-forget from
// the caller's point of view: a failed send is logged by the implementation
// and must never fail the operation that triggered it.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}
