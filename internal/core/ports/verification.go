package ports

import "context"

// CodeStore holds short-lived 2FA verification codes, keyed by the
// pending identity's email. Codes expire server-side; a missing or
// expired code simply fails to match.
type CodeStore interface {
	Put(ctx context.Context, email, code string) error
	Match(ctx context.Context, email, code string) (bool, error)
	Delete(ctx context.Context, email string) error
}
