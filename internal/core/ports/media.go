package ports

import (
	"context"
	"io"
)

// MediaCapture is the camera collaborator used by the simulated biometric
// step. Acquire returns domain.ErrPermissionDenied when the user refuses
// access; that denial is surfaced as a dismissible notice, never a crash.
type MediaCapture interface {
	Acquire(ctx context.Context) (MediaStream, error)
}

// MediaStream is an opaque handle to an acquired capture stream. Callers
// must close it once the biometric check completes.
type MediaStream interface {
	io.Closer
}
