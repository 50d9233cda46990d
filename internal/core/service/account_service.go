package service

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/lamare/creator-studio/internal/core/domain"
	"github.com/lamare/creator-studio/internal/core/ports"
)

// AccountService gates profile editing behind the simulated biometric
// step. A camera denial is surfaced to the caller and leaves the gate
// locked until a future retry; session state is never touched.
type AccountService struct {
	capture ports.MediaCapture
	log     zerolog.Logger

	mu       sync.Mutex
	verified bool
}

func NewAccountService(capture ports.MediaCapture, log zerolog.Logger) *AccountService {
	return &AccountService{capture: capture, log: log}
}

// VerifyBiometric acquires the camera stream and, on success, unlocks
// identity editing for the rest of the process lifetime. Permission
// denial is returned as domain.ErrPermissionDenied.
func (a *AccountService) VerifyBiometric(ctx context.Context) error {
	stream, err := a.capture.Acquire(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrPermissionDenied) {
			a.log.Info().Msg("biometric check declined: camera permission denied")
			return domain.ErrPermissionDenied
		}
		a.log.Warn().Err(err).Msg("camera acquisition failed")
		return domain.ErrPermissionDenied
	}
	_ = stream.Close()

	a.mu.Lock()
	a.verified = true
	a.mu.Unlock()
	a.log.Info().Msg("biometric check passed")
	return nil
}

// IdentityVerified reports whether the edit gate is open.
func (a *AccountService) IdentityVerified() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.verified
}
