package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/lamare/creator-studio/internal/core/domain"
)

// Navigator holds the single current view and enforces transition
// legality. It is also the intent surface for the transitions that carry
// session side effects (login, signup, verification, logout), delegating
// session ownership to the SessionManager.
type Navigator struct {
	sessions *SessionManager
	log      zerolog.Logger

	mu      sync.Mutex
	current domain.View
}

func NewNavigator(sessions *SessionManager, log zerolog.Logger) *Navigator {
	return &Navigator{
		sessions: sessions,
		log:      log,
		current:  domain.ViewLanding,
	}
}

// Current returns the active view.
func (n *Navigator) Current() domain.View {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

// Navigate moves to target and returns the resulting view. Attempting to
// reach an authenticated-only view while logged out is silently absorbed:
// the view does not change and no error is raised. Unknown views are
// likewise ignored.
func (n *Navigator) Navigate(target domain.View) domain.View {
	n.mu.Lock()
	defer n.mu.Unlock()

	if !target.Valid() {
		return n.current
	}
	if target.RequiresAuth() && !n.sessions.Authenticated() {
		n.log.Debug().Str("target", string(target)).Msg("navigation blocked: not authenticated")
		return n.current
	}

	n.current = target
	return n.current
}

// Restore replays a persisted session at process start. A restored
// session lands on the dashboard; otherwise the view stays at Landing.
func (n *Navigator) Restore(ctx context.Context) {
	if n.sessions.Restore(ctx) {
		n.Navigate(domain.ViewDashboard)
	}
}

// StartLogin moves from the landing page: straight to the dashboard when
// a session is already live, to the login form otherwise.
func (n *Navigator) StartLogin() domain.View {
	if n.sessions.Authenticated() {
		return n.Navigate(domain.ViewDashboard)
	}
	return n.Navigate(domain.ViewLogin)
}

// StartSignUp opens the signup form.
func (n *Navigator) StartSignUp() domain.View {
	return n.Navigate(domain.ViewSignUp)
}

// ForgotPassword and BackToLogin are lateral moves among unauthenticated
// views with no session effect.
func (n *Navigator) ForgotPassword() domain.View {
	return n.Navigate(domain.ViewForgotPassword)
}

func (n *Navigator) BackToLogin() domain.View {
	return n.Navigate(domain.ViewLogin)
}

// BackToSignUp abandons a pending registration and returns to the form.
func (n *Navigator) BackToSignUp() domain.View {
	n.sessions.AbandonRegistration()
	return n.Navigate(domain.ViewSignUp)
}

// Login authenticates as user, persists the session, and lands on the
// dashboard. The view transition happens even when persistence fails:
// once the in-memory session is authenticated the view must follow, and
// the guard absorbs the move when it is not.
func (n *Navigator) Login(ctx context.Context, user domain.UserIdentity) error {
	err := n.sessions.Login(ctx, user)
	n.Navigate(domain.ViewDashboard)
	return err
}

// DemoLogin is Login with the fixed built-in demo identity.
func (n *Navigator) DemoLogin(ctx context.Context) error {
	err := n.sessions.DemoLogin(ctx)
	n.Navigate(domain.ViewDashboard)
	return err
}

// CompleteSignUp stores userData as the pending identity and moves to the
// 2FA screen. The session is not authenticated yet.
func (n *Navigator) CompleteSignUp(ctx context.Context, user domain.UserIdentity) error {
	if err := n.sessions.BeginRegistration(ctx, user); err != nil {
		return err
	}
	n.Navigate(domain.ViewVerify2FA)
	return nil
}

// VerifySuccess checks the 2FA code, promotes the pending identity to an
// authenticated session, and lands on the dashboard. With nothing pending
// the call is a no-op: state and view are unchanged.
func (n *Navigator) VerifySuccess(ctx context.Context, code string) (bool, error) {
	promoted, err := n.sessions.VerifyCode(ctx, code)
	if err != nil {
		return false, err
	}
	if promoted {
		n.Navigate(domain.ViewDashboard)
	}
	return promoted, nil
}

// Logout clears the session, removes the persisted record, and returns to
// the landing page. This is the only transition that demotes
// authentication level. The move to Landing is unconditional: the
// in-memory session is already logged out when record removal fails, and
// an unauthenticated session must never sit on an authenticated view.
func (n *Navigator) Logout(ctx context.Context) error {
	err := n.sessions.Logout(ctx)
	n.Navigate(domain.ViewLanding)
	return err
}
