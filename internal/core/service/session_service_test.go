package service

import (
	"context"
	"errors"
	"testing"

	"github.com/lamare/creator-studio/internal/core/domain"
	"github.com/lamare/creator-studio/internal/core/ports"
)

func newTestSession(kv *fakeKV, codes *fakeCodes) *SessionManager {
	return NewSessionManager(kv, codes, "test-secret", testLogger())
}

func TestSessionManager_LoginPersistsAndIsIdempotent(t *testing.T) {
	kv := newFakeKV()
	sm := newTestSession(kv, newFakeCodes())
	ctx := context.Background()

	if err := sm.Login(ctx, DemoIdentity); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	first, err := kv.Get(ctx, ports.SessionKey)
	if err != nil {
		t.Fatalf("session record not persisted: %v", err)
	}

	if err := sm.Login(ctx, DemoIdentity); err != nil {
		t.Fatalf("second login failed: %v", err)
	}
	second, _ := kv.Get(ctx, ports.SessionKey)
	if first != second {
		t.Fatalf("repeated login changed the persisted record")
	}
	if !sm.Authenticated() {
		t.Fatalf("expected authenticated session")
	}
	if got := sm.CurrentUser(); got == nil || got.ID != DemoIdentity.ID {
		t.Fatalf("unexpected current user: %+v", got)
	}
}

func TestSessionManager_RestoreRoundTrip(t *testing.T) {
	kv := newFakeKV()
	ctx := context.Background()

	sm := newTestSession(kv, newFakeCodes())
	if err := sm.Login(ctx, DemoIdentity); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	// Fresh manager over the same store simulates a restart.
	restarted := newTestSession(kv, newFakeCodes())
	if !restarted.Restore(ctx) {
		t.Fatalf("expected session to restore")
	}
	got := restarted.CurrentUser()
	if got == nil || got.ID != DemoIdentity.ID || got.Email != DemoIdentity.Email || got.Role != DemoIdentity.Role {
		t.Fatalf("restored identity mismatch: %+v", got)
	}
}

func TestSessionManager_RestoreFailsOpen(t *testing.T) {
	cases := map[string]string{
		"garbage":      "not-a-token",
		"empty":        "",
		"wrong secret": func() string {
			other := NewSessionManager(newFakeKV(), newFakeCodes(), "different-secret", testLogger())
			record, _ := other.encodeSession(DemoIdentity)
			return record
		}(),
	}

	for name, record := range cases {
		t.Run(name, func(t *testing.T) {
			kv := newFakeKV()
			_ = kv.Set(context.Background(), ports.SessionKey, record)

			sm := newTestSession(kv, newFakeCodes())
			if sm.Restore(context.Background()) {
				t.Fatalf("malformed record must not restore")
			}
			if sm.Authenticated() {
				t.Fatalf("expected logged-out session")
			}
		})
	}
}

func TestSessionManager_RestoreAbsent(t *testing.T) {
	sm := newTestSession(newFakeKV(), newFakeCodes())
	if sm.Restore(context.Background()) {
		t.Fatalf("nothing persisted, expected no restore")
	}
	if sm.Authenticated() {
		t.Fatalf("expected logged-out session")
	}
}

func TestSessionManager_LogoutClearsRecord(t *testing.T) {
	kv := newFakeKV()
	sm := newTestSession(kv, newFakeCodes())
	ctx := context.Background()

	_ = sm.Login(ctx, DemoIdentity)
	if err := sm.Logout(ctx); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if sm.Authenticated() {
		t.Fatalf("expected logged-out session")
	}
	if sm.CurrentUser() != nil {
		t.Fatalf("expected no current user")
	}
	if _, err := kv.Get(ctx, ports.SessionKey); !errors.Is(err, ports.ErrKeyNotFound) {
		t.Fatalf("expected session record removed, got %v", err)
	}
}

func TestSessionManager_Authenticate(t *testing.T) {
	sm := newTestSession(newFakeKV(), newFakeCodes())

	user, err := sm.Authenticate("rassanag@gmail.com", "lamare2024")
	if err != nil {
		t.Fatalf("builtin account rejected: %v", err)
	}
	if user.Role != domain.RolePremiumMember {
		t.Fatalf("unexpected role: %s", user.Role)
	}

	admin, err := sm.Authenticate("admin@lamare.com", "password")
	if err != nil {
		t.Fatalf("admin account rejected: %v", err)
	}
	if admin.Role != domain.RoleAdmin {
		t.Fatalf("unexpected role: %s", admin.Role)
	}

	derived, err := sm.Authenticate("jordan@example.com", "longenough")
	if err != nil {
		t.Fatalf("derived member rejected: %v", err)
	}
	if derived.Role != domain.RoleMember || derived.Name != "Jordan" {
		t.Fatalf("unexpected derived identity: %+v", derived)
	}

	accented, err := sm.Authenticate("émile@example.com", "longenough")
	if err != nil {
		t.Fatalf("derived member rejected: %v", err)
	}
	if accented.Name != "Émile" {
		t.Fatalf("multibyte mailbox name mangled: %q", accented.Name)
	}

	if _, err := sm.Authenticate("rassanag@gmail.com", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := sm.Authenticate("no-at-sign", "longenough"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := sm.Authenticate("short@pw.com", "abc"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if sm.Authenticated() {
		t.Fatalf("Authenticate must not mutate session state")
	}
}

func TestSessionManager_RegistrationWindow(t *testing.T) {
	kv := newFakeKV()
	codes := newFakeCodes()
	sm := newTestSession(kv, codes)
	ctx := context.Background()

	applicant := domain.UserIdentity{ID: "u1", Name: "New Creator", Email: "new@creator.id", Role: domain.RoleMember}
	if err := sm.BeginRegistration(ctx, applicant); err != nil {
		t.Fatalf("begin registration: %v", err)
	}
	if reg := sm.Registration(); reg.Phase != domain.RegistrationAwaiting || reg.Pending == nil {
		t.Fatalf("expected awaiting registration, got %+v", reg)
	}
	if sm.Authenticated() {
		t.Fatalf("signup must not authenticate before verification")
	}

	code := codes.issued(applicant.Email)
	if code == "" {
		t.Fatalf("no verification code issued")
	}

	if _, err := sm.VerifyCode(ctx, "000000"); !errors.Is(err, domain.ErrInvalidCode) {
		if code == "000000" {
			t.Skip("collided with issued code")
		}
		t.Fatalf("expected ErrInvalidCode, got %v", err)
	}
	if sm.Authenticated() {
		t.Fatalf("bad code must not authenticate")
	}

	promoted, err := sm.VerifyCode(ctx, code)
	if err != nil || !promoted {
		t.Fatalf("verify failed: promoted=%v err=%v", promoted, err)
	}
	if !sm.Authenticated() {
		t.Fatalf("expected authenticated session after verification")
	}
	if got := sm.CurrentUser(); got == nil || got.Email != applicant.Email {
		t.Fatalf("unexpected user after promotion: %+v", got)
	}
	if reg := sm.Registration(); reg.Pending != nil {
		t.Fatalf("pending identity must be cleared after promotion")
	}

	// Second verification is a no-op.
	promoted, err = sm.VerifyCode(ctx, code)
	if err != nil || promoted {
		t.Fatalf("repeat verify must be a no-op: promoted=%v err=%v", promoted, err)
	}
}

func TestSessionManager_PromoteWithoutPendingIsNoop(t *testing.T) {
	sm := newTestSession(newFakeKV(), newFakeCodes())
	if sm.PromotePending(context.Background()) {
		t.Fatalf("promote with nothing pending must report false")
	}
	if sm.Authenticated() {
		t.Fatalf("state must be unchanged")
	}
}

func TestSessionManager_AbandonRegistration(t *testing.T) {
	sm := newTestSession(newFakeKV(), newFakeCodes())
	ctx := context.Background()

	_ = sm.BeginRegistration(ctx, domain.UserIdentity{ID: "u2", Email: "x@y.z"})
	sm.AbandonRegistration()
	if reg := sm.Registration(); reg.Phase != domain.RegistrationIdle || reg.Pending != nil {
		t.Fatalf("expected idle registration, got %+v", reg)
	}
	if sm.PromotePending(ctx) {
		t.Fatalf("abandoned registration must not promote")
	}
}

func TestSessionManager_UpdateProfile(t *testing.T) {
	kv := newFakeKV()
	sm := newTestSession(kv, newFakeCodes())
	ctx := context.Background()

	if err := sm.UpdateProfile(ctx, "Name", ""); err == nil {
		t.Fatalf("profile update without session must fail")
	}

	_ = sm.Login(ctx, DemoIdentity)
	if err := sm.UpdateProfile(ctx, "Rassanah G. A.", ""); err != nil {
		t.Fatalf("update profile: %v", err)
	}
	if got := sm.CurrentUser(); got.Name != "Rassanah G. A." || got.Email != DemoIdentity.Email {
		t.Fatalf("unexpected profile: %+v", got)
	}

	// Persisted record reflects the edit.
	restarted := newTestSession(kv, newFakeCodes())
	if !restarted.Restore(ctx) {
		t.Fatalf("expected restore after update")
	}
	if got := restarted.CurrentUser(); got.Name != "Rassanah G. A." {
		t.Fatalf("persisted profile not updated: %+v", got)
	}
}
