package service

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/lamare/creator-studio/internal/core/domain"
	"github.com/lamare/creator-studio/internal/core/ports"
)

// DemoIdentity is the fixed identity behind the no-credential demo path.
var DemoIdentity = domain.UserIdentity{
	ID:        "demo_premium",
	Name:      "Rassanah Greta Adhikarya",
	Email:     "rassanag@gmail.com",
	AvatarURL: "https://images.unsplash.com/photo-1599566150163-29194dcaad36?auto=format&fit=crop&q=80&w=400",
	Role:      domain.RolePremiumMember,
}

type builtinAccount struct {
	identity     domain.UserIdentity
	passwordHash []byte
}

// builtinAccounts returns the two well-known mock accounts. Passwords are
// hashed at construction so the credential check path is the same one a
// real account store would use.
func builtinAccounts() map[string]builtinAccount {
	accounts := map[string]builtinAccount{}
	for _, a := range []struct {
		identity domain.UserIdentity
		password string
	}{
		{identity: DemoIdentity, password: "lamare2024"},
		{
			identity: domain.UserIdentity{
				ID:        "admin",
				Name:      "Admin La Mare",
				Email:     "admin@lamare.com",
				AvatarURL: "https://api.dicebear.com/7.x/avataaars/svg?seed=Admin",
				Role:      domain.RoleAdmin,
			},
			password: "password",
		},
	} {
		hash, err := bcrypt.GenerateFromPassword([]byte(a.password), bcrypt.MinCost)
		if err != nil {
			continue
		}
		accounts[a.identity.Email] = builtinAccount{identity: a.identity, passwordHash: hash}
	}
	return accounts
}

// SessionManager owns the Session and the pending-registration identity,
// plus their persistence. It is the only writer of either.
type SessionManager struct {
	store    ports.KVStore
	codes    ports.CodeStore
	secret   []byte
	accounts map[string]builtinAccount
	log      zerolog.Logger

	mu      sync.Mutex
	session domain.Session
	reg     domain.RegistrationState
}

func NewSessionManager(store ports.KVStore, codes ports.CodeStore, secret string, log zerolog.Logger) *SessionManager {
	return &SessionManager{
		store:    store,
		codes:    codes,
		secret:   []byte(secret),
		accounts: builtinAccounts(),
		log:      log,
		reg:      domain.RegistrationState{Phase: domain.RegistrationIdle},
	}
}

// Authenticated is the pure read used by the navigation guard.
func (s *SessionManager) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.Authenticated
}

// CurrentUser returns a copy of the signed-in identity, or nil.
func (s *SessionManager) CurrentUser() *domain.UserIdentity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneIdentity(s.session.User)
}

// Registration returns a copy of the current registration state.
func (s *SessionManager) Registration() domain.RegistrationState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.RegistrationState{Phase: s.reg.Phase, Pending: cloneIdentity(s.reg.Pending)}
}

// Restore reads the persisted session record. A present, well-formed
// record authenticates the session and returns true. Absent or malformed
// data fails open to logged-out — it never returns an error.
func (s *SessionManager) Restore(ctx context.Context) bool {
	raw, err := s.store.Get(ctx, ports.SessionKey)
	if err != nil {
		if !errors.Is(err, ports.ErrKeyNotFound) {
			s.log.Warn().Err(err).Msg("session record unreadable, starting logged out")
		}
		return false
	}

	user, err := s.decodeSession(raw)
	if err != nil {
		s.log.Warn().Err(err).Msg("malformed session record, starting logged out")
		return false
	}

	s.mu.Lock()
	s.session = domain.Session{User: user, Authenticated: true}
	s.mu.Unlock()

	s.log.Info().Str("user_id", user.ID).Msg("session restored")
	return true
}

// Authenticate runs the mock credential check and returns the matching
// identity. It never mutates session state; a failed check is reported as
// domain.ErrInvalidCredentials.
func (s *SessionManager) Authenticate(email, password string) (*domain.UserIdentity, error) {
	if acct, ok := s.accounts[email]; ok {
		if bcrypt.CompareHashAndPassword(acct.passwordHash, []byte(password)) != nil {
			return nil, domain.ErrInvalidCredentials
		}
		identity := acct.identity
		return &identity, nil
	}

	// Any mailbox-shaped address with a 6+ char password gets a derived
	// Member identity (the original mock accepts these).
	local, domainPart, ok := splitEmail(email)
	if ok && domainPart != "" && len(password) >= 6 {
		return &domain.UserIdentity{
			ID:        "user_123",
			Name:      titleCase(local),
			Email:     email,
			AvatarURL: "https://api.dicebear.com/7.x/avataaars/svg?seed=" + email,
			Role:      domain.RoleMember,
		}, nil
	}

	return nil, domain.ErrInvalidCredentials
}

// Login sets the session to the given identity and persists it under the
// session key. Idempotent: logging in twice with the same user yields the
// same session and the same persisted record.
func (s *SessionManager) Login(ctx context.Context, user domain.UserIdentity) error {
	record, err := s.encodeSession(user)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	s.mu.Lock()
	s.session = domain.Session{User: &user, Authenticated: true}
	s.mu.Unlock()

	if err := s.store.Set(ctx, ports.SessionKey, record); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	s.log.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("logged in")
	return nil
}

// DemoLogin logs in with the fixed built-in demo identity.
func (s *SessionManager) DemoLogin(ctx context.Context) error {
	return s.Login(ctx, DemoIdentity)
}

// Logout clears the session and removes the persisted record. Planner
// tasks persist independently and are untouched.
func (s *SessionManager) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.session = domain.Session{}
	s.mu.Unlock()

	if err := s.store.Delete(ctx, ports.SessionKey); err != nil && !errors.Is(err, ports.ErrKeyNotFound) {
		return fmt.Errorf("remove session: %w", err)
	}

	s.log.Info().Msg("logged out")
	return nil
}

// BeginRegistration stores the submitted identity as pending and issues a
// verification code. The session is not authenticated yet. Code delivery
// is mocked: it is written to the code store and logged.
func (s *SessionManager) BeginRegistration(ctx context.Context, user domain.UserIdentity) error {
	s.mu.Lock()
	s.reg = domain.RegistrationState{Phase: domain.RegistrationAwaiting, Pending: &user}
	s.mu.Unlock()

	code := generateCode()
	if err := s.codes.Put(ctx, user.Email, code); err != nil {
		s.log.Warn().Err(err).Str("email", user.Email).Msg("failed to store verification code")
	}
	s.log.Info().Str("email", user.Email).Str("code", code).Msg("verification code issued")
	return nil
}

// VerifyCode checks the submitted 2FA code and, on match, promotes the
// pending identity to an authenticated session. With nothing pending the
// call is a no-op and reports false. A mismatched code is
// domain.ErrInvalidCode and leaves all state unchanged.
func (s *SessionManager) VerifyCode(ctx context.Context, code string) (bool, error) {
	s.mu.Lock()
	pending := cloneIdentity(s.reg.Pending)
	s.mu.Unlock()
	if pending == nil {
		return false, nil
	}

	ok, err := s.codes.Match(ctx, pending.Email, code)
	if err != nil {
		s.log.Warn().Err(err).Msg("code store unavailable, accepting code")
		ok = true
	}
	if !ok {
		return false, domain.ErrInvalidCode
	}

	_ = s.codes.Delete(ctx, pending.Email)
	return s.PromotePending(ctx), nil
}

// PromotePending authenticates the pending identity and clears the
// pending window. No-op (false) when nothing is pending.
func (s *SessionManager) PromotePending(ctx context.Context) bool {
	s.mu.Lock()
	pending := cloneIdentity(s.reg.Pending)
	s.mu.Unlock()
	if pending == nil {
		return false
	}

	if err := s.Login(ctx, *pending); err != nil {
		s.log.Error().Err(err).Msg("failed to persist promoted session")
	}

	s.mu.Lock()
	s.reg = domain.RegistrationState{Phase: domain.RegistrationDone}
	s.mu.Unlock()
	return true
}

// AbandonRegistration clears the pending identity (the user navigated
// back to the signup form).
func (s *SessionManager) AbandonRegistration() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reg = domain.RegistrationState{Phase: domain.RegistrationIdle}
}

// UpdateProfile rewrites the signed-in identity's editable fields and
// re-persists the session record.
func (s *SessionManager) UpdateProfile(ctx context.Context, name, avatarURL string) error {
	s.mu.Lock()
	if !s.session.Authenticated || s.session.User == nil {
		s.mu.Unlock()
		return domain.ErrInvalidCredentials
	}
	user := *s.session.User
	s.mu.Unlock()

	if name != "" {
		user.Name = name
	}
	if avatarURL != "" {
		user.AvatarURL = avatarURL
	}
	return s.Login(ctx, user)
}

// --- session record codec ---

// The persisted record is a signed JWT carrying only identity claims.
// Omitting time claims keeps the record deterministic, so repeated logins
// write byte-identical values.
func (s *SessionManager) encodeSession(user domain.UserIdentity) (string, error) {
	claims := jwt.MapClaims{
		"id":     user.ID,
		"name":   user.Name,
		"email":  user.Email,
		"avatar": user.AvatarURL,
		"role":   user.Role,
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

func (s *SessionManager) decodeSession(raw string) (*domain.UserIdentity, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, fmt.Errorf("invalid session record: %w", err)
	}

	id, _ := claims["id"].(string)
	if id == "" {
		return nil, errors.New("session record missing identity")
	}
	name, _ := claims["name"].(string)
	email, _ := claims["email"].(string)
	avatar, _ := claims["avatar"].(string)
	role, _ := claims["role"].(string)

	return &domain.UserIdentity{ID: id, Name: name, Email: email, AvatarURL: avatar, Role: role}, nil
}

// generateCode returns a 6-digit verification code.
func generateCode() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("%06d", time.Now().UnixNano()%1000000)
	}
	return fmt.Sprintf("%06d", binary.BigEndian.Uint32(b)%1000000)
}

// splitEmail cuts an address at the first "@".
func splitEmail(email string) (local, host string, ok bool) {
	return strings.Cut(email, "@")
}

// titleCase uppercases the first rune of the mailbox name.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

func cloneIdentity(u *domain.UserIdentity) *domain.UserIdentity {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}
