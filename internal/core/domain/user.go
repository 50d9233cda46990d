package domain

import "errors"

const (
	RolePremiumMember = "Premium Member"
	RoleAdmin         = "Admin"
	RoleMember        = "Member"
)

var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidCode         = errors.New("invalid verification code")
	ErrPermissionDenied    = errors.New("camera permission denied")
	ErrIdentityNotVerified = errors.New("identity not verified")
)

// UserIdentity is the profile of a signed-in (or signing-up) creator.
type UserIdentity struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url"`
	Role      string `json:"role"`
}

// Session is the authenticated-identity record for the current user.
// User is nil exactly when Authenticated is false.
type Session struct {
	User          *UserIdentity
	Authenticated bool
}

// RegistrationPhase enumerates the signup lifecycle.
type RegistrationPhase string

const (
	RegistrationIdle     RegistrationPhase = "idle"
	RegistrationAwaiting RegistrationPhase = "awaiting_verification"
	RegistrationDone     RegistrationPhase = "done"
)

// RegistrationState holds the provisional identity between "signup
// submitted" and "2FA verified". Pending is non-nil only in the
// awaiting-verification phase, so verifying with nothing pending is
// trivially detectable.
type RegistrationState struct {
	Phase   RegistrationPhase
	Pending *UserIdentity
}
