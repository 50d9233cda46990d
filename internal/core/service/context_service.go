package service

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/lamare/creator-studio/internal/core/domain"
)

// placeholderUsername is assigned when an account is freshly connected.
const placeholderUsername = "new_user_linked"

// Workspace owns the selected product and the social account set. Every
// view may read them; the only writers are SelectProduct and
// ToggleAccount.
type Workspace struct {
	log zerolog.Logger

	mu       sync.Mutex
	product  domain.Product
	accounts []domain.SocialAccount
}

func NewWorkspace(log zerolog.Logger) *Workspace {
	return &Workspace{
		log:      log,
		product:  domain.SampleProducts()[0],
		accounts: domain.DefaultAccounts(),
	}
}

// Selected returns the product currently in focus.
func (w *Workspace) Selected() domain.Product {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.product
}

// SelectProduct overwrites the selected product unconditionally. The
// previous selection is never merged.
func (w *Workspace) SelectProduct(p domain.Product) {
	w.mu.Lock()
	w.product = p
	w.mu.Unlock()
	w.log.Info().Str("product_id", p.ID).Str("name", p.Name).Msg("product selected")
}

// Accounts returns a copy of the social account set.
func (w *Workspace) Accounts() []domain.SocialAccount {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]domain.SocialAccount, len(w.accounts))
	copy(out, w.accounts)
	return out
}

// ToggleAccount flips the connection state of the account matching
// platform. Connecting assigns a placeholder username; disconnecting
// clears the username but keeps followers and color. Unknown platforms
// are a no-op and report false.
func (w *Workspace) ToggleAccount(platform string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	for i := range w.accounts {
		if w.accounts[i].Platform != platform {
			continue
		}
		if w.accounts[i].IsConnected {
			w.accounts[i].IsConnected = false
			w.accounts[i].Username = ""
		} else {
			w.accounts[i].IsConnected = true
			w.accounts[i].Username = placeholderUsername
		}
		w.log.Info().Str("platform", platform).Bool("connected", w.accounts[i].IsConnected).Msg("account toggled")
		return true
	}

	w.log.Debug().Str("platform", platform).Msg("toggle ignored: unknown platform")
	return false
}
