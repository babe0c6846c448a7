// Package sessions holds the process-wide authenticated state: the bearer
// token, the selected tenant and the signed-in email, mirrored into the
// credential store so a new process restores the session without another
// login.
package sessions

import (
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"

	"github.com/photodeck/photodeck-go/credstore"
	"github.com/photodeck/photodeck-go/token"
)

// Session is a snapshot of the current authenticated state. TenantID is only
// meaningful alongside a token, but a token with no resolved tenant is a
// valid state: a multi-tenant user who has not chosen one yet.
type Session struct {
	AccessToken string
	TenantID    *int64
	Email       string
}

// Manager is the single source of truth for the Session and the sole writer
// of the persisted token and tenant entries; everything else reads through
// it. Mutations are synchronous: by the time an operation returns, every
// subscriber has observed the new value.
//
// Two processes sharing one config directory can race on the persisted
// files; last writer wins and neither is notified, which is acceptable
// because a subsequent request simply uses whatever was last persisted.
type Manager struct {
	mu        sync.Mutex
	tokens    *credstore.TokenStore
	tenantIDs *credstore.TenantStore
	current   Session
	subs      []func(Session)
}

// NewManager builds a manager and reconciles persisted state into memory.
func NewManager(tokens *credstore.TokenStore, tenantIDs *credstore.TenantStore) *Manager {
	m := &Manager{tokens: tokens, tenantIDs: tenantIDs}
	m.Reconcile()
	return m
}

// Reconcile recomputes the session from the persisted entries. The effective
// tenant id is the persisted selection when present, else the token's
// tenant_id claim, else nothing. Running it again after any sequence of
// operations yields the same state as a fresh start.
func (m *Manager) Reconcile() {
	m.mu.Lock()
	next := Session{}
	if tok := m.tokens.Get(); tok != nil {
		next.AccessToken = tok.AccessToken
		next.TenantID = m.tenantIDs.Get()
		if claims := token.DecodeClaims(tok.AccessToken); claims != nil {
			if next.TenantID == nil {
				next.TenantID = claims.TenantID
			}
			next.Email = claims.Email
		}
	}
	m.current = next
	m.mu.Unlock()
	m.notify(next)
}

// Login persists raw as the new bearer token and adopts its claims: a
// tenant_id claim selects that tenant, an email claim fills the display
// email. A token whose claims cannot be decoded still logs in; the session
// just carries no email or claim-derived tenant.
func (m *Manager) Login(raw string) {
	m.mu.Lock()
	if err := m.tokens.Set(&oauth2.Token{AccessToken: raw, TokenType: "bearer"}); err != nil {
		log.Warn().Err(err).Msg("persisting access token")
	}
	m.current.AccessToken = raw
	if claims := token.DecodeClaims(raw); claims != nil {
		if claims.TenantID != nil {
			m.selectTenantLocked(claims.TenantID)
		}
		if claims.Email != "" {
			m.current.Email = claims.Email
		}
	}
	snap := m.current
	m.mu.Unlock()
	m.notify(snap)
}

// Logout clears both persisted entries and resets the in-memory session.
func (m *Manager) Logout() {
	m.mu.Lock()
	if err := m.tokens.Clear(); err != nil {
		log.Warn().Err(err).Msg("clearing access token")
	}
	if err := m.tenantIDs.Clear(); err != nil {
		log.Warn().Err(err).Msg("clearing tenant selection")
	}
	m.current = Session{}
	m.mu.Unlock()
	m.notify(Session{})
}

// SelectTenant persists and adopts id as the active tenant. A nil id clears
// the persisted entry and the in-memory selection.
func (m *Manager) SelectTenant(id *int64) {
	m.mu.Lock()
	m.selectTenantLocked(id)
	snap := m.current
	m.mu.Unlock()
	m.notify(snap)
}

func (m *Manager) selectTenantLocked(id *int64) {
	if id == nil {
		if err := m.tenantIDs.Clear(); err != nil {
			log.Warn().Err(err).Msg("clearing tenant selection")
		}
		m.current.TenantID = nil
		return
	}
	if err := m.tenantIDs.Set(*id); err != nil {
		log.Warn().Err(err).Msg("persisting tenant selection")
	}
	v := *id
	m.current.TenantID = &v
}

// Current returns a snapshot of the session.
func (m *Manager) Current() Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Subscribe registers fn to be called synchronously with the new session
// after every change.
func (m *Manager) Subscribe(fn func(Session)) {
	m.mu.Lock()
	m.subs = append(m.subs, fn)
	m.mu.Unlock()
}

func (m *Manager) notify(s Session) {
	m.mu.Lock()
	subs := make([]func(Session), len(m.subs))
	copy(subs, m.subs)
	m.mu.Unlock()
	for _, fn := range subs {
		fn(s)
	}
}
