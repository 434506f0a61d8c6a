package provider

import (
	"context"
	"sync"

	"github.com/revisaai/revisaai/internal/gateway"
	"github.com/revisaai/revisaai/internal/models"
	"github.com/revisaai/revisaai/internal/session"
	"github.com/revisaai/revisaai/pkg/logger"
)

// AuthProvider holds the logged-in user and mirrors it to the session slot.
type AuthProvider struct {
	gw   *gateway.AuthGateway
	slot session.Slot

	mu      sync.RWMutex
	current session.Session
	state   State
}

// NewAuthProvider returns a provider without persistence when slot is nil.
func NewAuthProvider(gw *gateway.AuthGateway, slot session.Slot) *AuthProvider {
	return &AuthProvider{gw: gw, slot: slot}
}

func (p *AuthProvider) State() State {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state
}

// Session returns a copy of the current session.
func (p *AuthProvider) Session() session.Session {
	p.mu.RLock()
	defer p.mu.RUnlock()
	s := p.current
	if s.User != nil {
		u := *s.User
		s.User = &u
	}
	return s
}

func (p *AuthProvider) IsLoggedIn() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.current.IsLoggedIn
}

// User returns the logged-in user.
func (p *AuthProvider) User() (models.User, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if !p.current.IsLoggedIn || p.current.User == nil {
		return models.User{}, false
	}
	return *p.current.User, true
}

func (p *AuthProvider) Login(ctx context.Context, in models.LoginInput) (models.User, error) {
	return p.authenticate(ctx, "login", "could not sign in", func() (models.AuthResult, error) {
		return p.gw.Login(ctx, in)
	})
}

func (p *AuthProvider) Register(ctx context.Context, in models.RegisterInput) (models.User, error) {
	return p.authenticate(ctx, "register", "could not create account", func() (models.AuthResult, error) {
		return p.gw.Register(ctx, in)
	})
}

func (p *AuthProvider) authenticate(ctx context.Context, op, def string, call func() (models.AuthResult, error)) (models.User, error) {
	p.setState(StateLoading)
	res, err := call()
	if err != nil {
		p.setState(StateError)
		return models.User{}, fail(op, def, err)
	}
	u := res.User
	p.set(ctx, session.Session{User: &u, Token: res.Token, IsLoggedIn: true})
	return u, nil
}

func (p *AuthProvider) UpdateProfile(ctx context.Context, in models.UpdateProfileInput) (models.User, error) {
	u, ok := p.User()
	if !ok {
		return models.User{}, &Error{Op: "update profile", Message: "not logged in"}
	}
	updated, err := p.gw.UpdateProfile(ctx, u.ID, in)
	if err != nil {
		return models.User{}, fail("update profile", "could not update profile", err)
	}
	s := p.Session()
	s.User = &updated
	p.set(ctx, s)
	return updated, nil
}

// DeleteAccount removes the account and logs out.
func (p *AuthProvider) DeleteAccount(ctx context.Context) error {
	u, ok := p.User()
	if !ok {
		return &Error{Op: "delete account", Message: "not logged in"}
	}
	if err := p.gw.DeleteAccount(ctx, u.ID); err != nil {
		return fail("delete account", "could not delete account", err)
	}
	return p.Logout(ctx)
}

// Logout clears the user, the remote token and the session slot.
func (p *AuthProvider) Logout(ctx context.Context) error {
	p.gw.Logout(ctx)
	p.mu.Lock()
	p.current = session.Session{}
	p.state = StateIdle
	p.mu.Unlock()
	if p.slot == nil {
		return nil
	}
	if err := p.slot.Clear(ctx); err != nil {
		return fail("logout", "could not clear session", err)
	}
	return nil
}

// Restore loads the saved session, if any, and reinstalls its token.
func (p *AuthProvider) Restore(ctx context.Context) (bool, error) {
	if p.slot == nil {
		return false, nil
	}
	s, err := p.slot.Load(ctx)
	if err != nil {
		return false, fail("restore session", "could not restore session", err)
	}
	if s == nil || !s.IsLoggedIn || s.User == nil {
		return false, nil
	}
	p.gw.SetToken(s.Token)
	p.mu.Lock()
	p.current = *s
	p.state = StateReady
	p.mu.Unlock()
	return true, nil
}

func (p *AuthProvider) setState(s State) {
	p.mu.Lock()
	p.state = s
	p.mu.Unlock()
}

// set installs s; a failing slot is logged and does not undo the login.
func (p *AuthProvider) set(ctx context.Context, s session.Session) {
	p.mu.Lock()
	p.current = s
	p.state = StateReady
	p.mu.Unlock()
	if p.slot == nil {
		return
	}
	if err := p.slot.Save(ctx, &s); err != nil {
		logger.Warnf("session save failed: %v", err)
	}
}
