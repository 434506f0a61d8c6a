package gateway

import (
	"context"

	"github.com/revisaai/revisaai/internal/models"
	"github.com/revisaai/revisaai/internal/remote"
	"github.com/revisaai/revisaai/internal/tokens"
	"github.com/revisaai/revisaai/pkg/logger"
)

const resUsers = "users"

type AuthGateway struct{ base }

// Login authenticates and, on success, keeps the token on the remote client.
func (g *AuthGateway) Login(ctx context.Context, in models.LoginInput) (models.AuthResult, error) {
	in.Email = models.NormalizeEmail(in.Email)
	res, err := run(g.base, resUsers, "login",
		func(rc *remote.Client) remote.Result[models.AuthResult] { return rc.Login(ctx, in) },
		func() (models.AuthResult, error) {
			u, err := g.stores.Users.Authenticate(ctx, in.Email, in.Password)
			if err != nil {
				return models.AuthResult{}, err
			}
			return models.AuthResult{User: u, Token: tokens.MockToken(u.ID)}, nil
		})
	if err != nil {
		return models.AuthResult{}, err
	}
	g.SetToken(res.Token)
	return res, nil
}

func (g *AuthGateway) Register(ctx context.Context, in models.RegisterInput) (models.AuthResult, error) {
	in.Normalize()
	res, err := run(g.base, resUsers, "register",
		func(rc *remote.Client) remote.Result[models.AuthResult] { return rc.Register(ctx, in) },
		func() (models.AuthResult, error) {
			u, err := g.stores.Users.Register(ctx, in)
			if err != nil {
				return models.AuthResult{}, err
			}
			return models.AuthResult{User: u, Token: tokens.MockToken(u.ID)}, nil
		})
	if err != nil {
		return models.AuthResult{}, err
	}
	g.SetToken(res.Token)
	return res, nil
}

// Logout revokes the token on the API when there is one. It never fails.
func (g *AuthGateway) Logout(ctx context.Context) {
	if g.rc != nil {
		if res := g.rc.Logout(ctx); !res.Ok() {
			logger.Warnf("users logout: remote failed: %v", res.Err)
		}
	}
	g.SetToken("")
}

// SetToken installs a previously issued token, e.g. one restored from the session slot.
func (g *AuthGateway) SetToken(token string) {
	if g.rc != nil {
		g.rc.SetAuthToken(token)
	}
}

func (g *AuthGateway) UpdateProfile(ctx context.Context, id string, in models.UpdateProfileInput) (models.User, error) {
	return run(g.base, resUsers, "update",
		func(rc *remote.Client) remote.Result[models.User] { return rc.UpdateProfile(ctx, id, in) },
		func() (models.User, error) { return g.stores.Users.Update(ctx, id, in) })
}

func (g *AuthGateway) DeleteAccount(ctx context.Context, id string) error {
	return exec(g.base, resUsers, "delete",
		func(rc *remote.Client) remote.Result[remote.Empty] { return rc.DeleteAccount(ctx, id) },
		func() error { return g.stores.Users.Delete(ctx, id) })
}
