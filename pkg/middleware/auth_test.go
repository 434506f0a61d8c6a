package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// fakeToken implements Token
type fakeToken struct {
	data map[string]interface{}
}

func (t *fakeToken) Claims(v interface{}) error {
	if mm, ok := v.(*map[string]interface{}); ok {
		*mm = t.data
		return nil
	}
	return fmt.Errorf("unsupported claims type")
}

// fakeVerifier accepts a single raw token
type fakeVerifier struct {
	good string
	sub  string
}

func (f *fakeVerifier) Verify(ctx context.Context, raw string) (Token, error) {
	if raw == f.good {
		return &fakeToken{data: map[string]interface{}{"sub": f.sub, "email": "test@example.com"}}, nil
	}
	return nil, fmt.Errorf("invalid token")
}

type fakeDenylist map[string]bool

func (d fakeDenylist) IsDenied(ctx context.Context, token string) (bool, error) {
	return d[token], nil
}

func newAuthRouter(ver Verifier, deny Denylist) *gin.Engine {
	g := gin.New()
	g.GET("/", AuthMiddleware(ver, deny), func(c *gin.Context) {
		claims, _ := c.Get(ClaimsKey)
		tok, _ := c.Get(TokenKey)
		c.JSON(http.StatusOK, gin.H{"claims": claims, "sub": Subject(c), "token": tok})
	})
	return g
}

func TestAuthMiddleware_NoHeader(t *testing.T) {
	rw := httptest.NewRecorder()
	newAuthRouter(&fakeVerifier{good: "goodtoken"}, nil).ServeHTTP(rw, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusUnauthorized, rw.Code)
}

func TestAuthMiddleware_InvalidHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "BadHeader")
	rw := httptest.NewRecorder()
	newAuthRouter(&fakeVerifier{good: "goodtoken"}, nil).ServeHTTP(rw, req)
	require.Equal(t, http.StatusUnauthorized, rw.Code)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer goodtoken")
	rw := httptest.NewRecorder()
	newAuthRouter(&fakeVerifier{good: "goodtoken", sub: "user1"}, nil).ServeHTTP(rw, req)

	require.Equal(t, http.StatusOK, rw.Code)
	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(rw.Body.Bytes(), &got))
	require.Contains(t, got, "claims")
	require.Equal(t, "user1", got["sub"])
	require.Equal(t, "goodtoken", got["token"])
}

func TestAuthMiddleware_RejectsDeniedToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer goodtoken")
	rw := httptest.NewRecorder()
	newAuthRouter(&fakeVerifier{good: "goodtoken"}, fakeDenylist{"goodtoken": true}).ServeHTTP(rw, req)
	require.Equal(t, http.StatusUnauthorized, rw.Code)
}

func TestAnyVerifier(t *testing.T) {
	ctx := context.Background()
	any := AnyVerifier{nil, &fakeVerifier{good: "a", sub: "1"}, &fakeVerifier{good: "b", sub: "2"}}

	tok, err := any.Verify(ctx, "b")
	require.NoError(t, err)
	var claims map[string]interface{}
	require.NoError(t, tok.Claims(&claims))
	require.Equal(t, "2", claims["sub"])

	_, err = any.Verify(ctx, "c")
	require.Error(t, err)

	_, err = AnyVerifier{}.Verify(ctx, "a")
	require.Error(t, err)
}
