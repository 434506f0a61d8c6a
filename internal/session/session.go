package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/revisaai/revisaai/internal/models"
)

// Session is the persisted login state of the current user.
type Session struct {
	User       *models.User `json:"user"`
	Token      string       `json:"token"`
	IsLoggedIn bool         `json:"isLoggedIn"`
}

// Slot is a single durable value holding the Session.
// Load returns (nil, nil) when nothing is stored.
type Slot interface {
	Load(ctx context.Context) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Clear(ctx context.Context) error
}

func encode(s *Session) ([]byte, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode session: %w", err)
	}
	return b, nil
}

func decode(b []byte) (*Session, error) {
	var s Session
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &s, nil
}
