package storage

import (
	"context"
	"testing"

	"github.com/revisaai/revisaai/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvatarKey(t *testing.T) {
	assert.Equal(t, "avatars/1.png", AvatarKey("1", "image/png"))
	assert.Equal(t, "avatars/u-2.jpeg", AvatarKey("u-2", "image/jpeg"))
	assert.Equal(t, "avatars/3.img", AvatarKey("3", "image/svg+xml"))
	assert.Equal(t, "avatars/4.img", AvatarKey("4", ""))
}

func TestNewMinIOStorageRequiresEndpoint(t *testing.T) {
	_, err := NewMinIOStorage(context.Background(), config.MinIOConfig{})
	require.Error(t, err)
}
