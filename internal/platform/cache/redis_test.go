package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fnf/internal/platform/config"
)

func TestConnectWithoutAddressDisablesCache(t *testing.T) {
	client, err := Connect(context.Background(), config.Config{}, nil, 3)
	require.NoError(t, err)
	assert.Nil(t, client)
}

func TestConnectGivesUpWhenContextEnds(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client, err := Connect(ctx, config.Config{RedisAddr: "127.0.0.1:1"}, nil, 3)
	assert.Error(t, err)
	assert.Nil(t, client)
}
