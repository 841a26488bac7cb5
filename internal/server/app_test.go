package server

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/employwise/internal/server/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApp_InMemorySeeded(t *testing.T) {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.ListenAddr = "127.0.0.1:0"

	app, err := NewApp(context.Background(), cfg)
	require.NoError(t, err)

	p, err := app.userService.List(context.Background(), 1, 0)
	require.NoError(t, err)
	assert.Equal(t, 12, p.Total)
	assert.Equal(t, 2, p.TotalPages)
}

func TestRun_ReturnsWhenContextCancelled(t *testing.T) {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.ListenAddr = "127.0.0.1:0"

	app, err := NewApp(context.Background(), cfg)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		app.Run(ctx)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("Run did not return")
	}
}
