package server

import (
	"context"
	"fmt"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestNewGracefulServer(t *testing.T) {
	gs := NewGracefulServer(echo.New(), 8080)
	assert.NotNil(t, gs)
}

func TestShutdownManager_RunsInRegistrationOrder(t *testing.T) {
	sm := NewShutdownManager()
	var order []int

	for i := 0; i < 3; i++ {
		index := i
		sm.Register(func(ctx context.Context) error {
			order = append(order, index)
			return nil
		})
	}

	err := sm.Shutdown(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, order)
}

func TestShutdownManager_ContinuesPastFailures(t *testing.T) {
	sm := NewShutdownManager()
	var calls []string

	sm.Register(func(ctx context.Context) error {
		calls = append(calls, "first")
		return fmt.Errorf("first failed")
	})
	sm.Register(func(ctx context.Context) error {
		calls = append(calls, "second")
		return nil
	})

	err := sm.Shutdown(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestShutdownManager_Empty(t *testing.T) {
	sm := NewShutdownManager()
	assert.NoError(t, sm.Shutdown(context.Background()))
}
