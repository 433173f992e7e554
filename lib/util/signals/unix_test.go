//go:build !windows

package signals

import (
	"context"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatch(t *testing.T) {
	resetHandlers(t)

	var reloads, interrupts int
	RegisterReloadHandler(func() { reloads++ })
	RegisterInterruptHandler(func() { interrupts++ })

	dispatch(syscall.SIGHUP)
	dispatch(syscall.SIGTERM)
	dispatch(syscall.SIGINT)

	assert.Equal(t, 1, reloads)
	assert.Equal(t, 2, interrupts)
}

func TestHandleCatchesSignalsBeforeReady(t *testing.T) {
	resetHandlers(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	reloaded := false
	RegisterReloadHandler(func() {
		reloaded = true
		cancel()
	})

	Handle(ctx, func() {
		require.NoError(t, syscall.Kill(os.Getpid(), syscall.SIGHUP))
	})
	assert.True(t, reloaded)
}
