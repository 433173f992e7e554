// Package signals dispatches OS signals to registered handlers. The watch
// command uses it to re-check an overlay on SIGHUP and to stop on SIGINT or
// SIGTERM.
package signals

import (
	"context"
	"os"
	"os/signal"
	"sync"

	"github.com/rogue-tools/overrides/lib/util/logger"
)

var log = logger.GetLogger()

// Handler is a function called when a signal is received.
type Handler func()

// HandlerID identifies a registered handler so it can be removed again.
type HandlerID int

type registeredHandler struct {
	id HandlerID
	fn Handler
}

var (
	mu           sync.RWMutex
	reloaders    []registeredHandler
	interrupters []registeredHandler
	nextID       HandlerID
)

func register(list *[]registeredHandler, f Handler) HandlerID {
	if f == nil {
		return -1
	}
	mu.Lock()
	defer mu.Unlock()
	id := nextID
	nextID++
	*list = append(*list, registeredHandler{id: id, fn: f})
	return id
}

func deregister(list *[]registeredHandler, id HandlerID) {
	mu.Lock()
	defer mu.Unlock()
	for i, h := range *list {
		if h.id == id {
			*list = append((*list)[:i], (*list)[i+1:]...)
			return
		}
	}
}

// RegisterReloadHandler registers a handler called on SIGHUP.
// Nil handlers are ignored and return -1.
func RegisterReloadHandler(f Handler) HandlerID {
	return register(&reloaders, f)
}

func DeregisterReloadHandler(id HandlerID) {
	deregister(&reloaders, id)
}

// RegisterInterruptHandler registers a handler called on SIGINT or SIGTERM.
// Nil handlers are ignored and return -1.
func RegisterInterruptHandler(f Handler) HandlerID {
	return register(&interrupters, f)
}

func DeregisterInterruptHandler(id HandlerID) {
	deregister(&interrupters, id)
}

// run calls every handler in registration order. A panicking handler is
// logged and does not stop the others.
func run(kind string, list *[]registeredHandler) {
	mu.RLock()
	snapshot := make([]registeredHandler, len(*list))
	copy(snapshot, *list)
	mu.RUnlock()
	for _, h := range snapshot {
		func() {
			defer func() {
				if r := recover(); r != nil {
					log.WithField("handler", kind).Errorf("signals: panic in handler: %v", r)
				}
			}()
			h.fn()
		}()
	}
}

func handleReload()      { run("reload", &reloaders) }
func handleInterrupted() { run("interrupt", &interrupters) }

// Handle dispatches signals until ctx is done. ready, when not nil, runs
// once the signals are caught, before the first dispatch; signals arriving
// while it runs are dispatched after it returns.
func Handle(ctx context.Context, ready func()) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, watched...)
	defer signal.Stop(sigChan)
	if ready != nil {
		ready()
	}
	for {
		select {
		case <-ctx.Done():
			return
		case sig := <-sigChan:
			dispatch(sig)
		}
	}
}
