package overrides

import (
	"sync"

	"github.com/rogue-tools/overrides/lib/util"
	"github.com/rogue-tools/overrides/lib/util/logger"
	"github.com/samber/oops"
)

type initializer struct {
	once   sync.Once
	merged *Overrides
	err    error
}

var process initializer

// init merges overlay onto Defaults() the first time it is called. Every
// later call returns ErrAlreadyInitialized and leaves the first result alone.
func (i *initializer) init(overlay Overlay) (*Overrides, error) {
	first := false
	i.once.Do(func() {
		first = true
		i.merged, i.err = Merge(Defaults(), overlay)
		if i.err != nil {
			log.WithError(i.err).Debug("Overrides initialization failed")
			return
		}
		log.WithFields(logger.Fields{
			"at":     "Init",
			"active": i.merged.Active(),
		}).Info("overrides initialized")
	})
	if !first {
		return nil, oops.In("overrides").Wrap(ErrAlreadyInitialized)
	}
	return i.merged, i.err
}

// Init produces the process-wide configuration from overlay. It runs once:
// concurrent and later callers receive ErrAlreadyInitialized, never a second
// merge. The returned Overrides must be treated as read-only.
func Init(overlay Overlay) (*Overrides, error) {
	return process.init(overlay)
}

// MustInit is like Init but panics on error.
func MustInit(overlay Overlay) *Overrides {
	merged, err := Init(overlay)
	if err != nil {
		util.Panicf("overrides: %v", err)
	}
	return merged
}
