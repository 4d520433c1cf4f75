package engine

import (
	"sync/atomic"

	"github.com/bastiangx/teny/pkg/config"
	"github.com/charmbracelet/log"
	"golang.org/x/sync/singleflight"
)

// Holder publishes the current Engine. Requests call Get once and use that
// engine to the end; Reload swaps in a fresh one without blocking them.
type Holder struct {
	current atomic.Pointer[Engine]
	cfg     atomic.Pointer[config.Config]
	reloads atomic.Int64
	group   singleflight.Group
}

// NewHolder publishes e, built from cfg.
func NewHolder(e *Engine, cfg *config.Config) *Holder {
	h := &Holder{}
	h.current.Store(e)
	h.cfg.Store(cfg)
	return h
}

// Get returns the current engine.
func (h *Holder) Get() *Engine {
	return h.current.Load()
}

// Config returns the config the current engine was built from.
func (h *Holder) Config() *config.Config {
	return h.cfg.Load()
}

// Reload rebuilds the engine from cfg, or from the last config when cfg is
// nil. Concurrent calls share one rebuild. Unlike Load, a snapshot that
// does not open is an error, and the old engine stays.
func (h *Holder) Reload(cfg *config.Config) (*Engine, error) {
	v, err, shared := h.group.Do("reload", func() (any, error) {
		if cfg == nil {
			cfg = h.cfg.Load()
		}
		lx, err := LoadLexicon(cfg.Data)
		if err != nil {
			return nil, err
		}
		e := New(lx, cfg)
		h.current.Store(e)
		h.cfg.Store(cfg)
		h.reloads.Add(1)
		return e, nil
	})
	if err != nil {
		log.Errorf("Failed to reload lexicon: %v", err)
		return nil, err
	}
	if shared {
		log.Debug("Reload shared with a concurrent caller")
	}
	return v.(*Engine), nil
}

// Reloads counts successful reloads.
func (h *Holder) Reloads() int64 {
	return h.reloads.Load()
}
