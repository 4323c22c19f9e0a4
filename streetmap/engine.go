package streetmap

import (
	"errors"
	"sync"

	"github.com/michaelharhay1/EduRoute-Mapper-Application/geo"
	"github.com/michaelharhay1/EduRoute-Mapper-Application/mapindex"
	"github.com/michaelharhay1/EduRoute-Mapper-Application/provider"
)

// ErrNotLoaded indicates a query was issued before LoadMap succeeded or
// after CloseMap.
var ErrNotLoaded = errors.New("streetmap: map not loaded")

// Engine is the single "loaded map" object SPEC_FULL.md §9 calls for in
// place of process-wide globals: every query goes through an Engine value,
// and its lifecycle bit is guarded by mu.
type Engine struct {
	mu     sync.RWMutex
	loaded bool
	ix     *mapindex.Index
	proj   *geo.Projector
}

// NewEngine returns an unloaded Engine.
func NewEngine() *Engine { return &Engine{} }

// LoadMap builds all derived map tables from p (SPEC_FULL.md §4.1
// load_map). On failure, nothing from p is retained and the Engine keeps its
// previous state: an unloaded Engine stays unloaded, and a loaded one keeps
// its earlier map.
func (e *Engine) LoadMap(p provider.MapDatasetProvider) error {
	ix, err := mapindex.Build(p)
	if err != nil {
		return err
	}

	intersections := make([]provider.Intersection, p.IntersectionCount())
	for i := range intersections {
		intersections[i] = p.Intersection(i)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.ix = ix
	e.proj = geo.NewProjector(intersections)
	e.loaded = true
	return nil
}

// CloseMap releases all derived state (SPEC_FULL.md §4.1 close_map).
func (e *Engine) CloseMap() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.ix = nil
	e.proj = nil
	e.loaded = false
}

// ready returns the loaded index and projector, or ErrNotLoaded.
func (e *Engine) ready() (*mapindex.Index, *geo.Projector, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if !e.loaded {
		return nil, nil, ErrNotLoaded
	}
	return e.ix, e.proj, nil
}
