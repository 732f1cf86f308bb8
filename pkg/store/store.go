package store

import (
	"context"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/klastad/course-finder/pkg/types"
)

// Catalog is the in-memory item universe the browse engine fetches
// from. It is fed by upsert/delete messages and hands out snapshots in
// primary-key order so the engine's tie-breaks stay deterministic.
type Catalog struct {
	mu         sync.RWMutex
	courses    map[uint]types.RawCourse
	tracks     map[uint]types.RawTrack
	generation atomic.Uint64
}

func NewCatalog() *Catalog {
	return &Catalog{
		courses: make(map[uint]types.RawCourse),
		tracks:  make(map[uint]types.RawTrack),
	}
}

// Generation increases on every write, cache keys embed it so a catalog
// change invalidates all cached responses at once.
func (c *Catalog) Generation() uint64 {
	return c.generation.Load()
}

func (c *Catalog) HandleCourses(items []types.RawCourse) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, item := range items {
		if item.Deleted {
			delete(c.courses, item.Id)
			continue
		}
		c.courses[item.Id] = item
	}
	c.generation.Add(1)
}

func (c *Catalog) HandleTracks(items []types.RawTrack) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, item := range items {
		if item.Deleted {
			delete(c.tracks, item.Id)
			continue
		}
		c.tracks[item.Id] = item
	}
	c.generation.Add(1)
}

func (c *Catalog) HandleDeletions(refs []types.ItemRef) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, ref := range refs {
		switch ref.Scope {
		case types.ScopeCourses:
			delete(c.courses, ref.Id)
		case types.ScopeTracks:
			delete(c.tracks, ref.Id)
		}
	}
	c.generation.Add(1)
}

func (c *Catalog) GetCourse(id uint) (types.RawCourse, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	item, ok := c.courses[id]
	return item, ok
}

func (c *Catalog) GetTrack(id uint) (types.RawTrack, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	item, ok := c.tracks[id]
	return item, ok
}

// FetchCourses implements catalog.Source.
func (c *Catalog) FetchCourses(ctx context.Context) ([]types.RawCourse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	ret := make([]types.RawCourse, 0, len(c.courses))
	for _, item := range c.courses {
		ret = append(ret, item)
	}
	slices.SortFunc(ret, func(a, b types.RawCourse) int {
		return int(a.Id) - int(b.Id)
	})
	return ret, nil
}

// FetchTracks implements catalog.Source.
func (c *Catalog) FetchTracks(ctx context.Context) ([]types.RawTrack, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	ret := make([]types.RawTrack, 0, len(c.tracks))
	for _, item := range c.tracks {
		ret = append(ret, item)
	}
	slices.SortFunc(ret, func(a, b types.RawTrack) int {
		return int(a.Id) - int(b.Id)
	})
	return ret, nil
}

func (c *Catalog) Counts() (courses, tracks int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.courses), len(c.tracks)
}
