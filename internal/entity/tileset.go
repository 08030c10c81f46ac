// internal/entity/tileset.go
package entity

import (
	"iter"
	"slices"
	"sort"

	"go-hex-terrain/internal/component"
)

type layered struct {
	tile  *component.Tile
	layer component.DepthKey // ключ, под которым тайл лежит сейчас
	seq   int                // порядок добавления, последний tie-break
}

func (a layered) less(b layered) bool {
	if a.layer != b.layer {
		return a.layer.Less(b.layer)
	}
	return a.seq < b.seq
}

// TileSet owns the tiles of the current map and keeps them in draw order:
// ascending depth key, so tiles nearer the viewer come later.
type TileSet struct {
	entries []layered
	nextSeq int
}

func NewTileSet() *TileSet {
	return &TileSet{}
}

// Add вставляет тайл на его место по глубине.
func (s *TileSet) Add(t *component.Tile) {
	s.insert(layered{tile: t, layer: t.Depth(), seq: s.nextSeq})
	s.nextSeq++
}

func (s *TileSet) insert(e layered) {
	i := sort.Search(len(s.entries), func(i int) bool { return e.less(s.entries[i]) })
	s.entries = slices.Insert(s.entries, i, e)
}

// Restack re-splices every tile whose depth changed since it was placed and
// returns how many moved.
func (s *TileSet) Restack() int {
	var stale []layered
	kept := s.entries[:0]
	for _, e := range s.entries {
		if key := e.tile.Depth(); key != e.layer {
			e.layer = key
			stale = append(stale, e)
			continue
		}
		kept = append(kept, e)
	}
	s.entries = kept
	for _, e := range stale {
		s.insert(e)
	}
	return len(stale)
}

// All yields tiles back to front. The sequence can be ranged over any number of times.
func (s *TileSet) All() iter.Seq[*component.Tile] {
	return func(yield func(*component.Tile) bool) {
		for _, e := range s.entries {
			if !yield(e.tile) {
				return
			}
		}
	}
}

// Layer возвращает ключ, под которым тайл записан в наборе.
func (s *TileSet) Layer(t *component.Tile) (component.DepthKey, bool) {
	for _, e := range s.entries {
		if e.tile == t {
			return e.layer, true
		}
	}
	return component.DepthKey{}, false
}

func (s *TileSet) Len() int {
	return len(s.entries)
}

// Clear удаляет все тайлы (перед генерацией новой карты).
func (s *TileSet) Clear() {
	s.entries = nil
	s.nextSeq = 0
}
