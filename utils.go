package riichi

import (
	"sort"
)

// tileCounts holds how many copies of each of the 34 identities are present.
type tileCounts [TileKinds]int

// CountTiles counts tiles per identity. Invalid tiles are ignored; callers validate first.
func CountTiles(tiles []Tile) tileCounts {
	var counts tileCounts
	for _, t := range tiles {
		if i := t.Index(); i >= 0 {
			counts[i]++
		}
	}
	return counts
}

func (c tileCounts) total() int {
	n := 0
	for _, v := range c {
		n += v
	}
	return n
}

// distinct returns the number of identities with at least one copy.
func (c tileCounts) distinct() int {
	n := 0
	for _, v := range c {
		if v > 0 {
			n++
		}
	}
	return n
}

// key packs the counts plus the number of fixed melds into a cache key.
func (c tileCounts) key(fixedMelds int) string {
	var b [TileKinds + 1]byte
	for i, v := range c {
		b[i] = byte(v)
	}
	b[TileKinds] = byte(fixedMelds)
	return string(b[:])
}

// sortedCopy returns a sorted copy without touching the caller's slice.
func sortedCopy(tiles []Tile) []Tile {
	out := append([]Tile(nil), tiles...)
	sort.Sort(BySuitValue(out))
	return out
}

// contains checks if a slice contains a specific comparable value.
func contains[T comparable](slice []T, val T) bool {
	for _, item := range slice {
		if item == val {
			return true
		}
	}
	return false
}

func ceilTo(x, step int) int {
	return (x + step - 1) / step * step
}
