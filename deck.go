package riichi

import (
	"math/rand"
)

const (
	// TileKinds is the number of distinct tile identities.
	TileKinds = 34
	// MaxCopies is the number of physical copies of each identity.
	MaxCopies = 4
	// TotalTiles is 4 * (9*3 + 7).
	TotalTiles = TileKinds * MaxCopies
	// WinningHandSize counts a quad as three tiles.
	WinningHandSize = 14
)

// AllTileKinds returns the 34 unique tile identities in sort order.
// Useful for Tenpai checks.
func AllTileKinds() []Tile {
	kinds := make([]Tile, TileKinds)
	for i := range kinds {
		kinds[i] = TileFromIndex(i)
	}
	return kinds
}

var terminalAndHonorKinds = []Tile{
	{SuitMan, 1}, {SuitMan, 9},
	{SuitPin, 1}, {SuitPin, 9},
	{SuitSou, 1}, {SuitSou, 9},
	{SuitWind, 1}, {SuitWind, 2}, {SuitWind, 3}, {SuitWind, 4},
	{SuitDragon, 1}, {SuitDragon, 2}, {SuitDragon, 3},
}

// TerminalAndHonorKinds returns the 13 identities that make up Kokushi Musou.
func TerminalAndHonorKinds() []Tile {
	return append([]Tile(nil), terminalAndHonorKinds...)
}

// GenerateDeck creates a standard set of 136 tiles shuffled with rng.
func GenerateDeck(rng *rand.Rand) []Tile {
	deck := make([]Tile, 0, TotalTiles)
	for _, kind := range AllTileKinds() {
		for i := 0; i < MaxCopies; i++ {
			deck = append(deck, kind)
		}
	}
	rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
	return deck
}

// DoraFromIndicator returns the tile indicated by a dora indicator.
// Numbered suits wrap 9 -> 1, winds E -> S -> W -> N -> E, dragons W -> G -> R -> W.
func DoraFromIndicator(indicator Tile) Tile {
	dora := indicator
	switch indicator.Suit {
	case SuitMan, SuitPin, SuitSou:
		dora.Value = indicator.Value%9 + 1
	case SuitWind:
		dora.Value = indicator.Value%4 + 1
	case SuitDragon:
		dora.Value = indicator.Value%3 + 1
	}
	return dora
}

// countDora counts how many tiles of the hand are dora for the given indicators.
// Each indicator counts independently, so a repeated indicator doubles its dora.
func countDora(handTiles []Tile, indicators []Tile) int {
	count := 0
	for _, indicator := range indicators {
		dora := DoraFromIndicator(indicator)
		for _, t := range handTiles {
			if t == dora {
				count++
			}
		}
	}
	return count
}
