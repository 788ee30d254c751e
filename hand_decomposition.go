package riichi

import (
	"sort"
	"strings"
)

// GroupType represents the type of a group in a decomposed hand.
type GroupType int

const (
	TypeSequence GroupType = iota // Chi / shuntsu
	TypeTriplet                   // Pon / koutsu
	TypeQuad                      // Kan (Ankan, Daiminkan, Shouminkan)
	TypePair
)

func (t GroupType) String() string {
	switch t {
	case TypeSequence:
		return "Sequence"
	case TypeTriplet:
		return "Triplet"
	case TypeQuad:
		return "Quad"
	case TypePair:
		return "Pair"
	}
	return "Unknown"
}

// Group is one component of a decomposition. Tile is the lowest tile of a
// sequence, or the repeated tile of a triplet, quad or pair.
type Group struct {
	Type     GroupType `json:"type"`
	Tile     Tile      `json:"tile"`
	Open     bool      `json:"open"`     // Completed by a call
	Declared bool      `json:"declared"` // Comes from a declared meld, not the concealed tiles
}

// Tiles expands the group into its tiles.
func (g Group) Tiles() []Tile {
	switch g.Type {
	case TypeSequence:
		return []Tile{g.Tile, {g.Tile.Suit, g.Tile.Value + 1}, {g.Tile.Suit, g.Tile.Value + 2}}
	case TypeTriplet:
		return []Tile{g.Tile, g.Tile, g.Tile}
	case TypeQuad:
		return []Tile{g.Tile, g.Tile, g.Tile, g.Tile}
	default:
		return []Tile{g.Tile, g.Tile}
	}
}

// Contains reports whether t is one of the group's tiles.
func (g Group) Contains(t Tile) bool {
	if g.Type == TypeSequence {
		return t.Suit == g.Tile.Suit && t.Value >= g.Tile.Value && t.Value <= g.Tile.Value+2
	}
	return t == g.Tile
}

// IsTripletLike is true for triplets and quads.
func (g Group) IsTripletLike() bool {
	return g.Type == TypeTriplet || g.Type == TypeQuad
}

// HasTerminalOrHonor reports whether any tile of the group is a terminal or honor.
func (g Group) HasTerminalOrHonor() bool {
	if g.Type == TypeSequence {
		return g.Tile.Value == 1 || g.Tile.Value == 7
	}
	return g.Tile.IsTerminalOrHonor()
}

// HasTerminal reports whether any tile of the group is a numbered 1 or 9.
func (g Group) HasTerminal() bool {
	if g.Type == TypeSequence {
		return g.Tile.Value == 1 || g.Tile.Value == 7
	}
	return g.Tile.IsTerminal()
}

func (g Group) String() string {
	return g.Type.String() + "(" + Notation(g.Tiles()) + ")"
}

// Shape distinguishes the regular four-groups-and-a-pair form from the two irregular forms.
type Shape int

const (
	ShapeStandard Shape = iota
	ShapeSevenPairs
	ShapeThirteenOrphans
)

func (s Shape) String() string {
	switch s {
	case ShapeSevenPairs:
		return "SevenPairs"
	case ShapeThirteenOrphans:
		return "ThirteenOrphans"
	}
	return "Standard"
}

// Decomposition is one way to read a complete hand.
// Standard: four groups plus one pair, declared melds first.
// SevenPairs: seven pair groups. ThirteenOrphans: no groups.
type Decomposition struct {
	Shape  Shape   `json:"shape"`
	Groups []Group `json:"groups,omitempty"`
}

// Pair returns the pair of a standard decomposition.
func (d Decomposition) Pair() (Group, bool) {
	if d.Shape != ShapeStandard {
		return Group{}, false
	}
	for _, g := range d.Groups {
		if g.Type == TypePair {
			return g, true
		}
	}
	return Group{}, false
}

// Melds returns the non-pair groups.
func (d Decomposition) Melds() []Group {
	melds := make([]Group, 0, 4)
	for _, g := range d.Groups {
		if g.Type != TypePair {
			melds = append(melds, g)
		}
	}
	return melds
}

func (d Decomposition) String() string {
	if d.Shape == ShapeThirteenOrphans {
		return d.Shape.String()
	}
	parts := make([]string, len(d.Groups))
	for i, g := range d.Groups {
		parts[i] = g.String()
	}
	return d.Shape.String() + " " + strings.Join(parts, " ")
}

// Decompose lists every way a fully concealed 14-tile hand can be read as a winning shape.
// Standard readings come first, then seven pairs, then thirteen orphans.
// An empty result means the tiles do not form a winning hand.
func Decompose(tiles []Tile) []Decomposition {
	if len(tiles) != WinningHandSize {
		return nil
	}
	counts := CountTiles(tiles)
	if counts.total() != WinningHandSize {
		return nil
	}
	return decomposeCounts(counts, 0)
}

// DecomposeHand fixes the declared melds as groups and decomposes the concealed tiles.
// Irregular shapes are only possible when nothing was declared. A malformed meld
// yields no readings.
func DecomposeHand(h Hand) []Decomposition {
	if !meldsValid(h.Melds) {
		return nil
	}
	return attachMelds(h.Melds, decomposeCounts(CountTiles(h.Concealed), len(h.Melds)))
}

// decomposeCounts returns the readings of the concealed part only.
func decomposeCounts(counts tileCounts, fixedMelds int) []Decomposition {
	groupsNeeded := 4 - fixedMelds
	if groupsNeeded < 0 || counts.total() != groupsNeeded*3+2 {
		return nil
	}

	var found []Decomposition
	seen := make(map[string]bool)
	work := counts
	decomposeRecursive(&work, 0, groupsNeeded, true, make([]Group, 0, 5), func(groups []Group) {
		sorted := append([]Group(nil), groups...)
		sortGroups(sorted)
		k := groupsKey(sorted)
		if seen[k] {
			return
		}
		seen[k] = true
		found = append(found, Decomposition{Shape: ShapeStandard, Groups: sorted})
	})

	if fixedMelds == 0 {
		if IsChiitoitsuCounts(counts) {
			pairs := make([]Group, 0, 7)
			for i, n := range counts {
				if n == 2 {
					pairs = append(pairs, Group{Type: TypePair, Tile: TileFromIndex(i)})
				}
			}
			found = append(found, Decomposition{Shape: ShapeSevenPairs, Groups: pairs})
		}
		if IsKokushiCounts(counts) {
			found = append(found, Decomposition{Shape: ShapeThirteenOrphans})
		}
	}
	return found
}

// decomposeRecursive consumes the lowest remaining kind first. That kind can only
// start a pair, a triplet or a sequence, so trying those three covers every reading.
func decomposeRecursive(counts *tileCounts, from, groupsNeeded int, pairNeeded bool, current []Group, emit func([]Group)) {
	i := from
	for i < TileKinds && counts[i] == 0 {
		i++
	}
	if i == TileKinds {
		if groupsNeeded == 0 && !pairNeeded {
			emit(current)
		}
		return
	}
	t := TileFromIndex(i)

	// 1. Pair
	if pairNeeded && counts[i] >= 2 {
		counts[i] -= 2
		decomposeRecursive(counts, i, groupsNeeded, false, append(current, Group{Type: TypePair, Tile: t}), emit)
		counts[i] += 2
	}
	if groupsNeeded == 0 {
		return
	}
	// 2. Triplet
	if counts[i] >= 3 {
		counts[i] -= 3
		decomposeRecursive(counts, i, groupsNeeded-1, pairNeeded, append(current, Group{Type: TypeTriplet, Tile: t}), emit)
		counts[i] += 3
	}
	// 3. Sequence
	if t.Suit.IsNumbered() && t.Value <= 7 && counts[i+1] > 0 && counts[i+2] > 0 {
		counts[i]--
		counts[i+1]--
		counts[i+2]--
		decomposeRecursive(counts, i, groupsNeeded-1, pairNeeded, append(current, Group{Type: TypeSequence, Tile: t}), emit)
		counts[i]++
		counts[i+1]++
		counts[i+2]++
	}
}

// canComplete reports whether the counts form groupsNeeded groups plus a pair,
// stopping at the first success.
func canComplete(counts tileCounts, groupsNeeded int) bool {
	if counts.total() != groupsNeeded*3+2 {
		return false
	}
	return completes(&counts, 0, groupsNeeded, true)
}

func completes(c *tileCounts, from, groups int, pair bool) bool {
	i := from
	for i < TileKinds && c[i] == 0 {
		i++
	}
	if i == TileKinds {
		return groups == 0 && !pair
	}
	ok := false
	if pair && c[i] >= 2 {
		c[i] -= 2
		ok = completes(c, i, groups, false)
		c[i] += 2
	}
	if !ok && groups > 0 && c[i] >= 3 {
		c[i] -= 3
		ok = completes(c, i, groups-1, pair)
		c[i] += 3
	}
	if !ok && groups > 0 && i < 27 && i%9 <= 6 && c[i+1] > 0 && c[i+2] > 0 {
		c[i]--
		c[i+1]--
		c[i+2]--
		ok = completes(c, i, groups-1, pair)
		c[i]++
		c[i+1]++
		c[i+2]++
	}
	return ok
}

// meldGroup converts a declared meld into its fixed group.
func meldsValid(melds []Meld) bool {
	for _, m := range melds {
		if validateMeld(m) != nil {
			return false
		}
	}
	return true
}

// meldGroup expects a meld that passed validateMeld.
func meldGroup(m Meld) Group {
	g := Group{Tile: sortedCopy(m.Tiles)[0], Open: m.IsOpen(), Declared: true}
	switch m.Type {
	case MeldChi:
		g.Type = TypeSequence
	case MeldPon:
		g.Type = TypeTriplet
	default:
		g.Type = TypeQuad
	}
	return g
}

// attachMelds prefixes each concealed reading with the declared groups.
// Cached readings are shared, so every result gets fresh slices.
func attachMelds(melds []Meld, concealed []Decomposition) []Decomposition {
	if len(concealed) == 0 {
		return nil
	}
	fixed := make([]Group, len(melds))
	for i, m := range melds {
		fixed[i] = meldGroup(m)
	}
	out := make([]Decomposition, len(concealed))
	for i, d := range concealed {
		groups := make([]Group, 0, len(fixed)+len(d.Groups))
		groups = append(groups, fixed...)
		groups = append(groups, d.Groups...)
		out[i] = Decomposition{Shape: d.Shape, Groups: groups}
	}
	return out
}

func sortGroups(groups []Group) {
	sort.Slice(groups, func(i, j int) bool {
		a, b := groups[i], groups[j]
		if a.Tile.Index() != b.Tile.Index() {
			return a.Tile.Index() < b.Tile.Index()
		}
		return a.Type < b.Type
	})
}

func groupsKey(groups []Group) string {
	b := make([]byte, 0, len(groups)*2)
	for _, g := range groups {
		b = append(b, byte(g.Type), byte(g.Tile.Index()))
	}
	return string(b)
}
