package riichi

// WaitType is the shape the hand was waiting in before the winning tile arrived.
type WaitType int

const (
	WaitNone WaitType = iota
	Ryanmen           // Open two-sided, 45 waiting on 3 or 6
	Kanchan           // Closed, 46 waiting on 5
	Penchan           // Edge, 12 waiting on 3 or 89 waiting on 7
	Tanki             // Pair wait on a single tile
	Shanpon           // Two pairs, one becomes a triplet
	Kokushi           // Thirteen orphans, single wait
	Kokushi13         // Thirteen orphans, all thirteen kinds waiting
)

var waitNames = map[WaitType]string{
	WaitNone:  "None",
	Ryanmen:   "Ryanmen",
	Kanchan:   "Kanchan",
	Penchan:   "Penchan",
	Tanki:     "Tanki",
	Shanpon:   "Shanpon",
	Kokushi:   "Kokushi",
	Kokushi13: "Kokushi13",
}

func (w WaitType) String() string { return waitNames[w] }

// MarshalText lets results render waits by name.
func (w WaitType) MarshalText() ([]byte, error) { return []byte(w.String()), nil }

// IsNarrow reports a single-tile wait worth 2 fu.
func (w WaitType) IsNarrow() bool {
	return w == Kanchan || w == Penchan || w == Tanki
}

// Placement says which group of a decomposition the winning tile completed.
type Placement struct {
	Group int      `json:"group"` // Index into Decomposition.Groups; -1 for thirteen orphans
	Wait  WaitType `json:"wait"`
}

// Placements lists every distinct way the winning tile can sit in d. Identical groups
// give identical readings, so only the first of them is kept.
func Placements(d Decomposition, h Hand) []Placement {
	win := h.WinningTile
	switch d.Shape {
	case ShapeThirteenOrphans:
		before := CountTiles(h.Concealed)
		before[win.Index()]--
		wait := Kokushi
		if before.distinct() == len(terminalAndHonorKinds) {
			wait = Kokushi13
		}
		return []Placement{{Group: -1, Wait: wait}}
	case ShapeSevenPairs:
		for i, g := range d.Groups {
			if g.Tile == win {
				return []Placement{{Group: i, Wait: Tanki}}
			}
		}
		return nil
	}

	var out []Placement
	seen := make(map[[2]int]bool)
	for i, g := range d.Groups {
		if g.Declared || !g.Contains(win) {
			continue
		}
		wait := classifyWait(g, win)
		k := [2]int{int(g.Type)<<8 | g.Tile.Index(), int(wait)}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, Placement{Group: i, Wait: wait})
	}
	return out
}

func classifyWait(g Group, win Tile) WaitType {
	switch g.Type {
	case TypePair:
		return Tanki
	case TypeTriplet:
		return Shanpon
	case TypeSequence:
		switch win.Value - g.Tile.Value {
		case 1:
			return Kanchan
		case 0:
			if g.Tile.Value == 7 {
				return Penchan
			}
			return Ryanmen
		default:
			if g.Tile.Value == 1 {
				return Penchan
			}
			return Ryanmen
		}
	}
	return WaitNone
}
