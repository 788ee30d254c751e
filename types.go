package riichi

import (
	"fmt"
)

// Suit is the family a tile belongs to.
type Suit string

const (
	SuitMan    Suit = "Man"    // Characters
	SuitPin    Suit = "Pin"    // Circles
	SuitSou    Suit = "Sou"    // Bamboo
	SuitWind   Suit = "Wind"   // Value 1-4: East, South, West, North
	SuitDragon Suit = "Dragon" // Value 1-3: White, Green, Red
)

// IsNumbered reports whether the suit is one of the three numbered suits.
func (s Suit) IsNumbered() bool {
	return s == SuitMan || s == SuitPin || s == SuitSou
}

// Tile represents a mahjong tile identity. Physical copies are interchangeable,
// so Tile is a plain comparable value and can be used as a map key.
type Tile struct {
	Suit  Suit `json:"suit"`
	Value int  `json:"value"` // 1-9 for suits, 1-4 for Winds (E=1, S=2, W=3, N=4), 1-3 for Dragons (W=1, G=2, R=3)
}

var (
	windNames   = []string{"", "East", "South", "West", "North"}
	dragonNames = []string{"", "White", "Green", "Red"}
)

// String returns the user-friendly name, e.g. "Man 5", "East", "Red".
func (t Tile) String() string {
	switch t.Suit {
	case SuitWind:
		if t.Value >= 1 && t.Value <= 4 {
			return windNames[t.Value]
		}
	case SuitDragon:
		if t.Value >= 1 && t.Value <= 3 {
			return dragonNames[t.Value]
		}
	}
	return fmt.Sprintf("%s %d", t.Suit, t.Value)
}

// IsValid reports whether the tile is one of the 34 real tile kinds.
func (t Tile) IsValid() bool {
	switch t.Suit {
	case SuitMan, SuitPin, SuitSou:
		return t.Value >= 1 && t.Value <= 9
	case SuitWind:
		return t.Value >= 1 && t.Value <= 4
	case SuitDragon:
		return t.Value >= 1 && t.Value <= 3
	}
	return false
}

// IsTerminal checks if a tile is a numbered 1 or 9.
func (t Tile) IsTerminal() bool {
	return t.Suit.IsNumbered() && (t.Value == 1 || t.Value == 9)
}

// IsHonor checks if a tile is a Wind or Dragon.
func (t Tile) IsHonor() bool {
	return t.Suit == SuitWind || t.Suit == SuitDragon
}

// IsSimple checks if a tile is a number tile from 2 to 8.
func (t Tile) IsSimple() bool {
	return t.Suit.IsNumbered() && t.Value >= 2 && t.Value <= 8
}

func (t Tile) IsTerminalOrHonor() bool {
	return t.IsTerminal() || t.IsHonor()
}

func (t Tile) IsDragon() bool { return t.Suit == SuitDragon }

func (t Tile) IsWind() bool { return t.Suit == SuitWind }

// IsGreen reports membership in the all-green set: Sou 2, 3, 4, 6, 8 and the Green dragon.
func (t Tile) IsGreen() bool {
	if t.Suit == SuitDragon {
		return t.Value == 2
	}
	if t.Suit != SuitSou {
		return false
	}
	switch t.Value {
	case 2, 3, 4, 6, 8:
		return true
	}
	return false
}

// Index maps the tile to 0..33: Man 1-9, Pin 1-9, Sou 1-9, E S W N, White Green Red.
// Invalid tiles map to -1.
func (t Tile) Index() int {
	if !t.IsValid() {
		return -1
	}
	switch t.Suit {
	case SuitMan:
		return t.Value - 1
	case SuitPin:
		return 9 + t.Value - 1
	case SuitSou:
		return 18 + t.Value - 1
	case SuitWind:
		return 27 + t.Value - 1
	default:
		return 31 + t.Value - 1
	}
}

// TileFromIndex is the inverse of Tile.Index.
func TileFromIndex(i int) Tile {
	switch {
	case i < 9:
		return Tile{Suit: SuitMan, Value: i + 1}
	case i < 18:
		return Tile{Suit: SuitPin, Value: i - 8}
	case i < 27:
		return Tile{Suit: SuitSou, Value: i - 17}
	case i < 31:
		return Tile{Suit: SuitWind, Value: i - 26}
	default:
		return Tile{Suit: SuitDragon, Value: i - 30}
	}
}

// Wind is a seat or round wind.
type Wind int

const (
	East Wind = iota + 1
	South
	West
	North
)

func (w Wind) String() string {
	if w >= East && w <= North {
		return windNames[w]
	}
	return fmt.Sprintf("Wind(%d)", int(w))
}

// Tile returns the wind tile matching w.
func (w Wind) Tile() Tile { return Tile{Suit: SuitWind, Value: int(w)} }

// WinMethod is how the winning tile was obtained.
type WinMethod int

const (
	SelfDraw WinMethod = iota // Tsumo
	Discard                   // Ron
)

func (m WinMethod) String() string {
	if m == SelfDraw {
		return "Tsumo"
	}
	return "Ron"
}

// MeldType names a declared group.
type MeldType string

const (
	MeldChi        MeldType = "Chi"
	MeldPon        MeldType = "Pon"
	MeldAnkan      MeldType = "Ankan"      // Concealed quad
	MeldDaiminkan  MeldType = "Daiminkan"  // Open quad called on a discard
	MeldShouminkan MeldType = "Shouminkan" // Pon upgraded with the fourth tile
)

// Meld represents a declared set of tiles (Chi, Pon, Kan).
type Meld struct {
	Type  MeldType `json:"type"`
	Tiles []Tile   `json:"tiles"`
}

// IsOpen reports whether the meld was completed with a called tile. Ankan keeps the hand closed.
func (m Meld) IsOpen() bool { return m.Type != MeldAnkan }

func (m Meld) IsQuad() bool {
	return m.Type == MeldAnkan || m.Type == MeldDaiminkan || m.Type == MeldShouminkan
}

// Hand is a complete hand at evaluation time. Concealed holds every tile not in a
// declared meld, winning tile included.
type Hand struct {
	Concealed   []Tile `json:"concealed"`
	Melds       []Meld `json:"melds,omitempty"`
	WinningTile Tile   `json:"winning_tile"`
}

// IsClosed reports whether the hand has no open melds.
func (h Hand) IsClosed() bool {
	for _, m := range h.Melds {
		if m.IsOpen() {
			return false
		}
	}
	return true
}

// AllTiles returns the concealed tiles followed by the meld tiles.
func (h Hand) AllTiles() []Tile {
	all := make([]Tile, 0, len(h.Concealed)+len(h.Melds)*4)
	all = append(all, h.Concealed...)
	for _, m := range h.Melds {
		all = append(all, m.Tiles...)
	}
	return all
}

// Context is the per-evaluation situation. The engine only reads it.
type Context struct {
	IsDealer          bool      `json:"is_dealer"`
	SeatWind          Wind      `json:"seat_wind"`
	RoundWind         Wind      `json:"round_wind"`
	WinMethod         WinMethod `json:"win_method"`
	Riichi            bool      `json:"riichi"`
	DoubleRiichi      bool      `json:"double_riichi"` // Riichi declared on the first uninterrupted discard
	Ippatsu           bool      `json:"ippatsu"`
	DoraIndicators    []Tile    `json:"dora_indicators,omitempty"`
	UraDoraIndicators []Tile    `json:"ura_dora_indicators,omitempty"` // Only counted with riichi
	Turn              int       `json:"turn,omitempty"`                // The winner's own turn number, 1 for the first; 0 when not tracked
	Interrupted       bool      `json:"interrupted"`                   // A call was made during the first go-around
	WallExhausted     bool      `json:"wall_exhausted"`                // Win on the last tile (haitei / houtei)
	AfterKan          bool      `json:"after_kan"`                     // Tsumo on a replacement tile
	RobbedKan         bool      `json:"robbed_kan"`                    // Ron on a tile added to a pon
	Honba             int       `json:"honba"`
	RiichiSticks      int       `json:"riichi_sticks"`
}

// IsTsumo is shorthand for a self-drawn win.
func (c Context) IsTsumo() bool { return c.WinMethod == SelfDraw }

// isFirstUninterruptedTurn reports whether the win comes on the player's first turn
// with no calls in between.
func (c Context) isFirstUninterruptedTurn() bool {
	return c.Turn == 1 && !c.Interrupted
}

// --- Sorting Tiles ---

// BySuitValue implements sort.Interface for []Tile based on suit then value.
type BySuitValue []Tile

func (a BySuitValue) Len() int           { return len(a) }
func (a BySuitValue) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a BySuitValue) Less(i, j int) bool { return a[i].Index() < a[j].Index() }
