package riichi

import (
	"sort"
)

// ==========================================================
// Hand Completion & Structure Checks
// ==========================================================

// IsCompleteHand checks if a hand forms a valid winning shape (Standard, Chiitoi, Kokushi).
// `concealed` holds the concealed tiles including the winning tile; `melds` are the declared melds.
func IsCompleteHand(concealed []Tile, melds []Meld) bool {
	groupsNeeded := 4 - len(melds)
	if groupsNeeded < 0 || len(concealed) != groupsNeeded*3+2 {
		return false
	}
	counts := CountTiles(concealed)
	if counts.total() != len(concealed) {
		return false
	}
	if len(melds) == 0 && (IsKokushiCounts(counts) || IsChiitoitsuCounts(counts)) {
		return true
	}
	return canComplete(counts, groupsNeeded)
}

// IsKokushiMusou checks for Thirteen Orphans: every terminal and honor plus one duplicate.
func IsKokushiMusou(hand []Tile) bool {
	return len(hand) == WinningHandSize && IsKokushiCounts(CountTiles(hand))
}

// IsKokushiCounts is IsKokushiMusou over a count vector.
func IsKokushiCounts(counts tileCounts) bool {
	pair := false
	total := 0
	for _, t := range terminalAndHonorKinds {
		n := counts[t.Index()]
		switch n {
		case 1:
		case 2:
			if pair {
				return false
			}
			pair = true
		default:
			return false
		}
		total += n
	}
	// Anything outside the 13 kinds shows up as a surplus.
	return pair && total == counts.total()
}

// IsChiitoitsu checks for Seven Pairs: seven distinct kinds, exactly two of each.
// Four of a kind is not two pairs.
func IsChiitoitsu(hand []Tile) bool {
	return len(hand) == WinningHandSize && IsChiitoitsuCounts(CountTiles(hand))
}

// IsChiitoitsuCounts is IsChiitoitsu over a count vector.
func IsChiitoitsuCounts(counts tileCounts) bool {
	pairs := 0
	for _, n := range counts {
		switch n {
		case 0:
		case 2:
			pairs++
		default:
			return false
		}
	}
	return pairs == 7
}

// IsTenpai checks if a 13-tile hand state (concealed + melds) is one tile away from being complete.
func IsTenpai(concealed []Tile, melds []Meld) bool {
	return len(tenpaiWaits(concealed, melds, true)) > 0
}

// FindTenpaiWaits returns the unique tile kinds that would complete the hand, sorted.
// Kinds the player already holds four of are not waits.
func FindTenpaiWaits(concealed []Tile, melds []Meld) []Tile {
	return tenpaiWaits(concealed, melds, false)
}

func tenpaiWaits(concealed []Tile, melds []Meld, firstOnly bool) []Tile {
	groupsNeeded := 4 - len(melds)
	if groupsNeeded < 0 || len(concealed) != groupsNeeded*3+1 {
		return nil
	}
	counts := CountTiles(concealed)
	if counts.total() != len(concealed) {
		return nil
	}
	held := counts
	for _, m := range melds {
		for _, t := range m.Tiles {
			if i := t.Index(); i >= 0 {
				held[i]++
			}
		}
	}

	var waits []Tile
	for i := 0; i < TileKinds; i++ {
		if held[i] >= MaxCopies {
			continue
		}
		counts[i]++
		complete := canComplete(counts, groupsNeeded) ||
			(len(melds) == 0 && (IsChiitoitsuCounts(counts) || IsKokushiCounts(counts)))
		counts[i]--
		if complete {
			waits = append(waits, TileFromIndex(i))
			if firstOnly {
				break
			}
		}
	}
	return waits
}

// RiichiOption represents a possible discard to declare Riichi.
type RiichiOption struct {
	DiscardIndex int    `json:"discard_index"`
	DiscardTile  Tile   `json:"discard_tile"`
	Waits        []Tile `json:"waits"`
}

// FindRiichiOptions iterates through a 14-tile state and finds all discards that leave the hand in Tenpai.
// Only the first index of each discarded kind is reported. Open melds rule out riichi.
func FindRiichiOptions(hand14 []Tile, melds []Meld) []RiichiOption {
	for _, m := range melds {
		if m.IsOpen() {
			return nil
		}
	}
	if len(hand14) != (4-len(melds))*3+2 {
		return nil
	}

	options := []RiichiOption{}
	tried := make(map[Tile]bool)
	for i, discard := range hand14 {
		if tried[discard] {
			continue
		}
		tried[discard] = true

		hand13 := make([]Tile, 0, len(hand14)-1)
		hand13 = append(hand13, hand14[:i]...)
		hand13 = append(hand13, hand14[i+1:]...)
		if waits := FindTenpaiWaits(hand13, melds); len(waits) > 0 {
			options = append(options, RiichiOption{DiscardIndex: i, DiscardTile: discard, Waits: waits})
		}
	}
	sort.SliceStable(options, func(i, j int) bool {
		return options[i].DiscardTile.Index() < options[j].DiscardTile.Index()
	})
	return options
}

// CheckKyuushuuKyuuhai reports nine or more distinct terminal/honor kinds in a closed
// starting hand, the condition for calling an abortive draw on the first draw.
func CheckKyuushuuKyuuhai(hand []Tile, melds []Meld) bool {
	if len(melds) > 0 || len(hand) < 13 {
		return false
	}
	counts := CountTiles(hand)
	kinds := 0
	for _, t := range terminalAndHonorKinds {
		if counts[t.Index()] > 0 {
			kinds++
		}
	}
	return kinds >= 9
}

// ==========================================================
// Input Validation
// ==========================================================

// ValidateHand checks tile identities, meld shapes, per-kind multiplicity and the
// 14-tile total (each quad counting as three).
func ValidateHand(h Hand) error {
	for _, t := range h.Concealed {
		if !t.IsValid() {
			return invalid("concealed", ErrInvalidTile, "%s %d", t.Suit, t.Value)
		}
	}
	if !h.WinningTile.IsValid() {
		return invalid("winning_tile", ErrInvalidTile, "%s %d", h.WinningTile.Suit, h.WinningTile.Value)
	}
	if len(h.Melds) > 4 {
		return invalid("melds", ErrInvalidMeld, "%d melds declared", len(h.Melds))
	}
	for _, m := range h.Melds {
		if err := validateMeld(m); err != nil {
			return err
		}
	}

	slots := len(h.Concealed) + 3*len(h.Melds)
	if slots != WinningHandSize {
		return invalid("tiles", ErrWrongTileCount, "have %d, need %d", slots, WinningHandSize)
	}

	all := CountTiles(h.AllTiles())
	for i, n := range all {
		if n > MaxCopies {
			return invalid("tiles", ErrTooManyCopies, "%d copies of %s", n, TileFromIndex(i))
		}
	}

	if !contains(h.Concealed, h.WinningTile) {
		return invalid("winning_tile", ErrInvalidTile, "%s is not among the concealed tiles", h.WinningTile)
	}
	return nil
}

// ValidateContext rejects flag combinations that cannot happen at the table.
func ValidateContext(ctx Context, h Hand) error {
	if ctx.SeatWind < East || ctx.SeatWind > North {
		return invalid("seat_wind", ErrInvalidContext, "%d", int(ctx.SeatWind))
	}
	if ctx.RoundWind < East || ctx.RoundWind > North {
		return invalid("round_wind", ErrInvalidContext, "%d", int(ctx.RoundWind))
	}
	if ctx.WinMethod != SelfDraw && ctx.WinMethod != Discard {
		return invalid("win_method", ErrInvalidContext, "%d", int(ctx.WinMethod))
	}
	if ctx.Turn < 0 || ctx.Honba < 0 || ctx.RiichiSticks < 0 {
		return invalid("counters", ErrInvalidContext, "negative turn, honba or stick count")
	}
	if (ctx.Riichi || ctx.DoubleRiichi || ctx.Ippatsu) && !h.IsClosed() {
		return invalid("riichi", ErrInvalidContext, "riichi declared with an open hand")
	}
	if ctx.Ippatsu && !ctx.Riichi && !ctx.DoubleRiichi {
		return invalid("ippatsu", ErrInvalidContext, "ippatsu without riichi")
	}
	if ctx.AfterKan && ctx.WinMethod != SelfDraw {
		return invalid("after_kan", ErrInvalidContext, "replacement draw won by ron")
	}
	if ctx.RobbedKan && ctx.WinMethod != Discard {
		return invalid("robbed_kan", ErrInvalidContext, "robbing a kan is a ron")
	}
	for _, t := range append(append([]Tile(nil), ctx.DoraIndicators...), ctx.UraDoraIndicators...) {
		if !t.IsValid() {
			return invalid("dora_indicators", ErrInvalidTile, "%s %d", t.Suit, t.Value)
		}
	}
	return nil
}

func validateMeld(m Meld) error {
	for _, t := range m.Tiles {
		if !t.IsValid() {
			return invalid("meld", ErrInvalidTile, "%s %d in %s", t.Suit, t.Value, m.Type)
		}
	}
	tiles := sortedCopy(m.Tiles)
	switch m.Type {
	case MeldChi:
		if len(tiles) != 3 || !tiles[0].Suit.IsNumbered() ||
			tiles[1] != (Tile{tiles[0].Suit, tiles[0].Value + 1}) ||
			tiles[2] != (Tile{tiles[0].Suit, tiles[0].Value + 2}) {
			return invalid("meld", ErrInvalidMeld, "chi %s is not a run", Notation(tiles))
		}
	case MeldPon:
		if len(tiles) != 3 || tiles[0] != tiles[2] {
			return invalid("meld", ErrInvalidMeld, "pon %s is not three of a kind", Notation(tiles))
		}
	case MeldAnkan, MeldDaiminkan, MeldShouminkan:
		if len(tiles) != 4 || tiles[0] != tiles[3] {
			return invalid("meld", ErrInvalidMeld, "%s %s is not four of a kind", m.Type, Notation(tiles))
		}
	default:
		return invalid("meld", ErrInvalidMeld, "unknown meld type %q", m.Type)
	}
	return nil
}
