package riichi

const (
	baseFu       = 20
	chiitoitsuFu = 25
	menzenRonFu  = 10
	tsumoFu      = 2
	narrowWaitFu = 2
	valuePairFu  = 2
)

// CalculateFu calculates the Fu for one reading of a winning hand.
// The result is rounded up to a multiple of 10, except for Chiitoitsu (25) and Kokushi (0).
func CalculateFu(d Decomposition, p Placement, h Hand, ctx Context, yaku []YakuEntry, rules Rules) int {
	return calculateFu(newHandView(h, ctx, rules, d, p), yaku)
}

func calculateFu(v *handView, yaku []YakuEntry) int {
	switch v.d.Shape {
	case ShapeThirteenOrphans:
		return 0
	case ShapeSevenPairs:
		return chiitoitsuFu // Fixed, no rounding.
	}

	if hasYaku(yaku, YakuPinfu) {
		if v.rules.PinfuRon30 && !v.ctx.IsTsumo() {
			return 30
		}
		return baseFu
	}

	fu := baseFu

	// 1. Groups
	for i, g := range v.d.Groups {
		fu += groupFu(g, v.groupOpen(i), v.rules.StandardFu)
	}

	// 2. Pair: a value pair is worth 2 once. Under standard_fu a double wind pair stacks to 4.
	if pair, ok := v.d.Pair(); ok {
		fu += pairFu(pair.Tile, v.ctx, v.rules.StandardFu)
	}

	// 3. Wait
	if v.p.Wait.IsNarrow() {
		fu += narrowWaitFu
	}

	// 4. Win method
	if v.ctx.IsTsumo() {
		fu += tsumoFu
	} else if v.closed {
		fu += menzenRonFu
	}

	// An open hand with nothing on top of the base still scores 30.
	if !v.closed && fu == baseFu {
		return 30
	}
	return ceilTo(fu, 10)
}

func pairFu(t Tile, ctx Context, standard bool) int {
	roles := 0
	if t.IsDragon() {
		roles++
	}
	if t == ctx.SeatWind.Tile() {
		roles++
	}
	if t == ctx.RoundWind.Tile() {
		roles++
	}
	if roles > 1 && !standard {
		roles = 1
	}
	return roles * valuePairFu
}

// groupFu is 2 for an open simple triplet, doubled when concealed and doubled for
// terminals or honors. Quads double that again, or quadruple it under standard_fu.
func groupFu(g Group, open, standard bool) int {
	if !g.IsTripletLike() {
		return 0
	}
	fu := 2
	if !open {
		fu *= 2
	}
	if g.Tile.IsTerminalOrHonor() {
		fu *= 2
	}
	if g.Type == TypeQuad {
		if standard {
			fu *= 4
		} else {
			fu *= 2
		}
	}
	return fu
}

func hasYaku(yaku []YakuEntry, id YakuID) bool {
	for _, y := range yaku {
		if y.ID == id {
			return true
		}
	}
	return false
}
