package riichi

// handView is the immutable input every yaku predicate and the fu calculator read:
// one decomposition, one placement of the winning tile, and the surrounding situation.
type handView struct {
	hand   Hand
	ctx    Context
	rules  Rules
	d      Decomposition
	p      Placement
	closed bool
	tiles  []Tile // Every tile of the hand, quads as four
}

func newHandView(h Hand, ctx Context, rules Rules, d Decomposition, p Placement) *handView {
	return &handView{
		hand:   h,
		ctx:    ctx,
		rules:  rules,
		d:      d,
		p:      p,
		closed: h.IsClosed(),
		tiles:  h.AllTiles(),
	}
}

// groupOpen reports whether group i scores as open. A triplet finished by ron on a
// shanpon wait counts as open even though its tiles sat in the concealed hand.
func (v *handView) groupOpen(i int) bool {
	g := v.d.Groups[i]
	if g.Open {
		return true
	}
	return g.Type == TypeTriplet && i == v.p.Group && v.p.Wait == Shanpon && !v.ctx.IsTsumo()
}

func (v *handView) concealedTriplets() int {
	n := 0
	for i, g := range v.d.Groups {
		if g.IsTripletLike() && !v.groupOpen(i) {
			n++
		}
	}
	return n
}

func (v *handView) tripletLikeCount() int {
	n := 0
	for _, g := range v.d.Groups {
		if g.IsTripletLike() {
			n++
		}
	}
	return n
}

func (v *handView) quads() int {
	n := 0
	for _, g := range v.d.Groups {
		if g.Type == TypeQuad {
			n++
		}
	}
	return n
}

func (v *handView) sequenceCount() int {
	n := 0
	for _, g := range v.d.Groups {
		if g.Type == TypeSequence {
			n++
		}
	}
	return n
}

func (v *handView) hasGroup(gt GroupType, t Tile) bool {
	for _, g := range v.d.Groups {
		if g.Type == gt && g.Tile == t {
			return true
		}
	}
	return false
}

func (v *handView) hasTripletOf(t Tile) bool {
	for _, g := range v.d.Groups {
		if g.IsTripletLike() && g.Tile == t {
			return true
		}
	}
	return false
}

// honorTriplets counts triplets and quads of the given honor suit.
func (v *handView) honorTriplets(suit Suit) int {
	n := 0
	for _, g := range v.d.Groups {
		if g.IsTripletLike() && g.Tile.Suit == suit {
			n++
		}
	}
	return n
}

// identicalSequencePairs counts disjoint pairs of identical sequences.
func (v *handView) identicalSequencePairs() int {
	seen := make(map[Tile]int)
	for _, g := range v.d.Groups {
		if g.Type == TypeSequence {
			seen[g.Tile]++
		}
	}
	pairs := 0
	for _, n := range seen {
		pairs += n / 2
	}
	return pairs
}

func (v *handView) everyGroup(pred func(Group) bool) bool {
	for _, g := range v.d.Groups {
		if !pred(g) {
			return false
		}
	}
	return true
}

func (v *handView) allTiles(pred func(Tile) bool) bool {
	for _, t := range v.tiles {
		if !pred(t) {
			return false
		}
	}
	return true
}

// suits returns how many numbered suits appear and whether any honor does.
func (v *handView) suits() (int, bool) {
	present := make(map[Suit]bool, 3)
	honors := false
	for _, t := range v.tiles {
		if t.IsHonor() {
			honors = true
		} else {
			present[t.Suit] = true
		}
	}
	return len(present), honors
}

// isValueTile reports a dragon, the seat wind or the round wind.
func (v *handView) isValueTile(t Tile) bool {
	return t.IsDragon() || t == v.ctx.SeatWind.Tile() || t == v.ctx.RoundWind.Tile()
}

// nineGates checks for 1112345678999 plus one tile of the same suit, closed with no
// declared melds. pure is set when the hand waited on all nine kinds.
func (v *handView) nineGates() (ok, pure bool) {
	if len(v.hand.Melds) > 0 {
		return false, false
	}
	suits, honors := v.suits()
	if suits != 1 || honors {
		return false, false
	}
	suit := v.tiles[0].Suit
	counts := CountTiles(v.tiles)
	base := Tile{suit, 1}.Index()
	need := [9]int{3, 1, 1, 1, 1, 1, 1, 1, 3}
	for i, n := range need {
		if counts[base+i] < n {
			return false, false
		}
	}
	counts[v.hand.WinningTile.Index()]--
	pure = true
	for i, n := range need {
		if counts[base+i] != n {
			pure = false
			break
		}
	}
	return true, pure
}

// firstDrawWin covers tenhou, chiihou and renhou: no calls at all before the win.
func (v *handView) firstDrawWin() bool {
	return v.ctx.isFirstUninterruptedTurn() && len(v.hand.Melds) == 0
}
