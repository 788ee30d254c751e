// yaku.go
package riichi

// YakuID identifies a scoring pattern.
type YakuID int

const (
	YakuRiichi YakuID = iota
	YakuDoubleRiichi
	YakuIppatsu
	YakuMenzenTsumo
	YakuPinfu
	YakuTanyao
	YakuIipeikou
	YakuWhiteDragon
	YakuGreenDragon
	YakuRedDragon
	YakuSeatWind
	YakuRoundWind
	YakuHaitei
	YakuHoutei
	YakuRinshan
	YakuChankan
	YakuChiitoitsu
	YakuToitoi
	YakuSanankou
	YakuSanshokuDoukou
	YakuSankantsu
	YakuShousangen
	YakuHonroutou
	YakuSanshokuDoujun
	YakuIttsu
	YakuChanta
	YakuRyanpeikou
	YakuJunchan
	YakuHonitsu
	YakuChinitsu

	// Yakuman
	YakuKokushi
	YakuKokushi13
	YakuSuuankou
	YakuSuuankouTanki
	YakuDaisangen
	YakuShousuushii
	YakuDaisuushii
	YakuTsuuiisou
	YakuChinroutou
	YakuRyuuiisou
	YakuChuuren
	YakuJunseiChuuren
	YakuSuukantsu
	YakuTenhou
	YakuChiihou
	YakuRenhou

	// Bonus han, never a yaku on their own.
	YakuDora
	YakuUraDora
)

// YakuEntry is one scored line of a result.
type YakuEntry struct {
	ID      YakuID `json:"-"`
	Name    string `json:"name"`
	Han     int    `json:"han"`
	Yakuman bool   `json:"yakuman,omitempty"`
}

// YakuInfo describes a supported pattern.
type YakuInfo struct {
	ID        YakuID `json:"-"`
	Name      string `json:"name"`
	ClosedHan int    `json:"closed_han"`
	OpenHan   int    `json:"open_han"`          // 0 when the pattern needs a closed hand
	Yakuman   int    `json:"yakuman,omitempty"` // 2 for variants that count double under the double_yakuman rule
}

type shapeMask uint8

const (
	onStandard   shapeMask = 1 << ShapeStandard
	onSevenPairs shapeMask = 1 << ShapeSevenPairs
	onOrphans    shapeMask = 1 << ShapeThirteenOrphans

	tileShapes = onStandard | onSevenPairs
	anyShape   = onStandard | onSevenPairs | onOrphans
)

// yakuRule pairs a pattern with its predicate. Predicates only read the view.
type yakuRule struct {
	ID         YakuID
	Name       string
	ClosedHan  int
	OpenHan    int
	Yakuman    int
	Menzen     bool // Requires a closed hand
	Shapes     shapeMask
	Supersedes []YakuID
	Check      func(v *handView) bool
}

var yakuTable = []yakuRule{
	// 1 han
	{ID: YakuRiichi, Name: "Riichi", ClosedHan: 1, Menzen: true, Shapes: anyShape,
		Check: func(v *handView) bool { return v.ctx.Riichi || v.ctx.DoubleRiichi }},
	{ID: YakuIppatsu, Name: "Ippatsu", ClosedHan: 1, Menzen: true, Shapes: anyShape,
		Check: func(v *handView) bool { return v.ctx.Ippatsu && (v.ctx.Riichi || v.ctx.DoubleRiichi) }},
	{ID: YakuMenzenTsumo, Name: "Menzen Tsumo", ClosedHan: 1, Menzen: true, Shapes: anyShape,
		Check: func(v *handView) bool { return v.ctx.IsTsumo() }},
	{ID: YakuPinfu, Name: "Pinfu", ClosedHan: 1, Menzen: true, Shapes: onStandard, Check: checkPinfu},
	{ID: YakuTanyao, Name: "Tanyao", ClosedHan: 1, OpenHan: 1, Shapes: tileShapes,
		Check: func(v *handView) bool {
			return (v.closed || v.rules.OpenTanyao) && v.allTiles(Tile.IsSimple)
		}},
	{ID: YakuIipeikou, Name: "Iipeikou", ClosedHan: 1, Menzen: true, Shapes: onStandard,
		Check: func(v *handView) bool { return v.identicalSequencePairs() >= 1 }},
	{ID: YakuWhiteDragon, Name: "Yakuhai (White Dragon)", ClosedHan: 1, OpenHan: 1, Shapes: onStandard,
		Check: func(v *handView) bool { return v.hasTripletOf(Tile{SuitDragon, 1}) }},
	{ID: YakuGreenDragon, Name: "Yakuhai (Green Dragon)", ClosedHan: 1, OpenHan: 1, Shapes: onStandard,
		Check: func(v *handView) bool { return v.hasTripletOf(Tile{SuitDragon, 2}) }},
	{ID: YakuRedDragon, Name: "Yakuhai (Red Dragon)", ClosedHan: 1, OpenHan: 1, Shapes: onStandard,
		Check: func(v *handView) bool { return v.hasTripletOf(Tile{SuitDragon, 3}) }},
	{ID: YakuSeatWind, Name: "Yakuhai (Seat Wind)", ClosedHan: 1, OpenHan: 1, Shapes: onStandard,
		Check: func(v *handView) bool { return v.hasTripletOf(v.ctx.SeatWind.Tile()) }},
	{ID: YakuRoundWind, Name: "Yakuhai (Round Wind)", ClosedHan: 1, OpenHan: 1, Shapes: onStandard,
		Check: func(v *handView) bool { return v.hasTripletOf(v.ctx.RoundWind.Tile()) }},
	{ID: YakuHaitei, Name: "Haitei Raoyue", ClosedHan: 1, OpenHan: 1, Shapes: anyShape,
		Check: func(v *handView) bool { return v.ctx.WallExhausted && v.ctx.IsTsumo() && !v.ctx.AfterKan }},
	{ID: YakuHoutei, Name: "Houtei Raoyui", ClosedHan: 1, OpenHan: 1, Shapes: anyShape,
		Check: func(v *handView) bool { return v.ctx.WallExhausted && !v.ctx.IsTsumo() }},
	{ID: YakuRinshan, Name: "Rinshan Kaihou", ClosedHan: 1, OpenHan: 1, Shapes: onStandard,
		Check: func(v *handView) bool { return v.ctx.AfterKan && v.ctx.IsTsumo() && v.quads() > 0 }},
	{ID: YakuChankan, Name: "Chankan", ClosedHan: 1, OpenHan: 1, Shapes: anyShape,
		Check: func(v *handView) bool { return v.ctx.RobbedKan && !v.ctx.IsTsumo() }},

	// 2 han
	{ID: YakuDoubleRiichi, Name: "Double Riichi", ClosedHan: 2, Menzen: true, Shapes: anyShape,
		Supersedes: []YakuID{YakuRiichi},
		Check:      func(v *handView) bool { return v.ctx.DoubleRiichi }},
	{ID: YakuChiitoitsu, Name: "Chiitoitsu", ClosedHan: 2, Menzen: true, Shapes: onSevenPairs,
		Check: func(v *handView) bool { return true }},
	{ID: YakuToitoi, Name: "Toitoi", ClosedHan: 2, OpenHan: 2, Shapes: onStandard,
		Check: func(v *handView) bool { return v.tripletLikeCount() == 4 }},
	{ID: YakuSanankou, Name: "Sanankou", ClosedHan: 2, OpenHan: 2, Shapes: onStandard,
		Check: func(v *handView) bool { return v.concealedTriplets() >= 3 }},
	{ID: YakuSanshokuDoukou, Name: "Sanshoku Doukou", ClosedHan: 2, OpenHan: 2, Shapes: onStandard,
		Check: checkSanshokuDoukou},
	{ID: YakuSankantsu, Name: "Sankantsu", ClosedHan: 2, OpenHan: 2, Shapes: onStandard,
		Check: func(v *handView) bool { return v.quads() == 3 }},
	{ID: YakuShousangen, Name: "Shousangen", ClosedHan: 2, OpenHan: 2, Shapes: onStandard,
		Check: func(v *handView) bool {
			pair, _ := v.d.Pair()
			return v.honorTriplets(SuitDragon) == 2 && pair.Tile.IsDragon()
		}},
	{ID: YakuHonroutou, Name: "Honroutou", ClosedHan: 2, OpenHan: 2, Shapes: tileShapes,
		Check: func(v *handView) bool { return v.allTiles(Tile.IsTerminalOrHonor) }},
	{ID: YakuSanshokuDoujun, Name: "Sanshoku Doujun", ClosedHan: 2, OpenHan: 1, Shapes: onStandard,
		Check: checkSanshokuDoujun},
	{ID: YakuIttsu, Name: "Ittsu", ClosedHan: 2, OpenHan: 1, Shapes: onStandard, Check: checkIttsu},
	{ID: YakuChanta, Name: "Chanta", ClosedHan: 2, OpenHan: 1, Shapes: onStandard,
		Check: func(v *handView) bool { return v.everyGroup(Group.HasTerminalOrHonor) && v.sequenceCount() > 0 }},

	// 3 han and up
	{ID: YakuRyanpeikou, Name: "Ryanpeikou", ClosedHan: 3, Menzen: true, Shapes: onStandard,
		Supersedes: []YakuID{YakuIipeikou},
		Check:      func(v *handView) bool { return v.identicalSequencePairs() == 2 }},
	{ID: YakuJunchan, Name: "Junchan", ClosedHan: 3, OpenHan: 2, Shapes: onStandard,
		Supersedes: []YakuID{YakuChanta},
		Check:      func(v *handView) bool { return v.everyGroup(Group.HasTerminal) && v.sequenceCount() > 0 }},
	{ID: YakuHonitsu, Name: "Honitsu", ClosedHan: 3, OpenHan: 2, Shapes: tileShapes,
		Check: func(v *handView) bool { suits, _ := v.suits(); return suits == 1 }},
	{ID: YakuChinitsu, Name: "Chinitsu", ClosedHan: 6, OpenHan: 5, Shapes: tileShapes,
		Supersedes: []YakuID{YakuHonitsu},
		Check:      func(v *handView) bool { suits, honors := v.suits(); return suits == 1 && !honors }},

	// Yakuman
	{ID: YakuKokushi, Name: "Kokushi Musou", Yakuman: 1, Menzen: true, Shapes: onOrphans,
		Check: func(v *handView) bool { return v.p.Wait == Kokushi }},
	{ID: YakuKokushi13, Name: "Kokushi Musou Juusanmen", Yakuman: 2, Menzen: true, Shapes: onOrphans,
		Check: func(v *handView) bool { return v.p.Wait == Kokushi13 }},
	{ID: YakuSuuankou, Name: "Suuankou", Yakuman: 1, Menzen: true, Shapes: onStandard,
		Check: func(v *handView) bool { return v.concealedTriplets() == 4 && v.p.Wait != Tanki }},
	{ID: YakuSuuankouTanki, Name: "Suuankou Tanki", Yakuman: 2, Menzen: true, Shapes: onStandard,
		Check: func(v *handView) bool { return v.concealedTriplets() == 4 && v.p.Wait == Tanki }},
	{ID: YakuDaisangen, Name: "Daisangen", Yakuman: 1, Shapes: onStandard,
		Check: func(v *handView) bool { return v.honorTriplets(SuitDragon) == 3 }},
	{ID: YakuShousuushii, Name: "Shousuushii", Yakuman: 1, Shapes: onStandard,
		Check: func(v *handView) bool {
			pair, _ := v.d.Pair()
			return v.honorTriplets(SuitWind) == 3 && pair.Tile.IsWind()
		}},
	{ID: YakuDaisuushii, Name: "Daisuushii", Yakuman: 2, Shapes: onStandard,
		Check: func(v *handView) bool { return v.honorTriplets(SuitWind) == 4 }},
	{ID: YakuTsuuiisou, Name: "Tsuuiisou", Yakuman: 1, Shapes: tileShapes,
		Check: func(v *handView) bool { return v.allTiles(Tile.IsHonor) }},
	{ID: YakuChinroutou, Name: "Chinroutou", Yakuman: 1, Shapes: onStandard,
		Check: func(v *handView) bool { return v.allTiles(Tile.IsTerminal) }},
	{ID: YakuRyuuiisou, Name: "Ryuuiisou", Yakuman: 1, Shapes: onStandard,
		Check: func(v *handView) bool { return v.allTiles(Tile.IsGreen) }},
	{ID: YakuChuuren, Name: "Chuuren Poutou", Yakuman: 1, Menzen: true, Shapes: onStandard,
		Check: func(v *handView) bool { ok, pure := v.nineGates(); return ok && !pure }},
	{ID: YakuJunseiChuuren, Name: "Junsei Chuuren Poutou", Yakuman: 2, Menzen: true, Shapes: onStandard,
		Check: func(v *handView) bool { ok, pure := v.nineGates(); return ok && pure }},
	{ID: YakuSuukantsu, Name: "Suukantsu", Yakuman: 1, Shapes: onStandard,
		Check: func(v *handView) bool { return v.quads() == 4 }},
	{ID: YakuTenhou, Name: "Tenhou", Yakuman: 1, Menzen: true, Shapes: anyShape,
		Check: func(v *handView) bool { return v.firstDrawWin() && v.ctx.IsDealer && v.ctx.IsTsumo() }},
	{ID: YakuChiihou, Name: "Chiihou", Yakuman: 1, Menzen: true, Shapes: anyShape,
		Check: func(v *handView) bool { return v.firstDrawWin() && !v.ctx.IsDealer && v.ctx.IsTsumo() }},
	{ID: YakuRenhou, Name: "Renhou", Yakuman: 1, Menzen: true, Shapes: anyShape,
		Check: func(v *handView) bool { return v.firstDrawWin() && !v.ctx.IsDealer && !v.ctx.IsTsumo() }},
}

var yakuNames = func() map[YakuID]string {
	names := map[YakuID]string{YakuDora: "Dora", YakuUraDora: "Ura Dora"}
	for _, r := range yakuTable {
		names[r.ID] = r.Name
	}
	return names
}()

func (id YakuID) String() string { return yakuNames[id] }

// SupportedYaku lists every pattern the evaluator recognizes, in evaluation order.
// Nothing outside this list is scored.
func SupportedYaku() []YakuInfo {
	infos := make([]YakuInfo, len(yakuTable))
	for i, r := range yakuTable {
		infos[i] = YakuInfo{ID: r.ID, Name: r.Name, ClosedHan: r.ClosedHan, OpenHan: r.OpenHan, Yakuman: r.Yakuman}
	}
	return infos
}

// identifyYaku returns the yaku satisfied by one reading of the hand, dora excluded.
// When any yakuman holds, only yakuman are returned.
func identifyYaku(v *handView) []YakuEntry {
	matched := make(map[YakuID]bool)
	for i := range yakuTable {
		r := &yakuTable[i]
		if r.Shapes&(1<<v.d.Shape) == 0 {
			continue
		}
		if !v.closed && (r.Menzen || (r.Yakuman == 0 && r.OpenHan == 0)) {
			continue
		}
		if r.Check(v) {
			matched[r.ID] = true
		}
	}
	for i := range yakuTable {
		if matched[yakuTable[i].ID] {
			for _, lower := range yakuTable[i].Supersedes {
				delete(matched, lower)
			}
		}
	}

	yakuman := false
	for i := range yakuTable {
		if matched[yakuTable[i].ID] && yakuTable[i].Yakuman > 0 {
			yakuman = true
			break
		}
	}

	results := []YakuEntry{}
	for i := range yakuTable {
		r := &yakuTable[i]
		if !matched[r.ID] || (yakuman && r.Yakuman == 0) {
			continue
		}
		if r.Yakuman > 0 {
			mult := 1
			if r.Yakuman > 1 && v.rules.DoubleYakuman {
				mult = r.Yakuman
			}
			results = append(results, YakuEntry{ID: r.ID, Name: r.Name, Han: 13 * mult, Yakuman: true})
			continue
		}
		han := r.ClosedHan
		if !v.closed {
			han = r.OpenHan
		}
		results = append(results, YakuEntry{ID: r.ID, Name: r.Name, Han: han})
	}
	return results
}

// doraEntries counts dora, and ura dora under riichi, across every tile of the hand.
func doraEntries(v *handView) []YakuEntry {
	var entries []YakuEntry
	if n := countDora(v.tiles, v.ctx.DoraIndicators); n > 0 {
		entries = append(entries, YakuEntry{ID: YakuDora, Name: "Dora", Han: n})
	}
	if v.ctx.Riichi || v.ctx.DoubleRiichi {
		if n := countDora(v.tiles, v.ctx.UraDoraIndicators); n > 0 {
			entries = append(entries, YakuEntry{ID: YakuUraDora, Name: "Ura Dora", Han: n})
		}
	}
	return entries
}

// --- Pattern checks ---

func checkPinfu(v *handView) bool {
	if v.sequenceCount() != 4 || v.p.Wait != Ryanmen {
		return false
	}
	pair, _ := v.d.Pair()
	return !v.isValueTile(pair.Tile)
}

func checkSanshokuDoujun(v *handView) bool {
	for value := 1; value <= 7; value++ {
		if v.hasGroup(TypeSequence, Tile{SuitMan, value}) &&
			v.hasGroup(TypeSequence, Tile{SuitPin, value}) &&
			v.hasGroup(TypeSequence, Tile{SuitSou, value}) {
			return true
		}
	}
	return false
}

func checkSanshokuDoukou(v *handView) bool {
	for value := 1; value <= 9; value++ {
		if v.hasTripletOf(Tile{SuitMan, value}) &&
			v.hasTripletOf(Tile{SuitPin, value}) &&
			v.hasTripletOf(Tile{SuitSou, value}) {
			return true
		}
	}
	return false
}

func checkIttsu(v *handView) bool {
	for _, suit := range []Suit{SuitMan, SuitPin, SuitSou} {
		if v.hasGroup(TypeSequence, Tile{suit, 1}) &&
			v.hasGroup(TypeSequence, Tile{suit, 4}) &&
			v.hasGroup(TypeSequence, Tile{suit, 7}) {
			return true
		}
	}
	return false
}
