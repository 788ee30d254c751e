package riichi

import (
	"fmt"
)

const (
	ManganBase    = 2000
	HanemanBase   = 3000
	BaimanBase    = 4000
	SanbaimanBase = 6000

	HonbaRonBonus   = 300 // Paid by the discarder per honba
	HonbaTsumoBonus = 100 // Paid by each payer per honba
	RiichiBet       = 1000
)

// Band is a named limit on the base points.
type Band int

const (
	BandNone Band = iota
	BandMangan
	BandHaneman
	BandBaiman
	BandSanbaiman
	BandYakuman
)

var bandNames = []string{"", "Mangan", "Haneman", "Baiman", "Sanbaiman", "Yakuman"}

func (b Band) String() string {
	if b < BandNone || b > BandYakuman {
		return fmt.Sprintf("Band(%d)", int(b))
	}
	return bandNames[b]
}

func (b Band) MarshalText() ([]byte, error) { return []byte(b.String()), nil }

// Payment represents the points transferred in a win.
type Payment struct {
	Description       string `json:"description"`
	RonValue          int    `json:"ron_value,omitempty"`            // Total points paid by discarder on Ron
	TsumoDealerPay    int    `json:"tsumo_dealer_pay,omitempty"`     // Points paid BY Dealer ON Non-Dealer Tsumo
	TsumoNonDealerPay int    `json:"tsumo_non_dealer_pay,omitempty"` // Points paid BY EACH Non-Dealer
	RiichiSticks      int    `json:"riichi_sticks,omitempty"`        // Points collected from the table
	Total             int    `json:"total"`                          // Everything the winner receives
}

// Score is the priced result of a hand.
type Score struct {
	Han               int     `json:"han"`
	Fu                int     `json:"fu"`
	Band              Band    `json:"band"`
	YakumanMultiplier int     `json:"yakuman_multiplier,omitempty"`
	BasePoints        int     `json:"base_points"`
	Points            int     `json:"points"` // Hand value before honba and riichi sticks
	Payment           Payment `json:"payment"`
}

// BasePoints applies the limit bands, then fu * 2^(han+2) capped at mangan.
// Han of 13 or more is only reported as yakuman when kazoe_yakuman is on.
func BasePoints(han, fu int, rules Rules) (int, Band) {
	switch {
	case han >= 13 && rules.KazoeYakuman:
		return rules.YakumanBase, BandYakuman
	case han >= 11:
		return SanbaimanBase, BandSanbaiman
	case han >= 8:
		return BaimanBase, BandBaiman
	case han >= 6:
		return HanemanBase, BandHaneman
	case han == 5:
		return ManganBase, BandMangan
	case han <= 0:
		return 0, BandNone
	}

	if rules.KiriageMangan && ((han == 4 && fu == 30) || (han == 3 && fu == 60)) {
		return ManganBase, BandMangan
	}
	base := fu << (han + 2)
	if base >= ManganBase {
		return ManganBase, BandMangan
	}
	return base, BandNone
}

// CalculateScore prices han and fu for the winner.
func CalculateScore(han, fu int, isDealer bool, method WinMethod, rules Rules) Score {
	base, band := BasePoints(han, fu, rules)
	s := Score{Han: han, Fu: fu, Band: band, BasePoints: base}
	if band == BandYakuman {
		s.YakumanMultiplier = 1
	}
	s.Points = handValue(base, isDealer, method)
	return s
}

// CalculateYakumanScore prices a hand holding yakuman worth multiplier units.
func CalculateYakumanScore(multiplier, fu int, isDealer bool, method WinMethod, rules Rules) Score {
	base := rules.YakumanBase * multiplier
	return Score{
		Han:               13 * multiplier,
		Fu:                fu,
		Band:              BandYakuman,
		YakumanMultiplier: multiplier,
		BasePoints:        base,
		Points:            handValue(base, isDealer, method),
	}
}

// handValue is the sum the winner collects, each payer's share rounded up to 100.
func handValue(base int, isDealer bool, method WinMethod) int {
	if method == Discard {
		if isDealer {
			return ceilTo(base*6, 100)
		}
		return ceilTo(base*4, 100)
	}
	if isDealer {
		return 3 * ceilTo(base*2, 100)
	}
	return ceilTo(base*2, 100) + 2*ceilTo(base, 100)
}

// CalculatePointPayment splits a score between payers and adds honba and riichi sticks.
func CalculatePointPayment(s Score, isWinnerDealer bool, method WinMethod, honba, riichiSticks int) Payment {
	limitName := s.Band.String()
	switch {
	case s.Band == BandYakuman && s.YakumanMultiplier > 1:
		limitName = fmt.Sprintf("%dx Yakuman", s.YakumanMultiplier)
	case limitName == "":
		limitName = fmt.Sprintf("%d Han, %d Fu", s.Han, s.Fu)
	}

	p := Payment{RiichiSticks: riichiSticks * RiichiBet}
	if method == SelfDraw {
		if isWinnerDealer { // Each non-dealer pays basePoints * 2
			p.TsumoNonDealerPay = ceilTo(s.BasePoints*2, 100) + honba*HonbaTsumoBonus
			p.Total = 3 * p.TsumoNonDealerPay
			limitName += fmt.Sprintf(" (%d All)", p.TsumoNonDealerPay)
		} else { // Dealer pays basePoints * 2, the other two pay basePoints
			p.TsumoDealerPay = ceilTo(s.BasePoints*2, 100) + honba*HonbaTsumoBonus
			p.TsumoNonDealerPay = ceilTo(s.BasePoints, 100) + honba*HonbaTsumoBonus
			p.Total = p.TsumoDealerPay + 2*p.TsumoNonDealerPay
			limitName += fmt.Sprintf(" (Dealer pays %d, Others pay %d)", p.TsumoDealerPay, p.TsumoNonDealerPay)
		}
	} else {
		mult := 4
		if isWinnerDealer {
			mult = 6
		}
		p.RonValue = ceilTo(s.BasePoints*mult, 100) + honba*HonbaRonBonus
		p.Total = p.RonValue
		limitName += fmt.Sprintf(" (%d from discarder)", p.RonValue)
	}
	p.Total += p.RiichiSticks
	p.Description = limitName
	return p
}

// NagashiMangan scores an exhaustive draw where every discard was a terminal or honor
// and none was called. It pays as a mangan tsumo. ok is false when the condition fails.
func NagashiMangan(discards []Tile, anyCalled bool, isDealer bool) (Score, bool) {
	if anyCalled || len(discards) == 0 {
		return Score{}, false
	}
	for _, t := range discards {
		if !t.IsTerminalOrHonor() {
			return Score{}, false
		}
	}
	s := Score{Han: 5, Band: BandMangan, BasePoints: ManganBase, Points: handValue(ManganBase, isDealer, SelfDraw)}
	s.Payment = CalculatePointPayment(s, isDealer, SelfDraw, 0, 0)
	s.Payment.Description = "Nagashi Mangan " + s.Payment.Description
	return s, true
}
