package riichi

import (
	"testing"
)

func TestGroupFu(t *testing.T) {
	tests := []struct {
		name     string
		group    Group
		open     bool
		standard bool
		want     int
	}{
		{"Sequence", Group{Type: TypeSequence, Tile: Tile{SuitMan, 2}}, false, false, 0},
		{"Open simple triplet", Group{Type: TypeTriplet, Tile: Tile{SuitPin, 5}}, true, false, 2},
		{"Concealed simple triplet", Group{Type: TypeTriplet, Tile: Tile{SuitPin, 5}}, false, false, 4},
		{"Open terminal triplet", Group{Type: TypeTriplet, Tile: Tile{SuitSou, 9}}, true, false, 4},
		{"Concealed honor triplet", Group{Type: TypeTriplet, Tile: Tile{SuitDragon, 1}}, false, false, 8},
		{"Open simple quad", Group{Type: TypeQuad, Tile: Tile{SuitMan, 4}}, true, false, 4},
		{"Concealed simple quad", Group{Type: TypeQuad, Tile: Tile{SuitMan, 4}}, false, false, 8},
		{"Open honor quad", Group{Type: TypeQuad, Tile: Tile{SuitWind, 2}}, true, false, 8},
		{"Concealed terminal quad", Group{Type: TypeQuad, Tile: Tile{SuitMan, 1}}, false, false, 16},
		{"Standard open simple quad", Group{Type: TypeQuad, Tile: Tile{SuitMan, 4}}, true, true, 8},
		{"Standard concealed terminal quad", Group{Type: TypeQuad, Tile: Tile{SuitMan, 1}}, false, true, 32},
		{"Standard triplet unchanged", Group{Type: TypeTriplet, Tile: Tile{SuitPin, 5}}, false, true, 4},
		{"Pair", Group{Type: TypePair, Tile: Tile{SuitDragon, 3}}, false, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := groupFu(tt.group, tt.open, tt.standard); got != tt.want {
				t.Errorf("Expected %d fu, got %d", tt.want, got)
			}
		})
	}
}

func TestPairFu(t *testing.T) {
	eastEast := Context{SeatWind: East, RoundWind: East}
	southEast := Context{SeatWind: South, RoundWind: East}
	tests := []struct {
		name     string
		tile     Tile
		ctx      Context
		standard bool
		want     int
	}{
		{"Plain", Tile{SuitMan, 5}, eastEast, false, 0},
		{"Guest wind", Tile{SuitWind, 4}, southEast, false, 0},
		{"Dragon", Tile{SuitDragon, 2}, southEast, false, 2},
		{"Seat wind", Tile{SuitWind, 2}, southEast, false, 2},
		{"Round wind", Tile{SuitWind, 1}, southEast, false, 2},
		{"Double wind", Tile{SuitWind, 1}, eastEast, false, 2},
		{"Double wind standard", Tile{SuitWind, 1}, eastEast, true, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pairFu(tt.tile, tt.ctx, tt.standard); got != tt.want {
				t.Errorf("Expected %d fu, got %d", tt.want, got)
			}
		})
	}
}

func TestCalculateFu(t *testing.T) {
	tests := []struct {
		name      string
		concealed string
		melds     []string
		agari     string
		ctx       func() Context
		rules     func(*Rules)
		want      int
	}{
		// 20, no additions
		{"Pinfu tsumo", "123456m456s789p44z", nil, "1m", tsumoContext, nil, 20},
		{"Pinfu ron", "123456m456s789p44z", nil, "1m", testContext, nil, 20},
		{"Pinfu ron at 30", "123456m456s789p44z", nil, "1m", testContext, func(r *Rules) { r.PinfuRon30 = true }, 30},
		// 20 + 10 menzen ron + 2 penchan = 32
		{"Closed ron, penchan", "123m456p789s234s99s", nil, "3m", func() Context {
			ctx := testContext()
			ctx.Riichi = true
			return ctx
		}, nil, 40},
		// 20 + 2 (double East pair) + 2 kanchan + 10 = 34
		{"Double wind pair", "123m456p789s234s11z", nil, "2m", func() Context {
			return Context{IsDealer: true, SeatWind: East, RoundWind: East, WinMethod: Discard, Riichi: true}
		}, nil, 40},
		// 20 + 4 (concealed 222m) + 2 (double East pair) + 2 tanki + 2 tsumo = 30
		{"Double wind pair tsumo", "222m456p789s345s11z", nil, "1z", dealerTsumo, nil, 30},
		// the same with the pair at 4 gives 32
		{"Double wind pair standard", "222m456p789s345s11z", nil, "1z", dealerTsumo, func(r *Rules) { r.StandardFu = true }, 40},
		// Open, nothing added
		{"Open 20 becomes 30", "234m567m345p66s", []string{"chi:234s"}, "4m", testContext, nil, 30},
		// 20 + 8 + 4 + 4 + 2 (ron shanpon) + 10 = 48
		{"Ron on shanpon", "111m333p555s777s99m", nil, "7s", testContext, nil, 50},
		// 20 + 16 + 4 + 8 + 8 + 2 (dragon pair) + 2 tanki + 2 tsumo = 62
		{"Quads", "55z", []string{"ankan:1111m", "kan:2222p", "ankan:3333s", "kan:4444z"}, "5z", tsumoContext, nil, 70},
		// 20 + 32 + 8 + 16 + 16 + 2 + 2 + 2 = 98
		{"Quads standard", "55z", []string{"ankan:1111m", "kan:2222p", "ankan:3333s", "kan:4444z"}, "5z", tsumoContext, func(r *Rules) { r.StandardFu = true }, 100},
		// 20 + 16 (concealed terminal quad) + 10 = 46
		{"Concealed quad ron", "456p789s234s55s", []string{"ankan:1111m"}, "4p", func() Context {
			ctx := testContext()
			ctx.Riichi = true
			return ctx
		}, nil, 50},
		{"Seven pairs", "1133m5577p2288s99s", nil, "9s", testContext, nil, 25},
		{"Thirteen orphans", "119m19p19s1234567z", nil, "7z", testContext, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var melds []Meld
			for _, m := range tt.melds {
				melds = append(melds, mustMeld(t, m))
			}
			h := setupTestHand(t, tt.concealed, melds, tt.agari)
			rules := DefaultRules()
			if tt.rules != nil {
				tt.rules(&rules)
			}
			r, err := NewEvaluator(rules).Evaluate(h, tt.ctx())
			if err != nil {
				t.Fatalf("Evaluate: %v", err)
			}
			if !r.IsWinning {
				t.Fatalf("Expected a win, got %s", r.Reason)
			}
			if r.Fu != tt.want {
				t.Errorf("Expected %d fu, got %d (%s)", tt.want, r.Fu, r.Decomposition)
			}
			if got := CalculateFu(*r.Decomposition, bestPlacement(t, h, r), h, tt.ctx(), r.Yaku, rules); got != r.Fu {
				t.Errorf("CalculateFu: Expected %d, got %d", r.Fu, got)
			}
		})
	}
}

func dealerTsumo() Context {
	return Context{IsDealer: true, SeatWind: East, RoundWind: East, WinMethod: SelfDraw}
}

// bestPlacement finds the placement behind a result by its wait.
func bestPlacement(t *testing.T, h Hand, r Result) Placement {
	t.Helper()
	for _, p := range Placements(*r.Decomposition, h) {
		if p.Wait == r.Wait {
			return p
		}
	}
	t.Fatalf("no placement with wait %s", r.Wait)
	return Placement{}
}
