package riichi

import (
	"errors"
	"math/rand"
	"testing"
)

func TestParseTiles(t *testing.T) {
	tests := []struct {
		name string
		s    string
		want []Tile
	}{
		{"Empty", "", nil},
		{"Simple Manzu", "123m", []Tile{{SuitMan, 1}, {SuitMan, 2}, {SuitMan, 3}}},
		{"Mixed Suits", "1p2s3m", []Tile{{SuitPin, 1}, {SuitSou, 2}, {SuitMan, 3}}},
		{"Red five", "0p", []Tile{{SuitPin, 5}}},
		{"Winds", "1234z", []Tile{{SuitWind, 1}, {SuitWind, 2}, {SuitWind, 3}, {SuitWind, 4}}},
		{"Dragons", "567z", []Tile{{SuitDragon, 1}, {SuitDragon, 2}, {SuitDragon, 3}}},
		{"Honor letters", "E S W N w g r", []Tile{
			{SuitWind, 1}, {SuitWind, 2}, {SuitWind, 3}, {SuitWind, 4},
			{SuitDragon, 1}, {SuitDragon, 2}, {SuitDragon, 3},
		}},
		{"Separators", "12m, 3p\t4s", []Tile{{SuitMan, 1}, {SuitMan, 2}, {SuitPin, 3}, {SuitSou, 4}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTiles(tt.s)
			if err != nil {
				t.Fatalf("ParseTiles(%q): %v", tt.s, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ParseTiles(%q) len = %d, want %d", tt.s, len(got), len(tt.want))
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("ParseTiles(%q)[%d]: Expected %s, got %s", tt.s, i, tt.want[i], got[i])
				}
			}
		})
	}
}

func TestParseTiles_Errors(t *testing.T) {
	for _, s := range []string{"12", "m", "8z", "1x", "12E"} {
		if _, err := ParseTiles(s); !errors.Is(err, ErrBadNotation) {
			t.Errorf("ParseTiles(%q): Expected ErrBadNotation, got %v", s, err)
		}
	}
}

func TestNotation_RoundTrip(t *testing.T) {
	for _, s := range []string{"123m", "123m55z", "19m19p19s1234567z", "4p6s2m"} {
		if got := Notation(MustParseTiles(s)); got != s {
			t.Errorf("Notation(ParseTiles(%q)): Expected %q, got %q", s, s, got)
		}
	}
}

func TestParseMeld(t *testing.T) {
	m, err := ParseMeld("pon:555p")
	if err != nil || m.Type != MeldPon || len(m.Tiles) != 3 || !m.IsOpen() {
		t.Errorf("Expected an open pon of 5p, got %+v %v", m, err)
	}
	m, err = ParseMeld("chi:645s")
	if err != nil || m.Tiles[0] != (Tile{SuitSou, 4}) {
		t.Errorf("Expected a sorted chi 456s, got %+v %v", m, err)
	}
	m, err = ParseMeld("ankan:1111z")
	if err != nil || !m.IsQuad() || m.IsOpen() {
		t.Errorf("Expected a closed quad of East, got %+v %v", m, err)
	}

	errTests := []struct {
		s    string
		want error
	}{
		{"555p", ErrBadNotation},
		{"foo:123m", ErrBadNotation},
		{"chi:135m", ErrInvalidMeld},
		{"chi:123z", ErrInvalidMeld},
		{"pon:556p", ErrInvalidMeld},
		{"kan:555p", ErrInvalidMeld},
	}
	for _, tt := range errTests {
		if _, err := ParseMeld(tt.s); !errors.Is(err, tt.want) {
			t.Errorf("ParseMeld(%q): Expected %v, got %v", tt.s, tt.want, err)
		}
	}
}

func TestTileIndex_RoundTrip(t *testing.T) {
	for i, tile := range AllTileKinds() {
		if tile.Index() != i || TileFromIndex(i) != tile || !tile.IsValid() {
			t.Errorf("Index %d: Expected a round trip, got %s -> %d", i, tile, tile.Index())
		}
	}
	if (Tile{SuitWind, 5}).Index() != -1 {
		t.Errorf("Expected an invalid tile to map to -1")
	}
	if got := len(GenerateDeck(rand.New(rand.NewSource(1)))); got != TotalTiles {
		t.Errorf("Expected %d tiles in a deck, got %d", TotalTiles, got)
	}
}

func TestTerminalAndHonorKinds(t *testing.T) {
	kinds := TerminalAndHonorKinds()
	if len(kinds) != 13 {
		t.Fatalf("Expected 13 kinds, got %d", len(kinds))
	}
	for _, k := range kinds {
		if !k.IsTerminalOrHonor() {
			t.Errorf("Expected %s to be a terminal or honor", k)
		}
	}
	hand := append(kinds, kinds[0])
	if !IsKokushiMusou(hand) {
		t.Errorf("Expected the 13 kinds plus a duplicate to be Kokushi Musou")
	}
	kinds[0] = Tile{SuitMan, 5}
	if TerminalAndHonorKinds()[0] != (Tile{SuitMan, 1}) {
		t.Errorf("Expected callers not to share the registry")
	}
}

func TestTilePredicates(t *testing.T) {
	if !MustParseTiles("6z")[0].IsGreen() || MustParseTiles("5s")[0].IsGreen() {
		t.Errorf("Expected Green dragon green and 5s not")
	}
	if !MustParseTiles("9p")[0].IsTerminal() || MustParseTiles("1z")[0].IsTerminal() {
		t.Errorf("Expected 9p terminal and East not")
	}
	if got := FormatHandForDisplay(MustParseTiles("3m1z1m")); got != "Man 1, Man 3, East" {
		t.Errorf("Unexpected display %q", got)
	}
	if got := FormatMeldsForDisplay([]Meld{{Type: MeldAnkan, Tiles: MustParseTiles("7777z")}}); got != "Ankan: [Red(?), Red, Red, Red(?)]" {
		t.Errorf("Unexpected meld display %q", got)
	}
}
