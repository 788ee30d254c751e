package riichi

import (
	"strings"
)

// ParseTiles parses compact notation into tiles, e.g. "123m 456p 789s 11z".
// Digits are buffered until a suit letter (m, p, s, z) applies them; 0 is read as a 5.
// Honors may also be written as single letters: E S W N for winds, w g r for dragons.
// Whitespace is ignored. The result keeps input order.
func ParseTiles(s string) ([]Tile, error) {
	var tiles []Tile
	var pending []int

	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			v := int(r - '0')
			if v == 0 {
				v = 5
			}
			pending = append(pending, v)
		case r == 'm' || r == 'p' || r == 's' || r == 'z':
			if len(pending) == 0 {
				return nil, invalid("notation", ErrBadNotation, "suit %q without values in %q", r, s)
			}
			for _, v := range pending {
				t, ok := suitTile(r, v)
				if !ok {
					return nil, invalid("notation", ErrBadNotation, "no tile %d%c", v, r)
				}
				tiles = append(tiles, t)
			}
			pending = pending[:0]
		case r == ' ' || r == '\t' || r == ',':
			continue
		default:
			if len(pending) > 0 {
				return nil, invalid("notation", ErrBadNotation, "values without suit before %q", r)
			}
			t, ok := honorLetters[r]
			if !ok {
				return nil, invalid("notation", ErrBadNotation, "unknown character %q", r)
			}
			tiles = append(tiles, t)
		}
	}
	if len(pending) > 0 {
		return nil, invalid("notation", ErrBadNotation, "trailing values without suit in %q", s)
	}
	return tiles, nil
}

// MustParseTiles is ParseTiles for literals known to be valid; it panics on error.
func MustParseTiles(s string) []Tile {
	tiles, err := ParseTiles(s)
	if err != nil {
		panic(err)
	}
	return tiles
}

var honorLetters = map[rune]Tile{
	'E': {SuitWind, 1}, 'S': {SuitWind, 2}, 'W': {SuitWind, 3}, 'N': {SuitWind, 4},
	'w': {SuitDragon, 1}, 'g': {SuitDragon, 2}, 'r': {SuitDragon, 3},
}

func suitTile(suit rune, v int) (Tile, bool) {
	switch suit {
	case 'm':
		return Tile{SuitMan, v}, true
	case 'p':
		return Tile{SuitPin, v}, true
	case 's':
		return Tile{SuitSou, v}, true
	case 'z':
		if v >= 1 && v <= 4 {
			return Tile{SuitWind, v}, true
		}
		if v >= 5 && v <= 7 {
			return Tile{SuitDragon, v - 4}, true
		}
	}
	return Tile{}, false
}

var meldPrefixes = map[string]MeldType{
	"chi":        MeldChi,
	"pon":        MeldPon,
	"ankan":      MeldAnkan,
	"kan":        MeldDaiminkan,
	"daiminkan":  MeldDaiminkan,
	"shouminkan": MeldShouminkan,
}

// ParseMeld parses "type:tiles", e.g. "pon:555p", "chi:345s", "ankan:1111z".
func ParseMeld(s string) (Meld, error) {
	kind, body, ok := strings.Cut(s, ":")
	if !ok {
		return Meld{}, invalid("meld", ErrBadNotation, "missing type prefix in %q", s)
	}
	mt, ok := meldPrefixes[strings.ToLower(strings.TrimSpace(kind))]
	if !ok {
		return Meld{}, invalid("meld", ErrBadNotation, "unknown meld type %q", kind)
	}
	tiles, err := ParseTiles(body)
	if err != nil {
		return Meld{}, err
	}
	m := Meld{Type: mt, Tiles: sortedCopy(tiles)}
	if err := validateMeld(m); err != nil {
		return Meld{}, err
	}
	return m, nil
}

// Notation renders tiles back to compact form, grouping runs of the same suit.
func Notation(tiles []Tile) string {
	var b strings.Builder
	var digits []byte
	var cur byte
	flush := func() {
		if len(digits) > 0 {
			b.Write(digits)
			b.WriteByte(cur)
			digits = digits[:0]
		}
	}
	for _, t := range tiles {
		var suit byte
		v := t.Value
		switch t.Suit {
		case SuitMan:
			suit = 'm'
		case SuitPin:
			suit = 'p'
		case SuitSou:
			suit = 's'
		case SuitWind:
			suit = 'z'
		case SuitDragon:
			suit, v = 'z', t.Value+4
		default:
			continue
		}
		if suit != cur {
			flush()
			cur = suit
		}
		digits = append(digits, byte('0'+v))
	}
	flush()
	return b.String()
}
