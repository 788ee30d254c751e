package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cast"

	"riichi"
)

// ReadLines returns the non-empty, non-comment lines of r.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	return lines, scanner.Err()
}

var windLetters = map[string]riichi.Wind{
	"e": riichi.East, "east": riichi.East,
	"s": riichi.South, "south": riichi.South,
	"w": riichi.West, "west": riichi.West,
	"n": riichi.North, "north": riichi.North,
}

func parseWind(s string) (riichi.Wind, error) {
	if w, ok := windLetters[strings.ToLower(s)]; ok {
		return w, nil
	}
	n, err := cast.ToIntE(s)
	if err != nil || n < 1 || n > 4 {
		return 0, fmt.Errorf("bad wind %q", s)
	}
	return riichi.Wind(n), nil
}

// ParseRequest reads one hand description:
//
//	<concealed tiles> [key=value ...]
//
// e.g. "234567m234p55s678s win=8s ron dealer seat=E dora=4p".
// The concealed tiles include the winning tile; without win= the last tile is used.
// A bare key is shorthand for key=true.
func ParseRequest(id, line string) (riichi.Request, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return riichi.Request{}, fmt.Errorf("empty line")
	}
	concealed, err := riichi.ParseTiles(fields[0])
	if err != nil {
		return riichi.Request{}, err
	}
	if len(concealed) == 0 {
		return riichi.Request{}, fmt.Errorf("no concealed tiles")
	}

	req := riichi.Request{
		ID:   id,
		Hand: riichi.Hand{Concealed: concealed, WinningTile: concealed[len(concealed)-1]},
		Context: riichi.Context{
			SeatWind:  riichi.East,
			RoundWind: riichi.East,
			WinMethod: riichi.SelfDraw,
		},
	}
	ctx := &req.Context

	for _, f := range fields[1:] {
		key, val, found := strings.Cut(f, "=")
		if !found {
			val = "true"
		}
		key = strings.ToLower(key)

		switch key {
		case "win", "agari":
			tiles, err := riichi.ParseTiles(val)
			if err != nil || len(tiles) != 1 {
				return riichi.Request{}, fmt.Errorf("win wants one tile, got %q", val)
			}
			req.Hand.WinningTile = tiles[0]
		case "melds", "meld":
			for _, m := range strings.Split(val, ",") {
				meld, err := riichi.ParseMeld(m)
				if err != nil {
					return riichi.Request{}, err
				}
				req.Hand.Melds = append(req.Hand.Melds, meld)
			}
		case "tsumo":
			ctx.WinMethod = riichi.SelfDraw
			if !cast.ToBool(val) {
				ctx.WinMethod = riichi.Discard
			}
		case "ron":
			ctx.WinMethod = riichi.Discard
			if !cast.ToBool(val) {
				ctx.WinMethod = riichi.SelfDraw
			}
		case "seat", "round":
			w, err := parseWind(val)
			if err != nil {
				return riichi.Request{}, err
			}
			if key == "seat" {
				ctx.SeatWind = w
			} else {
				ctx.RoundWind = w
			}
		case "dora", "ura":
			tiles, err := riichi.ParseTiles(val)
			if err != nil {
				return riichi.Request{}, err
			}
			if key == "dora" {
				ctx.DoraIndicators = tiles
			} else {
				ctx.UraDoraIndicators = tiles
			}
		case "turn", "honba", "sticks":
			n, err := cast.ToIntE(val)
			if err != nil {
				return riichi.Request{}, fmt.Errorf("%s: %w", key, err)
			}
			switch key {
			case "turn":
				ctx.Turn = n
			case "honba":
				ctx.Honba = n
			default:
				ctx.RiichiSticks = n
			}
		default:
			b, err := cast.ToBoolE(val)
			if err != nil {
				return riichi.Request{}, fmt.Errorf("%s: %w", key, err)
			}
			if !setFlag(ctx, key, b) {
				return riichi.Request{}, fmt.Errorf("unknown key %q", key)
			}
		}
	}

	// Seat East is the dealer unless told otherwise.
	if !hasKey(fields[1:], "dealer") {
		ctx.IsDealer = ctx.SeatWind == riichi.East
	}
	return req, nil
}

func setFlag(ctx *riichi.Context, key string, b bool) bool {
	switch key {
	case "dealer":
		ctx.IsDealer = b
	case "riichi":
		ctx.Riichi = b
	case "double_riichi", "wriichi":
		ctx.DoubleRiichi = b
	case "ippatsu":
		ctx.Ippatsu = b
	case "interrupted":
		ctx.Interrupted = b
	case "haitei", "houtei", "last":
		ctx.WallExhausted = b
	case "rinshan":
		ctx.AfterKan = b
	case "chankan":
		ctx.RobbedKan = b
	default:
		return false
	}
	return true
}

func hasKey(fields []string, key string) bool {
	for _, f := range fields {
		k, _, _ := strings.Cut(f, "=")
		if strings.EqualFold(k, key) {
			return true
		}
	}
	return false
}
