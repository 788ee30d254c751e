package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"riichi"
)

func TestParseRequest(t *testing.T) {
	req, err := ParseRequest("1", "234567m234p55s678s win=8s ron dora=4p")
	require.NoError(t, err)

	assert.Equal(t, "1", req.ID)
	assert.Len(t, req.Hand.Concealed, 14)
	assert.Equal(t, riichi.Tile{Suit: riichi.SuitSou, Value: 8}, req.Hand.WinningTile)
	assert.Equal(t, riichi.Discard, req.Context.WinMethod)
	assert.Equal(t, riichi.East, req.Context.SeatWind)
	assert.True(t, req.Context.IsDealer, "seat East deals by default")
	assert.Equal(t, []riichi.Tile{{Suit: riichi.SuitPin, Value: 4}}, req.Context.DoraIndicators)

	r, err := riichi.EvaluateWinningHand(req.Hand, req.Context)
	require.NoError(t, err)
	assert.True(t, r.IsWinning)
}

func TestParseRequest_Options(t *testing.T) {
	req, err := ParseRequest("2", "123456m456s789p44z seat=S round=e riichi ippatsu honba=2 sticks=1 turn=1")
	require.NoError(t, err)

	ctx := req.Context
	assert.Equal(t, riichi.South, ctx.SeatWind)
	assert.Equal(t, riichi.East, ctx.RoundWind)
	assert.False(t, ctx.IsDealer)
	assert.True(t, ctx.Riichi)
	assert.True(t, ctx.Ippatsu)
	assert.Equal(t, 2, ctx.Honba)
	assert.Equal(t, 1, ctx.RiichiSticks)
	assert.Equal(t, 1, ctx.Turn)
	assert.Equal(t, riichi.SelfDraw, ctx.WinMethod, "tsumo is the default")
	assert.Equal(t, riichi.Tile{Suit: riichi.SuitWind, Value: 4}, req.Hand.WinningTile, "last tile wins by default")

	req, err = ParseRequest("3", "123456m456s789p44z seat=2 dealer=true tsumo=false")
	require.NoError(t, err)
	assert.True(t, req.Context.IsDealer)
	assert.Equal(t, riichi.Discard, req.Context.WinMethod)
}

func TestParseRequest_Melds(t *testing.T) {
	req, err := ParseRequest("4", "234m567m345p66s melds=chi:234s win=4m")
	require.NoError(t, err)
	require.Len(t, req.Hand.Melds, 1)
	assert.Equal(t, riichi.MeldChi, req.Hand.Melds[0].Type)

	req, err = ParseRequest("5", "55z melds=ankan:1111m,kan:2222p,ankan:3333s,kan:4444z")
	require.NoError(t, err)
	assert.Len(t, req.Hand.Melds, 4)
}

func TestParseRequest_Errors(t *testing.T) {
	for _, line := range []string{
		"",
		"123x",
		"123m win=12m",
		"123m seat=X",
		"123m honba=lots",
		"123m melds=pon:123m",
		"123m frobnicate",
		"123m riichi=maybe",
	} {
		_, err := ParseRequest("e", line)
		assert.Error(t, err, "line %q", line)
	}
}

func TestReadLines(t *testing.T) {
	in := strings.NewReader("# hands\n\n123456m456s789p44z win=1m\n   \n  234456678p345s55m  \n")
	lines, err := ReadLines(in)
	require.NoError(t, err)
	assert.Equal(t, []string{"123456m456s789p44z win=1m", "234456678p345s55m"}, lines)
}

func TestGetEnv(t *testing.T) {
	t.Setenv("RIICHI_TEST_VALUE", "set")
	assert.Equal(t, "set", getEnv("RIICHI_TEST_VALUE", "fallback"))
	assert.Equal(t, "fallback", getEnv("RIICHI_TEST_UNSET", "fallback"))
}
