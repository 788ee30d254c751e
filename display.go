package riichi

import (
	"fmt"
	"strings"
)

// FormatHandForDisplay formats a hand for terminal output (sorted).
func FormatHandForDisplay(hand []Tile) string {
	return strings.Join(TilesToNames(sortedCopy(hand)), ", ")
}

// FormatMeldsForDisplay formats melds for display. Ankan shows its ends face down.
func FormatMeldsForDisplay(melds []Meld) string {
	if len(melds) == 0 {
		return "None"
	}
	var displayMelds []string
	for _, meld := range melds {
		tileNames := TilesToNames(sortedCopy(meld.Tiles))
		if meld.Type == MeldAnkan && len(tileNames) == 4 {
			tileNames[0] += "(?)"
			tileNames[3] += "(?)"
		}
		displayMelds = append(displayMelds, fmt.Sprintf("%s: [%s]", meld.Type, strings.Join(tileNames, ", ")))
	}
	return strings.Join(displayMelds, " | ")
}

// TilesToNames converts a slice of Tiles to a slice of their Names.
func TilesToNames(tiles []Tile) []string {
	names := make([]string, len(tiles))
	for i, t := range tiles {
		if !t.IsValid() {
			names[i] = "??"
		} else {
			names[i] = t.String()
		}
	}
	return names
}

// FormatResult renders an evaluation as a short multi-line report.
func FormatResult(r Result) string {
	var b strings.Builder
	if !r.IsWinning {
		fmt.Fprintf(&b, "Not a win: %s\n", r.Reason)
		return b.String()
	}
	if r.Decomposition != nil {
		fmt.Fprintf(&b, "Reading: %s\n", r.Decomposition)
	}
	fmt.Fprintf(&b, "Wait: %s\n", r.Wait)
	for _, y := range r.Yaku {
		if y.Yakuman {
			fmt.Fprintf(&b, "  %-26s Yakuman\n", y.Name)
		} else {
			fmt.Fprintf(&b, "  %-26s %d Han\n", y.Name, y.Han)
		}
	}
	if r.Band != BandNone {
		fmt.Fprintf(&b, "%d Han %d Fu, %s: %d\n", r.TotalHan, r.Fu, r.Band, r.Score)
	} else {
		fmt.Fprintf(&b, "%d Han %d Fu: %d\n", r.TotalHan, r.Fu, r.Score)
	}
	fmt.Fprintf(&b, "Payment: %s\n", r.Payment.Description)
	return b.String()
}
