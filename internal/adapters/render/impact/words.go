package impact

import (
	"math"

	"github.com/dustin/go-humanize"
)

var wordScales = []struct {
	value float64
	name  string
}{
	{1e33, "decillion"},
	{1e30, "nonillion"},
	{1e27, "octillion"},
	{1e24, "septillion"},
	{1e21, "sextillion"},
	{1e18, "quintillion"},
	{1e15, "quadrillion"},
	{1e12, "trillion"},
	{1e9, "billion"},
	{1e6, "million"},
}

// Intword spells large numbers with a scale word ("1.1 quintillion"). Values below a
// million are printed as grouped integers.
func Intword(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return humanize.Ftoa(value)
	}

	abs := math.Abs(value)
	for _, scale := range wordScales {
		if abs >= scale.value {
			return humanize.FtoaWithDigits(value/scale.value, 1) + " " + scale.name
		}
	}

	return humanize.Comma(int64(math.Round(value)))
}
