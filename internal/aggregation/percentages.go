package aggregation

import (
	"sort"

	"github.com/shopspring/decimal"
)

// basisPoints is 100.00 expressed in hundredths of a percent.
const basisPoints = 10000

// Percentages splits 100.00 across counts using the largest remainder method,
// so a distribution with any non-zero count sums to exactly 100.00.
// An all-zero distribution yields all zeros.
func Percentages(counts []int64) []decimal.Decimal {
	values := make([]decimal.Decimal, len(counts))
	for i, c := range counts {
		values[i] = decimal.NewFromInt(c)
	}
	return Shares(values)
}

// Shares is Percentages over decimal weights. Negative weights count as zero.
func Shares(values []decimal.Decimal) []decimal.Decimal {
	out := make([]decimal.Decimal, len(values))
	for i := range out {
		out[i] = decimal.Zero
	}

	total := decimal.Zero
	for _, v := range values {
		total = total.Add(MaxZero(v))
	}
	if !total.IsPositive() {
		return out
	}

	scale := decimal.NewFromInt(basisPoints)
	floors := make([]int64, len(values))
	remainders := make([]decimal.Decimal, len(values))
	allocated := int64(0)
	for i, v := range values {
		raw := MaxZero(v).Mul(scale).Div(total)
		floor := raw.Floor()
		floors[i] = floor.IntPart()
		remainders[i] = raw.Sub(floor)
		allocated += floors[i]
	}

	order := make([]int, len(values))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return remainders[order[a]].GreaterThan(remainders[order[b]])
	})

	leftover := basisPoints - allocated
	for k := 0; leftover > 0 && len(order) > 0; k++ {
		idx := order[k%len(order)]
		if values[idx].IsPositive() {
			floors[idx]++
			leftover--
		}
	}

	for i, bp := range floors {
		out[i] = decimal.New(bp, -2)
	}
	return out
}
