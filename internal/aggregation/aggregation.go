// Package aggregation holds the reduction primitives shared by every report
// calculator: predicate sums, ordered grouping, trailing period buckets and
// division/rounding helpers with fixed numeric semantics.
//
// Missing numeric data is folded to zero here (OrZero, IntOrZero) and nowhere
// else, so calculators never carry their own defaulting rules.
package aggregation

import (
	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)
)

// SumBy totals sel(row) over the rows accepted by pred. A nil pred accepts every row.
func SumBy[T any](rows []T, pred func(T) bool, sel func(T) decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, row := range rows {
		if pred != nil && !pred(row) {
			continue
		}
		total = total.Add(sel(row))
	}
	return total
}

// CountBy counts the rows accepted by pred. A nil pred counts every row.
func CountBy[T any](rows []T, pred func(T) bool) int {
	if pred == nil {
		return len(rows)
	}
	count := 0
	for _, row := range rows {
		if pred(row) {
			count++
		}
	}
	return count
}

// Filter returns the rows accepted by pred, preserving order.
func Filter[T any](rows []T, pred func(T) bool) []T {
	out := make([]T, 0, len(rows))
	for _, row := range rows {
		if pred(row) {
			out = append(out, row)
		}
	}
	return out
}

// Sum adds a list of values.
func Sum(values ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}

// Groups is an insertion-ordered mapping from key to rows.
type Groups[K comparable, T any] struct {
	keys []K
	rows map[K][]T
}

// GroupBy partitions rows by key. Keys keep the order of their first occurrence.
func GroupBy[T any, K comparable](rows []T, key func(T) K) *Groups[K, T] {
	g := &Groups[K, T]{rows: make(map[K][]T)}
	for _, row := range rows {
		k := key(row)
		if _, seen := g.rows[k]; !seen {
			g.keys = append(g.keys, k)
		}
		g.rows[k] = append(g.rows[k], row)
	}
	return g
}

// Keys returns the group keys in first-occurrence order.
func (g *Groups[K, T]) Keys() []K {
	out := make([]K, len(g.keys))
	copy(out, g.keys)
	return out
}

// Get returns the rows for key, or nil when the key never occurred.
func (g *Groups[K, T]) Get(key K) []T {
	return g.rows[key]
}

// Len returns the number of distinct keys.
func (g *Groups[K, T]) Len() int {
	return len(g.keys)
}

// SafeRatio returns numerator/denominator when the denominator is positive and
// zero otherwise. It never panics.
func SafeRatio(numerator, denominator decimal.Decimal) decimal.Decimal {
	if !denominator.IsPositive() {
		return decimal.Zero
	}
	return numerator.Div(denominator)
}

// Percent is SafeRatio scaled to a percentage and rounded to two places.
func Percent(numerator, denominator decimal.Decimal) decimal.Decimal {
	return RoundRatio(SafeRatio(numerator, denominator).Mul(hundred))
}

// PercentInt is Percent over integer counts.
func PercentInt(numerator, denominator int) decimal.Decimal {
	return Percent(decimal.NewFromInt(int64(numerator)), decimal.NewFromInt(int64(denominator)))
}

// RoundCurrency rounds half away from zero to a whole currency unit.
func RoundCurrency(x decimal.Decimal) decimal.Decimal {
	return x.Round(0)
}

// RoundRatio rounds half away from zero to two decimal places.
func RoundRatio(x decimal.Decimal) decimal.Decimal {
	return x.Round(2)
}

// OrZero unwraps a nullable decimal, treating a missing value as zero.
func OrZero(v decimal.NullDecimal) decimal.Decimal {
	if !v.Valid {
		return decimal.Zero
	}
	return v.Decimal
}

// IntOrZero unwraps a nullable integer, treating a missing value as zero.
func IntOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

// MaxZero clamps negative values to zero.
func MaxZero(x decimal.Decimal) decimal.Decimal {
	if x.IsNegative() {
		return decimal.Zero
	}
	return x
}
