package folio

import (
	"cmp"
	"math/bits"
	"slices"
)

// Distribute splits amount across balances in proportion to each positive
// balance, using the largest remainder method so the parts sum to amount
// exactly. Non-positive balances get nothing. When amount exceeds the total
// need every balance is paid in full and the excess goes to the first entry,
// which is also where everything goes when no balance is positive.
func Distribute(amount int64, balances []int64) []int64 {
	parts := make([]int64, len(balances))
	if amount <= 0 || len(balances) == 0 {
		return parts
	}

	var need int64

	for _, balance := range balances {
		if balance > 0 {
			need += balance
		}
	}

	if need == 0 {
		parts[0] = amount

		return parts
	}

	if amount >= need {
		for i, balance := range balances {
			if balance > 0 {
				parts[i] = balance
			}
		}

		parts[0] += amount - need

		return parts
	}

	type remainder struct {
		index int
		value uint64
	}

	remainders := make([]remainder, 0, len(balances))
	allocated := int64(0)

	for i, balance := range balances {
		if balance <= 0 {
			continue
		}

		// amount < need, so amount*balance/need < balance fits in 64 bits.
		hi, lo := bits.Mul64(uint64(amount), uint64(balance))
		quotient, rem := bits.Div64(hi, lo, uint64(need))

		parts[i] = int64(quotient)
		allocated += parts[i]
		remainders = append(remainders, remainder{index: i, value: rem})
	}

	slices.SortStableFunc(remainders, func(a, b remainder) int {
		return cmp.Compare(b.value, a.value)
	})

	for i := int64(0); i < amount-allocated; i++ {
		parts[remainders[i].index]++
	}

	return parts
}
