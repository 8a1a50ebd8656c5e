package calculator

import (
	"errors"
	"fmt"
)

// ErrNoPeople is returned when an even split has nobody to split between.
var ErrNoPeople = errors.New("must have at least one person")

// SplitEvenly returns what each of people owes for a bill with a tip
// percentage applied on top:
// per_person = (bill + bill × tip_percent / 100) / people
func SplitEvenly(bill float64, people int, tipPercent float64) (float64, error) {
	if people <= 0 {
		return 0, ErrNoPeople
	}
	if !isFinite(bill) || !isFinite(tipPercent) {
		return 0, fmt.Errorf("bill and tip must be numbers")
	}

	totalWithTip := bill + bill*(tipPercent/100)
	return totalWithTip / float64(people), nil
}

// Product multiplies the three raw inputs. Any input that is not a number
// makes the product 0.
func Product(a, b, c string) float64 {
	nums := make([]float64, 0, 3)
	for _, raw := range []string{a, b, c} {
		v, ok := parseNumber(raw)
		if !ok {
			return 0
		}
		nums = append(nums, v)
	}
	return nums[0] * nums[1] * nums[2]
}
