package impl

import (
	"math"
	"time"
)

const (
	baseRate  = 10.0
	perKgRate = 2.0
)

// methodMultiplier returns the price multiplier for a shipping method.
// Unknown methods price as standard.
func methodMultiplier(method string) float64 {
	switch method {
	case "express":
		return 2.0
	case "priority":
		return 1.5
	default:
		return 1.0
	}
}

// methodDeliveryDays returns how many days after dispatch a parcel sent with
// the given method is expected to arrive.
func methodDeliveryDays(method string) int {
	switch method {
	case "express":
		return 1
	case "priority":
		return 3
	default:
		return 5
	}
}

// quoteShipping prices a parcel as a flat base rate plus a per-kilogram rate
// scaled by the method multiplier, rounded to cents, and projects the
// delivery date from the given time.
func quoteShipping(weight float64, method string, now time.Time) (float64, time.Time) {
	cost := baseRate + weight*perKgRate*methodMultiplier(method)
	cost = math.Round(cost*100) / 100

	return cost, now.AddDate(0, 0, methodDeliveryDays(method))
}
