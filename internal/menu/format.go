package menu

import (
	"fmt"
	"math"
	"strconv"
)

// FormatPrice renders a price for display, e.g. "$12.50". Any non-finite
// price renders as "$NaN".
func FormatPrice(price float64) string {
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return "$NaN"
	}
	return fmt.Sprintf("$%.2f", price)
}

// FormatAmount renders a price as plain form text, e.g. "12.5".
func FormatAmount(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}
