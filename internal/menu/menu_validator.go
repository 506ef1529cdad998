package menu

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Variant selects which form fields are required.
type Variant string

const (
	// VariantBasic requires a name and a price.
	VariantBasic Variant = "basic"
	// VariantDetailed additionally requires a description.
	VariantDetailed Variant = "detailed"
)

func ParseVariant(s string) (Variant, error) {
	switch Variant(strings.ToLower(strings.TrimSpace(s))) {
	case "", VariantBasic:
		return VariantBasic, nil
	case VariantDetailed:
		return VariantDetailed, nil
	}
	return "", fmt.Errorf("unknown menu variant %q", s)
}

// RequiresDescription reports whether drafts must carry a description.
func (v Variant) RequiresDescription() bool {
	return v == VariantDetailed
}

// ValidationError lists the required form fields that were left empty.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// ValidateDraft checks that every required field is a non-empty string.
// Whitespace counts as content and the price text is not checked for
// being numeric.
func ValidateDraft(d Draft, v Variant) error {
	var missing []string

	if d.Name == "" {
		missing = append(missing, "name")
	}
	if v.RequiresDescription() && d.Description == "" {
		missing = append(missing, "description")
	}
	if d.Price == "" {
		missing = append(missing, "price")
	}

	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}

// ParsePrice reads the leading decimal number of the price text and
// ignores whatever follows it, so "12.50abc" is 12.5 and "10 EUR" is 10.
// Text without a leading number yields NaN rather than an error.
func ParsePrice(text string) float64 {
	prefix := numericPrefix(strings.TrimSpace(text))
	if prefix == "" {
		return math.NaN()
	}

	price, err := strconv.ParseFloat(prefix, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	// Out of range values come back as ±Inf or 0, which is what we want.
	return price
}

// numericPrefix returns the longest prefix of s that is a decimal literal:
// an optional sign followed by "Infinity", or by digits with an optional
// fraction and exponent. Hex, underscores and "inf" are not accepted.
func numericPrefix(s string) string {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	if strings.HasPrefix(s[i:], "Infinity") {
		return s[:i+len("Infinity")]
	}

	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		j := i + 1
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		if digits > 0 || j > i+1 {
			digits += j - i - 1
			i = j
		}
	}
	if digits == 0 {
		return ""
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		start := j
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		if j > start {
			i = j
		}
	}
	return s[:i]
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
