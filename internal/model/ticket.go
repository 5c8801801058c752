// Package model defines the core raffle types: the fixed number space,
// sale records and seller identities. Everything here is plain data;
// validation against external input happens at the repository boundary.
package model

import (
	"fmt"
	"regexp"
	"strconv"
)

// TotalNumbers is the size of the raffle's number space. Numbers run from
// 001 up to and including TotalNumbers and are never created or destroyed
// at runtime; a number is either Free or Sold.
const TotalNumbers = 500

// UnitPrice is the price of a single ticket in soles.
const UnitPrice = 5

// TicketNumber is a 3-digit zero-padded identifier such as "007" or "423".
type TicketNumber string

// numberPattern matches exactly three ASCII digits. Rows whose number field
// does not match after zero-padding are dropped at the adapter boundary.
var numberPattern = regexp.MustCompile(`^[0-9]{3}$`)

// FormatNumber zero-pads n to the canonical 3-digit form.
func FormatNumber(n int) TicketNumber {
	return TicketNumber(fmt.Sprintf("%03d", n))
}

// ParseNumber validates a raw string against the 3-digit pattern and the
// closed number space. It returns the canonical TicketNumber or an error
// describing why the value is not a valid ticket identifier.
func ParseNumber(raw string) (TicketNumber, error) {
	if !numberPattern.MatchString(raw) {
		return "", fmt.Errorf("number %q does not match 3-digit pattern", raw)
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n > TotalNumbers {
		return "", fmt.Errorf("number %q outside space 001..%03d", raw, TotalNumbers)
	}
	return TicketNumber(raw), nil
}

// AllNumbers returns the full number space in ascending order.
func AllNumbers() []TicketNumber {
	out := make([]TicketNumber, 0, TotalNumbers)
	for i := 1; i <= TotalNumbers; i++ {
		out = append(out, FormatNumber(i))
	}
	return out
}
