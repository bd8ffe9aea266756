package entities

import "fmt"

// Cents represents a monetary amount in integer cents. Every price crossing
// a store boundary is integer cents; fractional values only exist inside
// decimal arithmetic and are rounded before they become Cents.
type Cents int64

// String formats the amount as a decimal currency string, e.g. "15.00".
func (c Cents) String() string {
	sign := ""
	v := int64(c)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}
