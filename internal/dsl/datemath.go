package dsl

import "strconv"

// Now is the engine's current-time anchor.
const Now = "now"

// Unit is a date math time unit. Case matters: m is minutes, M is months.
type Unit string

// Date math units.
const (
	Minutes Unit = "m"
	Months  Unit = "M"
	Years   Unit = "y"
)

// NowMinus returns "now-<n><unit>".
func NowMinus(n int, unit Unit) string {
	return Now + "-" + strconv.Itoa(n) + string(unit)
}

// DateMinus returns "<anchor>||-<n><unit>". The anchor is a date string and
// is not validated.
func DateMinus(anchor string, n int, unit Unit) string {
	return anchor + "||-" + strconv.Itoa(n) + string(unit)
}
