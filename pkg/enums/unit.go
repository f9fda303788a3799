package enums

import "fmt"

// Unit represents the measurement units a rice cake can be sold in.
type Unit string

const (
	UnitKg    Unit = "kg"
	UnitDoe   Unit = "되"
	UnitMal   Unit = "말"
	UnitPiece Unit = "개"
	UnitPack  Unit = "팩"
)

// canonicalUnits fixes the display and resolution order for every unit-aware
// surface (price resolver, kiosk pickers, breakdown strings).
var canonicalUnits = []Unit{
	UnitKg,
	UnitDoe,
	UnitMal,
	UnitPiece,
	UnitPack,
}

// CanonicalUnits returns the fixed unit order (kg, 되, 말, 개, 팩).
func CanonicalUnits() []Unit {
	out := make([]Unit, len(canonicalUnits))
	copy(out, canonicalUnits)
	return out
}

// String implements fmt.Stringer.
func (u Unit) String() string {
	return string(u)
}

// IsValid reports whether the value is a known Unit.
func (u Unit) IsValid() bool {
	for _, candidate := range canonicalUnits {
		if candidate == u {
			return true
		}
	}
	return false
}

// ParseUnit converts raw input into a Unit.
func ParseUnit(value string) (Unit, error) {
	for _, candidate := range canonicalUnits {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid unit %q", value)
}
