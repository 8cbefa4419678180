package domain

// Family groups units that are mutually convertible.
type Family string

const (
	FamilyVolume   Family = "volume"
	FamilyWeight   Family = "weight"
	FamilyCount    Family = "count"
	FamilyUnitless Family = "unitless"
	FamilyUnknown  Family = "unknown"
)

// Convertible reports whether the family has a conversion table.
func (f Family) Convertible() bool {
	return f == FamilyVolume || f == FamilyWeight
}

// System is a measurement system a recipe can be displayed in.
type System string

const (
	// SystemNone means "as written": no conversion is applied.
	SystemNone     System = ""
	SystemMetric   System = "metric"
	SystemImperial System = "imperial"
)

// String returns a human-readable system name.
func (s System) String() string {
	if s == SystemNone {
		return "original"
	}
	return string(s)
}

// SystemFromString converts a system name to a System.
// Returns false for unrecognized names.
func SystemFromString(name string) (System, bool) {
	switch name {
	case "metric", "si":
		return SystemMetric, true
	case "imperial", "us", "customary":
		return SystemImperial, true
	case "", "original", "none":
		return SystemNone, true
	}
	return SystemNone, false
}

// Unit is a canonical unit identifier tagged with its family. Units are
// comparable values.
type Unit struct {
	Name   string
	Family Family
}

var (
	// UnitCount marks a countable ingredient with no explicit unit ("2 eggs").
	UnitCount = Unit{Name: "count", Family: FamilyCount}
	// UnitNone marks a bare number with nothing countable after it.
	UnitNone = Unit{Name: "", Family: FamilyUnitless}
)
