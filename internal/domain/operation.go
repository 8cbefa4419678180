package domain

import "math/big"

// OperationType classifies what the user wants done to a recipe.
type OperationType int

const (
	OperationUnknown OperationType = iota
	OperationScale
	OperationHalve
	OperationDouble
	OperationTriple
	OperationServings // scale to a target number of servings
	OperationMetric
	OperationImperial
	OperationReset // back to the recipe as written
)

// String returns a human-readable operation type.
func (o OperationType) String() string {
	switch o {
	case OperationScale:
		return "scale"
	case OperationHalve:
		return "halve"
	case OperationDouble:
		return "double"
	case OperationTriple:
		return "triple"
	case OperationServings:
		return "servings"
	case OperationMetric:
		return "metric"
	case OperationImperial:
		return "imperial"
	case OperationReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Operation is a parsed user request against a recipe.
type Operation struct {
	Type     OperationType
	Factor   *big.Rat // set for OperationScale
	Servings int      // set for OperationServings
	Input    string   // the phrase that produced the operation
}

// operationNames maps snake_case names to OperationType values.
var operationNames = map[string]OperationType{
	"scale":    OperationScale,
	"halve":    OperationHalve,
	"double":   OperationDouble,
	"triple":   OperationTriple,
	"servings": OperationServings,
	"metric":   OperationMetric,
	"imperial": OperationImperial,
	"reset":    OperationReset,
	"unknown":  OperationUnknown,
}

// OperationFromString converts an operation name to an OperationType.
// Returns OperationUnknown for unrecognized names.
func OperationFromString(name string) OperationType {
	if t, ok := operationNames[name]; ok {
		return t
	}
	return OperationUnknown
}
