package action

import (
	"fmt"
)

// Kind enumerates the kinds of values an action can produce.
type Kind int

const (
	// KindButton is a digital on/off value.
	KindButton Kind = iota
	// KindAxis is a single analog value.
	KindAxis
	// KindVector is a two-dimensional value.
	KindVector
)

// KindFromString converts a configuration kind identifier to a Kind.
// The empty string is a button.
func KindFromString(s string) (Kind, error) {
	switch s {
	case "", "button":
		return KindButton, nil
	case "axis":
		return KindAxis, nil
	case "vector":
		return KindVector, nil
	default:
		return KindButton, fmt.Errorf("unknown action kind '%s'", s)
	}
}

func (k Kind) String() string {
	switch k {
	case KindButton:
		return "button"
	case KindAxis:
		return "axis"
	case KindVector:
		return "vector"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Value is the value of an action at some point in time.
//
// A button is pressed iff X is non-zero; an axis only uses X.
type Value struct {
	Kind Kind
	X, Y float64
}

// Zero returns the "no input" value for the given kind.
func Zero(kind Kind) Value {
	return Value{Kind: kind}
}

// IsZero returns whether the value represents no input.
func (v Value) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Bool returns the value as a button state.
func (v Value) Bool() bool {
	return !v.IsZero()
}

// Float returns the value's first component.
func (v Value) Float() float64 {
	return v.X
}

// Vector returns both components.
func (v Value) Vector() [2]float64 {
	return [2]float64{v.X, v.Y}
}

// Add returns the component-wise sum, keeping v's kind.
func (v Value) Add(other Value) Value {
	return Value{Kind: v.Kind, X: v.X + other.X, Y: v.Y + other.Y}
}

func (v Value) String() string {
	switch v.Kind {
	case KindButton:
		return fmt.Sprintf("%t", v.Bool())
	case KindAxis:
		return fmt.Sprintf("%.2f", v.X)
	default:
		return fmt.Sprintf("(%.2f,%.2f)", v.X, v.Y)
	}
}
