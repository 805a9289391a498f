package environment

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// SpecType names the quantity a Spec describes
type SpecType int

const (
	Action SpecType = iota
	Observation
	Discount
	Reward
)

func (s SpecType) String() string {
	switch s {
	case Action:
		return "Action"
	case Observation:
		return "Observation"
	case Discount:
		return "Discount"
	default:
		return "Reward"
	}
}

// Spec describes the length and elementwise bounds of the actions,
// observations, discounts, or rewards of an environment. Actions are
// described by a single element holding the range of action indices.
type Spec struct {
	Shape      mat.Vector
	Type       SpecType
	LowerBound mat.Vector
	UpperBound mat.Vector
}

// NewSpec returns a new Spec of type t. The bounds must have the same
// length as shape.
func NewSpec(shape mat.Vector, t SpecType, lowerBound,
	upperBound mat.Vector) Spec {
	if shape.Len() != lowerBound.Len() || shape.Len() != upperBound.Len() {
		panic(fmt.Sprintf("newSpec: %v spec of length %d has bounds of "+
			"lengths %d and %d", t, shape.Len(), lowerBound.Len(),
			upperBound.Len()))
	}
	return Spec{shape, t, lowerBound, upperBound}
}

// Contains returns whether v has the length of the Spec and every
// element of v lies within its bounds
func (s Spec) Contains(v mat.Vector) bool {
	if v.Len() != s.Shape.Len() {
		return false
	}
	for i := 0; i < v.Len(); i++ {
		x := v.AtVec(i)
		if x < s.LowerBound.AtVec(i) || x > s.UpperBound.AtVec(i) {
			return false
		}
	}
	return true
}

// String returns the length of the Spec and the loosest range
// covering all its elements
func (s Spec) String() string {
	lower := mat.Col(nil, 0, s.LowerBound)
	upper := mat.Col(nil, 0, s.UpperBound)
	return fmt.Sprintf("%v Spec  |  Length: %d  |  Range: [%v, %v]", s.Type,
		s.Shape.Len(), floats.Min(lower), floats.Max(upper))
}
