package geom

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// This file defines the unit-safe scalar length type used by all layout math.
// Distances keep their author-specified unit; arithmetic converts on demand and
// keeps the unit of the left operand.

// Unit identifies the measurement unit of a Distance.
type Unit int

const (
	UnitPt Unit = iota // typographic points, 1/72 in
	UnitMm             // millimeters
	UnitCm             // centimeters
	UnitIn             // inches
	UnitPx             // SVG user units, 1/96 in
	UnitFit            // "*": fit to available space
	UnitInf            // "!": infinite / overflow
)

// twips per unit (1/20 pt). Symbolic units carry no physical size.
var twipsPerUnit = [...]float64{
	UnitPt: 20,
	UnitMm: 1440 / 25.4,
	UnitCm: 1440 / 2.54,
	UnitIn: 1440,
	UnitPx: 15,
	UnitFit: 1,
	UnitInf: 1,
}

var unitNames = [...]string{
	UnitPt:  "pt",
	UnitMm:  "mm",
	UnitCm:  "cm",
	UnitIn:  "in",
	UnitPx:  "px",
	UnitFit: "*",
	UnitInf: "!",
}

func (u Unit) String() string {
	if int(u) < len(unitNames) {
		return unitNames[u]
	}
	return "?"
}

// eps is the slop for float comparisons on converted measures.
const eps = 1e-9

// Distance is a scalar length with a unit and an optional soft lower-bound
// marker. The zero value is exactly 0pt.
//
// Two symbolic forms take part in layout negotiation:
//
//   - Fit ("*") marks a dimension that should consume leftover space after
//     fixed siblings are sized.
//   - Inf ("!") compares greater than every other distance.
//
// AtLeast records constraints like "5in*": a stretchy measure with a floor.
type Distance struct {
	V       float64
	Unit    Unit
	AtLeast bool
}

// Zero is the 0pt distance.
var Zero = Distance{}

// Fit is the fit-to-available-space distance.
var Fit = Distance{Unit: UnitFit}

// Inf is the infinite distance.
var Inf = Distance{Unit: UnitInf}

// D is shorthand for constructing a fixed distance.
func D(v float64, u Unit) Distance { return Distance{V: v, Unit: u} }

// Pt constructs a distance measured in points.
func Pt(v float64) Distance { return Distance{V: v, Unit: UnitPt} }

// Mm constructs a distance measured in millimeters.
func Mm(v float64) Distance { return Distance{V: v, Unit: UnitMm} }

// In constructs a distance measured in inches.
func In(v float64) Distance { return Distance{V: v, Unit: UnitIn} }

// IsFit reports whether this distance wants to stretch into leftover space.
func (d Distance) IsFit() bool { return d.Unit == UnitFit }

// IsInf reports whether this distance is the infinite measure.
func (d Distance) IsInf() bool { return d.Unit == UnitInf }

// IsZero reports whether the measure is (numerically) nothing. Symbolic
// distances are never zero in the layout sense.
func (d Distance) IsZero() bool {
	return d.Unit != UnitFit && d.Unit != UnitInf && math.Abs(d.V) < eps
}

// Stretchy reports whether the distance may grow during layout: either a pure
// "*" or an at-least form like "5in*".
func (d Distance) Stretchy() bool { return d.IsFit() || d.AtLeast }

func (d Distance) twips() float64 { return d.V * twipsPerUnit[d.Unit] }

// To converts the distance into target units. Converting a symbolic distance
// returns it unchanged.
func (d Distance) To(u Unit) Distance {
	if d.Unit == u || d.Unit == UnitFit || d.Unit == UnitInf {
		return d
	}
	if u == UnitFit || u == UnitInf {
		return d
	}
	return Distance{V: d.twips() / twipsPerUnit[u], Unit: u, AtLeast: d.AtLeast}
}

// ToPt yields the plain numeric value in points.
func (d Distance) ToPt() float64 { return d.To(UnitPt).V }

// ToMm yields the plain numeric value in millimeters.
func (d Distance) ToMm() float64 { return d.To(UnitMm).V }

// ToIn yields the plain numeric value in inches.
func (d Distance) ToIn() float64 { return d.To(UnitIn).V }

// Add sums two distances keeping the unit of the receiver. Adding Inf yields
// Inf; adding a Fit marks the result as at-least.
func (d Distance) Add(o Distance) Distance {
	switch {
	case d.IsInf() || o.IsInf():
		return Inf
	case o.IsFit():
		return Distance{V: d.V, Unit: d.Unit, AtLeast: true}
	case d.IsFit():
		return Distance{V: o.V, Unit: o.Unit, AtLeast: true}
	}
	return Distance{V: d.V + o.To(d.Unit).V, Unit: d.Unit, AtLeast: d.AtLeast || o.AtLeast}
}

// Sub subtracts o keeping the unit of the receiver.
func (d Distance) Sub(o Distance) Distance { return d.Add(o.Neg()) }

// Neg flips the sign of the measure.
func (d Distance) Neg() Distance {
	if d.IsInf() {
		return Inf
	}
	return Distance{V: -d.V, Unit: d.Unit, AtLeast: d.AtLeast}
}

// Mul scales the distance by a plain number. Distances never multiply with
// distances: that would be an area.
func (d Distance) Mul(k float64) Distance {
	if d.IsInf() {
		return Inf
	}
	return Distance{V: d.V * k, Unit: d.Unit, AtLeast: d.AtLeast}
}

// Div divides the distance by a plain non-zero number.
func (d Distance) Div(k float64) Distance {
	if k == 0 {
		panic("geom: distance divided by zero")
	}
	return d.Mul(1 / k)
}

// Less orders distances by physical size. Inf is greater than everything but
// itself; symbolic Fit compares on its raw measure (zero).
func (d Distance) Less(o Distance) bool {
	if d.IsInf() {
		return false
	}
	if o.IsInf() {
		return true
	}
	if d.IsFit() || o.IsFit() {
		return d.V < o.V
	}
	return d.twips() < o.twips()-eps
}

// Eq compares physical size with float slop. Inf only equals Inf.
func (d Distance) Eq(o Distance) bool {
	if d.IsInf() || o.IsInf() {
		return d.IsInf() && o.IsInf()
	}
	if d.IsFit() || o.IsFit() {
		return d.V == o.V && d.IsFit() == o.IsFit()
	}
	return math.Abs(d.twips()-o.twips()) < eps
}

// Leq reports d <= o under Less/Eq.
func (d Distance) Leq(o Distance) bool { return d.Eq(o) || d.Less(o) }

// Max picks the larger of two distances.
func Max(a, b Distance) Distance {
	if a.Less(b) {
		return b
	}
	return a
}

// Min picks the smaller of two distances.
func Min(a, b Distance) Distance {
	if b.Less(a) {
		return b
	}
	return a
}

func (d Distance) String() string {
	prefix := ""
	if d.AtLeast {
		prefix = ">="
	}
	switch d.Unit {
	case UnitFit:
		return prefix + "*"
	case UnitInf:
		return prefix + "!"
	}
	return fmt.Sprintf("%s%s%s", prefix, strconv.FormatFloat(d.V, 'f', -1, 64), d.Unit)
}

// ParseDistance parses strings like "12pt", "2.5in", "40mm", "*", "!" and the
// at-least form "5in*".
func ParseDistance(s string) (Distance, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Zero, fmt.Errorf("geom: empty distance")
	}
	switch s {
	case "*":
		return Fit, nil
	case "!":
		return Inf, nil
	}
	atLeast := false
	if strings.HasSuffix(s, "*") {
		atLeast = true
		s = strings.TrimSuffix(s, "*")
	}
	for u := UnitPt; u <= UnitPx; u++ {
		suffix := unitNames[u]
		if !strings.HasSuffix(s, suffix) {
			continue
		}
		num := strings.TrimSpace(strings.TrimSuffix(s, suffix))
		v, err := strconv.ParseFloat(num, 64)
		if err != nil {
			return Zero, fmt.Errorf("geom: %q is not a distance: %w", s, err)
		}
		return Distance{V: v, Unit: u, AtLeast: atLeast}, nil
	}
	return Zero, fmt.Errorf("geom: %q has no recognized distance unit", s)
}

// MustParseDistance is ParseDistance for compile-time-known literals.
func MustParseDistance(s string) Distance {
	d, err := ParseDistance(s)
	if err != nil {
		panic(err)
	}
	return d
}
