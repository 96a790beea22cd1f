package geom

import "fmt"

// Pos is a point in 2-space. The layout engine works in a top-left origin
// coordinate system (x grows right, y grows down), matching the CartesianIV
// convention of the output surface.
type Pos struct {
	X, Y Distance
}

// PosZero is the origin.
var PosZero = Pos{}

// Add treats o as a delta and offsets the position by it.
func (p Pos) Add(o Pos) Pos { return Pos{X: p.X.Add(o.X), Y: p.Y.Add(o.Y)} }

func (p Pos) String() string { return fmt.Sprintf("x=%s, y=%s", p.X, p.Y) }

// Extent is a width/height pair used for sizing and layout negotiation.
type Extent struct {
	W, H Distance
}

// ExtentZero is the empty extent.
var ExtentZero = Extent{}

// ExtentFit wants both dimensions fit to available space.
var ExtentFit = Extent{W: Fit, H: Fit}

// E is shorthand for constructing an extent.
func E(w, h Distance) Extent { return Extent{W: w, H: h} }

// IsEmpty reports whether either dimension is nothing. An extent must have
// both width and height to hold content.
func (e Extent) IsEmpty() bool { return e.W.IsZero() || e.H.IsZero() }

// IsZero reports whether both dimensions are nothing. Zero-extent children are
// skipped during stacking so they never introduce stray gaps.
func (e Extent) IsZero() bool { return e.W.IsZero() && e.H.IsZero() }

// Add sums the widths and heights of two extents.
func (e Extent) Add(o Extent) Extent { return Extent{W: e.W.Add(o.W), H: e.H.Add(o.H)} }

// SubClamped reduces the extent by o, clamping each dimension at zero rather
// than going negative.
func (e Extent) SubClamped(o Extent) Extent {
	return Extent{
		W: Max(e.W.Sub(o.W), Zero),
		H: Max(e.H.Sub(o.H), Zero),
	}
}

// Union takes the larger of each dimension.
func (e Extent) Union(o Extent) Extent {
	return Extent{W: Max(e.W, o.W), H: Max(e.H, o.H)}
}

// Clamp takes the smaller of each dimension. A symbolic dimension (fit or
// infinite) on either side imposes no constraint: the other side's value wins.
func (e Extent) Clamp(o Extent) Extent {
	clamp := func(a, b Distance) Distance {
		if a.IsFit() || a.IsInf() {
			return b
		}
		if b.IsFit() || b.IsInf() {
			return a
		}
		return Min(a, b)
	}
	return Extent{W: clamp(e.W, o.W), H: clamp(e.H, o.H)}
}

// Coalesce fills zero or fit dimensions of the receiver from o.
func (e Extent) Coalesce(o Extent) Extent {
	pick := func(a, b Distance) Distance {
		if a.IsZero() || a.IsFit() {
			return b
		}
		return a
	}
	return Extent{W: pick(e.W, o.W), H: pick(e.H, o.H)}
}

// Contains reports whether o fits weakly inside the receiver assuming a
// common origin.
func (e Extent) Contains(o Extent) bool {
	return o.W.Leq(e.W) && o.H.Leq(e.H)
}

// Scale multiplies both dimensions by a plain number.
func (e Extent) Scale(k float64) Extent { return Extent{W: e.W.Mul(k), H: e.H.Mul(k)} }

// Div divides both dimensions by a plain non-zero number.
func (e Extent) Div(k float64) Extent { return Extent{W: e.W.Div(k), H: e.H.Div(k)} }

// Stretchy reports, per axis, whether this extent may grow to consume
// leftover layout space.
func (e Extent) Stretchy() (width, height bool) {
	return e.W.Stretchy(), e.H.Stretchy()
}

func (e Extent) String() string { return fmt.Sprintf("width=%s, height=%s", e.W, e.H) }

// AnchorIn positions the receiver inside the outer extent according to the
// compass anchor, yielding the receiver's origin in the outer extent's
// top-left coordinate space.
func (e Extent) AnchorIn(a Anchor, outer Extent) Pos {
	var x, y Distance
	switch {
	case a&AnchorW != 0:
		x = Zero
	case a&AnchorE != 0:
		x = outer.W.Sub(e.W)
	default:
		x = outer.W.Sub(e.W).Div(2)
	}
	switch {
	case a&AnchorN != 0:
		y = Zero
	case a&AnchorS != 0:
		y = outer.H.Sub(e.H)
	default:
		y = outer.H.Sub(e.H).Div(2)
	}
	return Pos{X: x, Y: y}
}

// Region is a local coordinate frame: an origin offset into some parent frame
// plus the extent reachable from that origin.
type Region struct {
	Origin Pos
	Extent Extent
}

// R is shorthand for constructing a region.
func R(origin Pos, extent Extent) Region { return Region{Origin: origin, Extent: extent} }

// Offset shifts the region's origin by delta, re-expressing it in an
// enclosing coordinate frame.
func (r Region) Offset(delta Pos) Region {
	return Region{Origin: r.Origin.Add(delta), Extent: r.Extent}
}

// ContainsPos reports whether the point lies weakly inside the region.
func (r Region) ContainsPos(p Pos) bool {
	local := Pos{X: p.X.Sub(r.Origin.X), Y: p.Y.Sub(r.Origin.Y)}
	return Zero.Leq(local.X) && Zero.Leq(local.Y) &&
		local.X.Leq(r.Extent.W) && local.Y.Leq(r.Extent.H)
}

// ContainsRegion reports whether o lies weakly inside the region.
func (r Region) ContainsRegion(o Region) bool {
	far := Pos{X: o.Origin.X.Add(o.Extent.W), Y: o.Origin.Y.Add(o.Extent.H)}
	return r.ContainsPos(o.Origin) && r.ContainsPos(far)
}

func (r Region) String() string {
	return fmt.Sprintf("origin=(%s), extent=(%s)", r.Origin, r.Extent)
}

// Anchor is a compass-style placement hint combining cardinal flags. The zero
// value centers on both axes.
type Anchor uint8

const (
	AnchorCenter Anchor = 0
	AnchorN      Anchor = 1 << iota
	AnchorE
	AnchorS
	AnchorW
)

// Corner combinations.
const (
	AnchorNE = AnchorN | AnchorE
	AnchorNW = AnchorN | AnchorW
	AnchorSE = AnchorS | AnchorE
	AnchorSW = AnchorS | AnchorW
)
