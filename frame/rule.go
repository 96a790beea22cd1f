package frame

import (
	"github.com/ByLCY/kanjipress/geom"
	"github.com/ByLCY/kanjipress/surface"
)

// Rule 是贯穿可用空间的分隔线。
type Rule struct {
	b         base
	axis      Axis
	thickness geom.Distance
	color     surface.Color
}

var _ Frame = (*Rule)(nil)

// NewRule 构造分隔线。axis 是线的走向：Horizontal 画横线。
func NewRule(axis Axis, thickness geom.Distance, color surface.Color) *Rule {
	r := &Rule{axis: axis, thickness: thickness, color: color}
	r.b.setFlag(StateReusable)
	return r
}

func (r *Rule) BeginPage(page int) bool {
	r.b.noteBeginPage(page)
	return true
}

// Measure 在线的走向上申报 fit（要多长给多长），厚度方向固定。
func (r *Rule) Measure(avail geom.Extent) geom.Extent {
	r.b.noteMeasured()
	if r.axis == Horizontal {
		return geom.E(geom.Fit, r.thickness)
	}
	return geom.E(r.thickness, geom.Fit)
}

func (r *Rule) DoLayout(target geom.Extent) (geom.Region, error) {
	r.b.requireLayoutReady("Rule")
	r.b.noteLaidOut()
	ext := target
	if r.axis == Horizontal {
		ext.H = r.thickness
	} else {
		ext.W = r.thickness
	}
	return geom.R(geom.PosZero, ext), nil
}

func (r *Rule) Draw(s surface.Surface, region geom.Region) error {
	r.b.requireDrawReady("Rule")
	r.b.noteDrawing()
	defer r.b.noteDrawn(false)

	// 线画在厚度方向的中线上
	half := r.thickness.Div(2)
	var from, to geom.Pos
	if r.axis == Horizontal {
		y := region.Origin.Y.Add(half)
		from = geom.Pos{X: region.Origin.X, Y: y}
		to = geom.Pos{X: region.Origin.X.Add(region.Extent.W), Y: y}
	} else {
		x := region.Origin.X.Add(half)
		from = geom.Pos{X: x, Y: region.Origin.Y}
		to = geom.Pos{X: x, Y: region.Origin.Y.Add(region.Extent.H)}
	}
	return s.DrawLine(from, to, r.thickness, r.color)
}

func (r *Rule) State() State { return r.b.st }
