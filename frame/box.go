package frame

import (
	"github.com/ByLCY/kanjipress/geom"
	"github.com/ByLCY/kanjipress/surface"
)

// Box 是画边框（可选填充）的矩形帧，练习格、表格线都用它。
type Box struct {
	b           base
	size        geom.Extent
	strokeWidth geom.Distance
	stroke      surface.Color
	fill        *surface.Color
}

var _ Frame = (*Box)(nil)

// NewBox 构造矩形帧。fill 为 nil 时只画边框。
func NewBox(size geom.Extent, strokeWidth geom.Distance, stroke surface.Color, fill *surface.Color) *Box {
	box := &Box{size: size, strokeWidth: strokeWidth, stroke: stroke, fill: fill}
	box.b.setFlag(StateReusable)
	return box
}

func (x *Box) BeginPage(page int) bool {
	x.b.noteBeginPage(page)
	return true
}

func (x *Box) Measure(avail geom.Extent) geom.Extent {
	x.b.noteMeasured()
	return x.size
}

func (x *Box) DoLayout(target geom.Extent) (geom.Region, error) {
	x.b.requireLayoutReady("Box")
	x.b.noteLaidOut()
	return geom.R(geom.PosZero, x.size.Coalesce(target)), nil
}

func (x *Box) Draw(s surface.Surface, region geom.Region) error {
	x.b.requireDrawReady("Box")
	x.b.noteDrawing()
	defer x.b.noteDrawn(false)
	ext := x.size.Coalesce(region.Extent).Clamp(region.Extent)
	return s.DrawRect(geom.R(region.Origin, ext), x.strokeWidth, x.stroke, x.fill)
}

func (x *Box) State() State { return x.b.st }
