package frame

import (
	"github.com/ByLCY/kanjipress/geom"
	"github.com/ByLCY/kanjipress/surface"
)

// VectorFrame 包装一幅外部生成的矢量图形（例如一张笔顺图），
// 按锚点放进分配到的区域。
type VectorFrame struct {
	b       base
	drawing *surface.Drawing
	size    geom.Extent
	anchor  geom.Anchor
}

var _ Frame = (*VectorFrame)(nil)

// NewVectorFrame 构造矢量图帧。size 是期望占用的版面尺寸，
// fit 维度会在布局时落到授予范围上。
func NewVectorFrame(d *surface.Drawing, size geom.Extent, anchor geom.Anchor) *VectorFrame {
	v := &VectorFrame{drawing: d, size: size, anchor: anchor}
	v.b.setFlag(StateReusable)
	return v
}

func (v *VectorFrame) BeginPage(page int) bool {
	v.b.noteBeginPage(page)
	return !v.drawing.Empty()
}

// Measure 对缺失的图形申报零尺寸：兄弟内容照常排版，不拖垮整页。
func (v *VectorFrame) Measure(avail geom.Extent) geom.Extent {
	v.b.noteMeasured()
	if v.drawing.Empty() {
		return geom.ExtentZero
	}
	return v.size
}

func (v *VectorFrame) DoLayout(target geom.Extent) (geom.Region, error) {
	v.b.requireLayoutReady("VectorFrame")
	v.b.noteLaidOut()
	if v.drawing.Empty() {
		return geom.R(geom.PosZero, geom.ExtentZero), nil
	}
	return geom.R(geom.PosZero, v.size.Coalesce(target)), nil
}

func (v *VectorFrame) Draw(s surface.Surface, region geom.Region) error {
	v.b.requireDrawReady("VectorFrame")
	v.b.noteDrawing()
	defer v.b.noteDrawn(false)
	if v.drawing.Empty() {
		return nil
	}
	inner := v.size.Coalesce(region.Extent).Clamp(region.Extent)
	origin := region.Origin.Add(inner.AnchorIn(v.anchor, region.Extent))
	return s.DrawDrawing(geom.R(origin, inner), v.drawing)
}

func (v *VectorFrame) State() State { return v.b.st }
