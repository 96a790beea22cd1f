package frame

import (
	"github.com/ByLCY/kanjipress/geom"
	"github.com/ByLCY/kanjipress/surface"
)

// Spacer 是占位不画的空白帧。堆叠策略没有隐式间距，兄弟帧之间的
// 留白全靠它显式表达。
type Spacer struct {
	b    base
	size geom.Extent
}

var _ Frame = (*Spacer)(nil)

// NewSpacer 构造固定尺寸的空白帧。fit 维度会吸收父级分配的剩余空间。
func NewSpacer(size geom.Extent) *Spacer {
	s := &Spacer{size: size}
	s.b.setFlag(StateReusable)
	return s
}

// VGap 构造只占垂直空间的空白。
func VGap(h geom.Distance) *Spacer { return NewSpacer(geom.E(geom.Zero, h)) }

// HGap 构造只占水平空间的空白。
func HGap(w geom.Distance) *Spacer { return NewSpacer(geom.E(w, geom.Zero)) }

func (s *Spacer) BeginPage(page int) bool {
	s.b.noteBeginPage(page)
	return true
}

func (s *Spacer) Measure(avail geom.Extent) geom.Extent {
	s.b.noteMeasured()
	return s.size
}

func (s *Spacer) DoLayout(target geom.Extent) (geom.Region, error) {
	s.b.requireLayoutReady("Spacer")
	s.b.noteLaidOut()
	return geom.R(geom.PosZero, s.size.Coalesce(target)), nil
}

func (s *Spacer) Draw(surface.Surface, geom.Region) error {
	s.b.requireDrawReady("Spacer")
	s.b.noteDrawing()
	s.b.noteDrawn(false)
	return nil
}

func (s *Spacer) State() State { return s.b.st }
