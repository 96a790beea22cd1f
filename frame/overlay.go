package frame

import "github.com/ByLCY/kanjipress/geom"

// Overlay 把所有子帧叠放在同一原点。子帧顺序即绘制顺序：先加的
// 在底层，后加的盖在上面。描红模板垫在练习格下就是靠它。
type Overlay struct{}

// NewOverlay 构造叠放策略。
func NewOverlay() Overlay { return Overlay{} }

var _ Strategy = Overlay{}

// Measure 实现 Strategy：取所有子帧的包络。
func (Overlay) Measure(children []geom.Extent, hint geom.Extent) geom.Extent {
	out := geom.ExtentZero
	for _, child := range children {
		out = out.Union(floorOf(child))
	}
	return out
}

// Layout 实现 Strategy：每个子帧都从原点铺开，fit 维度吃满目标范围。
func (Overlay) Layout(target geom.Extent, children []geom.Extent, hint geom.Extent) (geom.Extent, []geom.Region, error) {
	regions := make([]geom.Region, len(children))
	actual := geom.ExtentZero
	for i, child := range children {
		ext := child.Coalesce(target).Clamp(target)
		regions[i] = geom.R(geom.PosZero, ext)
		actual = actual.Union(ext)
	}
	return actual, regions, nil
}
