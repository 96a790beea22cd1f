package frame

import (
	"errors"
	"fmt"

	"github.com/ByLCY/kanjipress/geom"
	"github.com/ByLCY/kanjipress/surface"
)

// Container 持有一组有序命名子帧与一个布局策略，通过递归委托实现
// Frame 协议。子帧由容器独占：同一子帧绝不挂在两个容器下。
//
// 子帧顺序有双重意义：既决定堆叠位置，也决定绘制顺序（内容重叠时
// 后画的在上层）。
type Container struct {
	b        base
	strategy Strategy
	policy   OverflowPolicy

	names    []string
	children []Frame
	// requested 是容器对外申报的期望尺寸，fit 维度交给父级协商。
	requested geom.Extent

	active   []bool        // 本页 BeginPage 返回 true 的子帧
	measured []geom.Extent // 每个子帧最近一次测量结果
	regions  []geom.Region // 布局分配给每个子帧的区域（容器局部坐标）
}

var _ Frame = (*Container)(nil)

// NewContainer 用给定策略构造空容器，期望尺寸默认双向 fit。
func NewContainer(strategy Strategy) *Container {
	if strategy == nil {
		panic("frame: 容器缺少布局策略")
	}
	return &Container{strategy: strategy, requested: geom.ExtentFit}
}

// SetRequested 设置容器对外申报的期望尺寸。
func (c *Container) SetRequested(e geom.Extent) { c.requested = e }

// SetOverflowPolicy 设置布局溢出的处理策略。
func (c *Container) SetOverflowPolicy(p OverflowPolicy) { c.policy = p }

// Append 追加一个命名子帧。名字用于报表代码回查特定子帧，允许为空。
func (c *Container) Append(name string, f Frame) {
	if f == nil {
		panic("frame: 追加了 nil 子帧")
	}
	c.names = append(c.names, name)
	c.children = append(c.children, f)
	c.active = append(c.active, false)
	c.measured = append(c.measured, geom.ExtentZero)
	c.regions = append(c.regions, geom.Region{})
}

// Child 按名字查找子帧，找不到返回 nil。
func (c *Container) Child(name string) Frame {
	for i, n := range c.names {
		if n == name && name != "" {
			return c.children[i]
		}
	}
	return nil
}

// Len 返回子帧数量。
func (c *Container) Len() int { return len(c.children) }

// BeginPage 无条件递归进所有子帧，对结果取并：任何一个子帧有内容，
// 容器在本页就有内容。不短路，保证每个子帧都能看到新页号。
func (c *Container) BeginPage(page int) bool {
	c.b.noteBeginPage(page)
	has := false
	for i, child := range c.children {
		c.active[i] = child.BeginPage(page)
		if c.active[i] {
			has = true
		}
	}
	return has
}

// Measure 实现两遍测量。
//
// 第一遍把完整可用范围给每个子帧，固定尺寸的子帧报告自己的最小值。
// 第二遍针对 fit-to 子帧：扣掉固定部分后把剩余空间均分，让它们在
// 更窄的范围里重新测量。测量不消耗内容，可以反复调用。
func (c *Container) Measure(avail geom.Extent) geom.Extent {
	for i, child := range c.children {
		if !c.active[i] {
			c.measured[i] = geom.ExtentZero
			continue
		}
		c.measured[i] = child.Measure(avail)
	}

	min := c.strategy.Measure(c.measured, c.requested)
	remaining := avail.SubClamped(floorOf(min))

	stretchW, stretchH := 0, 0
	for i := range c.children {
		w, h := c.measured[i].Stretchy()
		if w {
			stretchW++
		}
		if h {
			stretchH++
		}
	}
	shareW, shareH := geom.Zero, geom.Zero
	if stretchW > 0 && !remaining.W.IsInf() {
		shareW = geom.D(remaining.W.V, remaining.W.Unit).Div(float64(stretchW))
	}
	if stretchH > 0 && !remaining.H.IsInf() {
		shareH = geom.D(remaining.H.V, remaining.H.Unit).Div(float64(stretchH))
	}

	for i, child := range c.children {
		if !c.active[i] {
			continue
		}
		w, h := c.measured[i].Stretchy()
		if !w && !h {
			continue
		}
		narrowed := avail
		if w {
			narrowed.W = geom.D(c.measured[i].W.V, c.measured[i].W.Unit).Add(shareW)
		}
		if h {
			narrowed.H = geom.D(c.measured[i].H.V, c.measured[i].H.Unit).Add(shareH)
		}
		c.measured[i] = child.Measure(narrowed)
	}

	c.b.noteMeasured()
	return c.strategy.Measure(c.measured, c.requested)
}

// floorOf 把符号化维度压到确定下界，供剩余空间计算使用。
func floorOf(e geom.Extent) geom.Extent {
	floor := func(d geom.Distance) geom.Distance {
		if d.IsFit() || d.IsInf() {
			return geom.Zero
		}
		return geom.D(d.V, d.Unit)
	}
	return geom.E(floor(e.W), floor(e.H))
}

// DoLayout 调用策略分配子帧区域，再与子帧逐一对应调用它们的
// DoLayout。子帧只知道自己的局部区域，绝不知道页面绝对位置。
func (c *Container) DoLayout(target geom.Extent) (geom.Region, error) {
	c.b.requireLayoutReady("Container")

	actual, regions, layoutErr := c.strategy.Layout(target, c.measured, c.requested)
	if len(regions) != len(c.children) {
		panic(fmt.Sprintf("frame: 策略返回 %d 个区域，子帧有 %d 个", len(regions), len(c.children)))
	}

	var overflow *OverflowError
	if layoutErr != nil {
		if !errors.As(layoutErr, &overflow) {
			return geom.Region{}, layoutErr
		}
		switch c.policy {
		case OverflowFail:
			return geom.R(geom.PosZero, actual), fmt.Errorf("frame: 容器布局失败: %w", overflow)
		case OverflowClip:
			// 裁剪要从各自原点算起，起点越靠后能留下的越少
			for i := range regions {
				remaining := target.SubClamped(geom.E(regions[i].Origin.X, regions[i].Origin.Y))
				regions[i].Extent = regions[i].Extent.Clamp(remaining)
			}
			overflow = nil
		}
	}

	var errs []error
	for i, child := range c.children {
		if !c.active[i] || regions[i].Extent.IsZero() {
			c.regions[i] = regions[i]
			continue
		}
		if _, err := child.DoLayout(regions[i].Extent); err != nil {
			errs = append(errs, err)
		}
		c.regions[i] = regions[i]
	}
	c.b.noteLaidOut()

	if overflow != nil {
		errs = append([]error{overflow}, errs...)
	}
	return geom.R(geom.PosZero, actual), errors.Join(errs...)
}

// Draw 把自身区域原点叠加到每个子帧的局部区域上再逐个绘制。
// 单个子帧绘制失败不中断兄弟帧：页面上其余内容照常渲染，错误
// 汇总后一起返回。
func (c *Container) Draw(s surface.Surface, region geom.Region) error {
	c.b.requireDrawReady("Container")
	c.b.noteDrawing()

	var errs []error
	for i, child := range c.children {
		if !c.active[i] || c.regions[i].Extent.IsZero() {
			continue
		}
		if err := child.Draw(s, c.regions[i].Offset(region.Origin)); err != nil {
			errs = append(errs, err)
		}
	}

	haveMore := false
	for i, child := range c.children {
		if c.active[i] && child.State().Has(StateHaveMoreData) {
			haveMore = true
		}
	}
	c.b.noteDrawn(haveMore)
	return errors.Join(errs...)
}

// State 聚合自身与子帧状态：数据余量对子帧取或，可复用性要求全体
// 子帧都可复用，只要有子帧还有数据就不算消耗完毕。
func (c *Container) State() State {
	st := c.b.st
	reusable := len(c.children) > 0
	for _, child := range c.children {
		cs := child.State()
		if cs.Has(StateHaveMoreData) {
			st |= StateHaveMoreData
			st &^= StateAllDataConsumed
		}
		if !cs.Has(StateReusable) {
			reusable = false
		}
	}
	if reusable {
		st |= StateReusable
	}
	return st
}
