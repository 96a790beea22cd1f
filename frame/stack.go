package frame

import (
	"fmt"

	"github.com/ByLCY/kanjipress/geom"
)

// Axis 指定堆叠方向。
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

func (a Axis) String() string {
	if a == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// OverflowError 报告固定尺寸子帧沿堆叠轴超出了授予范围。
// 布局结果仍然有效（内容按溢出位置排列），由容器的溢出策略决定
// 是继续、裁剪还是失败。
type OverflowError struct {
	Axis      Axis
	Needed    geom.Distance
	Available geom.Distance
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("frame: %s 方向溢出：需要 %s，可用 %s", e.Axis, e.Needed, e.Available)
}

// OverflowPolicy 决定容器如何对待布局溢出。
type OverflowPolicy int

const (
	// OverflowReport 记录溢出但照常继续（默认，内容在视觉上超出边界）。
	OverflowReport OverflowPolicy = iota
	// OverflowClip 把子帧区域裁剪到授予范围内。
	OverflowClip
	// OverflowFail 把溢出当作布局失败向上传播。
	OverflowFail
)

// Stack 沿单一轴线性排列子帧。无状态，可在容器间共享。
//
// 固定尺寸子帧按声明大小排列；fit-to（"*"）子帧平分扣除固定部分后的
// 剩余空间。交叉轴上子帧统一拿到所有子帧交叉轴的最大值（不超过目标），
// fit-to 子帧拿到容器的整个交叉轴，让锚点内容能在整行/整列里对齐。
// 子帧之间没有隐式间距，留白由显式的空白帧负责。
type Stack struct {
	axis Axis
}

// NewStack 构造指定方向的堆叠策略。
func NewStack(a Axis) Stack { return Stack{axis: a} }

var _ Strategy = Stack{}

// along 取 extent 在堆叠轴上的分量。
func (s Stack) along(e geom.Extent) geom.Distance {
	if s.axis == Horizontal {
		return e.W
	}
	return e.H
}

func (s Stack) cross(e geom.Extent) geom.Distance {
	if s.axis == Horizontal {
		return e.H
	}
	return e.W
}

func (s Stack) extent(along, cross geom.Distance) geom.Extent {
	if s.axis == Horizontal {
		return geom.E(along, cross)
	}
	return geom.E(cross, along)
}

func (s Stack) pos(along, cross geom.Distance) geom.Pos {
	if s.axis == Horizontal {
		return geom.Pos{X: along, Y: cross}
	}
	return geom.Pos{X: cross, Y: along}
}

// Measure 实现 Strategy：堆叠轴取各子帧之和，交叉轴取最大值。
// fit-to 分量不占最小尺寸，但会把结果标记为可伸长的下界。
func (s Stack) Measure(children []geom.Extent, hint geom.Extent) geom.Extent {
	sum := geom.Zero
	crossMax := geom.Zero
	crossStretchy := false
	for _, child := range children {
		if child.IsZero() {
			continue
		}
		sum = sum.Add(s.along(child))
		c := s.cross(child)
		if c.Stretchy() {
			crossStretchy = true
		}
		if !c.IsFit() && !c.IsInf() {
			crossMax = geom.Max(crossMax, geom.D(c.V, c.Unit))
		}
	}
	cross := crossMax
	if crossStretchy {
		cross = cross.Add(geom.Fit)
	}
	return s.extent(sum, cross)
}

// Layout 实现 Strategy。
func (s Stack) Layout(target geom.Extent, children []geom.Extent, hint geom.Extent) (geom.Extent, []geom.Region, error) {
	targetAlong := s.along(target)
	targetCross := s.cross(target)

	// 第一遍：统计固定部分、fit-to 子帧数量与交叉轴最大值。
	// fit-to 子帧的下界（"5in*" 的 5in）计入固定部分，多余空间在
	// 下界之上平分。
	fixed := geom.Zero
	crossMax := geom.Zero
	stretchCount := 0
	for _, child := range children {
		if child.IsZero() {
			continue
		}
		a := s.along(child)
		fixed = fixed.Add(geom.D(a.V, a.Unit))
		if a.Stretchy() {
			stretchCount++
		}
		c := s.cross(child)
		if !c.IsFit() && !c.IsInf() {
			crossMax = geom.Max(crossMax, geom.D(c.V, c.Unit))
		}
	}

	var overflow *OverflowError
	share := geom.Zero
	if !targetAlong.IsFit() && !targetAlong.IsInf() {
		excess := targetAlong.Sub(fixed)
		if excess.Less(geom.Zero) {
			overflow = &OverflowError{Axis: s.axis, Needed: fixed, Available: targetAlong}
		} else if stretchCount > 0 {
			share = excess.Div(float64(stretchCount))
		}
	}

	// 固定子帧在交叉轴上拿所有子帧的最大值而不是自身尺寸，
	// 窄子帧才有空间按锚点在整行/整列里对齐；目标确定时不超过目标。
	givenCross := crossMax
	if !targetCross.IsFit() && !targetCross.IsInf() {
		givenCross = geom.Min(crossMax, targetCross)
	}

	regions := make([]geom.Region, len(children))
	cursor := geom.Zero
	for i, child := range children {
		if child.IsZero() {
			// 零尺寸子帧不占位，也不推进游标
			regions[i] = geom.R(s.pos(cursor, geom.Zero), geom.ExtentZero)
			continue
		}
		a := s.along(child)
		var alongGiven geom.Distance
		switch {
		case a.IsFit():
			alongGiven = share
		case a.AtLeast:
			alongGiven = geom.D(a.V, a.Unit).Add(share)
		default:
			alongGiven = geom.D(a.V, a.Unit)
		}
		c := s.cross(child)
		crossGiven := givenCross
		if c.Stretchy() && !targetCross.IsFit() && !targetCross.IsInf() {
			crossGiven = targetCross
		}
		regions[i] = geom.R(s.pos(cursor, geom.Zero), s.extent(alongGiven, crossGiven))
		cursor = cursor.Add(alongGiven)
	}

	actualCross := targetCross
	if actualCross.Stretchy() || actualCross.IsInf() {
		actualCross = s.cross(s.Measure(children, hint))
	}
	actual := s.extent(cursor, actualCross)

	if overflow != nil {
		return actual, regions, overflow
	}
	return actual, regions, nil
}
