// Package frame 实现组合式页面布局的核心协议：
// 测量（Measure）、布局（DoLayout）、绘制（Draw）三段式协商，
// 以及跨页分页所需的帧生命周期状态机。
//
// 内容树由 Frame 节点组成：叶子帧包装单一内容（文本、矢量图、线条、
// 空白），Container 按 Strategy 把子帧排进自己的区域，Page 把一棵
// 内容树绑定到固定纸面。分页循环见 report 包。
package frame

import (
	"strings"

	"github.com/ByLCY/kanjipress/geom"
	"github.com/ByLCY/kanjipress/surface"
)

// State 是帧生命周期的组合标志位。
//
// 低 5 位是互斥推进序列（waiting → needs_layout → ready → drawing →
// drawn），高位是可叠加的修饰：have_more_data、reusable、
// all_data_consumed。多个标志可以同时成立，例如一帧可以既 drawn
// 又 have_more_data。
type State uint16

const (
	// StateNew 是构造后的初始状态（无任何标志位）。
	StateNew State = 0
	// StateWaiting 表示帧在等待 BeginPage 提供本页数据。
	StateWaiting State = 1 << 0
	// StateNeedsLayout 表示已测量、等待 DoLayout。
	StateNeedsLayout State = 1 << 1
	// StateReady 表示已布局、可以 Draw。
	StateReady State = 1 << 2
	// StateDrawing 表示正在 Draw 过程中。
	StateDrawing State = 1 << 3
	// StateDrawn 表示本页绘制已完成。
	StateDrawn State = 1 << 4
	// StateHaveMoreData 表示本帧（或后代）还有未排完的内容，需要下一页。
	StateHaveMoreData State = 1 << 5
	// StateReusable 表示内容不依赖新的外部数据，翻页后可以重新测量绘制。
	StateReusable State = 1 << 6
	// StateAllDataConsumed 是终态修饰：本帧不再需要任何新页。
	StateAllDataConsumed State = 1 << 7
)

// progressionMask 覆盖互斥的推进序列位。
const progressionMask = StateWaiting | StateNeedsLayout | StateReady | StateDrawing | StateDrawn

// Has 判断 s 是否包含全部给定标志。
func (s State) Has(flags State) bool { return s&flags == flags }

// Progression 返回推进序列中的当前位置（StateNew 到 StateDrawn 之一）。
func (s State) Progression() State {
	p := s & progressionMask
	// 取最高位：聚合后的推进位以走得最远的为准
	for bit := StateDrawn; bit >= StateWaiting; bit >>= 1 {
		if p&bit != 0 {
			return bit
		}
	}
	return StateNew
}

var stateNames = []struct {
	bit  State
	name string
}{
	{StateWaiting, "waiting"},
	{StateNeedsLayout, "needs_layout"},
	{StateReady, "ready"},
	{StateDrawing, "drawing"},
	{StateDrawn, "drawn"},
	{StateHaveMoreData, "have_more_data"},
	{StateReusable, "reusable"},
	{StateAllDataConsumed, "all_data_consumed"},
}

func (s State) String() string {
	if s == StateNew {
		return "new"
	}
	var parts []string
	for _, entry := range stateNames {
		if s&entry.bit != 0 {
			parts = append(parts, entry.name)
		}
	}
	return strings.Join(parts, "|")
}

// Frame 是内容树中的一个节点。
//
// 每一页的调用顺序必须是 BeginPage → Measure → DoLayout → Draw；
// 乱序调用属于编程错误，实现会直接 panic 而不是静默继续。
type Frame interface {
	// BeginPage 通知帧新的一页开始，返回本帧在这一页上是否有内容。
	// 返回 false 时调用方应把整棵子树当作本页不存在。
	// 同一页号在没有 Draw 介入时重复调用必须幂等。
	BeginPage(page int) bool

	// Measure 在给定的最大可用范围内返回本帧渲染当前内容所需的
	// 最小范围。测量可以被反复试探调用，不得消耗内容。
	Measure(avail geom.Extent) geom.Extent

	// DoLayout 接受实际授予的范围（可能大于测量所需），返回本帧
	// 在自身局部坐标系中的放置区域。超出授予范围的布局通过
	// *OverflowError 报告，区域仍然有效，由调用方决定策略。
	DoLayout(target geom.Extent) (geom.Region, error)

	// Draw 把内容画进输出面上的 region。流式内容（如长文本）在
	// 一次 Draw 中画不完时保留余量，并通过状态标志反映出来。
	Draw(s surface.Surface, region geom.Region) error

	// State 随时可读，返回当前的组合状态标志。
	State() State
}

// Strategy 把一组子帧尺寸映射为聚合尺寸与逐子区域。
//
// 策略是无状态（或仅带方向参数）的纯策略对象，只处理尺寸，从不
// 触碰帧内容，因此可以安全地在多个 Container 间共享。
type Strategy interface {
	// Measure 返回按本策略容纳所有子帧所需的最小包围范围。
	// hint 标出容器自身哪些维度是 fit-to（用 geom.Fit 表示）。
	Measure(children []geom.Extent, hint geom.Extent) geom.Extent

	// Layout 在实际授予的范围内给每个子帧分配区域，区域与输入
	// 顺序一一对应。固定尺寸子帧装不下时返回 *OverflowError，
	// 此时区域仍按溢出位置给出。
	Layout(target geom.Extent, children []geom.Extent, hint geom.Extent) (geom.Extent, []geom.Region, error)
}
