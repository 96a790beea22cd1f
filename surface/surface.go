// Package surface 定义渲染后端必须满足的绘图接口。
//
// 布局引擎只通过 Surface 发出绘图指令：坐标一律采用帧自己的局部坐标系
// （左上角为原点，x 向右、y 向下），由调用方在传入前叠加好区域偏移。
// 翻页通过 ShowPage 提交；引擎不关心输出格式，PDF 实现见子包 pdf。
package surface

import (
	"github.com/tdewolff/canvas"

	"github.com/ByLCY/kanjipress/geom"
)

// Color 采用 0-255 的 RGB 数值。
type Color struct {
	R, G, B uint8
}

// 常用颜色。
var (
	Black = Color{0, 0, 0}
	Gray  = Color{128, 128, 128}
	Light = Color{204, 204, 204}
)

// TextStyle 描述一段文本的字体与排版属性。
type TextStyle struct {
	Font       string        // 字体资源名，由 Surface 实现解析
	Size       geom.Distance // 字号
	LineHeight geom.Distance // 行高；零值时由排版器按字体度量决定
	Color      Color
}

// Line 表示排版后的一行文本及其度量。GapBefore 是与上一行基线间的附加间距。
type Line struct {
	Content   string
	Width     geom.Distance
	Height    geom.Distance
	GapBefore geom.Distance
}

// TextBlock 是一段已经断好行、可以直接绘制的文本。
type TextBlock struct {
	Style TextStyle
	Lines []Line
}

// Height 返回整块文本占用的垂直空间。
func (b *TextBlock) Height() geom.Distance {
	total := geom.Zero
	for _, ln := range b.Lines {
		total = total.Add(ln.GapBefore).Add(ln.Height)
	}
	return total
}

// Stroke 是矢量图形中的一条描边路径，路径坐标使用图形自身的用户单位。
type Stroke struct {
	Path  *canvas.Path
	Width float64 // 描边宽度（用户单位）
	Color Color
}

// Drawing 封装一幅可缩放矢量图形。Bounds 是图形声明的原始画布大小
// （例如 KanjiVG 的 109×109 用户单位视框），绘制时整体缩放到目标区域。
type Drawing struct {
	Strokes []Stroke
	Bounds  geom.Extent
}

// Empty 判断图形是否没有任何内容。
func (d *Drawing) Empty() bool { return d == nil || len(d.Strokes) == 0 }

// Typesetter 负责根据字体与宽度约束将文本拆成可绘制的行。
// 文本帧在测量阶段就需要排版结果，所以它独立于 Surface 注入。
type Typesetter interface {
	LayoutLines(content string, width geom.Distance, style TextStyle) ([]Line, error)
}

// Surface 是接收绘图指令的输出面。
//
// 所有绘制方法的坐标都是调用方局部坐标（左上原点）。ShowPage 提交当前页
// 并翻到下一页；Close 结束整个输出流。
type Surface interface {
	// DrawText 在 origin 处绘制一段已排版文本（origin 为文本块左上角）。
	DrawText(origin geom.Pos, block *TextBlock) error
	// DrawDrawing 将矢量图形等比缩放后绘制到 region 内。
	DrawDrawing(region geom.Region, d *Drawing) error
	// DrawLine 以 width 粗细绘制一条线段。
	DrawLine(from, to geom.Pos, width geom.Distance, col Color) error
	// DrawRect 绘制一个矩形边框，fill 为 nil 时不填充。
	DrawRect(region geom.Region, strokeWidth geom.Distance, stroke Color, fill *Color) error
	// ShowPage 提交当前页并开始下一页。
	ShowPage() error
	// Close 完成输出。Close 不会隐式提交未 ShowPage 的残页。
	Close() error
}
