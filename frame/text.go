package frame

import (
	"fmt"

	"github.com/ByLCY/kanjipress/geom"
	"github.com/ByLCY/kanjipress/surface"
)

// FlowText 是流式文本帧：内容先由排版器断行，然后按页逐段绘制。
// 一页装不下的行保留到下一页，通过 have_more_data 驱动分页循环。
type FlowText struct {
	b       base
	ts      surface.Typesetter
	style   surface.TextStyle
	content string
	// repeat 模式不消耗内容，每页重画同一段文本（页眉、水印）。
	repeat bool

	typeset   bool
	wrapWidth geom.Distance
	lines     []surface.Line
	tsErr     error

	next      int // 下一条未消耗的行
	pageCount int // DoLayout 选定的本页行数
}

var _ Frame = (*FlowText)(nil)

// NewFlowText 构造流式文本帧。
func NewFlowText(ts surface.Typesetter, content string, style surface.TextStyle) *FlowText {
	if ts == nil {
		panic("frame: 文本帧缺少排版器")
	}
	return &FlowText{ts: ts, content: content, style: style}
}

// NewRepeatingText 构造每页重复绘制的文本帧，内容永不消耗。
func NewRepeatingText(ts surface.Typesetter, content string, style surface.TextStyle) *FlowText {
	t := NewFlowText(ts, content, style)
	t.repeat = true
	t.b.setFlag(StateReusable)
	return t
}

func (t *FlowText) BeginPage(page int) bool {
	t.b.noteBeginPage(page)
	if t.content == "" {
		return false
	}
	if t.repeat || !t.typeset {
		return true
	}
	return t.next < len(t.lines)
}

// ensureTypeset 在宽度变化时重新断行。内容开始消耗后宽度固定，
// 避免行索引失效。
func (t *FlowText) ensureTypeset(width geom.Distance) {
	if t.typeset && (t.wrapWidth.Eq(width) || t.next > 0) {
		return
	}
	lines, err := t.ts.LayoutLines(t.content, width, t.style)
	if err != nil {
		t.tsErr = fmt.Errorf("frame: 文本排版失败: %w", err)
		t.lines = nil
	} else {
		t.tsErr = nil
		t.lines = lines
	}
	t.typeset = true
	t.wrapWidth = width
}

// fit 从 from 行起选出能装进 maxH 的行，返回行数与累计高度。
// 只要还有内容就至少选一行，保证分页永远向前推进。
func (t *FlowText) fit(from int, maxH geom.Distance) (int, geom.Distance) {
	count := 0
	height := geom.Zero
	for i := from; i < len(t.lines); i++ {
		lineH := t.lines[i].Height
		if count > 0 {
			lineH = lineH.Add(t.lines[i].GapBefore)
		}
		if count > 0 && maxH.Less(height.Add(lineH)) {
			break
		}
		height = height.Add(lineH)
		count++
	}
	return count, height
}

// Measure 返回剩余内容在给定范围内的占用。排版失败时申报零尺寸，
// 让兄弟内容照常排版。
func (t *FlowText) Measure(avail geom.Extent) geom.Extent {
	t.b.noteMeasured()
	t.ensureTypeset(avail.W)
	if t.tsErr != nil {
		return geom.ExtentZero
	}
	count, height := t.fit(t.next, avail.H)
	width := geom.Zero
	for i := t.next; i < t.next+count; i++ {
		width = geom.Max(width, t.lines[i].Width)
	}
	return geom.E(width, height)
}

func (t *FlowText) DoLayout(target geom.Extent) (geom.Region, error) {
	t.b.requireLayoutReady("FlowText")
	t.ensureTypeset(target.W)
	count, height := t.fit(t.next, target.H)
	t.pageCount = count
	t.b.noteLaidOut()
	return geom.R(geom.PosZero, geom.E(target.W, height)), nil
}

func (t *FlowText) Draw(s surface.Surface, region geom.Region) error {
	t.b.requireDrawReady("FlowText")
	t.b.noteDrawing()
	if t.tsErr != nil {
		t.b.noteDrawn(false)
		return t.tsErr
	}

	chunk := t.lines[t.next : t.next+t.pageCount]
	if len(chunk) > 0 {
		lines := make([]surface.Line, len(chunk))
		copy(lines, chunk)
		lines[0].GapBefore = geom.Zero
		err := s.DrawText(region.Origin, &surface.TextBlock{Style: t.style, Lines: lines})
		if err != nil {
			t.b.noteDrawn(false)
			return err
		}
	}

	if !t.repeat {
		t.next += t.pageCount
	}
	t.b.noteDrawn(!t.repeat && t.next < len(t.lines))
	return nil
}

func (t *FlowText) State() State { return t.b.st }
