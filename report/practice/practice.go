// Package practice 实现练字纸报表：一个字一页，上半是逐笔分解条，
// 下半是描红模板加空白练习格。
package practice

import (
	"fmt"

	"github.com/ByLCY/kanjipress/frame"
	"github.com/ByLCY/kanjipress/geom"
	"github.com/ByLCY/kanjipress/kanjidata"
	"github.com/ByLCY/kanjipress/pagespec"
	"github.com/ByLCY/kanjipress/report"
	"github.com/ByLCY/kanjipress/surface"
)

func init() {
	report.Register("practice", New)
}

const (
	// 分解条一行最多放几笔，笔画多的字折成多行
	stepsPerRow = 10
	gridRows    = 4
	gridCols    = 8
)

var (
	headerStyle  = surface.TextStyle{Font: "main", Size: geom.Pt(12), LineHeight: geom.Pt(16), Color: surface.Gray}
	captionStyle = surface.TextStyle{Font: "main", Size: geom.Pt(16), LineHeight: geom.Pt(22), Color: surface.Black}

	stepSize = geom.E(geom.Mm(13), geom.Mm(13))
	cellSize = geom.E(geom.Mm(17), geom.Mm(17))
	cellGap  = geom.Mm(2)
)

type practiceReport struct {
	dict    *kanjidata.Dictionary
	strokes *kanjidata.Cache
	kanji   []rune
	data    map[string]any
}

// New 是 practice 报表的工厂。
func New(opts report.Options) (report.Report, error) {
	if opts.Strokes == nil {
		return nil, fmt.Errorf("practice: 缺少笔顺缓存")
	}
	if len(opts.Kanji) == 0 {
		return nil, fmt.Errorf("practice: 没有要练的字")
	}
	return &practiceReport{dict: opts.Dict, strokes: opts.Strokes, kanji: opts.Kanji, data: opts.Data}, nil
}

func (r *practiceReport) Title() string { return "Kanji practice sheets" }

func (r *practiceReport) BuildRoot(setup *pagespec.Setup, ts surface.Typesetter) (frame.Frame, error) {
	page, err := frame.NewPage(setup.Page, frame.NewStack(frame.Vertical))
	if err != nil {
		return nil, err
	}
	page.SetOverflowPolicy(setup.Overflow)

	title := setup.Title
	if title == "" {
		title = r.Title()
	}
	page.Append("header", frame.NewRepeatingText(ts, report.Expand(title, r.data), headerStyle))
	page.Append("", frame.VGap(geom.Pt(6)))

	sheets := frame.NewSequence()
	for _, k := range r.kanji {
		sheets.Append(r.sheet(k, ts))
	}
	page.Append("sheets", sheets)
	return page, nil
}

// sheet 组装一个字的练习页内容。笔顺图缺失时照样出纸，只是没有
// 分解条和描红模板。
func (r *practiceReport) sheet(k rune, ts surface.Typesetter) frame.Frame {
	c := frame.NewContainer(frame.NewStack(frame.Vertical))
	c.Append("caption", frame.NewFlowText(ts, r.caption(k), captionStyle))
	c.Append("", frame.VGap(geom.Mm(4)))

	set, err := r.strokes.Strokes(k)
	if err != nil {
		c.Append("", frame.NewFlowText(ts, "(stroke diagram unavailable)", headerStyle))
		c.Append("", frame.VGap(geom.Mm(4)))
		c.Append("grid", r.grid(nil))
		return c
	}

	for row := 0; row*stepsPerRow < set.Count(); row++ {
		strip := frame.NewContainer(frame.NewStack(frame.Horizontal))
		for i := row*stepsPerRow + 1; i <= set.Count() && i <= (row+1)*stepsPerRow; i++ {
			strip.Append("", frame.NewVectorFrame(set.Step(i), stepSize, geom.AnchorCenter))
			strip.Append("", frame.HGap(geom.Mm(1.5)))
		}
		c.Append("", strip)
		c.Append("", frame.VGap(geom.Mm(2)))
	}
	c.Append("", frame.VGap(geom.Mm(4)))
	c.Append("", frame.NewRule(frame.Horizontal, geom.Pt(0.6), surface.Light))
	c.Append("", frame.VGap(geom.Mm(4)))
	c.Append("grid", r.grid(set))
	return c
}

// caption 给出字面与读音。没有字典时只有字面。
func (r *practiceReport) caption(k rune) string {
	literal := string(k)
	if r.dict == nil {
		return literal
	}
	entry, ok := r.dict.Lookup(literal)
	if !ok {
		return literal
	}
	line := literal
	for _, reading := range entry.OnReadings {
		line += "  " + reading
	}
	for _, reading := range entry.KunReadings {
		line += "  " + reading
	}
	return line
}

// grid 生成练习格。每行第一个格子垫浅灰描红模板。
func (r *practiceReport) grid(set *kanjidata.StrokeSet) frame.Frame {
	rows := frame.NewContainer(frame.NewStack(frame.Vertical))
	for row := 0; row < gridRows; row++ {
		line := frame.NewContainer(frame.NewStack(frame.Horizontal))
		for col := 0; col < gridCols; col++ {
			cell := frame.NewContainer(frame.NewOverlay())
			cell.SetRequested(cellSize)
			cell.Append("", frame.NewBox(cellSize, geom.Pt(0.6), surface.Light, nil))
			if col == 0 && set != nil {
				// 描红模板叠进格子：Overlay 里后加的画在上层
				cell.Append("", frame.NewVectorFrame(set.Template(), cellSize, geom.AnchorCenter))
			}
			line.Append("", cell)
			line.Append("", frame.HGap(cellGap))
		}
		rows.Append("", line)
		rows.Append("", frame.VGap(cellGap))
	}
	return rows
}
