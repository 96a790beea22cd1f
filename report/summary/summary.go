// Package summary 实现汉字摘要报表：每个字一段释义条目，长列表
// 自动流到后续页，每页顶部重复标题栏。
package summary

import (
	"fmt"
	"strings"

	"github.com/ByLCY/kanjipress/frame"
	"github.com/ByLCY/kanjipress/geom"
	"github.com/ByLCY/kanjipress/kanjidata"
	"github.com/ByLCY/kanjipress/pagespec"
	"github.com/ByLCY/kanjipress/report"
	"github.com/ByLCY/kanjipress/surface"
)

func init() {
	report.Register("summary", New)
}

var (
	headerStyle = surface.TextStyle{Font: "main", Size: geom.Pt(14), LineHeight: geom.Pt(18), Color: surface.Black}
	bodyStyle   = surface.TextStyle{Font: "main", Size: geom.Pt(10.5), LineHeight: geom.Pt(15), Color: surface.Black}
)

type summaryReport struct {
	dict  *kanjidata.Dictionary
	kanji []rune
	data  map[string]any
}

// New 是 summary 报表的工厂。
func New(opts report.Options) (report.Report, error) {
	if opts.Dict == nil {
		return nil, fmt.Errorf("summary: 缺少字典")
	}
	if len(opts.Kanji) == 0 {
		return nil, fmt.Errorf("summary: 没有要汇总的字")
	}
	return &summaryReport{dict: opts.Dict, kanji: opts.Kanji, data: opts.Data}, nil
}

func (r *summaryReport) Title() string { return "Kanji summary" }

func (r *summaryReport) BuildRoot(setup *pagespec.Setup, ts surface.Typesetter) (frame.Frame, error) {
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
	page.Append("", frame.VGap(geom.Pt(4)))
	page.Append("", frame.NewRule(frame.Horizontal, geom.Pt(0.8), surface.Gray))
	page.Append("", frame.VGap(geom.Pt(10)))
	page.Append("body", frame.NewFlowText(ts, r.bodyText(), bodyStyle))
	return page, nil
}

// bodyText 把字典条目拼成正文。字典里查不到的字保留占位行，
// 让缺数据在成品里一眼可见。
func (r *summaryReport) bodyText() string {
	var b strings.Builder
	for _, k := range r.kanji {
		literal := string(k)
		entry, ok := r.dict.Lookup(literal)
		if !ok {
			fmt.Fprintf(&b, "%s    (no dictionary entry)\n\n", literal)
			continue
		}
		fmt.Fprintf(&b, "%s    %d strokes", literal, entry.StrokeCount)
		if entry.Grade > 0 {
			fmt.Fprintf(&b, ", grade %d", entry.Grade)
		}
		if entry.JLPT > 0 {
			fmt.Fprintf(&b, ", JLPT N%d", entry.JLPT)
		}
		b.WriteString("\n")
		if len(entry.OnReadings) > 0 {
			fmt.Fprintf(&b, "on: %s\n", strings.Join(entry.OnReadings, "、"))
		}
		if len(entry.KunReadings) > 0 {
			fmt.Fprintf(&b, "kun: %s\n", strings.Join(entry.KunReadings, "、"))
		}
		if len(entry.Meanings) > 0 {
			fmt.Fprintf(&b, "%s\n", strings.Join(entry.Meanings, "; "))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
