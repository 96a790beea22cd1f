package kanjidata

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tdewolff/canvas"

	"github.com/ByLCY/kanjipress/geom"
	"github.com/ByLCY/kanjipress/surface"
)

// KanjiVG 的笔画宽度（用户单位）。
const strokeWidth = 3.0

// StrokeSet 是一个字的全部笔画，按书写顺序排列。
type StrokeSet struct {
	paths  []*canvas.Path
	bounds geom.Extent
}

// KanjiVG 的 SVG 映射。笔画在 StrokePaths 组里按文档序出现，
// StrokeNumbers 组只有标号文本，跳过。
type svgFile struct {
	XMLName xml.Name   `xml:"svg"`
	ViewBox string     `xml:"viewBox,attr"`
	Groups  []svgGroup `xml:"g"`
}

type svgGroup struct {
	ID     string     `xml:"id,attr"`
	Groups []svgGroup `xml:"g"`
	Paths  []svgPath  `xml:"path"`
}

type svgPath struct {
	D string `xml:"d,attr"`
}

// LoadStrokes 解析一份 KanjiVG SVG。
func LoadStrokes(r io.Reader) (*StrokeSet, error) {
	var doc svgFile
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("kanjidata: 解析笔顺图失败: %w", err)
	}
	w, h, err := parseViewBox(doc.ViewBox)
	if err != nil {
		return nil, err
	}

	var paths []*canvas.Path
	for _, g := range doc.Groups {
		if strings.Contains(g.ID, "StrokeNumbers") {
			continue
		}
		if err := collectPaths(g, &paths); err != nil {
			return nil, err
		}
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("kanjidata: 笔顺图里没有笔画")
	}
	// bounds 的数值直接沿用 SVG 用户单位，绘制时整体缩放，
	// 所以单位本身不参与换算，只要和路径坐标同尺度即可。
	return &StrokeSet{
		paths:  paths,
		bounds: geom.E(geom.Mm(w), geom.Mm(h)),
	}, nil
}

func collectPaths(g svgGroup, out *[]*canvas.Path) error {
	for _, p := range g.Paths {
		path, err := canvas.ParseSVGPath(p.D)
		if err != nil {
			return fmt.Errorf("kanjidata: 非法笔画路径 %q: %w", p.D, err)
		}
		*out = append(*out, path)
	}
	for _, sub := range g.Groups {
		if err := collectPaths(sub, out); err != nil {
			return err
		}
	}
	return nil
}

func parseViewBox(s string) (w, h float64, err error) {
	fields := strings.Fields(s)
	if len(fields) != 4 {
		return 0, 0, fmt.Errorf("kanjidata: 非法 viewBox %q", s)
	}
	w, errW := strconv.ParseFloat(fields[2], 64)
	h, errH := strconv.ParseFloat(fields[3], 64)
	if errW != nil || errH != nil || w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("kanjidata: 非法 viewBox %q", s)
	}
	return w, h, nil
}

// Count 返回笔画数。
func (s *StrokeSet) Count() int { return len(s.paths) }

// Full 返回整字的笔顺图，所有笔画黑色。
func (s *StrokeSet) Full() *surface.Drawing {
	return s.upTo(len(s.paths), surface.Black)
}

// Template 返回整字的浅灰描红模板，垫在练习格下面。
func (s *StrokeSet) Template() *surface.Drawing {
	return s.upTo(len(s.paths), surface.Light)
}

// Step 返回写到第 n 笔（从 1 数）的进度图：已写的笔画灰色、
// 第 n 笔黑色，后面的笔画不画。用于一格一笔的笔顺分解条。
func (s *StrokeSet) Step(n int) *surface.Drawing {
	if n < 1 || n > len(s.paths) {
		return &surface.Drawing{Bounds: s.bounds}
	}
	d := s.upTo(n, surface.Gray)
	d.Strokes[n-1].Color = surface.Black
	return d
}

func (s *StrokeSet) upTo(n int, col surface.Color) *surface.Drawing {
	strokes := make([]surface.Stroke, 0, n)
	for _, p := range s.paths[:n] {
		strokes = append(strokes, surface.Stroke{Path: p, Width: strokeWidth, Color: col})
	}
	return &surface.Drawing{Strokes: strokes, Bounds: s.bounds}
}
