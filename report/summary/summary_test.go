package summary

import (
	"strings"
	"testing"

	"github.com/ByLCY/kanjipress/frame"
	"github.com/ByLCY/kanjipress/geom"
	"github.com/ByLCY/kanjipress/kanjidata"
	"github.com/ByLCY/kanjipress/pagespec"
	"github.com/ByLCY/kanjipress/report"
	"github.com/ByLCY/kanjipress/surface"
)

const dictFixture = `<kanjidic2>
<character>
<literal>亜</literal>
<misc><grade>8</grade><stroke_count>7</stroke_count><jlpt>1</jlpt></misc>
<reading_meaning><rmgroup>
<reading r_type="ja_on">ア</reading>
<reading r_type="ja_kun">つ.ぐ</reading>
<meaning>Asia</meaning><meaning>rank next</meaning>
</rmgroup></reading_meaning>
</character>
</kanjidic2>`

// wordTypesetter 一词一行，行高 12pt。
type wordTypesetter struct{}

func (wordTypesetter) LayoutLines(content string, width geom.Distance, style surface.TextStyle) ([]surface.Line, error) {
	var lines []surface.Line
	for _, w := range strings.Fields(content) {
		lines = append(lines, surface.Line{Content: w, Width: geom.Pt(50), Height: geom.Pt(12)})
	}
	return lines, nil
}

// textSurface 收集画出的文本内容。
type textSurface struct {
	pages int
	text  strings.Builder
}

func (s *textSurface) DrawText(_ geom.Pos, block *surface.TextBlock) error {
	for _, ln := range block.Lines {
		s.text.WriteString(ln.Content)
		s.text.WriteString(" ")
	}
	return nil
}
func (s *textSurface) DrawDrawing(geom.Region, *surface.Drawing) error { return nil }
func (s *textSurface) DrawLine(_, _ geom.Pos, _ geom.Distance, _ surface.Color) error {
	return nil
}
func (s *textSurface) DrawRect(geom.Region, geom.Distance, surface.Color, *surface.Color) error {
	return nil
}
func (s *textSurface) ShowPage() error { s.pages++; return nil }
func (s *textSurface) Close() error    { return nil }

func loadDict(t *testing.T) *kanjidata.Dictionary {
	t.Helper()
	d, err := kanjidata.LoadDictionary(strings.NewReader(dictFixture))
	if err != nil {
		t.Fatalf("LoadDictionary: %v", err)
	}
	return d
}

func testSetup(t *testing.T) *pagespec.Setup {
	t.Helper()
	setup, err := pagespec.ParseString("test", "page a4 {\nmargins: 15mm\n}\n")
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	return setup
}

func TestNewValidation(t *testing.T) {
	if _, err := New(report.Options{Kanji: []rune{'亜'}}); err == nil {
		t.Error("missing dictionary accepted")
	}
	if _, err := New(report.Options{Dict: loadDict(t)}); err == nil {
		t.Error("empty kanji list accepted")
	}
}

func TestBodyTextFormat(t *testing.T) {
	rep, err := New(report.Options{Dict: loadDict(t), Kanji: []rune{'亜', '無'}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	body := rep.(*summaryReport).bodyText()
	for _, want := range []string{"亜", "7 strokes", "grade 8", "JLPT N1", "on: ア", "kun: つ.ぐ", "Asia; rank next"} {
		if !strings.Contains(body, want) {
			t.Errorf("body lacks %q:\n%s", want, body)
		}
	}
	// 查不到的字保留占位行
	if !strings.Contains(body, "無    (no dictionary entry)") {
		t.Errorf("missing-entry placeholder absent:\n%s", body)
	}
}

func TestBuildAndPaginate(t *testing.T) {
	rep, err := New(report.Options{Dict: loadDict(t), Kanji: []rune{'亜'}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	root, err := rep.BuildRoot(testSetup(t), wordTypesetter{})
	if err != nil {
		t.Fatalf("BuildRoot: %v", err)
	}
	page, ok := root.(*frame.Page)
	if !ok {
		t.Fatalf("root is %T, want *frame.Page", root)
	}
	if page.Child("header") == nil || page.Child("body") == nil {
		t.Fatal("header/body children missing")
	}

	surf := &textSurface{}
	pages, err := report.Paginate(root, surf)
	if err != nil {
		t.Fatalf("Paginate: %v", err)
	}
	if pages != 1 || surf.pages != 1 {
		t.Fatalf("pages = %d / %d, want 1", pages, surf.pages)
	}
	out := surf.text.String()
	for _, want := range []string{"Kanji", "summary", "亜", "Asia"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered text lacks %q: %s", want, out)
		}
	}
}
