package frame

import (
	"strings"
	"testing"

	"github.com/ByLCY/kanjipress/geom"
	"github.com/ByLCY/kanjipress/surface"
)

// stubTypesetter 把内容按空白切词、一词一行，行高固定 10pt。
// 只用于测试，避免依赖真正的字体度量。
type stubTypesetter struct{}

func (stubTypesetter) LayoutLines(content string, width geom.Distance, style surface.TextStyle) ([]surface.Line, error) {
	words := strings.Fields(content)
	lines := make([]surface.Line, 0, len(words))
	for _, w := range words {
		lines = append(lines, surface.Line{
			Content: w,
			Width:   geom.Pt(float64(len(w)) * 5),
			Height:  geom.Pt(10),
		})
	}
	return lines, nil
}

func newTestText(content string) *FlowText {
	return NewFlowText(stubTypesetter{}, content, surface.TextStyle{Size: geom.Pt(10)})
}

func drawOnePage(t *testing.T, f Frame, page int, avail geom.Extent) *recordingSurface {
	t.Helper()
	if !f.BeginPage(page) {
		t.Fatalf("BeginPage(%d) = false", page)
	}
	f.Measure(avail)
	if _, err := f.DoLayout(avail); err != nil {
		t.Fatalf("DoLayout: %v", err)
	}
	rec := &recordingSurface{}
	if err := f.Draw(rec, geom.R(geom.PosZero, avail)); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	return rec
}

func TestFlowTextConsumesAcrossPages(t *testing.T) {
	// 五行内容、每页只装两行：三页画完
	txt := newTestText("one two three four five")
	avail := geom.E(geom.Pt(100), geom.Pt(20))

	drawOnePage(t, txt, 1, avail)
	if !txt.State().Has(StateHaveMoreData) {
		t.Fatal("after page 1 there must be data left")
	}
	drawOnePage(t, txt, 2, avail)
	if !txt.State().Has(StateHaveMoreData) {
		t.Fatal("after page 2 there must be data left")
	}
	drawOnePage(t, txt, 3, avail)
	st := txt.State()
	if st.Has(StateHaveMoreData) {
		t.Fatal("after page 3 all content should be consumed")
	}
	if !st.Has(StateAllDataConsumed) {
		t.Fatal("all_data_consumed not set at exhaustion")
	}
	if txt.BeginPage(4) {
		t.Fatal("BeginPage after exhaustion must report no content")
	}
}

func TestFlowTextBeginPageMatchesHaveMoreData(t *testing.T) {
	// begin_page 的返回值与 have_more_data 标志不得互相矛盾
	txt := newTestText("a b c d")
	avail := geom.E(geom.Pt(100), geom.Pt(20))
	for page := 1; page <= 5; page++ {
		has := txt.BeginPage(page)
		if !has {
			break
		}
		txt.Measure(avail)
		if _, err := txt.DoLayout(avail); err != nil {
			t.Fatalf("DoLayout: %v", err)
		}
		if err := txt.Draw(&recordingSurface{}, geom.R(geom.PosZero, avail)); err != nil {
			t.Fatalf("Draw: %v", err)
		}
		more := txt.State().Has(StateHaveMoreData)
		if more != txt.BeginPage(page+1) {
			t.Fatalf("page %d: have_more_data=%v disagrees with next begin_page", page, more)
		}
	}
}

func TestFlowTextMeasureDoesNotConsume(t *testing.T) {
	txt := newTestText("one two three")
	txt.BeginPage(1)
	avail := geom.E(geom.Pt(100), geom.Pt(10))
	first := txt.Measure(avail)
	second := txt.Measure(avail)
	if !first.H.Eq(second.H) || !first.W.Eq(second.W) {
		t.Fatalf("speculative measure consumed content: %v then %v", first, second)
	}
	if !first.H.Eq(geom.Pt(10)) {
		t.Fatalf("one-line measure height = %s", first.H)
	}
}

func TestRepeatingTextNeverConsumes(t *testing.T) {
	txt := NewRepeatingText(stubTypesetter{}, "header", surface.TextStyle{Size: geom.Pt(10)})
	avail := geom.E(geom.Pt(100), geom.Pt(20))
	for page := 1; page <= 3; page++ {
		rec := drawOnePage(t, txt, page, avail)
		if len(rec.texts) != 1 {
			t.Fatalf("page %d: drew %d text blocks", page, len(rec.texts))
		}
		if txt.State().Has(StateHaveMoreData) {
			t.Fatal("repeating text must never demand another page")
		}
	}
	if !txt.State().Has(StateReusable) {
		t.Fatal("repeating text should be reusable")
	}
}

func TestFlowTextEmptyContent(t *testing.T) {
	txt := newTestText("")
	if txt.BeginPage(1) {
		t.Fatal("empty text must contribute nothing")
	}
}
