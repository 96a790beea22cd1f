package frame

import (
	"testing"

	"github.com/ByLCY/kanjipress/geom"
)

func TestPaperSize(t *testing.T) {
	cases := []struct {
		paper       string
		orientation Orientation
		want        geom.Extent
	}{
		{"letter", Portrait, geom.E(geom.In(8.5), geom.In(11))},
		{"letter", Landscape, geom.E(geom.In(11), geom.In(8.5))},
		{"a4", Portrait, geom.E(geom.Mm(210), geom.Mm(297))},
		{"B5", Portrait, geom.E(geom.Mm(176), geom.Mm(250))},
	}
	for _, tc := range cases {
		got, err := PaperSize(tc.paper, tc.orientation)
		if err != nil {
			t.Errorf("PaperSize(%q, %v): %v", tc.paper, tc.orientation, err)
			continue
		}
		if !got.W.Eq(tc.want.W) || !got.H.Eq(tc.want.H) {
			t.Errorf("PaperSize(%q, %v) = %v, want %v", tc.paper, tc.orientation, got, tc.want)
		}
	}
	if _, err := PaperSize("tabloid", Portrait); err == nil {
		t.Error("unknown paper accepted")
	}
}

func newTestPage(t *testing.T) *Page {
	t.Helper()
	p, err := NewPage(PageSettings{
		Paper:   "letter",
		Margins: UniformMargins(geom.In(0.5)),
	}, NewStack(Vertical))
	if err != nil {
		t.Fatalf("NewPage: %v", err)
	}
	return p
}

func TestPagePrintableRegion(t *testing.T) {
	p := newTestPage(t)
	pr := p.Printable()
	if !pr.Origin.X.Eq(geom.In(0.5)) || !pr.Origin.Y.Eq(geom.In(0.5)) {
		t.Fatalf("printable origin = %v", pr.Origin)
	}
	if !pr.Extent.W.Eq(geom.In(7.5)) || !pr.Extent.H.Eq(geom.In(10)) {
		t.Fatalf("printable extent = %v", pr.Extent)
	}
}

func TestPageLayoutIgnoresCallerExtent(t *testing.T) {
	// 无论调用方传什么，布局目标永远是可打印区域
	p := newTestPage(t)
	child := newFakeFrame(geom.E(geom.Fit, geom.Fit), 1)
	p.Append("body", child)
	p.BeginPage(1)
	p.Measure(geom.E(geom.In(1), geom.In(1)))
	region, err := p.DoLayout(geom.E(geom.In(1), geom.In(1)))
	if err != nil {
		t.Fatalf("DoLayout: %v", err)
	}
	if !region.Origin.X.Eq(geom.In(0.5)) {
		t.Fatalf("layout region origin = %v", region.Origin)
	}
	pr := p.Printable()
	if err := p.Draw(&recordingSurface{}, geom.Region{}); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	// 子帧拿到整个可打印区域
	if len(child.drawRegions) != 1 {
		t.Fatalf("child drawn %d times", len(child.drawRegions))
	}
	if !child.drawRegions[0].Origin.X.Eq(pr.Origin.X) || !child.drawRegions[0].Origin.Y.Eq(pr.Origin.Y) {
		t.Fatalf("child drawn at %v, want printable origin", child.drawRegions[0].Origin)
	}
	if !child.drawRegions[0].Extent.W.Eq(pr.Extent.W) {
		t.Fatalf("child width = %s, want full printable width", child.drawRegions[0].Extent.W)
	}
}

func TestPageRejectsImpossibleMargins(t *testing.T) {
	_, err := NewPage(PageSettings{
		Paper:   "a5",
		Margins: UniformMargins(geom.Mm(100)),
	}, NewStack(Vertical))
	if err == nil {
		t.Fatal("margins larger than the page must be rejected")
	}
}

func TestPageSettingsRoundTrip(t *testing.T) {
	p := newTestPage(t)
	if p.Settings().Paper != "letter" {
		t.Fatalf("Settings = %+v", p.Settings())
	}
	if o, err := ParseOrientation("landscape"); err != nil || o != Landscape {
		t.Fatalf("ParseOrientation: %v, %v", o, err)
	}
	if _, err := ParseOrientation("diagonal"); err == nil {
		t.Fatal("bad orientation accepted")
	}
}
