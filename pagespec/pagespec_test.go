package pagespec

import (
	"strings"
	"testing"

	"github.com/ByLCY/kanjipress/frame"
	"github.com/ByLCY/kanjipress/geom"
)

const sample = `
# study sheet setup
page letter portrait {
    margins: 0.5in 0.75in
    overflow: clip
}
font main "fonts/NotoSansJP-Regular.ttf"
font kana "fonts/NotoSansJP-Light.ttf"
fallback "fonts/NotoSansJP-Regular.ttf"
output "kanji-summary.pdf"
title "Kanji summary"
author "kanjipress"
debug "out/layout.json"
`

func TestParseSample(t *testing.T) {
	setup, err := ParseString("sample", sample)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	if setup.Page.Paper != "letter" || setup.Page.Orientation != frame.Portrait {
		t.Errorf("page = %+v", setup.Page)
	}
	if !setup.Page.Margins.Top.Eq(geom.In(0.5)) || !setup.Page.Margins.Left.Eq(geom.In(0.75)) {
		t.Errorf("margins = %+v", setup.Page.Margins)
	}
	if setup.Overflow != frame.OverflowClip {
		t.Errorf("overflow = %v", setup.Overflow)
	}
	if setup.Fonts["main"] != "fonts/NotoSansJP-Regular.ttf" || len(setup.Fonts) != 2 {
		t.Errorf("fonts = %v", setup.Fonts)
	}
	if setup.Fallback == "" || setup.Output != "kanji-summary.pdf" {
		t.Errorf("fallback=%q output=%q", setup.Fallback, setup.Output)
	}
	if setup.Title != "Kanji summary" || setup.Author != "kanjipress" {
		t.Errorf("meta = %q / %q", setup.Title, setup.Author)
	}
	if setup.Debug != "out/layout.json" {
		t.Errorf("debug = %q", setup.Debug)
	}
}

func TestParseDefaults(t *testing.T) {
	setup, err := ParseString("minimal", "page a4 {\n}\n")
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	if setup.Page.Orientation != frame.Portrait {
		t.Errorf("default orientation = %v", setup.Page.Orientation)
	}
	if setup.Overflow != frame.OverflowReport {
		t.Errorf("default overflow = %v", setup.Overflow)
	}
	if !setup.Page.Margins.Top.IsZero() {
		t.Errorf("default margins = %+v", setup.Page.Margins)
	}
}

func TestParseMarginForms(t *testing.T) {
	cases := []struct {
		line string
		want frame.Margins
	}{
		{"margins: 10mm", frame.UniformMargins(geom.Mm(10))},
		{"margins: 10mm 20mm", frame.Margins{Top: geom.Mm(10), Bottom: geom.Mm(10), Left: geom.Mm(20), Right: geom.Mm(20)}},
		{"margins: 1mm 2mm 3mm 4mm", frame.Margins{Top: geom.Mm(1), Right: geom.Mm(2), Bottom: geom.Mm(3), Left: geom.Mm(4)}},
	}
	for _, tc := range cases {
		setup, err := ParseString("margins", "page a4 {\n"+tc.line+"\n}\n")
		if err != nil {
			t.Errorf("%q: %v", tc.line, err)
			continue
		}
		m := setup.Page.Margins
		if !m.Top.Eq(tc.want.Top) || !m.Right.Eq(tc.want.Right) || !m.Bottom.Eq(tc.want.Bottom) || !m.Left.Eq(tc.want.Left) {
			t.Errorf("%q = %+v, want %+v", tc.line, m, tc.want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	cases := map[string]string{
		"missing page":      `output "x.pdf"`,
		"unknown paper":     "page tabloid {\n}\n",
		"bad orientation":   "page a4 diagonal {\n}\n",
		"duplicate page":    "page a4 {\n}\npage a5 {\n}\n",
		"unknown setting":   "page a4 {\ncolor: red\n}\n",
		"bad margin count":  "page a4 {\nmargins: 1mm 2mm 3mm\n}\n",
		"bad overflow mode": "page a4 {\noverflow: wrap\n}\n",
	}
	for name, src := range cases {
		if _, err := Parse(name, strings.NewReader(src)); err == nil {
			t.Errorf("%s: error expected", name)
		}
	}
}
