// Package pagespec parses the small page-setup language used to describe
// report output: paper, orientation, margins, fonts and document metadata.
//
// A setup file looks like:
//
//	page letter portrait {
//	    margins: 0.5in 0.75in
//	    overflow: report
//	}
//	font main "fonts/NotoSansJP-Regular.ttf"
//	font kana "fonts/NotoSansJP-Light.ttf"
//	fallback "fonts/NotoSansJP-Regular.ttf"
//	output "kanji-summary.pdf"
//	title "Kanji summary"
package pagespec

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/ByLCY/kanjipress/frame"
	"github.com/ByLCY/kanjipress/geom"
)

var (
	specLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r]+`},
		{Name: "Newline", Pattern: `\n+`},
		{Name: "LineComment", Pattern: `//[^\n]*`},
		{Name: "HashComment", Pattern: `#[^\n]*`},
		{Name: "Distance", Pattern: `(?:\d+\.\d+|\d+)(?:pt|mm|cm|in|px)\*?`},
		{Name: "String", Pattern: `"(?:\\.|[^"])*"`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
		{Name: "Symbol", Pattern: `[{}:;]`},
	})

	documentParser = participle.MustBuild[Document](
		participle.Lexer(specLexer),
		participle.Elide("Whitespace", "LineComment", "HashComment"),
	)
)

// Document is the root AST node for a page-setup file.
type Document struct {
	Pos     lexer.Position `parser:""`
	Entries []*Entry       `parser:"Newline* ( @@ ( ';' | Newline )* )*"`
}

// Entry is one top-level declaration.
type Entry struct {
	Page     *PageDecl `parser:"  @@"`
	Font     *FontDecl `parser:"| @@"`
	Fallback *string   `parser:"| 'fallback' @String"`
	Output   *string   `parser:"| 'output' @String"`
	Title    *string   `parser:"| 'title' @String"`
	Author   *string   `parser:"| 'author' @String"`
	Debug    *string   `parser:"| 'debug' @String"`
}

// PageDecl declares paper, optional orientation and a settings block.
type PageDecl struct {
	Pos         lexer.Position `parser:""`
	Paper       string         `parser:"'page' @Ident"`
	Orientation string         `parser:"@Ident?"`
	Settings    []*Setting     `parser:"'{' Newline* ( @@ ( ';' | Newline )* )* '}'"`
}

// FontDecl maps a font resource name to a font file path.
type FontDecl struct {
	Name string `parser:"'font' @Ident"`
	Path string `parser:"@String"`
}

// Setting is a key: value line inside the page block.
type Setting struct {
	Pos    lexer.Position `parser:""`
	Key    string         `parser:"@Ident ':'"`
	Values []string       `parser:"@( Distance | Ident )+"`
}

// Setup is the resolved page configuration a report runs with.
type Setup struct {
	Page     frame.PageSettings
	Overflow frame.OverflowPolicy
	Fonts    map[string]string
	Fallback string
	Output   string
	Title    string
	Author   string
	// Debug 非空时，分页结束后把布局快照写到这个路径。
	Debug string
}

// Parse reads and resolves a page-setup file.
func Parse(name string, r io.Reader) (*Setup, error) {
	doc, err := documentParser.Parse(name, r)
	if err != nil {
		return nil, fmt.Errorf("pagespec: %w", err)
	}
	return resolve(doc)
}

// ParseString is Parse over an in-memory document.
func ParseString(name, content string) (*Setup, error) {
	return Parse(name, strings.NewReader(content))
}

func resolve(doc *Document) (*Setup, error) {
	setup := &Setup{Fonts: map[string]string{}}
	seenPage := false
	for _, entry := range doc.Entries {
		switch {
		case entry.Page != nil:
			if seenPage {
				return nil, fmt.Errorf("pagespec: %s: duplicate page declaration", entry.Page.Pos)
			}
			seenPage = true
			if err := resolvePage(entry.Page, setup); err != nil {
				return nil, err
			}
		case entry.Font != nil:
			path, err := unquote(entry.Font.Path)
			if err != nil {
				return nil, fmt.Errorf("pagespec: font %s: %w", entry.Font.Name, err)
			}
			setup.Fonts[entry.Font.Name] = path
		case entry.Fallback != nil:
			path, err := unquote(*entry.Fallback)
			if err != nil {
				return nil, fmt.Errorf("pagespec: fallback: %w", err)
			}
			setup.Fallback = path
		case entry.Output != nil:
			out, err := unquote(*entry.Output)
			if err != nil {
				return nil, fmt.Errorf("pagespec: output: %w", err)
			}
			setup.Output = out
		case entry.Title != nil:
			title, err := unquote(*entry.Title)
			if err != nil {
				return nil, fmt.Errorf("pagespec: title: %w", err)
			}
			setup.Title = title
		case entry.Author != nil:
			author, err := unquote(*entry.Author)
			if err != nil {
				return nil, fmt.Errorf("pagespec: author: %w", err)
			}
			setup.Author = author
		case entry.Debug != nil:
			debug, err := unquote(*entry.Debug)
			if err != nil {
				return nil, fmt.Errorf("pagespec: debug: %w", err)
			}
			setup.Debug = debug
		}
	}
	if !seenPage {
		return nil, fmt.Errorf("pagespec: missing page declaration")
	}
	return setup, nil
}

func resolvePage(decl *PageDecl, setup *Setup) error {
	orientation, err := frame.ParseOrientation(decl.Orientation)
	if err != nil {
		return fmt.Errorf("pagespec: %s: %w", decl.Pos, err)
	}
	setup.Page = frame.PageSettings{
		Paper:       decl.Paper,
		Orientation: orientation,
	}
	// Validate the paper name eagerly so errors point at the declaration.
	if _, err := setup.Page.Size(); err != nil {
		return fmt.Errorf("pagespec: %s: %w", decl.Pos, err)
	}
	for _, s := range decl.Settings {
		switch s.Key {
		case "margins":
			m, err := parseMargins(s.Values)
			if err != nil {
				return fmt.Errorf("pagespec: %s: margins: %w", s.Pos, err)
			}
			setup.Page.Margins = m
		case "overflow":
			p, err := parseOverflow(s.Values)
			if err != nil {
				return fmt.Errorf("pagespec: %s: %w", s.Pos, err)
			}
			setup.Overflow = p
		default:
			return fmt.Errorf("pagespec: %s: unknown page setting %q", s.Pos, s.Key)
		}
	}
	return nil
}

// parseMargins accepts the CSS shorthand forms: one value for all sides,
// two for vertical/horizontal, four for top/right/bottom/left.
func parseMargins(values []string) (frame.Margins, error) {
	ds := make([]geom.Distance, 0, len(values))
	for _, v := range values {
		d, err := geom.ParseDistance(v)
		if err != nil {
			return frame.Margins{}, err
		}
		ds = append(ds, d)
	}
	switch len(ds) {
	case 1:
		return frame.UniformMargins(ds[0]), nil
	case 2:
		return frame.Margins{Top: ds[0], Bottom: ds[0], Left: ds[1], Right: ds[1]}, nil
	case 4:
		return frame.Margins{Top: ds[0], Right: ds[1], Bottom: ds[2], Left: ds[3]}, nil
	}
	return frame.Margins{}, fmt.Errorf("want 1, 2 or 4 distances, got %d", len(ds))
}

func parseOverflow(values []string) (frame.OverflowPolicy, error) {
	if len(values) != 1 {
		return 0, fmt.Errorf("overflow takes exactly one mode")
	}
	switch values[0] {
	case "report":
		return frame.OverflowReport, nil
	case "clip":
		return frame.OverflowClip, nil
	case "fail":
		return frame.OverflowFail, nil
	}
	return 0, fmt.Errorf("unknown overflow mode %q", values[0])
}

func unquote(s string) (string, error) {
	out, err := strconv.Unquote(s)
	if err != nil {
		return "", fmt.Errorf("bad string literal %s", s)
	}
	return out, nil
}
