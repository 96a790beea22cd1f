// Package pdf 通过 github.com/tdewolff/canvas 将绘图指令输出为 PDF。
package pdf

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"strings"
	"sync"
	"unicode"

	"github.com/tdewolff/canvas"
	pdfrender "github.com/tdewolff/canvas/renderers/pdf"

	"github.com/ByLCY/kanjipress/geom"
	"github.com/ByLCY/kanjipress/surface"
)

const defaultLineWidth = 0.2 // mm

// Meta 保存 PDF 元信息。
type Meta struct {
	Title    string
	Author   string
	Subject  string
	Creator  string
	Keywords []string
}

// Options 配置 PDF 输出面。
type Options struct {
	// Fonts 将字体资源名映射到字体文件路径。
	Fonts map[string]string
	// Fallback 是所有字体加载失败时的兜底字体文件路径。
	Fallback string
	Meta     Meta
}

// Surface 在 canvas 上实现 surface.Surface 与 surface.Typesetter。
// 页面内部统一以毫米为单位；与字体系统交互使用 pt，在边界做换算。
type Surface struct {
	writer *pdfrender.PDF
	pageW  float64 // mm
	pageH  float64 // mm

	c        *canvas.Canvas
	ctx      *canvas.Context
	pageOpen bool
	first    bool

	fontPaths    map[string]string
	fallbackPath string

	fontMu   sync.Mutex
	families map[string]*canvas.FontFamily
	fallback *canvas.FontFamily
}

var (
	_ surface.Surface    = (*Surface)(nil)
	_ surface.Typesetter = (*Surface)(nil)
)

// New 以物理页面大小 pageSize 创建一个写入 w 的 PDF 输出面。
func New(w io.Writer, pageSize geom.Extent, opts Options) *Surface {
	s := &Surface{
		pageW:        pageSize.W.ToMm(),
		pageH:        pageSize.H.ToMm(),
		first:        true,
		fontPaths:    map[string]string{},
		fallbackPath: opts.Fallback,
		families:     map[string]*canvas.FontFamily{},
	}
	for name, path := range opts.Fonts {
		if name == "" || path == "" {
			continue
		}
		s.fontPaths[name] = path
	}
	s.writer = pdfrender.New(w, s.pageW, s.pageH, nil)
	s.applyMeta(opts.Meta)
	return s
}

func (s *Surface) applyMeta(meta Meta) {
	if meta.Title == "" && meta.Subject == "" && meta.Author == "" &&
		meta.Creator == "" && len(meta.Keywords) == 0 {
		return
	}
	keywords := strings.Join(meta.Keywords, ", ")
	s.writer.SetInfo(meta.Title, meta.Subject, keywords, meta.Author, meta.Creator)
}

// ensurePage 确保当前有一张打开的画布页可以接收绘图指令。
func (s *Surface) ensurePage() {
	if s.pageOpen {
		return
	}
	if !s.first {
		s.writer.NewPage(s.pageW, s.pageH)
	}
	s.first = false
	s.c = canvas.New(s.pageW, s.pageH)
	s.ctx = canvas.NewContext(s.c)
	s.ctx.SetCoordSystem(canvas.CartesianIV) // 左上角为原点，与布局坐标一致
	s.pageOpen = true
}

// ShowPage 将当前页渲染进 PDF 并翻页。
func (s *Surface) ShowPage() error {
	s.ensurePage()
	s.c.RenderTo(s.writer)
	s.pageOpen = false
	return nil
}

// Close 结束 PDF 输出。未提交的残页会被丢弃。
func (s *Surface) Close() error {
	if err := s.writer.Close(); err != nil {
		return fmt.Errorf("写入 PDF 失败: %w", err)
	}
	return nil
}

// DrawText 实现 surface.Surface。
func (s *Surface) DrawText(origin geom.Pos, block *surface.TextBlock) error {
	if block == nil || len(block.Lines) == 0 {
		return nil
	}
	s.ensurePage()
	face, err := s.fontFace(block.Style)
	if err != nil {
		return err
	}
	metrics := face.Metrics()
	x := origin.X.ToMm()
	cursorY := origin.Y.ToMm()
	for _, line := range block.Lines {
		cursorY += line.GapBefore.ToMm()
		height := line.Height.ToMm()
		if height <= 0 {
			height = metrics.LineHeight
		}
		// 基线位置：行顶部加上字体上升部
		baseline := cursorY + metrics.Ascent
		s.ctx.DrawText(x, baseline, canvas.NewTextLine(face, line.Content, canvas.Left))
		cursorY += height
	}
	return nil
}

// DrawDrawing 实现 surface.Surface：把矢量图形等比缩放后居中绘制到 region。
func (s *Surface) DrawDrawing(region geom.Region, d *surface.Drawing) error {
	if d.Empty() {
		return nil
	}
	bw, bh := d.Bounds.W.ToMm(), d.Bounds.H.ToMm()
	if bw <= 0 || bh <= 0 {
		return fmt.Errorf("矢量图形缺少有效的画布大小: %v", d.Bounds)
	}
	s.ensurePage()
	rx, ry := region.Origin.X.ToMm(), region.Origin.Y.ToMm()
	rw, rh := region.Extent.W.ToMm(), region.Extent.H.ToMm()
	scale := math.Min(rw/bw, rh/bh)
	// 等比缩放后在区域内居中
	offX := rx + (rw-bw*scale)/2
	offY := ry + (rh-bh*scale)/2
	for _, stroke := range d.Strokes {
		if stroke.Path == nil {
			continue
		}
		scaled := stroke.Path.Copy().Transform(canvas.Identity.Scale(scale, scale))
		width := stroke.Width * scale
		if width <= 0 {
			width = defaultLineWidth
		}
		s.ctx.SetFillColor(color.RGBA{0, 0, 0, 0})
		s.ctx.SetStrokeColor(colorOf(stroke.Color))
		s.ctx.SetStrokeWidth(width)
		s.ctx.DrawPath(offX, offY, scaled)
	}
	return nil
}

// DrawLine 实现 surface.Surface。
func (s *Surface) DrawLine(from, to geom.Pos, width geom.Distance, col surface.Color) error {
	s.ensurePage()
	w := width.ToMm()
	if w <= 0 {
		w = defaultLineWidth
	}
	s.ctx.SetStrokeColor(colorOf(col))
	s.ctx.SetStrokeWidth(w)
	p := &canvas.Path{}
	p.MoveTo(0, 0)
	p.LineTo(to.X.Sub(from.X).ToMm(), to.Y.Sub(from.Y).ToMm())
	s.ctx.DrawPath(from.X.ToMm(), from.Y.ToMm(), p)
	return nil
}

// DrawRect 实现 surface.Surface。
func (s *Surface) DrawRect(region geom.Region, strokeWidth geom.Distance, stroke surface.Color, fill *surface.Color) error {
	s.ensurePage()
	w := strokeWidth.ToMm()
	if w <= 0 {
		w = defaultLineWidth
	}
	if fill != nil {
		s.ctx.SetFillColor(colorOf(*fill))
	} else {
		s.ctx.SetFillColor(color.RGBA{0, 0, 0, 0})
	}
	s.ctx.SetStrokeColor(colorOf(stroke))
	s.ctx.SetStrokeWidth(w)
	s.ctx.DrawPath(
		region.Origin.X.ToMm(), region.Origin.Y.ToMm(),
		canvas.Rectangle(region.Extent.W.ToMm(), region.Extent.H.ToMm()),
	)
	return nil
}

// LayoutLines 实现 surface.Typesetter，使用贪心换行算法。
// 宽度比较与累计均以毫米进行；对没有空白分割机会的 CJK 文本按字符折行。
func (s *Surface) LayoutLines(content string, width geom.Distance, style surface.TextStyle) ([]surface.Line, error) {
	face, err := s.fontFace(style)
	if err != nil {
		return nil, err
	}
	limit := width.ToMm()
	if limit <= 0 || width.IsFit() || width.IsInf() {
		limit = math.MaxFloat64
	}
	metrics := face.Metrics()
	textHeight := metrics.LineHeight
	lineHeight := style.LineHeight.ToMm()
	if lineHeight <= 0 {
		lineHeight = textHeight
	}
	leading := math.Max(lineHeight-textHeight, 0)

	raw := greedyWrap(content, limit, face)
	if len(raw) == 0 {
		raw = []wrapped{{}}
	}
	lines := make([]surface.Line, 0, len(raw))
	for i, ln := range raw {
		gap := geom.Zero
		if i > 0 {
			gap = geom.Mm(leading)
		}
		lines = append(lines, surface.Line{
			Content:   ln.content,
			Width:     geom.Mm(ln.width),
			Height:    geom.Mm(textHeight),
			GapBefore: gap,
		})
	}
	return lines, nil
}

type wrapped struct {
	content string
	width   float64
}

// greedyWrap 优先在空白处分割，超过限制时在词内按字符拆分。
func greedyWrap(content string, limit float64, face *canvas.FontFace) []wrapped {
	var lines []wrapped
	var builder strings.Builder
	currentWidth := 0.0

	emit := func(force bool) {
		if builder.Len() == 0 {
			if force {
				lines = append(lines, wrapped{})
			}
			return
		}
		lines = append(lines, wrapped{content: builder.String(), width: currentWidth})
		builder.Reset()
		currentWidth = 0
	}
	appendToken := func(token string) {
		builder.WriteString(token)
		currentWidth += face.TextWidth(token)
	}

	for _, token := range tokenize(content) {
		if token == "\n" {
			emit(true)
			continue
		}
		tokenWidth := face.TextWidth(token)
		if currentWidth > 0 && currentWidth+tokenWidth > limit {
			emit(false)
		}
		if tokenWidth <= limit {
			appendToken(token)
			if currentWidth > limit {
				emit(false)
			}
			continue
		}
		for _, chunk := range splitByWidth(token, limit, face) {
			chunkWidth := face.TextWidth(chunk)
			if currentWidth > 0 && currentWidth+chunkWidth > limit {
				emit(false)
			}
			appendToken(chunk)
			if currentWidth > limit {
				emit(false)
			}
		}
	}
	emit(false)
	return lines
}

func tokenize(s string) []string {
	var tokens []string
	var builder strings.Builder
	lastWasSpace := false
	flush := func() {
		if builder.Len() == 0 {
			return
		}
		tokens = append(tokens, builder.String())
		builder.Reset()
	}
	for _, r := range s {
		if r == '\r' {
			continue
		}
		if r == '\n' {
			flush()
			tokens = append(tokens, "\n")
			lastWasSpace = false
			continue
		}
		isSpace := unicode.IsSpace(r)
		if builder.Len() == 0 {
			lastWasSpace = isSpace
		} else if lastWasSpace != isSpace {
			flush()
			lastWasSpace = isSpace
		}
		builder.WriteRune(r)
	}
	flush()
	return tokens
}

func splitByWidth(token string, limit float64, face *canvas.FontFace) []string {
	if limit <= 0 || limit == math.MaxFloat64 {
		return []string{token}
	}
	var parts []string
	var builder strings.Builder
	for _, r := range token {
		builder.WriteRune(r)
		if face.TextWidth(builder.String()) > limit {
			runes := []rune(builder.String())
			if len(runes) > 1 {
				parts = append(parts, string(runes[:len(runes)-1]))
				builder.Reset()
				builder.WriteRune(r)
			}
		}
	}
	if builder.Len() > 0 {
		parts = append(parts, builder.String())
	}
	return parts
}

func (s *Surface) fontFace(style surface.TextStyle) (*canvas.FontFace, error) {
	family, err := s.ensureFamily(style.Font)
	if err != nil {
		return nil, err
	}
	sizePt := style.Size.ToPt()
	if sizePt <= 0 {
		sizePt = 10
	}
	return family.Face(sizePt, colorOf(style.Color), canvas.FontRegular, canvas.FontNormal), nil
}

func (s *Surface) ensureFamily(name string) (*canvas.FontFamily, error) {
	s.fontMu.Lock()
	defer s.fontMu.Unlock()

	if family, ok := s.families[name]; ok {
		return family, nil
	}
	path, ok := s.fontPaths[name]
	if !ok {
		return s.fallbackFamily(fmt.Errorf("未注册的字体资源 %q", name))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return s.fallbackFamily(fmt.Errorf("读取字体 %q (%s) 失败: %w", name, path, err))
	}
	family := canvas.NewFontFamily(name)
	if err := family.LoadFont(data, 0, canvas.FontRegular); err != nil {
		return s.fallbackFamily(fmt.Errorf("加载字体 %q (%s) 失败: %w", name, path, err))
	}
	s.families[name] = family
	return family, nil
}

// fallbackFamily 在主字体不可用时加载兜底字体；没有兜底则返回原始错误。
func (s *Surface) fallbackFamily(cause error) (*canvas.FontFamily, error) {
	if s.fallback != nil {
		return s.fallback, nil
	}
	if s.fallbackPath == "" {
		return nil, cause
	}
	data, err := os.ReadFile(s.fallbackPath)
	if err != nil {
		return nil, fmt.Errorf("兜底字体不可用 (%s): %w", s.fallbackPath, cause)
	}
	family := canvas.NewFontFamily("kanjipress-fallback")
	if err := family.LoadFont(data, 0, canvas.FontRegular); err != nil {
		return nil, fmt.Errorf("兜底字体加载失败 (%s): %w", s.fallbackPath, cause)
	}
	s.fallback = family
	return family, nil
}

func colorOf(c surface.Color) color.Color {
	return canvas.RGBA(float64(c.R)/255.0, float64(c.G)/255.0, float64(c.B)/255.0, 1.0)
}
