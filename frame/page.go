package frame

import (
	"fmt"
	"strings"

	"github.com/ByLCY/kanjipress/geom"
	"github.com/ByLCY/kanjipress/surface"
)

// Orientation 指定纸张方向。
type Orientation int

const (
	Portrait Orientation = iota
	Landscape
)

func (o Orientation) String() string {
	if o == Landscape {
		return "landscape"
	}
	return "portrait"
}

// ParseOrientation 解析方向名。
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "portrait", "":
		return Portrait, nil
	case "landscape":
		return Landscape, nil
	}
	return Portrait, fmt.Errorf("frame: 未知纸张方向 %q", s)
}

// papers 是支持的纸张名到竖向物理尺寸的映射。
var papers = map[string]geom.Extent{
	"letter": geom.E(geom.In(8.5), geom.In(11)),
	"legal":  geom.E(geom.In(8.5), geom.In(14)),
	"a3":     geom.E(geom.Mm(297), geom.Mm(420)),
	"a4":     geom.E(geom.Mm(210), geom.Mm(297)),
	"a5":     geom.E(geom.Mm(148), geom.Mm(210)),
	"b5":     geom.E(geom.Mm(176), geom.Mm(250)),
}

// PaperSize 返回纸张名在给定方向下的物理尺寸。
func PaperSize(name string, o Orientation) (geom.Extent, error) {
	size, ok := papers[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return geom.ExtentZero, fmt.Errorf("frame: 未知纸张 %q", name)
	}
	if o == Landscape {
		size.W, size.H = size.H, size.W
	}
	return size, nil
}

// Margins 是页边距。
type Margins struct {
	Top, Right, Bottom, Left geom.Distance
}

// UniformMargins 构造四边相同的页边距。
func UniformMargins(d geom.Distance) Margins {
	return Margins{Top: d, Right: d, Bottom: d, Left: d}
}

// PageSettings 描述一类页面的物理参数。
type PageSettings struct {
	Paper       string
	Orientation Orientation
	Margins     Margins
}

// Size 返回页面的物理尺寸。
func (ps PageSettings) Size() (geom.Extent, error) {
	return PaperSize(ps.Paper, ps.Orientation)
}

// Page 是绑定到固定纸面的容器：物理尺寸与页边距在构造时确定，
// 可打印区域此后不再变化。无论调用方授予什么范围，布局目标永远是
// 可打印区域。
type Page struct {
	*Container
	settings  PageSettings
	printable geom.Region
}

// NewPage 按页面设置构造页。纸张名无效时返回错误。
func NewPage(settings PageSettings, strategy Strategy) (*Page, error) {
	size, err := settings.Size()
	if err != nil {
		return nil, err
	}
	m := settings.Margins
	printable := geom.R(
		geom.Pos{X: m.Left, Y: m.Top},
		geom.E(
			size.W.Sub(m.Left).Sub(m.Right),
			size.H.Sub(m.Top).Sub(m.Bottom),
		),
	)
	if printable.Extent.W.Leq(geom.Zero) || printable.Extent.H.Leq(geom.Zero) {
		return nil, fmt.Errorf("frame: 页边距吃掉了整个 %s 页面", settings.Paper)
	}
	return &Page{
		Container: NewContainer(strategy),
		settings:  settings,
		printable: printable,
	}, nil
}

// Settings 返回构造时的页面设置。
func (p *Page) Settings() PageSettings { return p.settings }

// Printable 返回可打印区域（页面坐标，原点在纸面左上角）。
func (p *Page) Printable() geom.Region { return p.printable }

// Measure 固定以可打印区域为可用范围，忽略调用方传入的值。
func (p *Page) Measure(geom.Extent) geom.Extent {
	return p.Container.Measure(p.printable.Extent)
}

// DoLayout 固定以可打印区域为布局目标。
func (p *Page) DoLayout(geom.Extent) (geom.Region, error) {
	region, err := p.Container.DoLayout(p.printable.Extent)
	region.Origin = p.printable.Origin
	return region, err
}

// Draw 忽略调用方区域，始终画进自己的可打印区域。
func (p *Page) Draw(s surface.Surface, _ geom.Region) error {
	return p.Container.Draw(s, p.printable)
}
