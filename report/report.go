// Package report 驱动报表生成：把具名报表解析成帧树根，再按分页循环
// 一页一页渲染到输出面，直到数据耗尽。
package report

import (
	"fmt"
	"sort"

	"github.com/ByLCY/kanjipress/frame"
	"github.com/ByLCY/kanjipress/kanjidata"
	"github.com/ByLCY/kanjipress/pagespec"
	"github.com/ByLCY/kanjipress/surface"
)

// Report 由具体报表实现。
type Report interface {
	// Title 用于 PDF 元信息与日志。
	Title() string
	// BuildRoot 按页面设置构建内容树的根帧（通常是 *frame.Page）。
	BuildRoot(setup *pagespec.Setup, ts surface.Typesetter) (frame.Frame, error)
}

// Options 是报表工厂的公共入参。
type Options struct {
	Dict    *kanjidata.Dictionary
	Strokes *kanjidata.Cache
	// Kanji 是要出现在报表里的字，按给定顺序排版。
	Kanji []rune
	// Data 提供给文本模板 ${...} 插值的附加数据。
	Data map[string]any
}

// Factory 构造一个报表实例。
type Factory func(opts Options) (Report, error)

// registry 是报表名到工厂的显式白名单。只有启动时注册过的名字
// 才能被解析，没有任何运行时动态加载。
var registry = map[string]Factory{}

// Register 注册一个报表工厂。重名属于编程错误。
func Register(name string, f Factory) {
	if name == "" || f == nil {
		panic("report: 非法的报表注册")
	}
	if _, dup := registry[name]; dup {
		panic(fmt.Sprintf("report: 报表 %q 重复注册", name))
	}
	registry[name] = f
}

// New 按名字解析报表。
func New(name string, opts Options) (Report, error) {
	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("report: 未知报表 %q（可用：%v）", name, Names())
	}
	return f(opts)
}

// Names 返回全部已注册的报表名，字典序。
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
