package kanjidata

import (
	"fmt"
	"os"
	"path/filepath"
)

// Cache 按需从磁盘加载笔顺图并留在内存里。缓存是显式对象，由调用方
// 构造并传递，没有全局状态；不做淘汰，一次报表的工作集装得下。
// 单线程使用（与分页循环同一调用栈），不做并发防护。
type Cache struct {
	dir      string
	diagrams map[rune]*StrokeSet
}

// NewCache 构造指向 KanjiVG 目录的缓存。
func NewCache(dir string) *Cache {
	return &Cache{dir: dir, diagrams: map[rune]*StrokeSet{}}
}

// Strokes 返回某个字的笔画集。同一个字只读一次盘。
func (c *Cache) Strokes(r rune) (*StrokeSet, error) {
	if s, ok := c.diagrams[r]; ok {
		return s, nil
	}
	// KanjiVG 文件名是码点的 5 位小写十六进制
	path := filepath.Join(c.dir, fmt.Sprintf("%05x.svg", r))
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("kanjidata: %q 没有笔顺图: %w", string(r), err)
	}
	defer f.Close()
	s, err := LoadStrokes(f)
	if err != nil {
		return nil, fmt.Errorf("kanjidata: %q: %w", string(r), err)
	}
	c.diagrams[r] = s
	return s, nil
}
