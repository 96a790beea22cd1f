package frame

import (
	"github.com/ByLCY/kanjipress/geom"
	"github.com/ByLCY/kanjipress/surface"
)

// Sequence 每页只展示一个子帧，画完一个翻到下一个。适合"一条记录
// 一页"式的报表：队列非空就持续要求新页。
//
// 当前子帧自己也可以跨页（比如装着长文本），Sequence 会等它把数据
// 耗尽才推进到下一个。
type Sequence struct {
	b        base
	children []Frame
	index    int
}

var _ Frame = (*Sequence)(nil)

// NewSequence 构造顺序展示的帧队列。
func NewSequence(children ...Frame) *Sequence {
	return &Sequence{children: children}
}

// Append 在队尾追加一个子帧。
func (q *Sequence) Append(f Frame) {
	if f == nil {
		panic("frame: 追加了 nil 子帧")
	}
	q.children = append(q.children, f)
}

func (q *Sequence) current() Frame {
	if q.index >= len(q.children) {
		return nil
	}
	return q.children[q.index]
}

func (q *Sequence) BeginPage(page int) bool {
	q.b.noteBeginPage(page)
	// 当前子帧本页没内容就跳过它，直到找到有内容的为止
	for cur := q.current(); cur != nil; cur = q.current() {
		if cur.BeginPage(page) {
			return true
		}
		q.index++
	}
	return false
}

func (q *Sequence) Measure(avail geom.Extent) geom.Extent {
	q.b.noteMeasured()
	cur := q.current()
	if cur == nil {
		return geom.ExtentZero
	}
	return cur.Measure(avail)
}

func (q *Sequence) DoLayout(target geom.Extent) (geom.Region, error) {
	q.b.requireLayoutReady("Sequence")
	cur := q.current()
	if cur == nil {
		q.b.noteLaidOut()
		return geom.R(geom.PosZero, geom.ExtentZero), nil
	}
	region, err := cur.DoLayout(target)
	q.b.noteLaidOut()
	return region, err
}

func (q *Sequence) Draw(s surface.Surface, region geom.Region) error {
	q.b.requireDrawReady("Sequence")
	q.b.noteDrawing()
	cur := q.current()
	if cur == nil {
		q.b.noteDrawn(false)
		return nil
	}
	err := cur.Draw(s, region)
	// 当前子帧数据耗尽才推进队列
	if !cur.State().Has(StateHaveMoreData) {
		q.index++
	}
	q.b.noteDrawn(q.index < len(q.children))
	return err
}

func (q *Sequence) State() State {
	st := q.b.st
	if q.index < len(q.children) {
		if cur := q.current(); cur != nil && cur.State().Has(StateHaveMoreData) {
			st |= StateHaveMoreData
			st &^= StateAllDataConsumed
		}
	}
	return st
}
