package frame

import (
	"errors"
	"testing"

	"github.com/ByLCY/kanjipress/geom"
)

func pt(v float64) geom.Distance { return geom.Pt(v) }

func TestStackMeasureVertical(t *testing.T) {
	// 纵向堆叠：宽取最大值，高取总和
	s := NewStack(Vertical)
	children := []geom.Extent{
		geom.E(pt(10), pt(5)),
		geom.E(pt(20), pt(5)),
		geom.E(pt(10), pt(5)),
	}
	got := s.Measure(children, geom.ExtentFit)
	if !got.W.Eq(pt(20)) || !got.H.Eq(pt(15)) {
		t.Fatalf("Measure = %v, want 20pt x 15pt", got)
	}
}

func TestStackLayoutHorizontalFitChild(t *testing.T) {
	// 中间子帧 fit-to-width，目标宽 50：偏移 0/10/40，中间宽 30
	s := NewStack(Horizontal)
	children := []geom.Extent{
		geom.E(pt(10), pt(10)),
		geom.E(geom.Fit, pt(10)),
		geom.E(pt(10), pt(10)),
	}
	_, regions, err := s.Layout(geom.E(pt(50), pt(10)), children, geom.ExtentFit)
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	wantX := []geom.Distance{pt(0), pt(10), pt(40)}
	for i, r := range regions {
		if !r.Origin.X.Eq(wantX[i]) {
			t.Errorf("child %d x-offset = %s, want %s", i, r.Origin.X, wantX[i])
		}
	}
	if !regions[1].Extent.W.Eq(pt(30)) {
		t.Errorf("fit child width = %s, want 30pt", regions[1].Extent.W)
	}
}

func TestStackLayoutFitDistributionSums(t *testing.T) {
	// 多个 fit 子帧平分剩余空间，且各段宽度之和等于目标宽度
	s := NewStack(Horizontal)
	children := []geom.Extent{
		geom.E(pt(12), pt(10)),
		geom.E(geom.Fit, pt(10)),
		geom.E(pt(8), pt(10)),
		geom.E(geom.Fit, pt(10)),
	}
	actual, regions, err := s.Layout(geom.E(pt(100), pt(10)), children, geom.ExtentFit)
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if !regions[1].Extent.W.Eq(pt(40)) || !regions[3].Extent.W.Eq(pt(40)) {
		t.Fatalf("fit widths = %s, %s, want 40pt each", regions[1].Extent.W, regions[3].Extent.W)
	}
	total := geom.Zero
	for _, r := range regions {
		total = total.Add(r.Extent.W)
	}
	if !total.Eq(pt(100)) {
		t.Fatalf("widths sum to %s, want the full 100pt target", total)
	}
	if !actual.W.Eq(pt(100)) {
		t.Fatalf("actual extent width = %s", actual.W)
	}
}

func TestStackLayoutRespectsMinimum(t *testing.T) {
	// 固定子帧沿堆叠轴拿到的区域不小于其测量值
	s := NewStack(Vertical)
	children := []geom.Extent{
		geom.E(pt(10), pt(30)),
		geom.E(pt(10), geom.Fit),
	}
	_, regions, err := s.Layout(geom.E(pt(10), pt(100)), children, geom.ExtentFit)
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if regions[0].Extent.H.Less(pt(30)) {
		t.Fatalf("fixed child shrunk to %s", regions[0].Extent.H)
	}
}

func TestStackZeroExtentChildrenSkipped(t *testing.T) {
	// 双向零尺寸的子帧不占位：后续兄弟的偏移不受影响
	s := NewStack(Vertical)
	children := []geom.Extent{
		geom.E(pt(10), pt(10)),
		geom.ExtentZero,
		geom.E(pt(10), pt(10)),
	}
	_, regions, err := s.Layout(geom.E(pt(10), pt(50)), children, geom.ExtentFit)
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if !regions[2].Origin.Y.Eq(pt(10)) {
		t.Fatalf("third child y-offset = %s, want 10pt", regions[2].Origin.Y)
	}
	if !regions[1].Extent.IsZero() {
		t.Fatalf("zero child was given extent %v", regions[1].Extent)
	}
}

func TestStackOverflowReported(t *testing.T) {
	s := NewStack(Vertical)
	children := []geom.Extent{
		geom.E(pt(10), pt(40)),
		geom.E(pt(10), pt(40)),
	}
	_, regions, err := s.Layout(geom.E(pt(10), pt(50)), children, geom.ExtentFit)
	var overflow *OverflowError
	if !errors.As(err, &overflow) {
		t.Fatalf("expected OverflowError, got %v", err)
	}
	if overflow.Axis != Vertical {
		t.Errorf("overflow axis = %v", overflow.Axis)
	}
	if !overflow.Needed.Eq(pt(80)) || !overflow.Available.Eq(pt(50)) {
		t.Errorf("overflow = needed %s / available %s", overflow.Needed, overflow.Available)
	}
	// 溢出时区域仍按顺序给出，由容器决定裁剪与否
	if len(regions) != 2 || !regions[1].Origin.Y.Eq(pt(40)) {
		t.Errorf("regions under overflow = %v", regions)
	}
}

func TestStackCrossAxisFixedChildrenGetMax(t *testing.T) {
	// 固定子帧在交叉轴上拿所有子帧的最大值：窄子帧的区域跟最宽的
	// 兄弟一样宽，锚点内容才能在整列里居中
	s := NewStack(Vertical)
	children := []geom.Extent{
		geom.E(pt(10), pt(10)),
		geom.E(pt(30), pt(10)),
	}
	_, regions, err := s.Layout(geom.E(pt(50), pt(100)), children, geom.ExtentFit)
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if !regions[0].Extent.W.Eq(pt(30)) {
		t.Errorf("narrow child cross width = %s, want 30pt (max of children)", regions[0].Extent.W)
	}
	if !regions[1].Extent.W.Eq(pt(30)) {
		t.Errorf("wide child cross width = %s, want 30pt", regions[1].Extent.W)
	}

	// 目标交叉轴比最大值还窄时收到目标为界
	_, clipped, err := s.Layout(geom.E(pt(20), pt(100)), children, geom.ExtentFit)
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if !clipped[0].Extent.W.Eq(pt(20)) || !clipped[1].Extent.W.Eq(pt(20)) {
		t.Errorf("cross widths under a narrow target = %s, %s, want 20pt each",
			clipped[0].Extent.W, clipped[1].Extent.W)
	}
}

func TestStackCrossAxisFitGetsFullCross(t *testing.T) {
	// 交叉轴 fit 的子帧拿到容器整个交叉轴
	s := NewStack(Vertical)
	children := []geom.Extent{
		geom.E(geom.Fit, pt(10)),
		geom.E(pt(30), pt(10)),
	}
	_, regions, err := s.Layout(geom.E(pt(80), pt(50)), children, geom.ExtentFit)
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if !regions[0].Extent.W.Eq(pt(80)) {
		t.Errorf("stretchy cross width = %s, want 80pt", regions[0].Extent.W)
	}
	if !regions[1].Extent.W.Eq(pt(30)) {
		t.Errorf("fixed cross width = %s, want 30pt", regions[1].Extent.W)
	}
}
