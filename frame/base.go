package frame

import "fmt"

// base 为帧实现维护生命周期状态机，并对乱序的协议调用做快速失败
// 检查。各帧实现通过嵌入 base 获得统一的状态簿记。
type base struct {
	st   State
	page int
}

// State 实现 Frame 接口的状态读取。容器类型会在其上叠加子帧状态。
func (b *base) State() State { return b.st }

// setProgression 把推进位移到 p，保留修饰位不变。
func (b *base) setProgression(p State) {
	b.st = (b.st &^ progressionMask) | p
}

func (b *base) setFlag(f State)   { b.st |= f }
func (b *base) clearFlag(f State) { b.st &^= f }

// noteBeginPage 记录页号并把推进位退回 waiting。
// 同一页号在尚未绘制时重复调用是幂等的。
func (b *base) noteBeginPage(page int) {
	if b.page == page {
		switch b.st.Progression() {
		case StateWaiting, StateNeedsLayout, StateReady:
			return
		}
	}
	b.page = page
	b.setProgression(StateWaiting)
}

func (b *base) noteMeasured() { b.setProgression(StateNeedsLayout) }

// requireLayoutReady 在 DoLayout 入口校验 Measure 已经发生。
func (b *base) requireLayoutReady(name string) {
	switch b.st.Progression() {
	case StateNeedsLayout, StateReady:
	default:
		panic(fmt.Sprintf("frame: %s 在 Measure 之前调用了 DoLayout（当前状态 %s）", name, b.st))
	}
}

func (b *base) noteLaidOut() { b.setProgression(StateReady) }

// requireDrawReady 在 Draw 入口校验 DoLayout 已经发生。
func (b *base) requireDrawReady(name string) {
	switch b.st.Progression() {
	case StateReady, StateDrawing:
	default:
		panic(fmt.Sprintf("frame: %s 在 DoLayout 之前调用了 Draw（当前状态 %s）", name, b.st))
	}
}

func (b *base) noteDrawing() { b.setProgression(StateDrawing) }

// noteDrawn 结束本页绘制并更新数据余量标志。
func (b *base) noteDrawn(haveMore bool) {
	b.setProgression(StateDrawn)
	if haveMore {
		b.setFlag(StateHaveMoreData)
		b.clearFlag(StateAllDataConsumed)
	} else {
		b.clearFlag(StateHaveMoreData)
		b.setFlag(StateAllDataConsumed)
	}
}
