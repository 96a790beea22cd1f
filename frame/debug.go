package frame

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DebugNode 是帧树一个节点的布局快照，用于排查排版问题。
type DebugNode struct {
	Name     string      `json:"name,omitempty"`
	Type     string      `json:"type"`
	State    string      `json:"state"`
	Region   string      `json:"region,omitempty"`
	Children []DebugNode `json:"children,omitempty"`
}

// Inspect 把帧树的当前布局状态整理成可序列化的快照。
func Inspect(f Frame) DebugNode {
	node := DebugNode{
		Type:  fmt.Sprintf("%T", f),
		State: f.State().String(),
	}
	var c *Container
	switch t := f.(type) {
	case *Page:
		node.Region = t.Printable().String()
		c = t.Container
	case *Container:
		c = t
	case *Sequence:
		if cur := t.current(); cur != nil {
			node.Children = append(node.Children, Inspect(cur))
		}
		return node
	default:
		return node
	}
	for i, child := range c.children {
		sub := Inspect(child)
		sub.Name = c.names[i]
		if c.active[i] {
			sub.Region = c.regions[i].String()
		}
		node.Children = append(node.Children, sub)
	}
	return node
}

// WriteDebugJSON 把布局快照写成 JSON 文件。
func WriteDebugJSON(f Frame, path string) error {
	data, err := json.MarshalIndent(Inspect(f), "", "  ")
	if err != nil {
		return fmt.Errorf("frame: 序列化布局快照失败: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("frame: 创建调试目录失败: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("frame: 写入布局快照失败: %w", err)
	}
	return nil
}
