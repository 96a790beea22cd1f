package frame

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ByLCY/kanjipress/geom"
)

func TestInspectReflectsLayout(t *testing.T) {
	c := NewContainer(NewStack(Vertical))
	c.Append("top", NewSpacer(geom.E(pt(10), pt(10))))
	c.Append("", NewSpacer(geom.E(pt(10), pt(20))))
	c.BeginPage(1)
	c.Measure(geom.E(pt(50), pt(100)))
	if _, err := c.DoLayout(geom.E(pt(50), pt(100))); err != nil {
		t.Fatalf("DoLayout: %v", err)
	}

	node := Inspect(c)
	if len(node.Children) != 2 {
		t.Fatalf("children = %d", len(node.Children))
	}
	if node.Children[0].Name != "top" {
		t.Errorf("first child name = %q", node.Children[0].Name)
	}
	if node.Children[0].Region == "" {
		t.Error("active child lost its region")
	}
	if !strings.Contains(node.State, "ready") {
		t.Errorf("state = %q", node.State)
	}
}

func TestWriteDebugJSON(t *testing.T) {
	c := NewContainer(NewStack(Vertical))
	c.Append("gap", NewSpacer(geom.E(pt(10), pt(10))))
	path := filepath.Join(t.TempDir(), "nested", "layout.json")
	if err := WriteDebugJSON(c, path); err != nil {
		t.Fatalf("WriteDebugJSON: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var node DebugNode
	if err := json.Unmarshal(data, &node); err != nil {
		t.Fatalf("snapshot is not valid JSON: %v", err)
	}
	if len(node.Children) != 1 || node.Children[0].Name != "gap" {
		t.Fatalf("snapshot = %+v", node)
	}
}
