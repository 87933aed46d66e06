package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-crystal/crystal/pkg/layout"
	"github.com/go-crystal/crystal/pkg/shape"
)

func writeScene(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write scene file: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeScene(t, `
canvas:
  width: 320
  height: 240
  background: "#FFFFFF"
flow:
  axis: vertical
  spacing: 10
  runSpacing: 6
  boxes:
    - {width: 50, height: 30, color: "#FF0000", radius: 4}
    - {width: 50, height: 30, color: "#00FF00"}
border:
  title: Shapes
  align: center
`)

	scene, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if scene.Canvas.Width != 320 || scene.Canvas.Height != 240 {
		t.Errorf("canvas = %+v, want 320x240", scene.Canvas)
	}
	if len(scene.Flow.Boxes) != 2 {
		t.Fatalf("got %d boxes, want 2", len(scene.Flow.Boxes))
	}
	if scene.Flow.Boxes[0].Radius != 4 {
		t.Errorf("box radius = %v, want 4", scene.Flow.Boxes[0].Radius)
	}

	axis, err := scene.Axis()
	if err != nil {
		t.Fatalf("Axis() error: %v", err)
	}
	if axis != layout.AxisVertical {
		t.Errorf("axis = %v, want vertical", axis)
	}

	align, err := scene.Border.Alignment()
	if err != nil {
		t.Fatalf("Alignment() error: %v", err)
	}
	if align != shape.CutAlignmentCenter {
		t.Errorf("align = %v, want center", align)
	}
}

func TestLoad_Defaults(t *testing.T) {
	path := writeScene(t, `
flow:
  boxes:
    - {width: 10, height: 10}
border:
  title: T
`)

	scene, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if scene.Canvas.Width != 400 || scene.Canvas.Height != 300 {
		t.Errorf("default canvas = %+v, want 400x300", scene.Canvas)
	}
	if scene.Border.Radius != 8 {
		t.Errorf("default border radius = %v, want 8", scene.Border.Radius)
	}
	if scene.Border.LineWidth != 1 {
		t.Errorf("default border line width = %v, want 1", scene.Border.LineWidth)
	}

	axis, err := scene.Axis()
	if err != nil {
		t.Fatalf("Axis() error: %v", err)
	}
	if axis != layout.AxisHorizontal {
		t.Errorf("default axis = %v, want horizontal", axis)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "no boxes",
			content: "canvas: {width: 100, height: 100}\n",
			wantErr: "at least one box",
		},
		{
			name: "bad axis",
			content: `
flow:
  axis: diagonal
  boxes:
    - {width: 10, height: 10}
`,
			wantErr: "invalid flow axis",
		},
		{
			name: "bad alignment",
			content: `
flow:
  boxes:
    - {width: 10, height: 10}
border:
  title: T
  align: middle
`,
			wantErr: "invalid border align",
		},
		{
			name:    "not yaml",
			content: "{flow: [",
			wantErr: "failed to parse scene",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeScene(t, tt.content))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	if !strings.Contains(err.Error(), "failed to read scene") {
		t.Errorf("error = %q, want read failure", err)
	}
}
