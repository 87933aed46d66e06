// Package config loads the YAML scene files consumed by the crystal CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-crystal/crystal/pkg/layout"
	"github.com/go-crystal/crystal/pkg/shape"
)

// Scene describes a renderable scene: a canvas, a flow of boxes, and an
// optional titled border wrapped around the flow.
type Scene struct {
	Canvas CanvasConfig  `yaml:"canvas"`
	Flow   FlowConfig    `yaml:"flow"`
	Border *BorderConfig `yaml:"border,omitempty"`
}

// CanvasConfig sets the output surface.
type CanvasConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Background string  `yaml:"background,omitempty"`
}

// FlowConfig configures the flow container and its boxes.
type FlowConfig struct {
	Axis       string      `yaml:"axis,omitempty"` // "horizontal" (default) or "vertical"
	Spacing    float64     `yaml:"spacing,omitempty"`
	RunSpacing float64     `yaml:"runSpacing,omitempty"`
	Boxes      []BoxConfig `yaml:"boxes"`
}

// BoxConfig is one fixed-size colored box in the flow.
type BoxConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Color  string  `yaml:"color,omitempty"`
	Radius float64 `yaml:"radius,omitempty"` // Corner-rounding clip radius
}

// BorderConfig wraps the flow in a titled border.
type BorderConfig struct {
	Title     string  `yaml:"title"`
	Radius    float64 `yaml:"radius,omitempty"`
	LineWidth float64 `yaml:"lineWidth,omitempty"`
	Color     string  `yaml:"color,omitempty"`
	Align     string  `yaml:"align,omitempty"` // "start" (default), "center", "end"
}

// Load reads and validates a scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene: %w", err)
	}

	var scene Scene
	if err := yaml.Unmarshal(data, &scene); err != nil {
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}

	scene.applyDefaults()
	if err := scene.validate(); err != nil {
		return nil, err
	}
	return &scene, nil
}

func (s *Scene) applyDefaults() {
	if s.Canvas.Width == 0 {
		s.Canvas.Width = 400
	}
	if s.Canvas.Height == 0 {
		s.Canvas.Height = 300
	}
	if s.Border != nil {
		if s.Border.Radius == 0 {
			s.Border.Radius = 8
		}
		if s.Border.LineWidth == 0 {
			s.Border.LineWidth = 1
		}
	}
}

func (s *Scene) validate() error {
	if s.Canvas.Width < 0 || s.Canvas.Height < 0 {
		return errors.New("canvas dimensions must be non-negative")
	}
	if len(s.Flow.Boxes) == 0 {
		return errors.New("scene needs at least one box under flow.boxes")
	}
	if _, err := s.Axis(); err != nil {
		return err
	}
	if s.Border != nil {
		if _, err := s.Border.Alignment(); err != nil {
			return err
		}
	}
	return nil
}

// Axis resolves the configured flow axis.
func (s *Scene) Axis() (layout.Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s.Flow.Axis)) {
	case "", "horizontal":
		return layout.AxisHorizontal, nil
	case "vertical":
		return layout.AxisVertical, nil
	default:
		return 0, fmt.Errorf("invalid flow axis %q: expected horizontal or vertical", s.Flow.Axis)
	}
}

// Alignment resolves the configured title alignment.
func (b *BorderConfig) Alignment() (shape.CutAlignment, error) {
	switch strings.ToLower(strings.TrimSpace(b.Align)) {
	case "", "start":
		return shape.CutAlignmentStart, nil
	case "center":
		return shape.CutAlignmentCenter, nil
	case "end":
		return shape.CutAlignmentEnd, nil
	default:
		return 0, fmt.Errorf("invalid border align %q: expected start, center or end", b.Align)
	}
}
