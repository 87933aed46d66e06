package cmd

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/go-crystal/crystal/cmd/crystal/internal/config"
	"github.com/go-crystal/crystal/pkg/graphics"
	"github.com/go-crystal/crystal/pkg/layout"
	"github.com/go-crystal/crystal/pkg/shape"
	"github.com/go-crystal/crystal/pkg/widgets"
)

func init() {
	RegisterCommand(renderCmd)
}

var renderCmd = &Command{
	Name:  "render",
	Short: "Render a scene file to SVG or PNG",
	Long: `Render reads a YAML scene file describing a flow of boxes and an
optional titled border, lays the scene out, and writes the result as an
SVG or PNG image. The output format is chosen by the -o file extension.`,
	Usage: "crystal render <scene.yaml> [-o output.svg]",
	Run:   runRender,
}

func runRender(args []string) error {
	scenePath, outPath, err := parseRenderArgs(args)
	if err != nil {
		return err
	}

	scene, err := config.Load(scenePath)
	if err != nil {
		log.Error("failed to load scene", "path", scenePath, "err", err)
		return err
	}

	root, err := buildScene(scene)
	if err != nil {
		return err
	}

	size := graphics.Size{Width: scene.Canvas.Width, Height: scene.Canvas.Height}
	laid := root.Layout(layout.Loose(size))

	var recorder graphics.PictureRecorder
	canvas := recorder.BeginRecording(size)
	root.Paint(canvas, graphics.RectFromLTWH(0, 0, laid.Width, laid.Height))
	list := recorder.EndRecording()

	if err := writeOutput(list, size, scene, outPath); err != nil {
		log.Error("failed to write output", "path", outPath, "err", err)
		return err
	}

	log.Info("rendered scene",
		"boxes", len(scene.Flow.Boxes),
		"ops", list.Len(),
		"out", outPath)
	return nil
}

func parseRenderArgs(args []string) (scenePath, outPath string, err error) {
	outPath = "scene.svg"
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-o" || arg == "--output":
			if i+1 >= len(args) {
				return "", "", fmt.Errorf("%s requires a file path", arg)
			}
			outPath = args[i+1]
			i++
		case strings.HasPrefix(arg, "--output="):
			outPath = strings.TrimPrefix(arg, "--output=")
		case strings.HasPrefix(arg, "-"):
			return "", "", fmt.Errorf("unknown flag %q", arg)
		default:
			if scenePath != "" {
				return "", "", fmt.Errorf("unexpected argument %q", arg)
			}
			scenePath = arg
		}
	}
	if scenePath == "" {
		return "", "", fmt.Errorf("missing scene file argument")
	}
	return scenePath, outPath, nil
}

// buildScene translates the scene config into a widget tree.
func buildScene(scene *config.Scene) (widgets.Widget, error) {
	axis, err := scene.Axis()
	if err != nil {
		return nil, err
	}

	children := make([]widgets.Widget, 0, len(scene.Flow.Boxes))
	for _, b := range scene.Flow.Boxes {
		color := graphics.RGB(0x33, 0x66, 0x99)
		if b.Color != "" {
			color, err = graphics.ParseColor(b.Color)
			if err != nil {
				return nil, err
			}
		}
		var child widgets.Widget = &widgets.Box{Width: b.Width, Height: b.Height, Color: color}
		radius := b.Radius
		child = widgets.If(radius > 0, child, func(w widgets.Widget) widgets.Widget {
			return &widgets.RoundCorners{Child: w, Corners: shape.AllCorners(), Radius: radius}
		})
		children = append(children, child)
	}

	var root widgets.Widget = &widgets.Flow{
		Children:   children,
		Axis:       axis,
		Spacing:    scene.Flow.Spacing,
		RunSpacing: scene.Flow.RunSpacing,
	}

	if scene.Border != nil {
		align, err := scene.Border.Alignment()
		if err != nil {
			return nil, err
		}
		color := graphics.ColorBlack
		if scene.Border.Color != "" {
			color, err = graphics.ParseColor(scene.Border.Color)
			if err != nil {
				return nil, err
			}
		}
		root = &widgets.TitledBorder{
			Title:          &widgets.Label{Text: scene.Border.Title, Color: color},
			Child:          root,
			CornerRadius:   scene.Border.Radius,
			LineWidth:      scene.Border.LineWidth,
			Color:          color,
			TitleAlignment: align,
			Insets:         widgets.EdgeInsetsAll(12),
		}
	}
	return root, nil
}

// writeOutput replays the display list onto the canvas matching the
// output file extension and writes the file.
func writeOutput(list *graphics.DisplayList, size graphics.Size, scene *config.Scene, outPath string) error {
	switch strings.ToLower(filepath.Ext(outPath)) {
	case ".png":
		canvas := graphics.NewImageCanvas(size)
		background := graphics.ColorWhite
		if scene.Canvas.Background != "" {
			parsed, err := graphics.ParseColor(scene.Canvas.Background)
			if err != nil {
				return err
			}
			background = parsed
		}
		canvas.Clear(background)
		list.Paint(canvas)
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("failed to create output: %w", err)
		}
		defer f.Close()
		if err := png.Encode(f, canvas.Image()); err != nil {
			return fmt.Errorf("failed to encode png: %w", err)
		}
		return nil
	case ".svg", "":
		canvas := graphics.NewSVGCanvas(size)
		list.Paint(canvas)
		if err := os.WriteFile(outPath, []byte(canvas.Document()), 0o644); err != nil {
			return fmt.Errorf("failed to write svg: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported output format %q: use .svg or .png", filepath.Ext(outPath))
	}
}
