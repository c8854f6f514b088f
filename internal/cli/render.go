package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Aouidate/CartoonBuilder/pkg/molecule"
	"github.com/Aouidate/CartoonBuilder/pkg/render/diagram"
	"github.com/Aouidate/CartoonBuilder/pkg/render/nodelink"
)

const (
	// FormatPNG is the raster diagram output format.
	FormatPNG = "png"
	// FormatSVG is the node-link SVG output format.
	FormatSVG = "svg"
	// FormatDOT is the raw Graphviz DOT output format.
	FormatDOT = "dot"

	defaultCanvasWidth  = 1000 // raster canvas width in pixels
	defaultCanvasHeight = 400  // raster canvas height in pixels
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output     string   // output file path (or base path for multiple formats)
	formats    []string // output formats: "png", "svg", "dot"
	connectors bool     // draw connector lines between scaffold and attachments
	detailed   bool     // show positions and directions in node-link output
	width      int      // raster canvas width in pixels
	height     int      // raster canvas height in pixels
}

// renderCommand creates the render command for drawing saved molecule
// documents. The PNG format produces the schematic block diagram; SVG and
// DOT produce a node-link view of the attachment graph.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{
		width:  defaultCanvasWidth,
		height: defaultCanvasHeight,
	}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a molecule document to PNG, SVG, or DOT",
		Long: `Render draws a molecule to image files. The input is either a saved JSON
document (full builder state) or a TOML manifest describing components,
points and attachments applied over the default catalog.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := validateFormats(opts.formats); err != nil {
				return err
			}
			ctx := withLogger(cmd.Context(), c.Logger)
			return runRender(ctx, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): png (default), svg, dot (comma-separated)")
	cmd.Flags().BoolVar(&opts.connectors, "connectors", false, "draw connector lines from the scaffold to attachments")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show positions and directions (svg, dot)")
	cmd.Flags().IntVar(&opts.width, "width", opts.width, "canvas width in pixels (png)")
	cmd.Flags().IntVar(&opts.height, "height", opts.height, "canvas height in pixels (png)")

	return cmd
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to ["png"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{FormatPNG}
	}
	return strings.Split(s, ",")
}

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{FormatPNG: true, FormatSVG: true, FormatDOT: true}

// validateFormats checks that all requested formats are valid.
func validateFormats(formats []string) error {
	for _, f := range formats {
		if !validFormats[f] {
			return fmt.Errorf("invalid format: %s (must be 'png', 'svg', or 'dot')", f)
		}
	}
	return nil
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input. If output carries a
// known format extension, that extension is stripped.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if validFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// runRender loads the molecule document from input and renders it to the
// requested formats.
func runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	b, err := loadInput(input)
	if err != nil {
		printError("Failed to load %s", input)
		return err
	}
	logger.Debugf("Loaded molecule: scaffold %s, %d attachments",
		b.Molecule.Scaffold().Label, b.Molecule.AttachmentCount())

	if len(opts.formats) == 1 {
		outputPath := opts.output
		if outputPath == "" {
			outputPath = basePath("", input) + "." + opts.formats[0]
		}
		if err := renderAndWrite(ctx, b.Molecule, opts.formats[0], outputPath, opts); err != nil {
			return err
		}
	} else {
		base := basePath(opts.output, input)
		for _, format := range opts.formats {
			if err := renderAndWrite(ctx, b.Molecule, format, base+"."+format, opts); err != nil {
				return err
			}
		}
	}

	prog.done("Rendered " + input)
	printSuccess("Rendered %s", input)
	printDetail("scaffold %s, %d attachments", b.Molecule.Scaffold().Label, b.Molecule.AttachmentCount())
	return nil
}

// renderAndWrite renders a single format and writes it to path.
func renderAndWrite(ctx context.Context, m *molecule.Molecule, format, path string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	data, err := renderMolecule(m, format, opts)
	if err != nil {
		return fmt.Errorf("%s: %w", format, err)
	}
	logger.Debugf("Generated %s: %d bytes", format, len(data))

	out, err := openOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.Write(data); err != nil {
		return err
	}

	printFile(path)
	return nil
}

// renderMolecule dispatches to the appropriate renderer based on format.
func renderMolecule(m *molecule.Molecule, format string, opts *renderOpts) ([]byte, error) {
	switch format {
	case FormatPNG:
		diagramOpts := []diagram.Option{diagram.WithCanvasSize(opts.width, opts.height)}
		if opts.connectors {
			diagramOpts = append(diagramOpts, diagram.WithConnectors())
		}
		return diagram.Render(m, diagramOpts...)
	case FormatSVG:
		dot := nodelink.ToDOT(m, nodelink.Options{Detailed: opts.detailed})
		return nodelink.RenderSVG(dot)
	case FormatDOT:
		return []byte(nodelink.ToDOT(m, nodelink.Options{Detailed: opts.detailed})), nil
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}

// nopCloser wraps an io.Writer with a no-op Close method.
// It is used to make os.Stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is "-", it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "-" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
