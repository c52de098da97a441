package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tabsheet/pkg/config"
	"github.com/matzehuels/tabsheet/pkg/deck"
	"github.com/matzehuels/tabsheet/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command that are
// not layout settings.
type renderOpts struct {
	output     string   // output file (single format) or base path
	formats    []string // output formats: "svg", "pdf", "png", "json"
	order      string   // card order: "file", "name", "set"
	pageBorder bool     // outline each sheet in the output
	scale      float64  // PNG resolution multiplier
	noCache    bool     // bypass the artifact cache
	refresh    bool     // re-render and overwrite cached artifacts
}

// renderCommand creates the render command for producing printable output.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{scale: pipeline.DefaultScale}
	s := newSettings()

	cmd := &cobra.Command{
		Use:   "render [deck]",
		Short: "Render dividers for a deck to SVG, PDF, PNG or JSON",
		Long: `Render dividers for a deck to SVG, PDF, PNG or JSON.

PDF and PNG output are converted from SVG with rsvg-convert
(brew install librsvg, or apt install librsvg2-bin).

Rendered artifacts are cached locally, or in Redis when ` + envRedisURL + `
is set.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			cfg, err := s.resolve(cmd, c.configPath)
			if err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], cfg, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (default: deck name)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), json, pdf, png (comma-separated)")
	cmd.Flags().StringVar(&opts.order, "order", string(deck.OrderFile), "card order: file, name, set")
	cmd.Flags().BoolVar(&opts.pageBorder, "page-border", false, "outline each sheet")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG resolution multiplier")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even when cached")
	s.register(cmd)

	return cmd
}

// runRender loads the deck, runs the pipeline and writes one file per format.
func (c *CLI) runRender(ctx context.Context, input string, cfg config.Options, opts renderOpts) error {
	d, err := deck.Load(input)
	if err != nil {
		return fmt.Errorf("load deck %s: %w", input, err)
	}

	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %d dividers...", len(d.Cards)))
	spinner.Start()

	prog := newProgress(c.Logger)
	res, err := runner.Execute(ctx, pipeline.Options{
		Config:     cfg,
		Deck:       d,
		Order:      deck.Order(opts.order),
		Formats:    opts.formats,
		PageBorder: opts.pageBorder,
		Scale:      opts.scale,
		Refresh:    opts.refresh,
	})
	if err != nil {
		spinner.StopWithError(c.out, "Render failed")
		return err
	}
	spinner.Stop()
	prog.done(fmt.Sprintf("Rendered %d pages", res.Stats.Pages))

	paths := outputPaths(input, opts.output, opts.formats)
	for _, format := range opts.formats {
		if err := os.WriteFile(paths[format], res.Artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", paths[format], err)
		}
	}

	c.printPlan(d, res.Plan)
	for _, format := range opts.formats {
		printFile(c.out, paths[format])
	}
	printStats(c.out, res.Stats, res.CacheInfo.RenderHit)
	return nil
}

// outputPaths maps each format to a file. A single format with an explicit
// output path uses it as given; otherwise the extension is appended to the
// output base, which defaults to the deck path without its extension.
func outputPaths(input, output string, formats []string) map[string]string {
	paths := make(map[string]string, len(formats))
	if len(formats) == 1 && output != "" && filepath.Ext(output) != "" {
		paths[formats[0]] = output
		return paths
	}
	base := strings.TrimSuffix(input, filepath.Ext(input))
	if output != "" {
		base = strings.TrimSuffix(output, filepath.Ext(output))
	}
	for _, f := range formats {
		paths[f] = base + "." + f
	}
	return paths
}
