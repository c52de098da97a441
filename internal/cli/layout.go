package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tabsheet/pkg/config"
	"github.com/matzehuels/tabsheet/pkg/deck"
	"github.com/matzehuels/tabsheet/pkg/pipeline"
)

// layoutCommand creates the layout command, which reports how a deck
// would be laid out without drawing anything.
func (c *CLI) layoutCommand() *cobra.Command {
	var order string
	s := newSettings()

	cmd := &cobra.Command{
		Use:   "layout [deck]",
		Short: "Show the page layout chosen for a deck",
		Long: `Show the page layout chosen for a deck.

The deck file lists the cards to make dividers for (TOML, YAML or JSON).
The command prints the grid, the number of dividers per page, the page
count and the resulting margins. Use 'render' to produce printable output.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := s.resolve(cmd, c.configPath)
			if err != nil {
				return err
			}
			return c.runLayout(cmd.Context(), args[0], cfg, deck.Order(order))
		},
	}

	cmd.Flags().StringVar(&order, "order", string(deck.OrderFile), "card order: file, name, set")
	s.register(cmd)

	return cmd
}

// runLayout loads the deck, lays it out and prints a summary.
func (c *CLI) runLayout(ctx context.Context, input string, cfg config.Options, order deck.Order) error {
	d, err := deck.Load(input)
	if err != nil {
		return fmt.Errorf("load deck %s: %w", input, err)
	}

	runner := pipeline.NewRunner(nil, nil, c.Logger)
	defer runner.Close()

	plan, err := runner.Plan(ctx, pipeline.Options{Config: cfg, Deck: d, Order: order})
	if err != nil {
		return err
	}

	c.printPlan(d, plan)
	printNewline(c.out)
	printNextStep(c.out, "Render", appName+" render "+input)
	return nil
}

// printPlan prints the layout summary of a plan.
func (c *CLI) printPlan(d *deck.Deck, plan *pipeline.Plan) {
	w, h := plan.Config.PaperSize()
	hMargin, vMargin := plan.Pages.Margins()

	printSuccess(c.out, "%s: %d cards", d.Name, len(plan.Plots))
	printKeyValue(c.out, "Paper", fmt.Sprintf("%.1f × %.1f cm", w/config.CM, h/config.CM))
	if plan.Layout != nil {
		printKeyValue(c.out, "Layout", plan.Layout.String())
		printKeyValue(c.out, "Per page", StyleNumber.Render(fmt.Sprint(plan.Capacity())))
	} else {
		printKeyValue(c.out, "Layout", "sized per page")
	}
	printKeyValue(c.out, "Pages", StyleNumber.Render(fmt.Sprint(plan.Pages.PageCount())))
	printKeyValue(c.out, "Margins", fmt.Sprintf("%.2f × %.2f cm", hMargin/config.CM, vMargin/config.CM))
}
