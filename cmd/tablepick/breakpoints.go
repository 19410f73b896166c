package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tablepick/internal/responsive"
)

func newBreakpointsCmd() *cobra.Command {
	var (
		width  int
		height int
		touch  bool
	)

	cmd := &cobra.Command{
		Use:   "breakpoints",
		Short: "Show viewport breakpoints and their recommended grid settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if cmd.Flags().Changed("width") {
				describeViewport(out, width, height, touch)
				return nil
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "BREAKPOINT\tWIDTH\tGRID\tCELL\tGAP")
			lower := 0
			for _, bp := range responsive.Breakpoints() {
				d := responsive.DefaultsFor(bp)
				fmt.Fprintf(tw, "%s\t%s\t%dx%d\t%d\t%d\n", bp, widthRange(bp, lower), d.GridSize.Rows, d.GridSize.Cols, d.CellSize, d.GapSize)
				lower = upperBound(bp) + 1
			}
			return tw.Flush()
		},
	}

	cmd.Flags().IntVar(&width, "width", 0, "Classify a single viewport width in pixels")
	cmd.Flags().IntVar(&height, "height", responsive.DefaultViewport.Height, "Viewport height in pixels, used with --width")
	cmd.Flags().BoolVar(&touch, "touch", false, "Assume a touch device, used with --width")

	return cmd
}

func upperBound(bp responsive.Breakpoint) int {
	switch bp {
	case responsive.Mobile:
		return responsive.MobileMaxWidth
	case responsive.Tablet:
		return responsive.TabletMaxWidth
	default:
		return -1
	}
}

func widthRange(bp responsive.Breakpoint, lower int) string {
	if hi := upperBound(bp); hi >= 0 {
		return fmt.Sprintf("%d-%d", lower, hi)
	}
	return fmt.Sprintf("%d+", lower)
}

func describeViewport(out io.Writer, width, height int, touch bool) {
	tr := responsive.NewTracker(touch)
	tr.SetViewport(responsive.Viewport{Width: width, Height: height})

	orientation := "portrait"
	if tr.IsLandscape() {
		orientation = "landscape"
	}
	grid := tr.RecommendedGridSize()

	fmt.Fprintf(out, "width %d: %s (%s", width, tr.Breakpoint().Label(), orientation)
	if tr.IsNarrowViewport() {
		fmt.Fprint(out, ", narrow")
	}
	fmt.Fprintln(out, ")")
	fmt.Fprintf(out, "grid %dx%d, cell %dpx, gap %dpx\n", grid.Rows, grid.Cols, tr.RecommendedCellSize(), tr.RecommendedGapSize())
	fmt.Fprintf(out, "min target %dpx\n", tr.MinTouchTargetSize())
}
