package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/dalemusser/propertypulse/internal/app/store/datasets"
	metricsstore "github.com/dalemusser/propertypulse/internal/app/store/metrics"
	"github.com/dalemusser/propertypulse/internal/app/store/sampledata"
	"github.com/dalemusser/propertypulse/internal/app/system/calc"
	"github.com/dalemusser/propertypulse/internal/app/system/charts"
	"github.com/dalemusser/propertypulse/internal/app/system/format"
	"github.com/dalemusser/propertypulse/internal/app/system/tabular"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newROICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "roi",
		Short: "Show the five-year investment and cumulative ROI table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := sampledata.ROIInputs()
			withROI, err := calc.WithCumulativeROI(rows)
			if err != nil {
				// Show the inputs with N/A rather than failing the whole table.
				withROI = rows
			}

			cells := make([][]string, len(withROI))
			for i, y := range withROI {
				cum := format.NA
				if y.CumulativeROI != nil {
					cum = format.Percent(*y.CumulativeROI)
				}
				cells[i] = []string{fmt.Sprint(y.Year), format.Money(y.Investment), format.Money(y.Returns), cum}
			}

			out := panelStyle.Render(titleStyle.Render("Return on Investment") + "\n\n" +
				table([]string{"Year", "Investment", "Returns", "Cumulative ROI"}, cells))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
}

func newMetricsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "metrics",
		Short: "Show the derived energy and ROI figures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := metricsstore.FetchDerived()

			optional := func(p *float64, f func(float64) string) string {
				if p == nil {
					return format.NA
				}
				return f(*p)
			}
			finalROI := format.NA
			if n := len(d.CumulativeROI); n > 0 {
				finalROI = format.Percent(d.CumulativeROI[n-1])
			}

			out := panel("Derived Metrics", []field{
				{"Energy reduction", optional(d.EnergyReductionPercent, format.Percent)},
				{"Average monthly saving", optional(d.AverageMonthlySaving, func(v float64) string { return format.Number(v, 0) })},
				{"Projected annual savings", optional(d.AnnualEnergySaving, format.Money)},
				{"Final cumulative ROI", finalROI},
			}, d.Errors...)
			_, err := fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
}

func newExportCmd() *cobra.Command {
	var dataset, formatName, out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a sample dataset as CSV or Excel",
		Long: `Write one of the sample datasets to a file.

Example:
  pulsectl export --dataset roi --format xlsx --out roi.xlsx
  pulsectl export --dataset alerts --out -`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := tabular.ParseFormat(formatName)
			if err != nil {
				return errors.WithStack(err)
			}
			tbl, err := datasets.Table(dataset)
			if err != nil {
				return errors.Wrapf(err, "available datasets: %v", datasets.Names())
			}
			if out == "" {
				out = tbl.Filename(f)
			}

			return writeTo(cmd.OutOrStdout(), out, func(w io.Writer) error {
				return tabular.Write(w, tbl, f)
			})
		},
	}

	cmd.Flags().StringVar(&dataset, "dataset", "roi", "Dataset to export")
	cmd.Flags().StringVar(&formatName, "format", "csv", "Output format: csv or xlsx")
	cmd.Flags().StringVar(&out, "out", "", "Output file, or - for stdout (default <dataset>.<format>)")
	return cmd
}

func newChartCmd() *cobra.Command {
	var name, out string
	var width, height int

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Render a dashboard chart as SVG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := charts.Build(name)
			if err != nil {
				return errors.Wrapf(err, "available charts: %v", charts.Names())
			}
			if out == "" {
				out = name + ".svg"
			}
			rd := charts.NewRenderer(width, height)
			return writeTo(cmd.OutOrStdout(), out, func(w io.Writer) error {
				return rd.SVG(w, spec)
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", charts.NameROI, "Chart name")
	cmd.Flags().StringVar(&out, "out", "", "Output file, or - for stdout (default <name>.svg)")
	cmd.Flags().IntVar(&width, "width", charts.DefaultWidth, "Width in pixels")
	cmd.Flags().IntVar(&height, "height", charts.DefaultHeight, "Height in pixels")
	return cmd
}

// writeTo runs write against path, or against stdout when path is "-".
// A confirmation line goes to stdout for file targets.
func writeTo(stdout io.Writer, path string, write func(io.Writer) error) (err error) {
	if path == "-" {
		return errors.Wrap(write(stdout), "write output")
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "close %s", path)
		}
	}()

	if err := write(f); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	_, err = fmt.Fprintln(stdout, notice("success", "wrote "+path))
	return err
}
