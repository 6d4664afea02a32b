package cli

import (
	"fmt"

	"github.com/dalemusser/propertypulse/internal/app/system/calc"
	"github.com/dalemusser/propertypulse/internal/app/system/format"
	"github.com/dalemusser/propertypulse/internal/app/system/inputval"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newEnergyCmd() *cobra.Command {
	var sqft, cost int
	var tier string

	cmd := &cobra.Command{
		Use:   "energy",
		Short: "Estimate energy savings for one property",
		Long: `Estimate monthly and annual energy savings, implementation cost and
payback period for a property of the given size and monthly energy cost.

Example:
  pulsectl energy --sqft 25000 --cost 15000 --tier Advanced`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, ok := inputval.OptimizationTier(tier)
			if !ok {
				return errors.Errorf("unknown optimization tier %q (want Basic, Standard or Advanced)", tier)
			}
			est, err := calc.EstimateEnergySavings(calc.EnergySavingsInput{
				SquareFeet:  float64(inputval.SquareFeet.Clamp(sqft)),
				MonthlyCost: float64(inputval.MonthlyCost.Clamp(cost)),
				Tier:        t,
			})
			if err != nil {
				return errors.Wrap(err, "estimate energy savings")
			}

			out := panel("Energy Savings Calculator", []field{
				{"Property size", format.Number(est.SquareFeet, 0) + " sq ft"},
				{"Monthly energy cost", format.Money(est.MonthlyCost)},
				{"Optimization level", string(est.Tier)},
				{"Monthly savings", format.Money(est.MonthlySaving)},
				{"Annual savings", format.Money(est.AnnualSaving)},
				{"Implementation cost", format.Money(est.ImplementationCost)},
				{"ROI period", format.OptionalYears(est.ROIYears, 1)},
			})
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().IntVar(&sqft, "sqft", inputval.SquareFeet.Default, "Property size in square feet (5000-100000)")
	cmd.Flags().IntVar(&cost, "cost", inputval.MonthlyCost.Default, "Current monthly energy cost in dollars (1000-50000)")
	cmd.Flags().StringVar(&tier, "tier", "Basic", "AI optimization level: Basic, Standard or Advanced")
	return cmd
}

func newImplementationCmd() *cobra.Command {
	var count int
	var tier, existing string

	cmd := &cobra.Command{
		Use:   "implementation",
		Short: "Estimate the cost and payback of an AI rollout",
		Long: `Estimate the total implementation cost, annual savings, payback period and
five-year net benefit of rolling AI systems out across several properties.

Example:
  pulsectl implementation --count 5 --tier standard --existing "Modern/Advanced"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, ok := inputval.ImplementationTier(tier)
			if !ok {
				return errors.Errorf("unknown implementation tier %q", tier)
			}
			ex, ok := inputval.ExistingSystemTier(existing)
			if !ok {
				return errors.Errorf("unknown existing system tier %q", existing)
			}
			est, err := calc.EstimateImplementation(calc.ImplementationInput{
				Properties: inputval.PropertyCount.Clamp(count),
				Tier:       t,
				Existing:   ex,
			})
			if err != nil {
				return errors.Wrap(err, "estimate implementation")
			}

			var footer []string
			if years, err := est.ROI(); err == nil {
				band := calc.ClassifyROIPeriod(years)
				footer = append(footer, notice(band.Level(), band.Message()))
			}

			out := panel("Implementation Cost Calculator", []field{
				{"Properties", fmt.Sprint(est.Properties)},
				{"Implementation level", string(est.Tier)},
				{"Existing systems", string(est.Existing)},
				{"Base cost", format.Money(est.BaseCost)},
				{"Existing system discount", format.Money(est.DiscountAmount)},
				{"Total cost", format.Money(est.TotalCost)},
				{"Annual savings", format.Money(est.AnnualSavings)},
				{"ROI period", format.OptionalYears(est.ROIPeriod, 2)},
				{"5-year net benefit", format.Money(est.FiveYearNetBenefit)},
			}, footer...)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().IntVar(&count, "count", inputval.PropertyCount.Default, "Number of properties (1-20)")
	cmd.Flags().StringVar(&tier, "tier", "Basic (Monitoring)", "Implementation level: Basic, Standard or Advanced")
	cmd.Flags().StringVar(&existing, "existing", "None/Minimal", "Existing building systems: None/Minimal, Standard or Modern/Advanced")
	return cmd
}
