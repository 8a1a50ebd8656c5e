package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmynk/godutch/internal/calculator"
	"github.com/mmynk/godutch/internal/cli"
)

var (
	flagBill       float64
	flagPeople     int
	flagTipPercent float64
)

func newEvenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "even",
		Short:   "Split a bill evenly with a tip percentage on top",
		Example: "  godutch even --bill 100 --people 4 --tip 18",
		Args:    cobra.NoArgs,
		RunE:    runEven,
	}
	cmd.Flags().Float64Var(&flagBill, "bill", 0, "Bill amount before tip")
	cmd.Flags().IntVar(&flagPeople, "people", 1, "Number of people")
	cmd.Flags().Float64Var(&flagTipPercent, "tip", 0, "Tip percentage")
	_ = cmd.MarkFlagRequired("bill")
	return cmd
}

func runEven(cmd *cobra.Command, _ []string) error {
	each, err := calculator.SplitEvenly(flagBill, flagPeople, flagTipPercent)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "  %s each (%d people, %s tip on %s)\n",
		cli.FormatMoney(each),
		flagPeople,
		cli.FormatPercent(flagTipPercent),
		cli.FormatMoney(flagBill),
	)
	return nil
}
