package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmynk/godutch/internal/calculator"
	"github.com/mmynk/godutch/internal/cli"
)

var (
	flagTax float64
	flagTip float64
)

func newTipTaxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tiptax [Name=subtotal ...]",
		Short:   "Split pooled tax and tip in proportion to each subtotal",
		Example: "  godutch tiptax --tax 0.8 --tip 1.2 Alice=3 Bob=5\n  godutch tiptax --file dinner.yaml",
		RunE:    runTipTax,
	}
	cmd.Flags().Float64Var(&flagTax, "tax", 0, "Pooled tax amount (overrides the bill file)")
	cmd.Flags().Float64Var(&flagTip, "tip", 0, "Pooled tip amount (overrides the bill file)")
	return cmd
}

func runTipTax(cmd *cobra.Command, args []string) error {
	bill, err := loadBill(args)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("tax") || flagFile == "" {
		bill.Tax = flagTax
	}
	if cmd.Flags().Changed("tip") || flagFile == "" {
		bill.Tip = flagTip
	}
	if bill.Tax < 0 || bill.Tip < 0 {
		return errors.New("tax and tip must not be negative")
	}

	a := calculator.Allocate(bill.Items(), bill.Tax, bill.Tip)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprintln(out, cli.RenderTitle(titleOr(bill.Title, "TIP & TAX")))
	fmt.Fprintln(out)
	fmt.Fprint(out, cli.RenderAllocation(a))
	return nil
}
