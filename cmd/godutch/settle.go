package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mmynk/godutch/internal/calculator"
	"github.com/mmynk/godutch/internal/cli"
)

func newSettleCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "settle [Name=paid | paid ...]",
		Short:   "Compute who pays whom so everyone pays an equal share",
		Example: "  godutch settle Alice=30 Bob=10 Carol=20\n  godutch settle 30 10 20\n  godutch settle --file dinner.toml",
		RunE:    runSettle,
	}
}

func runSettle(cmd *cobra.Command, args []string) error {
	bill, err := loadBill(args)
	if err != nil {
		return err
	}
	if len(bill.People) == 0 {
		return errors.New("no people given")
	}

	s := calculator.SettleDetailed(bill.Participants())
	slog.Debug("Settled",
		"people", len(bill.People),
		"share", s.Share,
		"transfers", len(s.Transfers),
		"moved", calculator.TotalMoved(s.Transfers),
	)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprintln(out, cli.RenderTitle(titleOr(bill.Title, "GO DUTCH")))
	fmt.Fprintln(out)
	fmt.Fprint(out, cli.RenderSettlement(s))
	return nil
}

func titleOr(title, fallback string) string {
	if title != "" {
		return title
	}
	return fallback
}
