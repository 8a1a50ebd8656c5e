package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmynk/godutch/internal/billfile"
	"github.com/mmynk/godutch/internal/cli"
	"github.com/mmynk/godutch/pkg/logging"
)

var (
	flagFile    string
	flagVerbose bool
)

// newRootCmd builds the command tree. Output goes to out so tests can capture it.
func newRootCmd(out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "godutch",
		Short:         "Split shared bills",
		Long:          "Settle who pays whom after a shared expense, or split pooled tip and tax by subtotal.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelWarn
			if flagVerbose {
				level = slog.LevelDebug
			}
			logging.Setup(logging.Options{Level: level})
		},
	}
	root.SetOut(out)

	root.PersistentFlags().StringVarP(&flagFile, "file", "f", "", "Read people and amounts from a TOML or YAML bill")
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug output to stderr")

	root.AddCommand(newSettleCmd(), newTipTaxCmd(), newEvenCmd())
	return root
}

// Execute is the main entry point called from main.go.
func Execute() {
	root := newRootCmd(os.Stdout)
	if err := root.Execute(); err != nil {
		root.PrintErrln("Error:", err)
		os.Exit(1)
	}
}

// loadBill is the shared input path for settle and tiptax: a bill file when
// --file is set, otherwise Name=amount arguments.
func loadBill(args []string) (billfile.Bill, error) {
	if flagFile != "" {
		slog.Debug("Loading bill", "path", flagFile)
		return billfile.Load(flagFile)
	}

	entries, err := cli.ParseEntries(args)
	if err != nil {
		return billfile.Bill{}, err
	}
	b := billfile.Bill{People: make([]billfile.Person, len(entries))}
	for i, e := range entries {
		b.People[i] = billfile.Person{Name: e.Name, Amount: e.Amount}
	}
	return b, nil
}
