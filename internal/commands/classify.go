package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/shiwake/internal/classify"
)

func newClassifyCommand(g *globalFlags) *cobra.Command {
	var in classify.Input
	var explain, normalize bool

	cmd := &cobra.Command{
		Use:   "classify <description>",
		Short: "Print the summary label a description generalizes to",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(g)
			if err != nil {
				return err
			}

			in.Description = strings.Join(args, " ")
			if normalize {
				in.Description = e.normalizer.Normalize(in.Description)
			}
			label, rule := e.classifier.Match(in)

			out := cmd.OutOrStdout()
			if !explain {
				fmt.Fprintln(out, label)
				return nil
			}
			if rule == "" {
				rule = "(none, description kept)"
			}
			fmt.Fprintf(out, "label: %s\nrule:  %s\n", label, rule)
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Account, "account", "", "勘定科目 of the row")
	cmd.Flags().StringVar(&in.Creditor, "creditor", "", "貸方取引先名")
	cmd.Flags().StringVar(&in.Debtor, "debtor", "", "借方取引先名")
	cmd.Flags().BoolVar(&explain, "explain", false, "also print which rule matched")
	cmd.Flags().BoolVar(&normalize, "normalize", false, "normalize the description first, as convert does")

	return cmd
}
