package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/shiwake/internal/accounts"
	"github.com/cleared-dev/shiwake/internal/model"
)

func newAccountsCommand(g *globalFlags) *cobra.Command {
	var typeFilter string

	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "List the chart of accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(g)
			if err != nil {
				return err
			}

			list := e.chart.All()
			if typeFilter != "" {
				t, err := accounts.ParseType(typeFilter)
				if err != nil {
					return err
				}
				list = e.chart.ByType(t)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, a := range list {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", a.Name, a.Type, a.Description)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&typeFilter, "type", "", fmt.Sprintf("only list one type (%s, %s, %s, %s, %s)",
		model.AccountTypeAsset, model.AccountTypeLiability, model.AccountTypeEquity,
		model.AccountTypeRevenue, model.AccountTypeExpense))

	return cmd
}
