package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/matroid/instance"
)

func catalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Print the built-in instances as a YAML stream",
		Long: "Catalog prints fifteen small graphic/transversal instances with their " +
			"expected sizes. The output can be piped into \"matroidx solve -\".",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return instance.Encode(cmd.OutOrStdout(), instance.Catalog()...)
		},
	}
}
