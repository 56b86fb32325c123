package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/matroid/intersect"
)

func verifyCmd(a *app) *cobra.Command {
	var (
		solution []int
		output   outputFormat
	)

	c := &cobra.Command{
		Use:   "verify FILE",
		Short: "Check that a solution is common independent and cannot be extended",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			all, err := loadPath(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			if len(all) != 1 {
				return fmt.Errorf("%s: verify needs exactly one instance, found %d", args[0], len(all))
			}
			in := all[0]
			p, err := in.Build()
			if err != nil {
				return err
			}

			rep, err := intersect.Verify(p.M1, p.M2, solution, p.Ground)
			if err != nil {
				return err
			}
			a.log.WithField("instance", in.Name).WithField("report", rep).Debug("verified")

			if err = writeVerify(cmd.OutOrStdout(), output, in.Name, rep); err != nil {
				return err
			}
			if !rep.OK() {
				return errors.New("solution rejected")
			}
			return nil
		},
	}

	c.Flags().IntSliceVarP(&solution, "solution", "s", nil, "comma-separated element ids of the solution")
	registerOutput(c.Flags(), &output)
	_ = c.MarkFlagRequired("solution")

	return c
}
