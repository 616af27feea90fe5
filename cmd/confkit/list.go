package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/confkit/repository"
)

func newListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print every key known to the configured sources",
		Long: "Print KEY=VALUE for every key in the discovered file or merged sources, sorted by key.\n" +
			"The process environment is only listed when \".os\" is passed to --source.",
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := opts.resolver(opts.logger(cmd.ErrOrStderr()))
			if err != nil {
				return err
			}
			cfg, err := r.Config()
			if err != nil {
				return err
			}

			exp, ok := cfg.Repository().(repository.Exporter)
			if !ok {
				return fmt.Errorf("%T cannot list its keys", cfg.Repository())
			}
			values, err := exp.All()
			if err != nil {
				return err
			}

			keys := make([]string, 0, len(values))
			for k := range values {
				keys = append(keys, k)
			}
			sort.Strings(keys)

			out := cmd.OutOrStdout()
			for _, k := range keys {
				fmt.Fprintf(out, "%s=%s\n", k, format(values[k]))
			}
			return nil
		},
	}
}
