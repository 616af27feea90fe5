package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/confkit/cast"
	"github.com/randalmurphal/confkit/config"
)

var casts = map[string]cast.Func{
	"string":   cast.String,
	"bool":     cast.Bool,
	"int":      cast.Int,
	"float":    cast.Float,
	"duration": cast.Duration,
	"csv":      cast.CSV(),
}

func castNames() []string {
	names := make([]string, 0, len(casts))
	for name := range casts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func newGetCmd(opts *options) *cobra.Command {
	var (
		def        string
		castName   string
		showSource bool
	)

	cmd := &cobra.Command{
		Use:   "get KEY",
		Short: "Resolve one configuration value",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			var lookupOpts []config.LookupOption
			if cmd.Flags().Changed("default") {
				lookupOpts = append(lookupOpts, config.Default(def))
			}
			if castName != "" {
				fn, ok := casts[castName]
				if !ok {
					return fmt.Errorf("%w: unknown cast %q (want one of %s)",
						errUsage, castName, strings.Join(castNames(), ", "))
				}
				lookupOpts = append(lookupOpts, config.Cast(fn))
			}

			r, err := opts.resolver(opts.logger(cmd.ErrOrStderr()))
			if err != nil {
				return err
			}

			v, src, err := r.Lookup(args[0], lookupOpts...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if showSource {
				fmt.Fprintf(out, "%s\t%s\n", format(v), src)
				return nil
			}
			fmt.Fprintln(out, format(v))
			return nil
		},
	}

	cmd.Flags().StringVar(&def, "default", "", "value to use when KEY is not found")
	cmd.Flags().StringVar(&castName, "cast", "", "convert the value: "+strings.Join(castNames(), ", "))
	cmd.Flags().BoolVar(&showSource, "show-source", false, "print where the value came from")

	return cmd
}

// format renders a resolved value on one line. Lists are comma-joined.
func format(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case []byte:
		return string(x)
	case []string:
		return strings.Join(x, ",")
	case []any:
		parts := make([]string, len(x))
		for i, e := range x {
			parts[i] = format(e)
		}
		return strings.Join(parts, ",")
	default:
		return fmt.Sprint(v)
	}
}
