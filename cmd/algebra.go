package cmd

import (
	"fmt"

	"github.com/cottand/fxtype/types"
	"github.com/spf13/cobra"
)

func (f *rootFlags) acceptsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "accepts <self> <other>",
		Short: "Print whether a value of type other can be used where self is expected",
		Args:  cobra.ExactArgs(2),
		RunE: f.withTypes(func(c *cobra.Command, ts []types.Type) error {
			_, err := fmt.Fprintln(c.OutOrStdout(), types.Accepts(ts[0], ts[1]))
			return err
		}),
	}
}

func (f *rootFlags) coercesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "coerces <self> <target>",
		Short: "Print whether self converts implicitly to target",
		Args:  cobra.ExactArgs(2),
		RunE: f.withTypes(func(c *cobra.Command, ts []types.Type) error {
			_, err := fmt.Fprintln(c.OutOrStdout(), types.CoercesTo(ts[0], ts[1]))
			return err
		}),
	}
}

// binaryCmd prints the result of combining two types
func (f *rootFlags) binaryCmd(use, short string, op func(a, b types.Type) types.Type) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <a> <b>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: f.withTypes(func(c *cobra.Command, ts []types.Type) error {
			_, err := fmt.Fprintln(c.OutOrStdout(), op(ts[0], ts[1]))
			return err
		}),
	}
}

func (f *rootFlags) unionCmd() *cobra.Command {
	return f.binaryCmd("union", "Print the union of two types", types.Union)
}

func (f *rootFlags) intersectCmd() *cobra.Command {
	return f.binaryCmd("intersect", "Print what two types have in common", types.Intersection)
}

func (f *rootFlags) supertypeCmd() *cobra.Command {
	return f.binaryCmd("supertype", "Print the least upper bound of two types", types.Supertype)
}

func (f *rootFlags) fmtCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fmt <type>...",
		Short: "Print types in canonical form",
		Args:  cobra.MinimumNArgs(1),
		RunE: f.withTypes(func(c *cobra.Command, ts []types.Type) error {
			for _, t := range ts {
				if _, err := fmt.Fprintln(c.OutOrStdout(), t); err != nil {
					return err
				}
			}
			return nil
		}),
	}
}
