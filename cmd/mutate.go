package cmd

import (
	"fmt"

	"github.com/cottand/fxtype/types"
	"github.com/spf13/cobra"
)

// mutationCmd parses the type, path and any extra type arguments, applies the mutation
// and prints the resulting type
func (f *rootFlags) mutationCmd(use, short string, nArgs int, mutate func(t types.Type, path types.Path, args []string, s *session) (types.Type, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(nArgs),
		RunE: func(c *cobra.Command, args []string) error {
			s, err := f.newSession()
			if err != nil {
				return err
			}
			t, err := s.parseType(args[0])
			if err != nil {
				return err
			}
			path, err := parsePath(args[1])
			if err != nil {
				return err
			}
			result, err := mutate(t, path, args[2:], s)
			if err != nil {
				return fmt.Errorf("could not %s: %w", c.Name(), err)
			}
			_, err = fmt.Fprintln(c.OutOrStdout(), result)
			return err
		},
	}
}

func parseName(text string) (types.Name, error) {
	path, err := parsePath(text)
	if err != nil {
		return "", err
	}
	if path.Len() != 1 {
		return "", fmt.Errorf("expected a single field name, got '%s'", text)
	}
	return path.Last(), nil
}

func (f *rootFlags) addCmd() *cobra.Command {
	return f.mutationCmd(
		"add <type> <path> <name> <field type>",
		"Add a field to the aggregate at path, replacing any field of that name",
		4,
		func(t types.Type, path types.Path, args []string, s *session) (types.Type, error) {
			name, err := parseName(args[0])
			if err != nil {
				return nil, err
			}
			field, err := s.parseType(args[1])
			if err != nil {
				return nil, err
			}
			return types.Add(t, path, name, field)
		},
	)
}

func (f *rootFlags) dropCmd() *cobra.Command {
	return f.mutationCmd(
		"drop <type> <path> <name>",
		"Remove a field from the aggregate at path",
		3,
		func(t types.Type, path types.Path, args []string, _ *session) (types.Type, error) {
			name, err := parseName(args[0])
			if err != nil {
				return nil, err
			}
			return types.Drop(t, path, name)
		},
	)
}

func (f *rootFlags) setCmd() *cobra.Command {
	return f.mutationCmd(
		"set <type> <path> <field type>",
		"Replace the type at path",
		3,
		func(t types.Type, path types.Path, args []string, s *session) (types.Type, error) {
			field, err := s.parseType(args[0])
			if err != nil {
				return nil, err
			}
			return types.SetType(t, path, field)
		},
	)
}

func (f *rootFlags) dropKindCmd() *cobra.Command {
	return f.mutationCmd(
		"drop-kind <type> <path> <kind>",
		"Remove every field of a kind, at any depth below path",
		3,
		func(t types.Type, path types.Path, args []string, _ *session) (types.Type, error) {
			kind, ok := types.KindFromString(args[0])
			if !ok {
				return nil, fmt.Errorf("unknown kind '%s'", args[0])
			}
			return types.DropAllOfKind(t, path, kind)
		},
	)
}
