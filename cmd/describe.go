package cmd

import (
	"fmt"

	"github.com/cottand/fxtype/types"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func (f *rootFlags) describeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe <type>",
		Short: "Print a table of the fields, members or options at the top level of a type",
		Args:  cobra.ExactArgs(1),
		RunE: f.withTypes(func(c *cobra.Command, ts []types.Type) error {
			t := ts[0]
			if _, err := fmt.Fprintf(c.OutOrStdout(), "%s (%s, depth %d)\n", t, t.Kind(), types.MaxDepth(t)); err != nil {
				return err
			}
			if types.ChildCount(t) == 0 {
				return nil
			}

			table := tablewriter.NewWriter(c.OutOrStdout())
			table.SetColWidth(48)
			table.SetRowLine(false)
			table.SetAutoFormatHeaders(false)
			table.SetHeader([]string{"Name", "Display", "Kind", "Type"})
			for _, row := range describeRows(t) {
				table.Append(row)
			}
			table.Render()
			return nil
		}),
	}
}

// describeRows resolves each field of a lazy aggregate, since describing it means showing every field
func describeRows(t types.Type) [][]string {
	var rows [][]string
	if values := types.EnumValues(t); values != nil {
		for _, v := range values {
			rows = append(rows, []string{v.Name.Quoted(), "", "Constant", types.FormatEnumConstant(v.Value)})
		}
		return rows
	}

	names, _ := types.DisplayNamesOf(t)
	for _, name := range types.FieldNames(t) {
		display := ""
		if names != nil {
			if d, ok := names.DisplayName(name); ok {
				display = string(d)
			}
		}
		field, ok := types.FieldType(t, name)
		if !ok {
			rows = append(rows, []string{name.Quoted(), display, "", "unresolved"})
			continue
		}
		rows = append(rows, []string{name.Quoted(), display, field.Kind().String(), field.String()})
	}
	return rows
}
