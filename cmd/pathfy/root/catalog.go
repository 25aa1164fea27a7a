package root

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/meeharshu8685-dot/pathfy-1-sub000/internal/catalog"
	"github.com/meeharshu8685-dot/pathfy-1-sub000/internal/ui"
)

func newFieldsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fields",
		Short: "List goal fields with dedicated approaches",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, f := range catalog.Fields() {
				fmt.Fprintln(cmd.OutOrStdout(), f)
			}
			return nil
		},
	}
}

func newApproachesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "approaches <field>",
		Short: "Show the preparation approaches for a field",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("field is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			field := args[0]
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconPath, "Approaches for "+field))
			if !catalog.HasField(field) {
				fmt.Fprintln(out, ui.Muted.Render("No dedicated approaches; showing the general set."))
			}
			for _, t := range catalog.ForField(field) {
				fmt.Fprintln(out, "")
				printTemplate(out, t)
			}
			return nil
		},
	}
	return cmd
}

func printTemplate(out io.Writer, t catalog.Template) {
	fmt.Fprintf(out, "%s %s\n", ui.H2.Render(t.Name), ui.Muted.Render("("+t.ID+")"))
	fmt.Fprintln(out, "  "+ui.LabelValue("Duration", t.DurationRange))
	fmt.Fprintln(out, "  "+ui.LabelValue("Daily effort", t.DailyEffortRange+" h"))
	fmt.Fprintln(out, "  "+ui.LabelValue("Intensity", t.IntensityLevel))
	fmt.Fprintln(out, "  "+ui.LabelValue("Lifestyle trade-off", t.LifestyleTradeOff))
	fmt.Fprintln(out, "  "+ui.LabelValue("Suits", t.WhoThisSuits))
	if t.Description != "" {
		fmt.Fprintln(out, "  "+ui.Muted.Render(t.Description))
	}
}
