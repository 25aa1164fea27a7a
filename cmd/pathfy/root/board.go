package root

import (
	"github.com/spf13/cobra"

	"github.com/meeharshu8685-dot/pathfy-1-sub000/internal/tui"
)

func newBoardCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board <goal_id>",
		Short: "Open the TUI to compare and choose approaches",
		Args:  requireID,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := a.openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.RunBoard(ctx, svc, args[0], cmd.OutOrStdout())
		},
	}

	return cmd
}
