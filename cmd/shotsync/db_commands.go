package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"shotsync/internal/store"
)

func newDBCommand(ctx *commandContext) *cobra.Command {
	dbCmd := &cobra.Command{
		Use:   "db",
		Short: "Worklist database utilities",
	}

	dbCmd.AddCommand(newDBShowCommand(ctx))
	dbCmd.AddCommand(newDBClearCommand(ctx))

	return dbCmd
}

func newDBShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show stored runs and frame records",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(st *store.Store) error {
				runs, err := st.ListRuns(cmd.Context())
				if err != nil {
					return err
				}
				records, err := st.ListFrames(cmd.Context())
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Database: %s\n\n", st.Path())

				runRows := make([][]string, 0, len(runs))
				for _, r := range runs {
					runRows = append(runRows, []string{
						r.RunID,
						r.ScriptUser,
						r.Tool,
						r.UserOnFile,
						r.FileName,
						r.SubmittedAt.Local().Format(time.RFC3339),
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"Run", "Submitted By", "Tool", "User", "File", "Submitted At"},
					runRows, nil))
				fmt.Fprintln(out)
				printFrameRecords(cmd, records)
				return nil
			})
		},
	}
}

func newDBClearCommand(ctx *commandContext) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all stored runs and frame records",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				return fmt.Errorf("refusing to clear the database without --force")
			}
			return ctx.withStore(func(st *store.Store) error {
				if err := st.Clear(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Cleared %s\n", st.Path())
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Confirm deletion")
	return cmd
}
