package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"shotsync/internal/exportline"
	"shotsync/internal/store"
)

const queryDateLayout = "2006-01-02"

func newQueryCommand(ctx *commandContext) *cobra.Command {
	queryCmd := &cobra.Command{
		Use:   "query",
		Short: "Query the worklist database",
	}

	queryCmd.AddCommand(newQueryByUserCommand(ctx))
	queryCmd.AddCommand(newQueryBeforeDateCommand(ctx))
	queryCmd.AddCommand(newQueryOnStorageCommand(ctx))
	queryCmd.AddCommand(newQueryUsersCommand(ctx))

	return queryCmd
}

func newQueryByUserCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "by-user <user>",
		Short: "List work submitted by a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(st *store.Store) error {
				records, err := st.WorkByUser(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				printFrameRecords(cmd, records)
				return nil
			})
		},
	}
}

func newQueryBeforeDateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "before-date <tool> <YYYY-MM-DD>",
		Short: "List a tool's work dated before a cutoff",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tool, err := parseToolArg(args[0])
			if err != nil {
				return err
			}
			cutoff, err := time.Parse(queryDateLayout, args[1])
			if err != nil {
				return fmt.Errorf("bad date %q: want YYYY-MM-DD", args[1])
			}
			return ctx.withStore(func(st *store.Store) error {
				records, err := st.WorkBeforeDate(cmd.Context(), string(tool), cutoff)
				if err != nil {
					return err
				}
				printFrameRecords(cmd, records)
				return nil
			})
		},
	}
}

func newQueryOnStorageCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "on-storage <storage> <YYYY-MM-DD>",
		Short: "List work on a storage root for a given date",
		Long: `Lists the reconciled ranges whose canonical path lives under the named
storage root (the first path segment, e.g. hpsans13) and whose export file
is dated on the given day.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			storage := strings.Trim(args[0], "/")
			date, err := time.Parse(queryDateLayout, args[1])
			if err != nil {
				return fmt.Errorf("bad date %q: want YYYY-MM-DD", args[1])
			}
			return ctx.withStore(func(st *store.Store) error {
				records, err := st.WorkOnStorageByDate(cmd.Context(), storage, date)
				if err != nil {
					return err
				}
				printFrameRecords(cmd, records)
				return nil
			})
		},
	}
}

func newQueryUsersCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "users <tool>",
		Short: "List the users who submitted exports from a tool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tool, err := parseToolArg(args[0])
			if err != nil {
				return err
			}
			return ctx.withStore(func(st *store.Store) error {
				users, err := st.UsersByTool(cmd.Context(), string(tool))
				if err != nil {
					return err
				}
				rows := make([][]string, 0, len(users))
				for _, u := range users {
					rows = append(rows, []string{u})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"User"}, rows, nil))
				return nil
			})
		},
	}
}

func parseToolArg(arg string) (exportline.Tool, error) {
	for _, tool := range []exportline.Tool{exportline.ToolBaselight, exportline.ToolFlame} {
		if strings.EqualFold(arg, string(tool)) {
			return tool, nil
		}
	}
	return "", fmt.Errorf("unknown tool %q (want baselight or flame)", arg)
}

func printFrameRecords(cmd *cobra.Command, records []store.FrameRecord) {
	out := cmd.OutOrStdout()
	if len(records) == 0 {
		fmt.Fprintln(out, "No matching records")
		return
	}

	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []string{
			rec.FileDate.Format(queryDateLayout),
			rec.Tool,
			rec.UserOnFile,
			rec.Location,
			rec.FrameRange,
		})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"Date", "Tool", "User", "Location", "Frames"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight},
	))
}
