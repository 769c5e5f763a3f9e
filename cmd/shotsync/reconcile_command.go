package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"shotsync/internal/exportline"
	"shotsync/internal/logging"
	"shotsync/internal/reconcile"
	"shotsync/internal/sink"
	"shotsync/internal/store"
	"shotsync/internal/workorder"
)

func newReconcileCommand(ctx *commandContext) *cobra.Command {
	var exportPaths []string
	var workorderPath string
	var output string

	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Reconcile export files against a work order",
		Long: `Reconcile parses one or more review-tool export files, maps each reviewed
path to its canonical work-order location, and writes the compressed frame
ranges to a CSV worklist or to the worklist database.

Export file names must follow Tool_User_YYYYMMDD.ext so the run can record
who reviewed the frames and when.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			orderContent, err := os.ReadFile(workorderPath)
			if err != nil {
				return fmt.Errorf("read work order: %w", err)
			}
			order, err := workorder.Parse(string(orderContent))
			if err != nil {
				return err
			}

			sources := make([]exportline.Source, 0, len(exportPaths))
			contents := make([]string, 0, len(exportPaths))
			for _, path := range exportPaths {
				src, err := exportline.ParseSourceName(path)
				if err != nil {
					return err
				}
				content, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("read export file: %w", err)
				}
				sources = append(sources, src)
				contents = append(contents, string(content))
			}

			pipeline := reconcile.New(order, logger)
			out := cmd.OutOrStdout()

			switch output {
			case "csv":
				csvFile, err := os.Create(cfg.CSVPath())
				if err != nil {
					return fmt.Errorf("create csv: %w", err)
				}
				defer csvFile.Close()

				csvSink, err := sink.NewCSVSink(csvFile, order)
				if err != nil {
					return err
				}
				for i, src := range sources {
					stats, err := pipeline.Run(cmd.Context(), src.Tool, contents[i], csvSink)
					if err != nil {
						return err
					}
					printStats(out, src, stats)
				}
				if err := csvSink.Flush(); err != nil {
					return fmt.Errorf("flush csv: %w", err)
				}
				fmt.Fprintf(out, "Wrote worklist to %s\n", cfg.CSVPath())
				return nil

			case "db":
				return ctx.withStore(func(st *store.Store) error {
					for i, src := range sources {
						runID, err := st.BeginRun(cmd.Context(), scriptUser(), src)
						if err != nil {
							return err
						}
						stats, err := pipeline.Run(cmd.Context(), src.Tool, contents[i], sink.NewDBSink(st, runID, src))
						if err != nil {
							return err
						}
						logger.Info("stored run",
							logging.String("run_id", runID),
							logging.String("file", src.FileName),
							logging.Int("records", stats.Records))
						printStats(out, src, stats)
					}
					return nil
				})

			default:
				return fmt.Errorf("unknown output %q (want csv or db)", output)
			}
		},
	}

	cmd.Flags().StringArrayVarP(&exportPaths, "file", "f", nil, "Export file to process (repeatable)")
	cmd.Flags().StringVarP(&workorderPath, "workorder", "x", "", "Work-order file")
	cmd.Flags().StringVarP(&output, "output", "o", "csv", "Destination: csv or db")
	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("workorder")

	return cmd
}

func printStats(out io.Writer, src exportline.Source, stats reconcile.Stats) {
	fmt.Fprintf(out, "%s: %d lines, %d records, %d unmatched, %d malformed\n",
		src.FileName, stats.Lines, stats.Records, stats.Unmatched, stats.Malformed)
}
