package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"shotsync/internal/report"
	"shotsync/internal/store"
)

func newReportCommand(ctx *commandContext) *cobra.Command {
	var videoPath string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Render the HTML worklist report for a video",
		Long: `Report probes the video for its frame count and rate, selects the stored
frame ranges that span more than one frame and fit inside the video, and
renders an HTML table with per-range timecodes and midpoint thumbnails.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			return ctx.withStore(func(st *store.Store) error {
				gen := report.New(cfg, st, logger)
				summary, err := gen.Generate(cmd.Context(), videoPath)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Video: %d frames at %d fps\n", summary.Video.FrameCount, summary.Video.FPS)
				fmt.Fprintf(out, "Rendered %d ranges (%d skipped) to %s\n",
					summary.Records, summary.Skipped, summary.ReportPath)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&videoPath, "video", "", "Reference video the stored frame ranges were reviewed against")
	_ = cmd.MarkFlagRequired("video")

	return cmd
}
