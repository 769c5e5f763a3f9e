// Package report renders the spreadsheet-style worklist: persisted frame
// ranges filtered against a probed video, with derived time ranges and a
// midpoint thumbnail per range.
package report

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/schollz/progressbar/v3"

	"shotsync/internal/config"
	"shotsync/internal/frames"
	"shotsync/internal/logging"
	"shotsync/internal/media/ffmpeg"
	"shotsync/internal/store"
	"shotsync/internal/timecode"
)

// Generator builds HTML reports from the worklist database and a reference
// video. The ffmpeg entry points are fields so tests can substitute them.
type Generator struct {
	cfg    *config.Config
	store  *store.Store
	logger *slog.Logger

	probe   func(ctx context.Context, binary, path string) (ffmpeg.VideoInfo, error)
	extract func(ctx context.Context, binary, path string, frame, maxWidth, maxHeight int) ([]byte, error)
}

// Summary describes one generated report.
type Summary struct {
	Video      ffmpeg.VideoInfo
	Records    int
	Skipped    int
	ReportPath string
}

// New builds a report generator over the given store.
func New(cfg *config.Config, st *store.Store, logger *slog.Logger) *Generator {
	return &Generator{
		cfg:     cfg,
		store:   st,
		logger:  logging.NewComponentLogger(logger, "report"),
		probe:   ffmpeg.Probe,
		extract: ffmpeg.ExtractFrame,
	}
}

// Generate probes the video, selects the multi-frame ranges that fit inside
// it, extracts a midpoint thumbnail per range, and writes the HTML report.
// Records whose timecode cannot be derived are skipped, not fatal.
func (g *Generator) Generate(ctx context.Context, videoPath string) (Summary, error) {
	probeCtx, cancel := context.WithTimeout(ctx, time.Duration(g.cfg.Media.ProbeTimeout)*time.Second)
	defer cancel()
	video, err := g.probe(probeCtx, g.cfg.Media.FFmpegBinary, videoPath)
	if err != nil {
		return Summary{}, fmt.Errorf("probe video: %w", err)
	}
	if video.FPS <= 0 {
		video.FPS = g.cfg.Media.DefaultFPS
	}
	g.logger.Info("probed video",
		logging.String("video", videoPath),
		logging.Int("frame_count", video.FrameCount),
		logging.Int("fps", video.FPS))

	records, err := g.store.MultiFrameRanges(ctx, video.FrameCount)
	if err != nil {
		return Summary{}, err
	}

	if err := os.MkdirAll(g.cfg.ThumbnailDir(), 0o755); err != nil {
		return Summary{}, fmt.Errorf("create thumbnail directory: %w", err)
	}

	tw := table.NewWriter()
	tw.Style().HTML.EscapeText = false
	tw.AppendHeader(table.Row{"Location", "Frames", "Timecode", "Thumbnail"})

	summary := Summary{Video: video, ReportPath: g.cfg.ReportPath()}
	bar := progressbar.Default(int64(len(records)), "rendering report")
	for _, record := range records {
		_ = bar.Add(1)

		row, err := g.buildRow(ctx, videoPath, video.FPS, record)
		if err != nil {
			summary.Skipped++
			g.logger.Warn("skipping record",
				logging.Int64("record_id", record.ID),
				logging.String("frame_range", record.FrameRange),
				logging.Error(err))
			continue
		}
		tw.AppendRow(row)
		summary.Records++
	}
	_ = bar.Finish()

	html := "<!DOCTYPE html>\n<html><body>\n" + tw.RenderHTML() + "\n</body></html>\n"
	if err := os.WriteFile(summary.ReportPath, []byte(html), 0o644); err != nil {
		return Summary{}, fmt.Errorf("write report: %w", err)
	}
	return summary, nil
}

func (g *Generator) buildRow(ctx context.Context, videoPath string, fps int, record store.FrameRecord) (table.Row, error) {
	r, err := frames.ParseRange(record.FrameRange)
	if err != nil {
		return nil, err
	}

	// An out-of-range timecode fails this record only; Generate skips it
	// and the run continues.
	timeRange, err := timecode.FromRange(r, fps)
	if err != nil {
		return nil, err
	}

	thumbName := fmt.Sprintf("frame_%06d.bmp", r.Midpoint())
	extractCtx, cancel := context.WithTimeout(ctx, time.Duration(g.cfg.Media.ExtractTimeout)*time.Second)
	defer cancel()
	image, err := g.extract(extractCtx, g.cfg.Media.FFmpegBinary, videoPath,
		r.Midpoint(), g.cfg.Media.ThumbnailMaxWidth, g.cfg.Media.ThumbnailMaxHeight)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(filepath.Join(g.cfg.ThumbnailDir(), thumbName), image, 0o644); err != nil {
		return nil, fmt.Errorf("write thumbnail: %w", err)
	}

	img := fmt.Sprintf(`<img src="%s" alt="frame %d"/>`,
		filepath.ToSlash(filepath.Join(g.cfg.Output.ThumbnailDir, thumbName)), r.Midpoint())
	return table.Row{record.Location, record.FrameRange, timeRange, img}, nil
}
