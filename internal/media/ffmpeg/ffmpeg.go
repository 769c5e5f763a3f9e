// Package ffmpeg wraps the external ffmpeg binary for the two operations
// the report needs: probing a video for its frame count and rate, and
// extracting a single frame as a BMP thumbnail.
package ffmpeg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
)

// VideoInfo is the probe result: total frame count and integer frame rate.
type VideoInfo struct {
	FrameCount int
	FPS        int
}

var (
	frameCountPattern = regexp.MustCompile(`frame=\s*(\d+)`)
	fpsPattern        = regexp.MustCompile(`, (\d+) fps,`)
)

// Probe runs a stream-copy pass over the video's first video stream and
// parses the frame count and fps out of ffmpeg's progress output.
func Probe(ctx context.Context, binary, path string) (VideoInfo, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "ffmpeg"
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return VideoInfo{}, errors.New("ffmpeg probe: empty path")
	}

	cmd := exec.CommandContext(ctx, binary, "-i", path, "-map", "0:v:0", "-c", "copy", "-f", "null", "-")
	output, err := cmd.CombinedOutput()
	if err != nil {
		return VideoInfo{}, fmt.Errorf("ffmpeg probe: %w: %s", err, strings.TrimSpace(string(output)))
	}

	return parseProbeOutput(string(output))
}

// parseProbeOutput extracts the final frame counter and the stream fps from
// a probe pass's combined output. A missing fps is not fatal; FPS is zero
// and callers fall back to their configured default.
func parseProbeOutput(output string) (VideoInfo, error) {
	frameMatches := frameCountPattern.FindAllStringSubmatch(output, -1)
	if len(frameMatches) == 0 {
		return VideoInfo{}, errors.New("ffmpeg probe: no frame count in output")
	}
	frameCount, err := strconv.Atoi(frameMatches[len(frameMatches)-1][1])
	if err != nil {
		return VideoInfo{}, fmt.Errorf("ffmpeg probe: parse frame count: %w", err)
	}

	var fps int
	if fpsMatch := fpsPattern.FindStringSubmatch(output); fpsMatch != nil {
		if fps, err = strconv.Atoi(fpsMatch[1]); err != nil {
			return VideoInfo{}, fmt.Errorf("ffmpeg probe: parse fps: %w", err)
		}
	}

	return VideoInfo{FrameCount: frameCount, FPS: fps}, nil
}

// ExtractFrame decodes the given frame of the video, scaled to fit inside
// maxWidth x maxHeight, and returns it as BMP bytes.
func ExtractFrame(ctx context.Context, binary, path string, frame, maxWidth, maxHeight int) ([]byte, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "ffmpeg"
	}
	if frame < 0 {
		return nil, fmt.Errorf("ffmpeg extract: negative frame %d", frame)
	}

	filter := fmt.Sprintf(
		"select=gte(n\\,%d),scale=%d:%d:force_original_aspect_ratio=decrease",
		frame, maxWidth, maxHeight,
	)
	cmd := exec.CommandContext(ctx, binary,
		"-i", path,
		"-vf", filter,
		"-vframes", "1",
		"-f", "image2pipe",
		"-c:v", "bmp",
		"-",
	)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("ffmpeg extract frame %d: %w: %s", frame, err, strings.TrimSpace(stderr.String()))
	}
	if stdout.Len() == 0 {
		return nil, fmt.Errorf("ffmpeg extract frame %d: empty image output", frame)
	}
	return stdout.Bytes(), nil
}
