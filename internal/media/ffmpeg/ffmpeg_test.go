package ffmpeg

import (
	"strings"
	"testing"
)

const sampleProbeOutput = `Input #0, mov,mp4,m4a,3gp,3g2,mj2, from 'twitch_nft_demo.mp4':
  Duration: 00:00:20.00, start: 0.000000, bitrate: 2676 kb/s
  Stream #0:0[0x1](und): Video: h264 (High), yuv420p(progressive), 1280x720, 2540 kb/s, 30 fps, 30 tbr, 15360 tbn (default)
Output #0, null, to 'pipe:':
frame=  120 fps=0.0 q=-1.0 size=N/A time=00:00:04.00 bitrate=N/A speed= 512x
frame=  480 fps=478 q=-1.0 size=N/A time=00:00:16.00 bitrate=N/A speed= 509x
frame=  600 fps=481 q=-1.0 Lsize=N/A time=00:00:20.00 bitrate=N/A speed= 510x
`

func TestParseProbeOutput(t *testing.T) {
	info, err := parseProbeOutput(sampleProbeOutput)
	if err != nil {
		t.Fatalf("parseProbeOutput: %v", err)
	}
	if info.FrameCount != 600 {
		t.Errorf("FrameCount = %d, want 600 (last counter wins)", info.FrameCount)
	}
	if info.FPS != 30 {
		t.Errorf("FPS = %d, want 30", info.FPS)
	}
}

func TestParseProbeOutputMissingFrames(t *testing.T) {
	output := strings.ReplaceAll(sampleProbeOutput, "frame=", "fr=")
	if _, err := parseProbeOutput(output); err == nil {
		t.Fatal("expected error for output without frame counters")
	}
}

func TestParseProbeOutputMissingFPS(t *testing.T) {
	output := strings.ReplaceAll(sampleProbeOutput, " fps,", " Hz,")
	info, err := parseProbeOutput(output)
	if err != nil {
		t.Fatalf("parseProbeOutput: %v", err)
	}
	if info.FPS != 0 {
		t.Errorf("FPS = %d, want 0 when the output has no fps figure", info.FPS)
	}
}
