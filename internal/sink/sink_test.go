package sink_test

import (
	"context"
	"strings"
	"testing"

	"shotsync/internal/exportline"
	"shotsync/internal/frames"
	"shotsync/internal/reconcile"
	"shotsync/internal/sink"
	"shotsync/internal/testsupport"
	"shotsync/internal/workorder"
)

func TestCSVSinkLayout(t *testing.T) {
	order := &workorder.WorkOrder{
		Producer: "Joan Jett",
		Operator: "John Doe",
		Job:      "Dirtfixing",
		Notes:    "Please clean files noted per Colorist Tom Brady",
	}

	var buf strings.Builder
	s, err := sink.NewCSVSink(&buf, order)
	if err != nil {
		t.Fatalf("NewCSVSink: %v", err)
	}

	record := reconcile.Record{
		CanonicalPath: "/hpsans13/production/starwars/reel1/partA/1920x1080",
		Range:         frames.Range{Start: 32, End: 34},
	}
	if err := s.Emit(context.Background(), record); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if err := s.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("lines = %d, want 4 (header, two spacers, one record):\n%s", len(lines), buf.String())
	}
	if lines[0] != "Joan Jett/John Doe/Dirtfixing/Please clean files noted per Colorist Tom Brady" {
		t.Errorf("header = %q", lines[0])
	}
	// The canonical path contains the delimiter, so the encoder quotes it.
	if lines[3] != `"/hpsans13/production/starwars/reel1/partA/1920x1080"/32-34` {
		t.Errorf("record row = %q", lines[3])
	}
}

func TestDBSink(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	src := testsupport.Source(t, exportline.ToolBaselight, "GLopez", "20230325")
	runID, err := st.BeginRun(ctx, "pipeline", src)
	if err != nil {
		t.Fatalf("BeginRun: %v", err)
	}

	s := sink.NewDBSink(st, runID, src)
	record := reconcile.Record{
		CanonicalPath: "/hpsans12/production/starwars/reel1/VFX/Hydraulx",
		Range:         frames.Range{Start: 1251, End: 1253},
	}
	if err := s.Emit(ctx, record); err != nil {
		t.Fatalf("Emit: %v", err)
	}

	records, err := st.ListFrames(ctx)
	if err != nil {
		t.Fatalf("ListFrames: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("records = %d, want 1", len(records))
	}
	if records[0].Location != record.CanonicalPath || records[0].FrameRange != "1251-1253" {
		t.Errorf("record = %+v", records[0])
	}
}
