package testsupport

import (
	"testing"
	"time"

	"shotsync/internal/config"
	"shotsync/internal/exportline"
	"shotsync/internal/store"
)

// MustOpenStore opens a store.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *store.Store {
	t.Helper()

	st, err := store.Open(cfg)
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() {
		st.Close()
	})
	return st
}

// Source builds an export-file identity for tests.
func Source(t testing.TB, tool exportline.Tool, user, date string) exportline.Source {
	t.Helper()

	fileDate, err := time.Parse("20060102", date)
	if err != nil {
		t.Fatalf("parse date %q: %v", date, err)
	}
	return exportline.Source{
		Tool:     tool,
		FileName: string(tool) + "_" + user + "_" + date + ".txt",
		User:     user,
		FileDate: fileDate,
	}
}
