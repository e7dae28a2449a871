package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTest(t *testing.T, dsn string) *Store {
	t.Helper()
	s, err := Open(context.Background(), dsn, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestHashIP(t *testing.T) {
	s := openTest(t, "")
	a, b := s.HashIP("203.0.113.7"), s.HashIP("203.0.113.7")
	if a != b {
		t.Errorf("HashIP not stable: %q vs %q", a, b)
	}
	if len(a) != 16 {
		t.Errorf("len(HashIP) = %d, want 16", len(a))
	}
	if a == s.HashIP("203.0.113.8") {
		t.Error("different addresses share a hash")
	}

	other := openTest(t, "")
	if other.HashIP("203.0.113.7") == a {
		t.Error("hash does not depend on the per-process salt")
	}
}

func TestTrackAndStats(t *testing.T) {
	ctx := context.Background()
	s := openTest(t, "")
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	visits := []struct {
		at   time.Time
		ip   string
		path string
	}{
		{now.Add(-30 * 24 * time.Hour), "10.0.0.1", "/"},
		{now.Add(-3 * 24 * time.Hour), "10.0.0.2", "/"},
		{now.Add(-2 * time.Hour), "10.0.0.1", "/career/career"},
		{now.Add(-time.Hour), "10.0.0.3", "/"},
	}
	for _, v := range visits {
		s.now = func() time.Time { return v.at }
		if err := s.Track(ctx, v.ip, "test-agent", v.path); err != nil {
			t.Fatal(err)
		}
	}
	s.now = func() time.Time { return now }

	st, err := s.Stats(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if st.TotalVisitors != 4 || st.UniqueVisitors != 3 {
		t.Errorf("total/unique = %d/%d, want 4/3", st.TotalVisitors, st.UniqueVisitors)
	}
	if st.VisitorsToday != 2 || st.VisitorsThisWeek != 3 {
		t.Errorf("today/week = %d/%d, want 2/3", st.VisitorsToday, st.VisitorsThisWeek)
	}
	if len(st.TopPaths) != 2 || st.TopPaths[0] != (PathCount{Path: "/", Count: 3}) {
		t.Errorf("TopPaths = %+v", st.TopPaths)
	}
	if len(st.RecentVisitors) != 4 || st.RecentVisitors[0].HashedIP != s.HashIP("10.0.0.3") {
		t.Errorf("RecentVisitors = %+v", st.RecentVisitors)
	}
	for _, v := range st.RecentVisitors {
		if v.HashedIP == "10.0.0.1" || v.HashedIP == "10.0.0.3" {
			t.Fatal("raw address stored")
		}
	}
}

func TestCleanup(t *testing.T) {
	ctx := context.Background()
	s := openTest(t, "")
	now := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	s.now = func() time.Time { return now.Add(-Retention - time.Hour) }
	s.Track(ctx, "1.1.1.1", "", "/")
	s.now = func() time.Time { return now.Add(-time.Hour) }
	s.Track(ctx, "1.1.1.1", "", "/")
	s.now = func() time.Time { return now }

	n, err := s.Cleanup(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("Cleanup removed %d, want 1", n)
	}
	st, _ := s.Stats(ctx)
	if st.TotalVisitors != 1 {
		t.Errorf("TotalVisitors after cleanup = %d, want 1", st.TotalVisitors)
	}
}

func TestFileDSNPersists(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "visitors.db")

	s, err := Open(ctx, path, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Track(ctx, "1.2.3.4", "ua", "/"); err != nil {
		t.Fatal(err)
	}
	s.Close()

	s = openTest(t, path)
	st, err := s.Stats(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if st.TotalVisitors != 1 {
		t.Errorf("TotalVisitors after reopen = %d, want 1", st.TotalVisitors)
	}
}

func TestShouldTrack(t *testing.T) {
	tests := []struct {
		path, dnt string
		want      bool
	}{
		{"/", "", true},
		{"/career/career", "0", true},
		{"/", "1", false},
		{"/static/app.css", "", false},
		{"/admin/dashboard", "", false},
		{"/privacy", "", false},
		{"/motif/education.svg", "", false},
		{"/reveal/cards", "", false},
	}
	for _, tt := range tests {
		if got := ShouldTrack(tt.path, tt.dnt); got != tt.want {
			t.Errorf("ShouldTrack(%q, %q) = %v, want %v", tt.path, tt.dnt, got, tt.want)
		}
	}
}
