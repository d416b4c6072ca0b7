package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseAppKind(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"scene", true},
		{"overlay", true},
		{"background", true},
		{"desktop", false},
		{"", false},
	}
	for _, c := range cases {
		_, err := parseAppKind(c.in)
		if (err == nil) != c.ok {
			t.Fatalf("parseAppKind(%q) err=%v, want ok=%v", c.in, err, c.ok)
		}
	}
}

func TestResolveDefaults(t *testing.T) {
	f := newFlags(":8080")
	f.Parse(nil)
	cfg := f.resolve()
	if cfg.Addr != ":8080" || cfg.NearClip != 0.1 || cfg.FarClip != 100 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Simulate || cfg.LogLevel != "info" || cfg.AppKind != "background" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestResolveFileFillsUnsetFlags(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vrhald.yaml")
	data := "addr: \":9999\"\nnear_clip: 0.05\nsimulate: true\nlog_level: debug\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	f := newFlags(":8080")
	f.Parse([]string{"-config", path, "-addr", ":7777"})
	cfg := f.resolve()

	// Explicit flag wins over the file.
	if cfg.Addr != ":7777" {
		t.Fatalf("addr = %q, want :7777", cfg.Addr)
	}
	// File wins over untouched defaults.
	if cfg.NearClip != 0.05 || !cfg.Simulate || cfg.LogLevel != "debug" {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	// Untouched everywhere keeps the default.
	if cfg.FarClip != 100 || cfg.AppKind != "background" {
		t.Fatalf("defaults lost: %+v", cfg)
	}
}
