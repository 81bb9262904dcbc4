// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"errors"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/rectfit"
)

const exampleInput = "7,1\n11,1\n11,7\n9,7\n9,5\n2,5\n2,3\n7,3\n"

func quiet() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestRun(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"plain", nil, "24\n"},
		{"estimate", []string{"-estimate"}, "24\n50\n"},
		{"parallel", []string{"-workers", "4"}, "24\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			if err := run(tt.args, strings.NewReader(exampleInput), &out, quiet()); err != nil {
				t.Fatalf("run() error = %v", err)
			}
			if out.String() != tt.want {
				t.Errorf("output = %q, want %q", out.String(), tt.want)
			}
		})
	}
}

func TestRunPretty(t *testing.T) {
	big := "0,0\n99999,0\n99999,9\n0,9\n"
	var out bytes.Buffer
	if err := run([]string{"-pretty", "-estimate"}, strings.NewReader(big), &out, quiet()); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	for _, want := range []string{"area:        1,000,000", "(100,000 x 10)", "orientation: clockwise", "estimate:    1,000,000"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestRunInputFileAndImage(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "polygon.txt")
	if err := os.WriteFile(in, []byte(exampleInput), 0o600); err != nil {
		t.Fatal(err)
	}
	img := filepath.Join(dir, "out.png")
	prom := filepath.Join(dir, "rectfit.prom")

	var out bytes.Buffer
	args := []string{"-input", in, "-png", img, "-metrics", prom}
	if err := run(args, strings.NewReader(""), &out, quiet()); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if out.String() != "24\n" {
		t.Errorf("output = %q, want %q", out.String(), "24\n")
	}

	f, err := os.Open(img)
	if err != nil {
		t.Fatalf("image not written: %v", err)
	}
	defer f.Close()
	if _, err := png.Decode(f); err != nil {
		t.Errorf("png.Decode() error = %v", err)
	}

	data, err := os.ReadFile(prom)
	if err != nil {
		t.Fatalf("metrics not written: %v", err)
	}
	if !strings.Contains(string(data), "rectfit_solves_total") {
		t.Errorf("metrics file missing solves counter:\n%s", data)
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		input string
		is    error
	}{
		{"malformed polygon", nil, "0,0\n4,0\n4,4\n", rectfit.ErrMalformedInput},
		{"syntax", nil, "0,0\nzero,1\n", nil},
		{"missing file", []string{"-input", "does-not-exist.txt"}, "", os.ErrNotExist},
		{"bad flag", []string{"-nope"}, "", nil},
		{"extra argument", []string{"polygon.txt"}, "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := run(tt.args, strings.NewReader(tt.input), &bytes.Buffer{}, quiet())
			if err == nil {
				t.Fatal("run() error = nil")
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Errorf("run() error = %v, want %v", err, tt.is)
			}
		})
	}
}

func TestRunWorkersFromEnvironment(t *testing.T) {
	t.Setenv("RECTFIT_WORKERS", "3")
	cfg, err := parseFlags(nil)
	if err != nil {
		t.Fatalf("parseFlags() error = %v", err)
	}
	if cfg.workers != 3 {
		t.Errorf("workers = %d, want 3", cfg.workers)
	}

	cfg, err = parseFlags([]string{"-workers", "5"})
	if err != nil {
		t.Fatalf("parseFlags() error = %v", err)
	}
	if cfg.workers != 5 {
		t.Errorf("flag should override environment: workers = %d", cfg.workers)
	}

	t.Setenv("RECTFIT_WORKERS", "many")
	if _, err := parseFlags(nil); err == nil {
		t.Error("parseFlags() accepted a non-numeric RECTFIT_WORKERS")
	}
}

func TestSetupLogger(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	var buf bytes.Buffer
	log := setupLogger(&buf)
	log.Debug("hello", "k", 1)
	if !strings.HasPrefix(buf.String(), "{") || !strings.Contains(buf.String(), `"msg":"hello"`) {
		t.Errorf("expected a JSON debug record, got %q", buf.String())
	}

	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")
	buf.Reset()
	log = setupLogger(&buf)
	log.Info("hidden")
	log.Warn("shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "msg=shown") {
		t.Errorf("unexpected default output %q", buf.String())
	}
}
