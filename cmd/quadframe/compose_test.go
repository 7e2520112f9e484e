package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestComposeRunWritesFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frame.png")
	args := []string{"-width", "100", "-height", "80", "-output", out,
		"10", "10", "90", "10", "10", "70", "90", "70"}
	cmd, err := parseComposeCmd(args, nil)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := cmd.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if img.Bounds().Dx() != 100 || img.Bounds().Dy() != 80 {
		t.Fatalf("unexpected bounds %v", img.Bounds())
	}
}

func TestComposeRunShadowExpandsOutput(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frame.png")
	args := []string{"-width", "100", "-height", "100", "-output", out, "-shadow",
		"10", "10", "90", "10", "10", "90", "90", "90"}
	cmd, err := parseComposeCmd(args, nil)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := cmd.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if img.Bounds().Dx() <= 100 || img.Bounds().Dy() <= 100 {
		t.Fatalf("shadow should expand the canvas, got %v", img.Bounds())
	}
}

func TestComposeRunMissingBackgroundFile(t *testing.T) {
	args := []string{"-file", filepath.Join(t.TempDir(), "missing.png"),
		"0", "0", "10", "0", "0", "10", "10", "10"}
	cmd, err := parseComposeCmd(args, nil)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := cmd.Run(); err == nil {
		t.Fatalf("expected error for missing background")
	}
}
