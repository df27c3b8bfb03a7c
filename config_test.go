package indev

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.ReadPeriodMS != 16 || cfg.LongPressMS != 400 || cfg.LongPressRepMS != 100 ||
		cfg.DragLimitPx != 10 || cfg.DragThrowPercent != 10 || !cfg.UseGroup {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadConfigOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "indev.toml")
	doc := "[indev]\nlong_press_ms = 600\nuse_group = false\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.LongPressMS != 600 {
		t.Errorf("LongPressMS = %v, want 600", cfg.LongPressMS)
	}
	if cfg.UseGroup {
		t.Error("UseGroup should be overridden to false")
	}
	// Omitted keys keep their default value.
	if cfg.DragLimitPx != 10 {
		t.Errorf("DragLimitPx = %v, want default 10", cfg.DragLimitPx)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected an error for a missing config file")
	}
}
