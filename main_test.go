package main

import "testing"

func TestParseBootRequiresImageArgument(t *testing.T) {
	if _, err := parseBoot(nil); err == nil {
		t.Fatal("parseBoot with no positional args should fail")
	}
}

func TestParseBootDefaults(t *testing.T) {
	cfg, err := parseBoot([]string{"program.bin"})
	if err != nil {
		t.Fatalf("parseBoot: %v", err)
	}
	if cfg.image != "program.bin" {
		t.Fatalf("image = %q, want program.bin", cfg.image)
	}
	if cfg.baseDir != "." {
		t.Fatalf("baseDir = %q, want .", cfg.baseDir)
	}
	if cfg.timeoutMs != 1000 {
		t.Fatalf("timeoutMs = %d, want 1000", cfg.timeoutMs)
	}
}

func TestParseBootForwardsGuestArgv(t *testing.T) {
	cfg, err := parseBoot([]string{"-basedir", "/tmp/sandbox", "program.bin", "one", "two"})
	if err != nil {
		t.Fatalf("parseBoot: %v", err)
	}
	if cfg.baseDir != "/tmp/sandbox" {
		t.Fatalf("baseDir = %q, want /tmp/sandbox", cfg.baseDir)
	}
	if len(cfg.guestArgv) != 3 || cfg.guestArgv[0] != "program.bin" {
		t.Fatalf("guestArgv = %v, want [program.bin one two]", cfg.guestArgv)
	}
}
