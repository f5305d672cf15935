package main

import "testing"

func TestParseFlagsDefaultsToMRVAndAlgorithmC(t *testing.T) {
	cfg, err := parseFlags([]string{"puzzle.xcc"})
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if cfg.alg != algC {
		t.Fatalf("expected default algorithm algC, got %v", cfg.alg)
	}
	if len(cfg.files) != 1 || cfg.files[0] != "puzzle.xcc" {
		t.Fatalf("expected files=[puzzle.xcc], got %v", cfg.files)
	}
}

func TestParseFlagsNaive(t *testing.T) {
	cfg, err := parseFlags([]string{"--naive", "a.xcc"})
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if cfg.alg != algNaive {
		t.Fatalf("expected algNaive, got %v", cfg.alg)
	}
}

func TestParseFlagsKnuthCNFRejected(t *testing.T) {
	_, err := parseFlags([]string{"-k", "a.xcc"})
	if err == nil {
		t.Fatal("expected -k to be rejected as unsupported")
	}
}

func TestParseFlagsEnumerateAndPrint(t *testing.T) {
	cfg, err := parseFlags([]string{"-e", "-p", "a.xcc"})
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if !cfg.enumerate || !cfg.printNames {
		t.Fatalf("expected enumerate and printNames both set, got %+v", cfg)
	}
}
