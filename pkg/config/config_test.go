package config

import "testing"

func TestEnsureDSNBuildsFromParts(t *testing.T) {
	cfg := DBConfig{
		Host:    "localhost",
		Port:    5432,
		User:    "spediquote",
		Name:    "rates",
		SSLMode: "disable",
	}
	if err := cfg.ensureDSN(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "host=localhost port=5432 user=spediquote password= dbname=rates sslmode=disable"
	if cfg.DSN != want {
		t.Fatalf("unexpected DSN %q", cfg.DSN)
	}
}

func TestEnsureDSNPrefersExplicit(t *testing.T) {
	cfg := DBConfig{DSN: "postgres://explicit"}
	if err := cfg.ensureDSN(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DSN != "postgres://explicit" {
		t.Fatalf("explicit DSN should win, got %q", cfg.DSN)
	}
}

func TestEnsureDSNRequiresParts(t *testing.T) {
	cfg := DBConfig{}
	if err := cfg.ensureDSN(); err == nil {
		t.Fatal("expected error when neither DSN nor parts are set")
	}
}

func TestAppEnvHelpers(t *testing.T) {
	if !(AppConfig{Env: "DEV"}).IsDev() {
		t.Fatal("DEV should be dev")
	}
	if (AppConfig{Env: "dev"}).IsProd() {
		t.Fatal("dev should not be prod")
	}
}
