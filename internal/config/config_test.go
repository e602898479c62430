package config

import (
	"reflect"
	"testing"
)

func TestParseAdminIDs(t *testing.T) {
	cases := []struct {
		in   string
		want []int64
	}{
		{"", nil},
		{"123", []int64{123}},
		{"1, 2,3", []int64{1, 2, 3}},
		{" 42 ,,abc, 7 ", []int64{42, 7}},
		{"not-a-number", nil},
	}
	for _, c := range cases {
		got := ParseAdminIDs(c.in)
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("ParseAdminIDs(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestLoadRequiresToken(t *testing.T) {
	t.Setenv("TG_BOT_TOKEN", "")
	if _, err := Load(); err == nil {
		t.Fatal("expected error when TG_BOT_TOKEN is unset")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TG_BOT_TOKEN", "test-token")
	t.Setenv("ADMIN_IDS", "10,20")
	t.Setenv("DB_PATH", "")
	t.Setenv("ACCESS_CODE", "")
	t.Setenv("ADDR", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DBPath != "gatebot.db" {
		t.Errorf("DBPath = %q, want gatebot.db", cfg.DBPath)
	}
	if cfg.DefaultAccessCode != "0000" {
		t.Errorf("DefaultAccessCode = %q, want 0000", cfg.DefaultAccessCode)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q, want :8080", cfg.Addr)
	}
	if !reflect.DeepEqual(cfg.AdminIDs, []int64{10, 20}) {
		t.Errorf("AdminIDs = %v, want [10 20]", cfg.AdminIDs)
	}
}
