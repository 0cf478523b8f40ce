package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	src := `
currency = "EUR"
data = "/tmp/dash"

[remote]
endpoint = "https://cloud.example.com/v1"
project = "my-project"
database = "dashboard"
key = "secret"
`
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}
	old := *configFile
	*configFile = path
	defer func() { *configFile = old }()

	c, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() unexpected error = %v", err)
	}
	if c.Currency != "EUR" {
		t.Errorf("Currency = %q, want EUR", c.Currency)
	}
	if c.Data != "/tmp/dash" {
		t.Errorf("Data = %q, want /tmp/dash", c.Data)
	}
	if c.Remote.Endpoint != "https://cloud.example.com/v1" || c.Remote.Key != "secret" {
		t.Errorf("Remote = %+v", c.Remote)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	old := *configFile
	*configFile = filepath.Join(t.TempDir(), "missing.toml")
	defer func() { *configFile = old }()

	c, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() unexpected error = %v", err)
	}
	if c.Currency != "USD" || c.Data != DefaultDataDir {
		t.Errorf("defaults = %+v", c)
	}
}

func TestSplitTags(t *testing.T) {
	testCases := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"web", 1},
		{"web, design , ", 2},
	}
	for _, tc := range testCases {
		if got := splitTags(tc.in); len(got) != tc.want {
			t.Errorf("splitTags(%q) = %v, want %d tags", tc.in, got, tc.want)
		}
	}
}
