package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ase.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
aws_accounts:
  - name: prod
    key: AKIAPROD
    secret: prodsecret
  - name: dev
    key: AKIADEV
    secret: devsecret
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(cfg.Accounts) != 2 {
		t.Fatalf("Accounts count = %d, want 2", len(cfg.Accounts))
	}
	if cfg.Accounts[0].Name != "prod" {
		t.Errorf("Accounts[0].Name = %v, want prod", cfg.Accounts[0].Name)
	}
	if cfg.Accounts[0].Key != "AKIAPROD" {
		t.Errorf("Accounts[0].Key = %v, want AKIAPROD", cfg.Accounts[0].Key)
	}
	if cfg.Accounts[1].Secret != "devsecret" {
		t.Errorf("Accounts[1].Secret = %v, want devsecret", cfg.Accounts[1].Secret)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() should fail for a missing file")
	}
}

func TestLoad_BadYAML(t *testing.T) {
	path := writeConfig(t, "aws_accounts: [not: valid: yaml")
	if _, err := Load(path); err == nil {
		t.Error("Load() should fail for malformed yaml")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid",
			config: Config{Accounts: []Account{
				{Name: "prod", Key: "k", Secret: "s"},
			}},
			wantErr: false,
		},
		{
			name:    "no accounts",
			config:  Config{},
			wantErr: true,
		},
		{
			name: "missing name",
			config: Config{Accounts: []Account{
				{Key: "k", Secret: "s"},
			}},
			wantErr: true,
		},
		{
			name: "missing key",
			config: Config{Accounts: []Account{
				{Name: "prod", Secret: "s"},
			}},
			wantErr: true,
		},
		{
			name: "missing secret",
			config: Config{Accounts: []Account{
				{Name: "prod", Key: "k"},
			}},
			wantErr: true,
		},
		{
			name: "duplicate names differing only in case",
			config: Config{Accounts: []Account{
				{Name: "prod", Key: "k1", Secret: "s1"},
				{Name: "PROD", Key: "k2", Secret: "s2"},
			}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
