package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/cleared-dev/shiwake/internal/charset"
)

// FileName is the config file at the root of a books repo.
const FileName = "shiwake.yaml"

// Config represents the top-level shiwake.yaml configuration.
type Config struct {
	Business       BusinessConfig   `yaml:"business"`
	Books          BooksConfig      `yaml:"books"`
	Validation     ValidationConfig `yaml:"validation"`
	IO             IOConfig         `yaml:"io"`
	Aliases        []Alias          `yaml:"aliases,omitempty"`
	Counterparties []Counterparty   `yaml:"counterparties,omitempty"`
	Git            GitConfig        `yaml:"git"`
	Log            LogConfig        `yaml:"log"`
}

// BusinessConfig identifies the business entity.
type BusinessConfig struct {
	Name       string `yaml:"name"`
	EntityType string `yaml:"entity_type"`
}

// BooksConfig names the accounts the entry builder settles against.
type BooksConfig struct {
	CashAccount       string `yaml:"cash_account"`
	BankAccount       string `yaml:"bank_account"`
	ReceivableAccount string `yaml:"receivable_account"`
	GeneralizeSummary bool   `yaml:"generalize_summary"`
}

// ValidationConfig controls what a batch does with invalid rows.
type ValidationConfig struct {
	Policy string `yaml:"policy"` // "abort" or "skip"
}

// IOConfig selects input and output character encodings.
type IOConfig struct {
	InputEncoding  string `yaml:"input_encoding"`
	OutputEncoding string `yaml:"output_encoding"`
}

// Alias rewrites a substring of a normalized description.
type Alias struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// Counterparty maps a label containing Match to a short receivable name.
type Counterparty struct {
	Match string `yaml:"match"`
	Name  string `yaml:"name"`
}

// GitConfig controls git integration.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// LogConfig controls the process logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "text" or "json"
}

// Path returns the config path for a repo root.
func Path(repoRoot string) string {
	return filepath.Join(repoRoot, FileName)
}

// Load reads a shiwake.yaml file from disk. Keys absent from the file keep
// their Default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default("", "")
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault loads path, returning Default when the file does not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default("", ""), nil
	}
	return cfg, err
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default(businessName, entityType string) *Config {
	if entityType == "" {
		entityType = "sole_proprietor"
	}
	return &Config{
		Business: BusinessConfig{
			Name:       businessName,
			EntityType: entityType,
		},
		Books: BooksConfig{
			CashAccount:       "現金",
			BankAccount:       "普通預金",
			ReceivableAccount: "売掛金",
			GeneralizeSummary: true,
		},
		Validation: ValidationConfig{
			Policy: "abort",
		},
		IO: IOConfig{
			InputEncoding:  "utf-8",
			OutputEncoding: "utf-8",
		},
		Aliases: []Alias{
			{From: "ゲノメデイア(カ", To: "genomedia株式会社"},
			{From: "株式会社ミユープ", To: "株式会社 miup"},
		},
		Counterparties: []Counterparty{
			{Match: "genomedia株式会社", Name: "genomedia株式会社"},
			{Match: "株式会社 miup", Name: "株式会社miup"},
		},
		Git: GitConfig{
			AutoCommit:  false,
			AuthorName:  "shiwake",
			AuthorEmail: "shiwake@localhost",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Validate checks values that the YAML decoder cannot.
func (c *Config) Validate() error {
	switch c.Validation.Policy {
	case "", "abort", "skip":
	default:
		return fmt.Errorf("validation.policy: unknown value %q", c.Validation.Policy)
	}
	for _, enc := range []struct{ key, val string }{
		{"io.input_encoding", c.IO.InputEncoding},
		{"io.output_encoding", c.IO.OutputEncoding},
	} {
		if _, err := charset.Parse(enc.val); err != nil {
			return fmt.Errorf("%s: %w", enc.key, err)
		}
	}
	switch c.Log.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("log.format: unknown value %q", c.Log.Format)
	}
	for i, a := range c.Aliases {
		if a.From == "" {
			return fmt.Errorf("aliases[%d]: from is empty", i)
		}
	}
	for i, cp := range c.Counterparties {
		if cp.Match == "" || cp.Name == "" {
			return fmt.Errorf("counterparties[%d]: match and name are required", i)
		}
	}
	return nil
}
