package inktag_test

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/samber/lo"

	"github.com/inktag/inktag"
	ierrors "github.com/inktag/inktag/pkg/errors"
)

func TestLoadConfigFormats(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "tags.json",
			content: `{
  "storePath": "/tmp/tags/record.json",
  "categories": ["rose", "teal"],
  "seed": 42
}`,
		},
		{
			name: "tags.yaml",
			content: `storePath: /tmp/tags/record.json
categories:
  - rose
  - teal
seed: 42
`,
		},
		{
			name: "tags.toml",
			content: `storePath = "/tmp/tags/record.json"
categories = ["rose", "teal"]
seed = 42
`,
		},
		{
			name: "tags.properties",
			content: `storePath=/tmp/tags/record.json
categories=rose;teal
seed=42
`,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), test.name)
			lo.Must0(os.WriteFile(path, []byte(test.content), 0o644))

			cfg, err := inktag.LoadConfig(path)
			if err != nil {
				t.Fatal(err)
			}

			if cfg.StorePath != "/tmp/tags/record.json" {
				t.Errorf("storePath = %q", cfg.StorePath)
			}

			if !slices.Equal(cfg.Categories, []string{"rose", "teal"}) {
				t.Errorf("categories = %v", cfg.Categories)
			}

			if cfg.Seed != 42 {
				t.Errorf("seed = %d", cfg.Seed)
			}
		})
	}
}

func TestLoadConfigPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tags.yaml")
	lo.Must0(os.WriteFile(path, []byte("seed: 7\n"), 0o644))

	cfg, err := inktag.LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}

	def := inktag.DefaultConfig()

	if cfg.StorePath != def.StorePath {
		t.Errorf("storePath = %q, want default %q", cfg.StorePath, def.StorePath)
	}

	if !slices.Equal(cfg.Categories, def.Categories) {
		t.Errorf("categories = %v, want default %v", cfg.Categories, def.Categories)
	}

	if cfg.Seed != 7 {
		t.Errorf("seed = %d, want 7", cfg.Seed)
	}
}

func TestLoadConfigUnknownExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tags.ini")
	lo.Must0(os.WriteFile(path, []byte("storePath=/x\n"), 0o644))

	_, err := inktag.LoadConfig(path)
	if !errors.Is(err, ierrors.ErrUnknownFormat) {
		t.Errorf("got %v, want ErrUnknownFormat", err)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := inktag.LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if !errors.Is(err, ierrors.ErrInvalidConfig) {
		t.Errorf("got %v, want ErrInvalidConfig", err)
	}
}
