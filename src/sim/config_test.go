package sim

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	if config.Rows != DefRows || config.Cols != DefCols {
		t.Fatalf("default size = %dx%d", config.Rows, config.Cols)
	}
	if config.Rule != "conway" {
		t.Fatalf("default rule = %q", config.Rule)
	}
	if config.Generations != DefGenerations || config.LogDir != DefLogDir {
		t.Fatalf("unexpected defaults: %+v", config)
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	src := "rows: 30\ncols: 40\nrule: highlife\ngenerations: 100\ninterval: 50ms\n"
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if config.Rows != 30 || config.Cols != 40 || config.Rule != "highlife" {
		t.Fatalf("file values not applied: %+v", config)
	}
	if config.Interval != 50*time.Millisecond {
		t.Fatalf("interval = %v", config.Interval)
	}
	//untouched keys keep their defaults
	if config.LogDir != DefLogDir {
		t.Fatalf("log dir default lost: %q", config.LogDir)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected an error for a missing config file")
	}
	//defaults still come back so the caller can fall back on them
	if config.Rows != DefRows {
		t.Fatalf("defaults not returned on failure: %+v", config)
	}
}

func TestTemplatesFitTheirSpecs(t *testing.T) {
	for name, tmpl := range Templates {
		spec := tmpl.Spec()
		if spec.Rows <= 0 || spec.Cols <= 0 {
			t.Fatalf("template %s has degenerate spec %+v", name, spec)
		}
		for _, c := range spec.Live {
			if c.Row >= spec.Rows || c.Col >= spec.Cols {
				t.Fatalf("template %s: cell %v outside inferred %dx%d", name, c, spec.Rows, spec.Cols)
			}
		}
	}
}

func TestTemplateNamesSorted(t *testing.T) {
	names := TemplateNames()
	if len(names) != len(Templates) {
		t.Fatalf("names = %v", names)
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Fatalf("names not sorted: %v", names)
		}
	}
}
