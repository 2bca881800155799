package render_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/titianlabs/pagekit/pkg/render"
)

func TestLoadManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nusantara.yaml")
	data := []byte("name: nusantara\nversion: 1.0.0\ntokens:\n  brand: \"#0f5132\"\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	manifest, err := render.LoadManifest(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if manifest.Name != "nusantara" {
		t.Fatalf("name = %q", manifest.Name)
	}
	if manifest.Tokens["brand"] != "#0f5132" {
		t.Fatalf("tokens = %v", manifest.Tokens)
	}

	selection, err := render.StaticSelector{Manifest: manifest}.Select("nusantara", "default")
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if selection.Manifest != manifest {
		t.Fatalf("selection must carry the loaded manifest")
	}
}

func TestStaticSelectorWithoutManifest(t *testing.T) {
	if _, err := (render.StaticSelector{}).Select("x", "y"); err == nil {
		t.Fatalf("expected an error without a manifest")
	}
}
