package dotenv

import (
	"testing"

	"github.com/osaru07m/dotenv/sourceenv"
)

func TestStore_Provenance(t *testing.T) {
	t.Run("reports set for explicit writes", func(t *testing.T) {
		store := New(sourceenv.NewMap(nil))
		if err := store.Set("api_key", StringValue("k")); err != nil {
			t.Fatalf("Set() error = %v", err)
		}

		prov, ok := store.Provenance("API_KEY")
		if !ok {
			t.Fatal("expected provenance to be found")
		}
		if prov.Key != "API_KEY" {
			t.Errorf("expected Key 'API_KEY', got %q", prov.Key)
		}
		if prov.Source != SourceSet {
			t.Errorf("expected Source %q, got %q", SourceSet, prov.Source)
		}
	})

	t.Run("reports env for inherited variables", func(t *testing.T) {
		store := New(sourceenv.NewMap(map[string]string{"LANG": "C.UTF-8"}))

		prov, ok := store.Provenance("lang")
		if !ok {
			t.Fatal("expected provenance to be found")
		}
		if prov.Source != SourceEnv {
			t.Errorf("expected Source %q, got %q", SourceEnv, prov.Source)
		}
	})

	t.Run("gated set keeps original provenance", func(t *testing.T) {
		store := New(sourceenv.NewMap(map[string]string{"LANG": "C.UTF-8"}))
		if err := store.Set("LANG", StringValue("en_US")); err != nil {
			t.Fatalf("Set() error = %v", err)
		}

		prov, _ := store.Provenance("LANG")
		if prov.Source != SourceEnv {
			t.Errorf("expected Source %q, got %q", SourceEnv, prov.Source)
		}
	})

	t.Run("returns false for unknown keys", func(t *testing.T) {
		store := New(sourceenv.NewMap(nil))

		prov, ok := store.Provenance("MISSING")
		if ok {
			t.Error("expected provenance not to be found")
		}
		if prov != (Provenance{}) {
			t.Errorf("expected zero provenance, got %+v", prov)
		}
	})
}

func TestFileSource(t *testing.T) {
	if got := fileSource("file:.env", 12); got != "file:.env:12" {
		t.Errorf("fileSource() = %q, want %q", got, "file:.env:12")
	}
}
