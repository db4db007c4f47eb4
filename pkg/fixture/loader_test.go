package fixture

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestLoadFromFile_JSON(t *testing.T) {
	path := writeFile(t, t.TempDir(), "fixtures.json", `{
		"charge": {"id": "ch_123", "amount": 999},
		"customer": {"id": "cus_123"}
	}`)

	store, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}
	if store.Count() != 2 {
		t.Errorf("Count() = %d, want 2", store.Count())
	}

	payload, ok := store.Lookup("charge")
	if !ok {
		t.Fatal("Lookup(charge) missed")
	}
	if payload["id"] != "ch_123" {
		t.Errorf("charge id = %v, want ch_123", payload["id"])
	}
}

func TestLoadFromFile_YAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "fixtures.yaml", `
charge:
  id: ch_123
  amount: 999
`)

	store, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}
	payload, ok := store.Lookup("charge")
	if !ok {
		t.Fatal("Lookup(charge) missed")
	}
	if payload["amount"] != 999 {
		t.Errorf("charge amount = %v, want 999", payload["amount"])
	}
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, ErrFileNotFound) {
		t.Errorf("error = %v, want ErrFileNotFound", err)
	}
}

func TestLoadFromFile_Empty(t *testing.T) {
	path := writeFile(t, t.TempDir(), "fixtures.json", "  \n")
	_, err := LoadFromFile(path)
	if !errors.Is(err, ErrEmptyFile) {
		t.Errorf("error = %v, want ErrEmptyFile", err)
	}
}

func TestLoadFromFile_BadJSON(t *testing.T) {
	path := writeFile(t, t.TempDir(), "fixtures.json", "{not json")
	_, err := LoadFromFile(path)
	if !errors.Is(err, ErrInvalidJSON) {
		t.Errorf("error = %v, want ErrInvalidJSON", err)
	}
}

func TestLoadFromFile_BadYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "fixtures.yaml", "charge: [unbalanced")
	_, err := LoadFromFile(path)
	if !errors.Is(err, ErrInvalidYAML) {
		t.Errorf("error = %v, want ErrInvalidYAML", err)
	}
}

func TestLoadFromFile_NonObjectPayload(t *testing.T) {
	path := writeFile(t, t.TempDir(), "fixtures.json", `{"charge": [1, 2]}`)
	_, err := LoadFromFile(path)
	if !errors.Is(err, ErrNotAnObject) {
		t.Errorf("error = %v, want ErrNotAnObject", err)
	}
}

func TestLoadFromDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "charge.json", `{"id": "ch_123"}`)
	writeFile(t, dir, "customer.yaml", "id: cus_123\n")
	writeFile(t, dir, "notes.txt", "ignored")
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o700); err != nil {
		t.Fatal(err)
	}

	store, err := LoadFromDir(dir)
	if err != nil {
		t.Fatalf("LoadFromDir() error = %v", err)
	}
	if store.Count() != 2 {
		t.Errorf("Count() = %d, want 2", store.Count())
	}
	if _, ok := store.Lookup("charge"); !ok {
		t.Error("Lookup(charge) missed")
	}
	if _, ok := store.Lookup("customer"); !ok {
		t.Error("Lookup(customer) missed")
	}
}

func TestLoadFromFile_DirectoryDelegates(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "charge.json", `{"id": "ch_123"}`)

	store, err := LoadFromFile(dir)
	if err != nil {
		t.Fatalf("LoadFromFile(dir) error = %v", err)
	}
	if _, ok := store.Lookup("charge"); !ok {
		t.Error("Lookup(charge) missed")
	}
}
