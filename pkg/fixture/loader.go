package fixture

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Common errors for fixture loading.
var (
	ErrFileNotFound = errors.New("fixture file not found")
	ErrInvalidJSON  = errors.New("invalid JSON syntax")
	ErrInvalidYAML  = errors.New("invalid YAML syntax")
	ErrEmptyFile    = errors.New("fixture file is empty")
	ErrNotAnObject  = errors.New("fixture payload must be a JSON object")
)

// LoadFromFile reads a fixture library from a JSON or YAML file holding a
// map of resource identifier to payload. The format is auto-detected from
// the file extension (.yaml/.yml for YAML, otherwise JSON).
func LoadFromFile(path string) (*Store, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	if info.IsDir() {
		return LoadFromDir(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyFile, path)
	}

	raw := map[string]any{}
	if isYAMLPath(path) {
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidYAML, path, err)
		}
	} else {
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidJSON, path, err)
		}
	}

	fixtures := make(map[string]map[string]any, len(raw))
	for id, payload := range raw {
		obj, ok := payload.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: resource %q in %s", ErrNotAnObject, id, path)
		}
		fixtures[id] = obj
	}
	return New(fixtures), nil
}

// LoadFromDir reads a fixture library from a directory of per-resource
// files. The filename stem is the resource identifier: accounts.json
// becomes fixture "accounts". Subdirectories and non-JSON/YAML files are
// skipped.
func LoadFromDir(dir string) (*Store, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, dir)
		}
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	fixtures := make(map[string]map[string]any)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".json" && ext != ".yaml" && ext != ".yml" {
			continue
		}

		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read file %s: %w", path, err)
		}

		payload := map[string]any{}
		if ext == ".json" {
			if err := json.Unmarshal(data, &payload); err != nil {
				return nil, fmt.Errorf("%w: %s: %v", ErrInvalidJSON, path, err)
			}
		} else {
			if err := yaml.Unmarshal(data, &payload); err != nil {
				return nil, fmt.Errorf("%w: %s: %v", ErrInvalidYAML, path, err)
			}
		}

		id := strings.TrimSuffix(name, filepath.Ext(name))
		fixtures[id] = payload
	}
	return New(fixtures), nil
}

func isYAMLPath(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
