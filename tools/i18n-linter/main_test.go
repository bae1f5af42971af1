// Copyright (c) 2026 Keymaster Team
// Signin - terminal sign-in form
// This source code is licensed under the MIT license found in the LICENSE file.
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func write(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestFlattenYAMLAndLoadKeys(t *testing.T) {
	m := map[string]any{
		"top": map[string]any{
			"sub": "value",
			"arr": []any{"one", "two"},
		},
		"flat.key": "v",
	}
	keys := make(map[string]struct{})
	flattenYAML("", m, keys)
	for _, want := range []string{"top.sub", "top.arr[0]", "flat.key"} {
		if _, ok := keys[want]; !ok {
			t.Fatalf("expected %s in keys", want)
		}
	}

	p := filepath.Join(t.TempDir(), "test.yaml")
	data, _ := yaml.Marshal(m)
	write(t, p, string(data))
	got, err := loadKeysFromLocale(p)
	if err != nil {
		t.Fatalf("loadKeysFromLocale failed: %v", err)
	}
	if _, ok := got["top.sub"]; !ok {
		t.Fatalf("expected loaded key top.sub")
	}
}

func TestLint(t *testing.T) {
	dir := t.TempDir()
	write(t, filepath.Join(dir, "sub", "a.go"), `package foo
func f() {
	_ = i18n.T("used.key")
	_ = i18n.T("undefined.key", 1)
}`)
	write(t, filepath.Join(dir, "sub", "a_test.go"), `package foo
func g() { _ = i18n.T("test.only") }`)
	locales := filepath.Join(dir, "locales")
	write(t, filepath.Join(locales, "active.en.yaml"), "used.key: Used\norphan.key: Orphan\n")
	write(t, filepath.Join(locales, "active.de.yaml"), "used.key: Benutzt\n")

	r, err := lint(dir, locales)
	if err != nil {
		t.Fatalf("lint failed: %v", err)
	}
	if !slices.Equal(r.Undefined, []string{"undefined.key"}) {
		t.Fatalf("unexpected undefined keys %v", r.Undefined)
	}
	if !slices.Equal(r.Orphaned, []string{"orphan.key"}) {
		t.Fatalf("unexpected orphaned keys %v", r.Orphaned)
	}
	if !slices.Equal(r.Missing["active.de.yaml"], []string{"orphan.key"}) {
		t.Fatalf("unexpected missing keys %v", r.Missing)
	}
	if !r.failed() {
		t.Fatalf("undefined keys must fail the run")
	}

	var out bytes.Buffer
	printReport(&out, r)
	if !strings.Contains(out.String(), "Undefined: undefined.key") {
		t.Fatalf("unexpected report:\n%s", out.String())
	}
}

// The shipped locales must stay consistent with the code.
func TestLint_Repository(t *testing.T) {
	root := filepath.Join("..", "..")
	r, err := lint(root, filepath.Join(root, localesDir))
	if err != nil {
		t.Fatalf("lint failed: %v", err)
	}
	if r.failed() {
		var out bytes.Buffer
		printReport(&out, r)
		t.Fatalf("locale files are inconsistent:\n%s", out.String())
	}
}
