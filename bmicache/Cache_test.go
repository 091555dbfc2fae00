package bmicache

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestSanitizeName(t *testing.T) {
	got := SanitizeName("math.core:detail/impl")
	want := "math-core-detail-impl"
	if got != want {
		t.Fatalf("SanitizeName = %q, want %q", got, want)
	}
}

func TestRegisterAndLookupValid(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "math.cppm")
	bmi := filepath.Join(dir, "math-core.pcm")
	writeFile(t, source, "export module math.core;\n")
	writeFile(t, bmi, "fake-bmi")

	cache, err := New(dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := cache.Register("math.core", bmi, source, nil, "clang", "18.1.0"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	got, ok := cache.Lookup("math.core", "clang", "18.1.0")
	if !ok || got != bmi {
		t.Fatalf("Lookup = (%q, %v), want (%q, true)", got, ok, bmi)
	}
}

func TestLookupInvalidatedBySourceChange(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "math.cppm")
	bmi := filepath.Join(dir, "math-core.pcm")
	writeFile(t, source, "export module math.core;\n")
	writeFile(t, bmi, "fake-bmi")

	cache, _ := New(dir)
	_ = cache.Register("math.core", bmi, source, nil, "clang", "18.1.0")

	// touch the source with a later mtime to simulate an edit.
	future := time.Now().Add(time.Hour)
	if err := os.Chtimes(source, future, future); err != nil {
		t.Fatalf("Chtimes: %v", err)
	}

	if _, ok := cache.Lookup("math.core", "clang", "18.1.0"); ok {
		t.Fatalf("expected cache miss after source mtime changed")
	}
}

func TestLookupInvalidatedByCompilerMismatch(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "math.cppm")
	bmi := filepath.Join(dir, "math-core.pcm")
	writeFile(t, source, "export module math.core;\n")
	writeFile(t, bmi, "fake-bmi")

	cache, _ := New(dir)
	_ = cache.Register("math.core", bmi, source, nil, "clang", "18.1.0")

	if _, ok := cache.Lookup("math.core", "gcc", "13.2.0"); ok {
		t.Fatalf("expected cache miss for a different compiler kind/version")
	}
}

func TestLookupCascadesThroughInvalidDependency(t *testing.T) {
	dir := t.TempDir()
	parentSrc := filepath.Join(dir, "math.cppm")
	parentBmi := filepath.Join(dir, "math-core.pcm")
	childSrc := filepath.Join(dir, "detail.cppm")
	childBmi := filepath.Join(dir, "math-detail.pcm")
	writeFile(t, parentSrc, "export module math.core;\nimport math.detail;\n")
	writeFile(t, parentBmi, "fake-bmi")
	writeFile(t, childSrc, "export module math.detail;\n")
	writeFile(t, childBmi, "fake-bmi")

	cache, _ := New(dir)
	_ = cache.Register("math.detail", childBmi, childSrc, nil, "clang", "18.1.0")
	_ = cache.Register("math.core", parentBmi, parentSrc, []string{"math.detail"}, "clang", "18.1.0")

	cache.Invalidate("math.detail")

	if _, ok := cache.Lookup("math.core", "clang", "18.1.0"); ok {
		t.Fatalf("invalidating a dependency must invalidate its dependents")
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "math.cppm")
	bmi := filepath.Join(dir, "math-core.pcm")
	writeFile(t, source, "export module math.core;\n")
	writeFile(t, bmi, "fake-bmi")

	cache, _ := New(dir)
	_ = cache.Register("math.core", bmi, source, nil, "clang", "18.1.0")

	indexPath := filepath.Join(dir, "index.json")
	if err := cache.Save(indexPath); err != nil {
		t.Fatalf("Save: %v", err)
	}

	reloaded, _ := New(t.TempDir())
	if err := reloaded.Load(indexPath); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got, ok := reloaded.Lookup("math.core", "clang", "18.1.0"); !ok || got != bmi {
		t.Fatalf("Lookup after reload = (%q, %v), want (%q, true)", got, ok, bmi)
	}
}

func TestRegisterWithCompressionArchivesAndRestores(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "math.cppm")
	bmi := filepath.Join(dir, "math-core.pcm")
	writeFile(t, source, "export module math.core;\n")
	writeFile(t, bmi, "fake-bmi-contents")

	cache, err := New(dir, WithCompression())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := cache.Register("math.core", bmi, source, nil, "clang", "18.1.0"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if _, err := os.Stat(bmi + ".lz4"); err != nil {
		t.Fatalf("expected a compressed archive alongside the BMI: %v", err)
	}

	if err := os.Remove(bmi); err != nil {
		t.Fatalf("remove primary bmi: %v", err)
	}
	restored, err := cache.Restore("math.core")
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if restored != bmi {
		t.Fatalf("Restore path = %q, want %q", restored, bmi)
	}
	data, err := os.ReadFile(bmi)
	if err != nil || string(data) != "fake-bmi-contents" {
		t.Fatalf("restored bmi contents = %q, %v, want original contents", data, err)
	}
}

func TestLoadCorruptedIndexIsEmptyCacheNotError(t *testing.T) {
	dir := t.TempDir()
	indexPath := filepath.Join(dir, "index.json")
	writeFile(t, indexPath, "{not valid json")

	cache, _ := New(t.TempDir())
	if err := cache.Load(indexPath); err != nil {
		t.Fatalf("Load of a corrupted index should not be a hard error, got: %v", err)
	}
	if _, ok := cache.Lookup("math.core", "clang", "18.1.0"); ok {
		t.Fatalf("expected an empty cache after loading a corrupted index")
	}
}
