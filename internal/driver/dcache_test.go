package driver

import (
	"os"
	"path/filepath"
	"testing"

	"pyprojectfmt/internal/format"
)

func TestCacheRoundTrip(t *testing.T) {
	c, err := OpenCacheDir(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatal(err)
	}
	key := CacheKey([]byte("a = 1\n"), format.DefaultSettings())
	if hit, err := c.Has(key); err != nil || hit {
		t.Fatalf("empty cache: hit=%v err=%v", hit, err)
	}
	if err := c.Put(key, "pyproject.toml"); err != nil {
		t.Fatal(err)
	}
	if hit, err := c.Has(key); err != nil || !hit {
		t.Fatalf("after Put: hit=%v err=%v", hit, err)
	}
	if err := c.DropAll(); err != nil {
		t.Fatal(err)
	}
	if hit, _ := c.Has(key); hit {
		t.Fatal("entry survived DropAll")
	}
	if _, err := os.Stat(c.Dir()); err != nil {
		t.Fatalf("cache dir not recreated: %v", err)
	}
}

func TestNilCache(t *testing.T) {
	var c *Cache
	if err := c.Put(Digest{}, "x"); err != nil {
		t.Fatal(err)
	}
	if hit, err := c.Has(Digest{}); hit || err != nil {
		t.Fatalf("nil cache hit=%v err=%v", hit, err)
	}
}

func TestCacheKeyDependsOnSettings(t *testing.T) {
	content := []byte("a = 1\n")
	s := format.DefaultSettings()
	k1 := CacheKey(content, s)
	s.ColumnWidth = 80
	if CacheKey(content, s) == k1 {
		t.Fatal("settings change kept the key")
	}
	if CacheKey([]byte("a = 2\n"), format.DefaultSettings()) == k1 {
		t.Fatal("content change kept the key")
	}
	if CacheKey(content, format.DefaultSettings()) != k1 {
		t.Fatal("key is not deterministic")
	}
}

func TestOpenCacheUsesXDG(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", base)
	c, err := OpenCache("pyproject-fmt")
	if err != nil {
		t.Fatal(err)
	}
	if c.Dir() != filepath.Join(base, "pyproject-fmt") {
		t.Fatalf("dir = %q", c.Dir())
	}
}
