package cache

import (
	"strings"
	"testing"
	"time"
)

func TestResultKey(t *testing.T) {
	key := ResultKey("content", "digest", "check", "apa")

	if !strings.HasPrefix(key, "contentpipe:v1:") {
		t.Errorf("Expected namespaced key, got %s", key)
	}
	if key != ResultKey("content", "digest", "check", "apa") {
		t.Error("Expected identical inputs to produce identical keys")
	}
	if key == ResultKey("content", "digest", "check", "mla") {
		t.Error("Expected style to change the key")
	}
	if key == ResultKey("content", "other", "check", "apa") {
		t.Error("Expected research digest to change the key")
	}
	// Field boundaries matter: moving a character across a boundary must
	// not collide.
	if ResultKey("ab", "c", "check", "apa") == ResultKey("a", "bc", "check", "apa") {
		t.Error("Expected field boundaries to separate key material")
	}
}

func TestMemoryCache_RoundTrip(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	if _, found := c.Get("missing"); found {
		t.Error("Expected miss for absent key")
	}

	if err := c.Set("key", []byte("value"), time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	val, found := c.Get("key")
	if !found || string(val) != "value" {
		t.Errorf("Expected hit with 'value', got %q found=%v", val, found)
	}

	if err := c.Delete("key"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, found := c.Get("key"); found {
		t.Error("Expected miss after delete")
	}
}

func TestDiskCache_RoundTrip(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Minute)

	if err := c.Set("key", []byte("value"), 0); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	val, found := c.Get("key")
	if !found || string(val) != "value" {
		t.Errorf("Expected hit with 'value', got %q found=%v", val, found)
	}
}

func TestDiskCache_Expiry(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Minute)

	if err := c.Set("key", []byte("value"), -time.Second); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if _, found := c.Get("key"); found {
		t.Error("Expected expired entry to miss")
	}
}

func TestLayeredCache_PromotesDiskHits(t *testing.T) {
	dir := t.TempDir()
	c := NewLayeredCache(time.Minute, time.Minute, dir, time.Minute)

	// Seed only the disk layer.
	disk := NewDiskCache(dir, time.Minute)
	if err := disk.Set("key", []byte("value"), time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	val, found := c.Get("key")
	if !found || string(val) != "value" {
		t.Fatalf("Expected disk hit through layered cache, got %q found=%v", val, found)
	}

	// After promotion the memory layer serves the entry directly.
	mem, found := c.memory.Get("key")
	if !found || string(mem) != "value" {
		t.Errorf("Expected entry promoted to memory, got %q found=%v", mem, found)
	}
}
