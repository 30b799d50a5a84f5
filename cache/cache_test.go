package cache

import (
	"bytes"
	"path/filepath"
	"testing"
)

func openTestCache(t *testing.T) *Cache {
	t.Helper()
	c, err := Open(filepath.Join(t.TempDir(), "build.db"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestGetMiss(t *testing.T) {
	c := openTestCache(t)
	if _, err := c.Get(Key([]byte("runtime"), 100)); err != ErrMiss {
		t.Errorf("Get() on empty cache = %v, want ErrMiss", err)
	}
}

func TestPutGetRoundTrip(t *testing.T) {
	c := openTestCache(t)
	key := Key([]byte{0x60, 0x01}, 100)
	data := []byte("artifact bytes")

	if err := c.Put(key, data); err != nil {
		t.Fatalf("Put() error: %v", err)
	}
	got, err := c.Get(key)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("Get() = %q, want %q", got, data)
	}
}

func TestPutReplaces(t *testing.T) {
	c := openTestCache(t)
	key := Key([]byte{0x00}, 100)

	if err := c.Put(key, []byte("old")); err != nil {
		t.Fatalf("Put() error: %v", err)
	}
	if err := c.Put(key, []byte("new")); err != nil {
		t.Fatalf("Put() error: %v", err)
	}
	got, err := c.Get(key)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if string(got) != "new" {
		t.Errorf("Get() = %q, want %q", got, "new")
	}
}

func TestKeyDependsOnInputs(t *testing.T) {
	base := Key([]byte{0x01, 0x02}, 100)
	if Key([]byte{0x01, 0x03}, 100) == base {
		t.Error("key ignores the payload")
	}
	if Key([]byte{0x01, 0x02}, -1) == base {
		t.Error("key ignores the shrink budget")
	}
	if Key([]byte{0x01, 0x02}, 100) != base {
		t.Error("key is not deterministic")
	}
}
