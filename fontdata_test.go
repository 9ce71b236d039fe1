package fontkit

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
)

func TestCachedFontData_PopulatesOnce(t *testing.T) {
	var calls atomic.Int32
	fetch := func() ([]byte, error) {
		calls.Add(1)
		return []byte("font"), nil
	}

	c := new(CachedFontData)
	if _, ok := c.Peek(); ok {
		t.Fatal("Peek() on empty cache reported data")
	}

	var wg sync.WaitGroup
	for n := 0; n < 32; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d, ok := c.Get(fetch)
			if !ok || string(d.Bytes()) != "font" {
				t.Errorf("Get() = %v, %v", d, ok)
			}
		}()
	}
	wg.Wait()

	if n := calls.Load(); n != 1 {
		t.Errorf("fetch called %d times, want 1", n)
	}
	if d, ok := c.Peek(); !ok || d.Len() != 4 {
		t.Error("Peek() after Get() should see the cached bytes")
	}
}

func TestCachedFontData_Seeded(t *testing.T) {
	c := NewCachedFontData([]byte("seed"))
	d, ok := c.Get(func() ([]byte, error) {
		t.Error("fetch called on a seeded cache")
		return nil, nil
	})
	if !ok || string(d.Bytes()) != "seed" {
		t.Errorf("Get() = %v, %v", d, ok)
	}
}

func TestCachedFontData_NoFileIsPermanent(t *testing.T) {
	var calls int
	fetch := func() ([]byte, error) {
		calls++
		return nil, ErrNoFontFile
	}

	c := new(CachedFontData)
	for i := 0; i < 3; i++ {
		if _, ok := c.Get(fetch); ok {
			t.Errorf("Get() call %d reported data", i)
		}
	}
	if calls != 1 {
		t.Errorf("fetch called %d times, want 1", calls)
	}
}

func TestCachedFontData_RetriesTransientErrors(t *testing.T) {
	var calls int
	fetch := func() ([]byte, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("disk hiccup")
		}
		return []byte("font"), nil
	}

	c := new(CachedFontData)
	if _, ok := c.Get(fetch); ok {
		t.Fatal("first Get() should fail")
	}
	if d, ok := c.Get(fetch); !ok || d.Len() != 4 {
		t.Error("second Get() should succeed")
	}
}

func TestCachedFontData_Clone(t *testing.T) {
	c := new(CachedFontData)
	clone := c.Clone()

	c.Get(func() ([]byte, error) { return []byte("a"), nil })
	if _, ok := clone.Peek(); ok {
		t.Error("populating the original populated the clone")
	}

	seeded := c.Clone()
	if d, ok := seeded.Peek(); !ok || string(d.Bytes()) != "a" {
		t.Error("clone of a populated cache should start populated")
	}
}

func TestFontFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "font.ttf")
	if err := os.WriteFile(path, []byte("data"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		file    FontFile
		want    string
		wantErr error
	}{
		{"bytes", BytesFile("data"), "data", nil},
		{"empty bytes", BytesFile(nil), "", ErrNoFontFile},
		{"path", PathFile(path), "data", nil},
		{"empty path", PathFile(""), "", ErrNoFontFile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.file.FontFileBytes()
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("FontFileBytes() error = %v, want %v", err, tt.wantErr)
			}
			if string(got) != tt.want {
				t.Errorf("FontFileBytes() = %q, want %q", got, tt.want)
			}
		})
	}

	if _, err := PathFile(filepath.Join(t.TempDir(), "missing.ttf")).FontFileBytes(); err == nil || errors.Is(err, ErrNoFontFile) {
		t.Errorf("missing file error = %v, want a read error", err)
	}
}
