package testutil

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/omahapp/mushaf/internal/osutil"
	"github.com/omahapp/mushaf/store"
)

type GoldenTest interface {
	Output() ([]byte, string)
}

// CompareGoldenFile verifies that the output of an operation matches
// the expected output.
func CompareGoldenFile(t *testing.T, tc GoldenTest) {
	t.Helper()

	if runtime.GOOS == osutil.Windows {
		// TODO: need to sort out line endings
		t.Skip("skipping golden file test in Windows")
	}

	g := goldie.New(
		t,
		goldie.WithFixtureDir("testdata"),
	)

	compareOutput := func(output []byte, goldenFileName string) {
		if output != nil {
			g.Assert(t, goldenFileName, output)
		} else {
			f := filepath.Join("testdata", goldenFileName+".golden")
			if _, err := os.Stat(f); err == nil || errors.Is(err, os.ErrExist) {
				t.Fatalf("expected no output, but golden file exists: %s", f)
			}
		}
	}

	snap, golden := tc.Output()

	compareOutput(snap, golden)
}

// OpenStore opens a bolt store in a temporary directory that is closed when
// the test ends.
func OpenStore(t *testing.T) *store.Client {
	t.Helper()

	db, err := store.NewClient(filepath.Join(t.TempDir(), "mushaf_test.db"))
	if err != nil {
		t.Fatal(err)
	}

	t.Cleanup(func() {
		_ = db.Close()
	})

	return db
}

// FlakyStore wraps a KV and fails writes while FailWrites is set.
type FlakyStore struct {
	store.KV
	FailWrites bool
	FailReads  bool
}

var ErrInjected = errors.New("injected store failure")

func (f *FlakyStore) Get(key string) (string, bool, error) {
	if f.FailReads {
		return "", false, ErrInjected
	}

	return f.KV.Get(key)
}

func (f *FlakyStore) Set(key, value string) error {
	if f.FailWrites {
		return ErrInjected
	}

	return f.KV.Set(key, value)
}

func (f *FlakyStore) Remove(keys ...string) error {
	if f.FailWrites {
		return ErrInjected
	}

	return f.KV.Remove(keys...)
}

func CopyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening source file: %w", err)
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating destination file: %w", err)
	}
	defer destFile.Close()

	_, err = io.Copy(destFile, sourceFile)
	if err != nil {
		return fmt.Errorf("copying file: %w", err)
	}

	return nil
}
