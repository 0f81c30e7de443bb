// Package conformance locates (and, if missing, fetches) the
// TomHarte/ProcessorTests single-step 6502 vectors used by the cpu
// package's opcode conformance suite. It is exercised only from tests but
// lives as an ordinary package, the same way the source's own
// tests/files.go does.
package conformance

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"testing"

	"golang.org/x/sync/errgroup"
)

const urlFmt = `https://raw.githubusercontent.com/SingleStepTests/65x02/main/nes6502/v1/%s.json`

// ProcTestsPath returns the directory holding one JSON file per opcode
// (00.json .. ff.json), downloading the corpus with bounded concurrency
// the first time it is needed.
func ProcTestsPath(tb testing.TB) string {
	return dirOnce()
}

var dirOnce = sync.OnceValue(func() string {
	_, b, _, _ := runtime.Caller(0)
	dir := filepath.Join(filepath.Dir(b), "..", "..", "cpu", "testdata", "tomharte.processor.tests", "v1")

	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		if err := download(dir); err != nil {
			// The caller decides whether a missing corpus is fatal;
			// tests that need it will fail their own file reads.
			fmt.Fprintf(os.Stderr, "conformance: failed to fetch opcode test vectors: %v\n", err)
		}
	}
	return dir
})

// download fetches all 256 per-opcode fixture files into a temp dir with
// errgroup-bounded concurrency, then renames it into place atomically.
func download(dest string) error {
	tmp, err := os.MkdirTemp("", "tomharte.processor.tests.*")
	if err != nil {
		return err
	}

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())

	for opcode := range 256 {
		opstr := fmt.Sprintf("%02x", opcode)
		url := fmt.Sprintf(urlFmt, opstr)

		g.Go(func() error {
			resp, err := http.Get(url)
			if err != nil {
				return err
			}
			defer resp.Body.Close()

			f, err := os.Create(filepath.Join(tmp, opstr+".json"))
			if err != nil {
				return err
			}
			defer f.Close()

			_, err = io.Copy(f, resp.Body)
			return err
		})
	}

	if err := g.Wait(); err != nil {
		os.RemoveAll(tmp)
		return err
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}
	return os.Rename(tmp, dest)
}
