package opt

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// A Dumper writes the problem of every check to its own file, for offline debugging.
// Files are named after Prefix and a counter owned by the Dumper.
type Dumper struct {
	Dir    string
	Prefix string
	count  int
}

// NewDumper returns a dumper writing into dir.
func NewDumper(dir, prefix string) *Dumper {
	return &Dumper{Dir: dir, Prefix: prefix}
}

// Count returns the number of benchmarks written so far.
func (d *Dumper) Count() int {
	return d.count
}

// Dump writes the assertions of b and the given assumptions to a new file
// and returns its path.
func (d *Dumper) Dump(b Backend, assumptions []Expr) (path string, err error) {
	ext := "txt"
	if f, ok := b.(Formatter); ok {
		ext = f.BenchmarkFormat()
	}
	path = filepath.Join(d.Dir, fmt.Sprintf("%s%d.%s", d.Prefix, d.count, ext))
	d.count++
	f, err := os.Create(path)
	if err != nil {
		return "", errors.Wrapf(err, "could not create benchmark file %q", path)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrapf(cerr, "could not close benchmark file %q", path)
		}
	}()
	if err := b.WriteBenchmark(f, assumptions); err != nil {
		return "", errors.Wrapf(err, "could not write benchmark %q", path)
	}
	return path, nil
}
