// Package export writes a yielded prime sequence to a filesystem for
// downstream consumers. Export never feeds back into sieving; it is a sink
// for results that already exist.
package export

import (
	"bufio"
	"io"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/klauspost/compress/zstd"
	"github.com/spf13/afero"
)

// Writer writes prime sequences as newline-delimited decimal, optionally
// zstd-compressed. To create a new Writer, use NewWriter.
type Writer struct {
	fs       afero.Fs
	compress bool
}

func NewWriter(opts ...Option) *Writer {
	o := newOptions(opts...)
	return &Writer{fs: o.fs, compress: o.compress}
}

// Write creates name on the writer's filesystem and writes values to it, one
// value per line.
func (w *Writer) Write(name string, values []uint64) error {
	f, err := w.fs.Create(name)
	if err != nil {
		return errors.Wrapf(err, "[export] - failed to create %s", name)
	}
	defer f.Close()
	if w.compress {
		zw, err := zstd.NewWriter(f)
		if err != nil {
			return errors.Wrap(err, "[export] - failed to open compressor")
		}
		if err := writeLines(zw, values); err != nil {
			zw.Close()
			return err
		}
		return errors.Wrap(zw.Close(), "[export] - failed to flush compressor")
	}
	return writeLines(f, values)
}

func writeLines(w io.Writer, values []uint64) error {
	bw := bufio.NewWriter(w)
	for _, v := range values {
		if _, err := bw.WriteString(strconv.FormatUint(v, 10)); err != nil {
			return errors.Wrap(err, "[export] - write failed")
		}
		if err := bw.WriteByte('\n'); err != nil {
			return errors.Wrap(err, "[export] - write failed")
		}
	}
	return errors.Wrap(bw.Flush(), "[export] - flush failed")
}

// |||| OPTIONS ||||

type Option func(*options)

type options struct {
	fs       afero.Fs
	compress bool
}

func newOptions(opts ...Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.fs == nil {
		o.fs = afero.NewOsFs()
	}
	return o
}

// WithFS overrides the backing filesystem. Tests pass afero.NewMemMapFs().
func WithFS(fs afero.Fs) Option {
	return func(o *options) { o.fs = fs }
}

// WithCompression enables zstd compression of the output.
func WithCompression() Option {
	return func(o *options) { o.compress = true }
}
