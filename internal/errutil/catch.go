package errutil

import (
	"eratos/internal/binary"
	"io"
)

// CatchWrite runs a sequence of binary writes against w, latching the first
// error and skipping everything after it.
type CatchWrite struct {
	w io.Writer
	e error
}

func NewCatchWrite(w io.Writer) *CatchWrite {
	return &CatchWrite{w: w}
}

func (c *CatchWrite) Write(data interface{}) {
	if c.e != nil {
		return
	}
	if err := binary.Write(c.w, data); err != nil {
		c.e = err
	}
}

func (c *CatchWrite) Error() error {
	return c.e
}

type CatchRead struct {
	r io.Reader
	e error
}

func NewCatchRead(r io.Reader) *CatchRead {
	return &CatchRead{r: r}
}

func (c *CatchRead) Read(data interface{}) {
	if c.e != nil {
		return
	}
	if err := binary.Read(c.r, data); err != nil {
		c.e = err
	}
}

func (c *CatchRead) Error() error {
	return c.e
}
