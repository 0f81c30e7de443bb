// Package cliutil holds small kong.MapperValue types shared by the
// command-line driver.
package cliutil

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
)

// Outfile decodes a FILE|stdout|stderr command-line value into a writer,
// creating the file lazily on first Decode.
type Outfile struct {
	w     io.Writer
	name  string
	close func() error
}

// Decode implements kong.MapperValue.
func (f *Outfile) Decode(ctx *kong.DecodeContext) error {
	tok := ctx.Scan.Pop()
	f.name = tok.Value.(string)
	f.close = func() error { return nil }

	switch f.name {
	case "stdout":
		f.w = os.Stdout
	case "stderr":
		f.w = os.Stderr
	default:
		fd, err := os.Create(f.name)
		if err != nil {
			return err
		}
		f.w = fd
		f.close = fd.Close
	}
	return nil
}

func (f *Outfile) String() string              { return f.name }
func (f *Outfile) Write(p []byte) (int, error) { return f.w.Write(p) }
func (f *Outfile) Close() error                { return f.close() }
