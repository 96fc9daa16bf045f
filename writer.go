package assdraw

import (
	"io"
	"os"
)

// Writer encodes a drawing to an output format.
type Writer func(w io.Writer, d *Drawing) error

// TextWriter writes the drawing in the m/l/b text format.
func TextWriter(w io.Writer, d *Drawing) error {
	_, err := io.WriteString(w, d.String())
	return err
}

// Write encodes the drawing with the given writer.
func (d *Drawing) Write(w io.Writer, writer Writer) error {
	return writer(w, d)
}

// WriteFile encodes the drawing to a file with the given writer.
func (d *Drawing) WriteFile(filename string, writer Writer) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err = writer(f, d); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
