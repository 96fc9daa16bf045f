package renderers

import (
	"fmt"
	"image/gif"
	"image/jpeg"
	"io"
	"path/filepath"
	"strings"

	"github.com/tdewolff/assdraw"
	"github.com/tdewolff/assdraw/renderers/pdf"
	"github.com/tdewolff/assdraw/renderers/ps"
	"github.com/tdewolff/assdraw/renderers/rasterizer"
	"github.com/tdewolff/assdraw/renderers/svg"
	"golang.org/x/image/tiff"
)

// Options collects the options of every output format.
type Options struct {
	Raster *rasterizer.Options
	JPG    *jpeg.Options
	GIF    *gif.Options
	TIFF   *tiff.Options
	SVG    *svg.Options
	PDF    *pdf.Options
	PS     *ps.Options
}

func parseOptions(opts []interface{}) (Options, error) {
	options := Options{}
	for _, opt := range opts {
		switch o := opt.(type) {
		case *rasterizer.Options:
			options.Raster = o
		case *jpeg.Options:
			options.JPG = o
		case *gif.Options:
			options.GIF = o
		case *tiff.Options:
			options.TIFF = o
		case *svg.Options:
			options.SVG = o
		case *pdf.Options:
			options.PDF = o
		case *ps.Options:
			options.PS = o
		default:
			return options, fmt.Errorf("unknown option: %T(%v)", opt, opt)
		}
	}
	return options, nil
}

// Formats lists the format names accepted by WriterFor.
var Formats = []string{"ass", "png", "jpg", "gif", "tiff", "svg", "svgz", "pdf", "ps", "eps"}

// WriterFor returns the writer of a format name or file extension, with or without a leading dot. Options of the type of a format's options are passed on to it.
func WriterFor(format string, opts ...interface{}) (assdraw.Writer, error) {
	options, err := parseOptions(opts)
	if err != nil {
		return nil, err
	}

	switch format = strings.TrimPrefix(strings.ToLower(format), "."); format {
	case "ass", "txt":
		return assdraw.TextWriter, nil
	case "png":
		return rasterizer.PNGWriter(options.Raster), nil
	case "jpg", "jpeg":
		return rasterizer.JPGWriter(options.Raster, options.JPG), nil
	case "gif":
		return rasterizer.GIFWriter(options.Raster, options.GIF), nil
	case "tif", "tiff":
		return rasterizer.TIFFWriter(options.Raster, options.TIFF), nil
	case "svg", "svgz":
		svgOpts := svg.DefaultOptions
		if options.SVG != nil {
			svgOpts = *options.SVG
		}
		if format == "svgz" && svgOpts.Compression == 0 {
			svgOpts.Compression = -1
		}
		return svg.Writer(&svgOpts), nil
	case "pdf":
		return pdf.Writer(options.PDF), nil
	case "ps", "eps":
		psOpts := ps.DefaultOptions
		if options.PS != nil {
			psOpts = *options.PS
		}
		psOpts.Format = ps.PostScript
		if format == "eps" {
			psOpts.Format = ps.EncapsulatedPostScript
		}
		return ps.Writer(&psOpts), nil
	}
	return nil, fmt.Errorf("unknown format: %v", format)
}

// Write encodes the drawing in the given format.
func Write(w io.Writer, format string, d *assdraw.Drawing, opts ...interface{}) error {
	writer, err := WriterFor(format, opts...)
	if err != nil {
		return err
	}
	return d.Write(w, writer)
}

// WriteFile encodes the drawing to a file, the format follows from its extension.
func WriteFile(filename string, d *assdraw.Drawing, opts ...interface{}) error {
	writer, err := WriterFor(filepath.Ext(filename), opts...)
	if err != nil {
		return err
	}
	return d.WriteFile(filename, writer)
}
