package main

import (
	"fmt"
	"image/jpeg"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/tdewolff/argp"
	"github.com/tdewolff/assdraw"
	"github.com/tdewolff/assdraw/renderers"
	"github.com/tdewolff/assdraw/renderers/pdf"
	"github.com/tdewolff/assdraw/renderers/ps"
	"github.com/tdewolff/assdraw/renderers/rasterizer"
	"github.com/tdewolff/assdraw/renderers/svg"
)

type Main struct{}

type Fmt struct {
	Verbose bool   `short:"v" desc:"Verbose logging"`
	Output  string `short:"o" desc:"Output file, stdout if empty"`
	Input   string `index:"0" desc:"Input file, stdin if empty or -"`
}

type Render struct {
	Verbose bool    `short:"v" desc:"Verbose logging"`
	Format  string  `short:"f" desc:"Output format, by default the output's extension"`
	Scale   float64 `short:"s" default:"1" desc:"Pixels per unit for raster formats"`
	Margin  float64 `short:"m" default:"10" desc:"Margin around the drawing"`
	Minify  bool    `desc:"Compact SVG path data"`
	Quality int     `default:"90" desc:"JPG quality"`
	Output  string  `short:"o" desc:"Output file, stdout if empty"`
	Input   string  `index:"0" desc:"Input file, stdin if empty or -"`
}

type Edit struct {
	Verbose bool   `short:"v" desc:"Verbose logging"`
	Input   string `index:"0" desc:"Drawing to open and save to"`
}

func main() {
	root := argp.NewCmd(&Main{}, "Editor and converter for ASS vector drawings")
	root.AddCmd(&Fmt{}, "fmt", "Normalize a drawing")
	root.AddCmd(&Render{}, "render", "Render a drawing to "+fmt.Sprint(renderers.Formats))
	root.AddCmd(&Edit{}, "edit", "Edit a drawing interactively")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Main) Run() error {
	return argp.ShowUsage
}

func setVerbose(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	assdraw.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func readDrawing(filename string) (*assdraw.Drawing, error) {
	var b []byte
	var err error
	if filename == "" || filename == "-" {
		b, err = io.ReadAll(os.Stdin)
	} else {
		b, err = os.ReadFile(filename)
	}
	if err != nil {
		return nil, err
	}

	d, err := assdraw.Parse(string(b))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return d, nil
}

func (cmd *Fmt) Run() error {
	setVerbose(cmd.Verbose)
	d, err := readDrawing(cmd.Input)
	if err != nil {
		return err
	}
	if cmd.Output == "" || cmd.Output == "-" {
		_, err = fmt.Println(d.String())
		return err
	}
	return d.WriteFile(cmd.Output, assdraw.TextWriter)
}

func (cmd *Render) Run() error {
	setVerbose(cmd.Verbose)
	stdout := cmd.Output == "" || cmd.Output == "-"
	format := cmd.Format
	if format == "" {
		if stdout {
			fmt.Println("ERROR: must specify output format when writing to stdout")
			return argp.ShowUsage
		}
		format = filepath.Ext(cmd.Output)
	}

	d, err := readDrawing(cmd.Input)
	if err != nil {
		return err
	}

	rasterOpts := rasterizer.DefaultOptions
	rasterOpts.Scale = cmd.Scale
	rasterOpts.Margin = cmd.Margin
	svgOpts := svg.DefaultOptions
	svgOpts.Minify = cmd.Minify
	svgOpts.Margin = cmd.Margin
	pdfOpts := pdf.DefaultOptions
	pdfOpts.Margin = cmd.Margin
	psOpts := ps.DefaultOptions
	psOpts.Margin = cmd.Margin
	writer, err := renderers.WriterFor(format, &rasterOpts, &svgOpts, &pdfOpts, &psOpts, &jpeg.Options{Quality: cmd.Quality})
	if err != nil {
		return err
	}

	if stdout {
		return d.Write(os.Stdout, writer)
	}
	assdraw.Logger().Debug("render", "output", cmd.Output, "shapes", d.Len())
	return d.WriteFile(cmd.Output, writer)
}
