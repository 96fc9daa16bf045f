package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/tdewolff/assdraw"
	"github.com/tdewolff/assdraw/editor"
	fyneEditor "github.com/tdewolff/assdraw/renderers/fyne"
)

func (cmd *Edit) Run() error {
	setVerbose(cmd.Verbose)
	d := assdraw.NewDrawing()
	if cmd.Input != "" {
		if _, err := os.Stat(cmd.Input); err == nil {
			if d, err = readDrawing(cmd.Input); err != nil {
				return err
			}
		}
	}
	s := editor.NewSession(d, nil)

	a := app.New()
	w := a.NewWindow("assdraw")
	ed := fyneEditor.NewEditor(s)

	status := widget.NewLabel("")
	ed.OnChanged = func() {
		status.SetText(statusText(s))
	}
	status.SetText(statusText(s))

	tools := container.NewHBox()
	for i, t := range s.Tools() {
		id := t.ID()
		tools.Add(widget.NewButton(fmt.Sprintf("%d %s", i+1, t.Name()), func() {
			if err := s.SwitchTool(id); err != nil {
				status.SetText(err.Error())
			}
			w.Canvas().Focus(ed)
		}))
	}

	text := widget.NewMultiLineEntry()
	text.SetText(s.Export())
	load := widget.NewButton("Load", func() {
		if err := s.Load(text.Text); err != nil {
			status.SetText(err.Error())
		}
	})
	export := widget.NewButton("Export", func() {
		text.SetText(s.Export())
	})
	buttons := container.NewHBox(load, export)
	if cmd.Input != "" {
		buttons.Add(widget.NewButton("Save", func() {
			if err := s.Drawing().WriteFile(cmd.Input, assdraw.TextWriter); err != nil {
				status.SetText(err.Error())
				return
			}
			status.SetText("saved " + cmd.Input)
		}))
	}

	split := container.NewVSplit(ed, container.NewBorder(nil, buttons, nil, nil, text))
	split.Offset = 0.8
	w.SetContent(container.NewBorder(tools, status, nil, nil, split))
	w.Resize(fyne.NewSize(800, 700))
	w.Canvas().Focus(ed)
	w.ShowAndRun()
	return nil
}

func statusText(s *editor.Session) string {
	status := fmt.Sprintf("%s (%s)", s.CurrentTool().Name(), s.CurrentTool().Icon())
	if s.CurrentShape() != nil {
		status += fmt.Sprintf(", shape %d of %d", s.CurrentShapeIndex()+1, s.Drawing().Len())
	}
	if hover, ok := s.Hover(); ok {
		status += fmt.Sprintf(", %.0f %.0f", hover.X, hover.Y)
	}
	return status
}
