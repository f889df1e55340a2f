package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"ember/internal/driver"
	"ember/internal/source"
	"ember/internal/ui"
)

type decodeOutcome struct {
	fs      *source.FileSet
	results []*driver.Result
	err     error
}

// runDecodeWithUI runs DecodeFiles in the background and renders its
// progress events until every file is finished.
func runDecodeWithUI(ctx context.Context, title string, files []string, opts driver.Options) (*source.FileSet, []*driver.Result, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan decodeOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Progress = driver.SinkFunc(func(ev driver.Event) { events <- ev })
		fs, results, err := driver.DecodeFiles(ctx, files, optsCopy)
		outcomeCh <- decodeOutcome{fs: fs, results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stderr))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.fs, outcome.results, uiErr
	}
	return outcome.fs, outcome.results, outcome.err
}
