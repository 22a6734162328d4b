package ui

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/schollz/progressbar/v3"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// ProgressBar wraps a progressbar instance for deterministic progress display.
type ProgressBar struct {
	bar *progressbar.ProgressBar
}

// NewProgressBar creates a new progress bar with the given total and description.
func NewProgressBar(total int64, description string) *ProgressBar {
	bar := progressbar.NewOptions64(
		total,
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionSetItsString("bookings"),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(os.Stderr, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)

	return &ProgressBar{bar: bar}
}

// Add advances the bar by n.
func (p *ProgressBar) Add(n int) {
	_ = p.bar.Add(n)
}

// Finish completes the progress bar.
func (p *ProgressBar) Finish() {
	_ = p.bar.Finish()
}

// Spinner wraps a spinner instance for indeterminate progress display.
type Spinner struct {
	spinner *spinner.Spinner
}

// NewSpinner creates a new spinner with the given message.
func NewSpinner(message string) *Spinner {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message
	s.Writer = os.Stderr
	return &Spinner{spinner: s}
}

// Start starts the spinner animation.
func (s *Spinner) Start() {
	s.spinner.Start()
}

// Stop stops the spinner animation and clears the line.
func (s *Spinner) Stop() {
	s.spinner.Stop()
}

// MultiProgress shows one named bar per concurrent task.
type MultiProgress struct {
	progress *mpb.Progress
	bars     map[string]*mpb.Bar
}

// NewMultiProgress creates an empty multi-bar display on stderr.
func NewMultiProgress() *MultiProgress {
	return &MultiProgress{
		progress: mpb.New(mpb.WithWidth(48), mpb.WithOutput(os.Stderr)),
		bars:     make(map[string]*mpb.Bar),
	}
}

// AddBar registers a bar. Bars with nothing to do are not shown.
func (m *MultiProgress) AddBar(name string, total int64) {
	if total <= 0 {
		return
	}
	m.bars[name] = m.progress.AddBar(total,
		mpb.PrependDecorators(
			decor.Name(name, decor.WC{W: len(name) + 1, C: decor.DSyncSpaceR}),
			decor.CountersNoUnit("%d / %d", decor.WCSyncWidth),
		),
		mpb.AppendDecorators(decor.Percentage(decor.WC{W: 5})),
	)
}

// SetCurrent moves a named bar to n.
func (m *MultiProgress) SetCurrent(name string, n int64) {
	if bar, ok := m.bars[name]; ok {
		bar.SetCurrent(n)
	}
}

// Wait stops any unfinished bars and waits for rendering to end.
func (m *MultiProgress) Wait() {
	for _, bar := range m.bars {
		if !bar.Completed() {
			bar.Abort(false)
		}
	}
	m.progress.Wait()
}
