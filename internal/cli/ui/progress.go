package ui

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/briandowns/spinner"
	"github.com/schollz/progressbar/v3"
)

const (
	// fakeCeiling is the highest percentage the timer may reach on its own.
	// 100% is reserved for confirmed success.
	fakeCeiling  = 90
	fakeInterval = 150 * time.Millisecond
)

// FakeBar is a cosmetic progress display for an engine that emits no
// machine-readable progress events. A timer advances the percentage on a
// fixed cadence up to a ceiling below 100%; the bar snaps to 100% only when
// the caller confirms success. It simulates activity, it does not measure it.
type FakeBar struct {
	bar  *progressbar.ProgressBar
	done chan struct{}
	stop sync.Once
}

// StartFakeBar creates and starts a fake progress bar.
func StartFakeBar(description string) *FakeBar {
	bar := progressbar.NewOptions64(
		100,
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
		progressbar.OptionSetRenderBlankState(true),
	)

	f := &FakeBar{
		bar:  bar,
		done: make(chan struct{}),
	}
	go f.tick()
	return f
}

// tick is the only writer of the advancing percentage; Succeed and Abort
// overwrite it exactly once after stopping the ticker.
func (f *FakeBar) tick() {
	ticker := time.NewTicker(fakeInterval)
	defer ticker.Stop()

	percent := int64(0)
	for {
		select {
		case <-f.done:
			return
		case <-ticker.C:
			if percent < fakeCeiling {
				percent++
				f.bar.Set64(percent)
			}
		}
	}
}

// Succeed cancels the timer and snaps the bar to 100%.
func (f *FakeBar) Succeed() {
	f.stop.Do(func() {
		close(f.done)
		f.bar.Set64(100)
		f.bar.Finish()
		fmt.Fprintln(os.Stderr)
	})
}

// Abort cancels the timer and clears the bar without completing it.
func (f *FakeBar) Abort() {
	f.stop.Do(func() {
		close(f.done)
		f.bar.Clear()
	})
}

// Spinner wraps a spinner instance for indeterminate waits.
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
