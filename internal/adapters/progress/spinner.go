package progress

import (
	"context"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/coininu/launchpad/internal/domain"
	"github.com/coininu/launchpad/internal/usecase"
	"github.com/fatih/color"
)

// SpinnerSink shows deployment stage progress with a terminal spinner.
// It writes to stderr so the stdout result lines stay machine-readable.
type SpinnerSink struct {
	spinner *spinner.Spinner
}

// NewSpinnerSink creates a new spinner-based progress sink
func NewSpinnerSink() *SpinnerSink {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.HideCursor = false
	return &SpinnerSink{spinner: s}
}

// OnStage updates the spinner for a stage transition
func (r *SpinnerSink) OnStage(ctx context.Context, stage domain.Stage) {
	switch stage {
	case domain.StageLoading:
		if !r.spinner.Active() {
			r.spinner.Start()
		}
		r.spinner.Suffix = " Loading artifact"
	case domain.StageSubmitting:
		r.spinner.Suffix = " Submitting transaction"
	case domain.StageAwaitingConfirmation:
		r.spinner.Suffix = " Awaiting confirmation"
	case domain.StageConfirmed, domain.StageFailed:
		r.spinner.Stop()
	}
}

// Info prints an info message without fighting the spinner
func (r *SpinnerSink) Info(message string) {
	wasActive := r.spinner.Active()
	if wasActive {
		r.spinner.Stop()
	}

	color.New(color.FgCyan).Fprintln(os.Stderr, message)

	if wasActive {
		r.spinner.Start()
	}
}

// Error prints an error message without fighting the spinner
func (r *SpinnerSink) Error(message string) {
	wasActive := r.spinner.Active()
	if wasActive {
		r.spinner.Stop()
	}

	color.New(color.FgRed).Fprintln(os.Stderr, message)

	if wasActive {
		r.spinner.Start()
	}
}

// Stop halts the spinner if it is running
func (r *SpinnerSink) Stop() {
	if r.spinner.Active() {
		r.spinner.Stop()
	}
}

var _ usecase.ProgressSink = (*SpinnerSink)(nil)
