package render

import (
	"errors"
	"fmt"
	"io"

	"github.com/coininu/launchpad/internal/domain"
	"github.com/coininu/launchpad/internal/usecase"
	"github.com/fatih/color"
)

// DeployRenderer is the single sink for deployment output: the progress
// notice and result line on stdout, failure diagnostics on the error
// stream. No component upstream prints or recovers on its own.
type DeployRenderer struct {
	out    io.Writer
	errOut io.Writer
}

// NewDeployRenderer creates a renderer writing results to out and
// diagnostics to errOut.
func NewDeployRenderer(out, errOut io.Writer) *DeployRenderer {
	return &DeployRenderer{out: out, errOut: errOut}
}

// Deploying prints the progress notice. Output is part of the CLI
// contract; tests assert the literal lines.
func (r *DeployRenderer) Deploying() {
	fmt.Fprintln(r.out, "Deploying smart contract...")
}

// Success prints the final address line
func (r *DeployRenderer) Success(result *usecase.DeployContractResult) {
	fmt.Fprintf(r.out, "The smart contract was deployed at: %s on %s!\n",
		result.Result.Address.Hex(), result.Network.Name)
}

// Failure prints one clear diagnostic per failure kind. For failures after
// a broadcast it includes the transaction hash: the transaction may have
// landed, and resubmitting blindly would consume another nonce.
func (r *DeployRenderer) Failure(err error, result *usecase.DeployContractResult) {
	red := color.New(color.FgRed)
	yellow := color.New(color.FgYellow)

	var (
		notFound     *domain.ArtifactNotFoundError
		submission   *domain.SubmissionError
		confirmation *domain.ConfirmationError
		reverted     *domain.DeploymentRevertedError
	)

	switch {
	case errors.As(err, &notFound):
		red.Fprintf(r.errOut, "✗ %s\n", notFound.Error())
	case errors.As(err, &submission):
		red.Fprintf(r.errOut, "✗ %s\n", submission.Error())
	case errors.As(err, &confirmation):
		red.Fprintf(r.errOut, "✗ %s\n", confirmation.Error())
		yellow.Fprintln(r.errOut, "  check the transaction by hand before retrying: a resubmission would consume a fresh nonce")
	case errors.As(err, &reverted):
		red.Fprintf(r.errOut, "✗ %s\n", reverted.Error())
	default:
		red.Fprintf(r.errOut, "✗ deployment failed: %v\n", err)
	}

	if result != nil && result.Pending != nil {
		fmt.Fprintf(r.errOut, "  tx: %s (sender %s, nonce %d)\n",
			result.Pending.TxHash.Hex(), result.Pending.Sender.Hex(), result.Pending.Nonce)
	}
}
