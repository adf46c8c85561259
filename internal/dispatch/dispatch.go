// Package dispatch runs one of the tool's operations against the daemon and
// reports the outcome through the logger and an output sink.
package dispatch

import (
	"context"
	"errors"
	"io"

	"github.com/mwiater/ollamatool/internal/logging"
	"github.com/mwiater/ollamatool/internal/models"
	"github.com/mwiater/ollamatool/internal/ollama"
)

// Operation selects a request flow.
type Operation int

const (
	Status Operation = iota
	Running
	Available
)

// String returns the operation name used in log lines.
func (op Operation) String() string {
	switch op {
	case Status:
		return "status"
	case Running:
		return "running models"
	case Available:
		return "available models"
	default:
		return "unknown"
	}
}

// Path returns the request path for the operation.
func (op Operation) Path() string {
	switch op {
	case Running:
		return ollama.PathRunningModels
	case Available:
		return ollama.PathTags
	default:
		return ollama.PathStatus
	}
}

// ParseOperation maps the CLI mode flags to an operation. ok is false when
// both modes are requested.
func ParseOperation(running, list bool) (op Operation, ok bool) {
	switch {
	case running && list:
		return Status, false
	case running:
		return Running, true
	case list:
		return Available, true
	default:
		return Status, true
	}
}

// Fetcher performs one GET against the daemon.
type Fetcher interface {
	Fetch(ctx context.Context, path string) (*ollama.Outcome, error)
}

// Dispatcher drives a single operation from request to report.
type Dispatcher struct {
	Client Fetcher
	Out    io.Writer
}

// New returns a Dispatcher that renders model listings to out.
func New(client Fetcher, out io.Writer) *Dispatcher {
	return &Dispatcher{Client: client, Out: out}
}

// Run executes op. Failures are logged where they occur and returned so the
// caller can pick an exit code; nothing is retried.
func (d *Dispatcher) Run(ctx context.Context, op Operation) error {
	outcome, err := d.Client.Fetch(ctx, op.Path())
	if err != nil {
		logFetchFailure(op, err)
		return err
	}
	defer outcome.Close()
	logging.Debug("%s responded %d", outcome.URL, outcome.StatusCode)

	switch op {
	case Available:
		return d.reportModels(outcome.Body)
	default:
		return d.reportText(op, outcome.Body)
	}
}

func (d *Dispatcher) reportText(op Operation, body io.Reader) error {
	text, err := ollama.ReadText(body)
	if err != nil {
		logging.Error("Failed to read %s response text: %v", op, err)
		return err
	}
	if op == Running {
		logging.Info("Running models =>  %s", text)
	} else {
		logging.Info("Ollama status =>  %s", text)
	}
	return nil
}

func (d *Dispatcher) reportModels(body io.Reader) error {
	list, err := ollama.DecodeModels(body)
	if err != nil {
		logging.Error("Failed to decode %s: %v", Available, err)
		return err
	}
	logging.Dump("decoded models", list)

	if list.Empty() {
		logging.Info("No available models found.")
		return nil
	}

	logging.Info("Available models:")
	if err := models.Render(d.Out, list); err != nil {
		logging.Error("Failed to write %s: %v", Available, err)
		return err
	}
	logging.Debug("%s", list.Summary())
	return nil
}

func logFetchFailure(op Operation, err error) {
	var statusErr *ollama.HTTPStatusError
	switch {
	case errors.As(err, &statusErr) && op == Status:
		logging.Error("Ollama is not running. Received status: %s", statusErr.StatusText())
	case errors.As(err, &statusErr):
		logging.Error("Failed to retrieve %s. Received status: %s", op, statusErr.StatusText())
	default:
		logging.Error("Failed to connect to Ollama (%s): %v", op, err)
	}
}
