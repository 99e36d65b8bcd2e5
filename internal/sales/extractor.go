package sales

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/osse101/CraftPlanner_Go/internal/domain"
	"github.com/osse101/CraftPlanner_Go/internal/logger"
	"github.com/osse101/CraftPlanner_Go/internal/validation"
)

// CommandExtractor delegates screenshot reading to an external program.
// The image is written to the program's stdin and a JSON array of sale
// records is expected on stdout.
type CommandExtractor struct {
	name    string
	args    []string
	timeout time.Duration
	schemas validation.SchemaValidator
}

// NewCommandExtractor builds an extractor from a command line such as
// "ocr-sales --lang fr". A non-positive timeout disables the deadline.
func NewCommandExtractor(commandLine string, timeout time.Duration) (*CommandExtractor, error) {
	fields := strings.Fields(commandLine)
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty extractor command: %w", domain.ErrInvalidInput)
	}
	return &CommandExtractor{
		name:    fields[0],
		args:    fields[1:],
		timeout: timeout,
		schemas: validation.NewSchemaValidator(),
	}, nil
}

// Extract runs the command once for the image
func (e *CommandExtractor) Extract(ctx context.Context, image []byte) ([]domain.SaleRecord, error) {
	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, e.name, e.args...)
	cmd.Stdin = bytes.NewReader(image)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf(ErrMsgExtractorRunFmt, e.name, err, strings.TrimSpace(stderr.String()))
	}

	records, err := e.decode(stdout.Bytes())
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Debug(LogMsgExtractorRan,
		"command", e.name,
		"records", len(records),
		"duration_ms", time.Since(start).Milliseconds())
	return records, nil
}

// decode checks the output against the sale records schema before unmarshalling,
// so a malformed row rejects the whole screenshot
func (e *CommandExtractor) decode(output []byte) ([]domain.SaleRecord, error) {
	if err := e.schemas.ValidateBytes(output, validation.SchemaSaleRecords); err != nil {
		return nil, fmt.Errorf(ErrMsgExtractorOutputFmt, err)
	}
	var records []domain.SaleRecord
	if err := json.Unmarshal(output, &records); err != nil {
		return nil, fmt.Errorf(ErrMsgExtractorOutputFmt, err)
	}
	return Merge(nil, records), nil
}
