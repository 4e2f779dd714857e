// Package loader reads transaction records from JSON, CSV, YAML and XLSX files.
package loader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"fjacquet/txn-analyzer/internal/logging"
	"fjacquet/txn-analyzer/internal/models"
	"fjacquet/txn-analyzer/internal/parsererror"
	"fjacquet/txn-analyzer/internal/validation"

	"golang.org/x/sync/errgroup"
)

// Format identifies a record file format.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatYAML Format = "yaml"
	FormatXLSX Format = "xlsx"
)

// Extensions lists the file extensions the loader can read.
var Extensions = []string{".json", ".csv", ".yaml", ".yml", ".xlsx"}

const supportedExtensions = ".json, .csv, .yaml, .yml or .xlsx"

// Loader reads transaction files. A Loader is safe for concurrent use.
type Loader struct {
	logger         logging.Logger
	delimiter      rune
	maxConcurrency int
}

// NewLoader creates a Loader. delimiter applies to CSV files; maxConcurrency bounds
// the number of files LoadFiles reads at once (values below 1 mean one at a time).
func NewLoader(logger logging.Logger, delimiter rune, maxConcurrency int) *Loader {
	if logger == nil {
		logger = logging.Nop()
	}
	if delimiter == 0 {
		delimiter = ','
	}
	if maxConcurrency < 1 {
		maxConcurrency = 1
	}
	return &Loader{
		logger:         logger.WithField(logging.FieldComponent, "loader"),
		delimiter:      delimiter,
		maxConcurrency: maxConcurrency,
	}
}

// DetectFormat maps a file extension to its Format.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".csv":
		return FormatCSV, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".xlsx":
		return FormatXLSX, nil
	default:
		return "", &parsererror.InvalidFormatError{
			FilePath:       path,
			ExpectedFormat: supportedExtensions,
			Msg:            "unsupported file type",
		}
	}
}

// LoadFile reads every transaction in path, in file order.
func (l *Loader) LoadFile(path string) ([]models.Transaction, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	if err := validation.IsValidInputFile(path); err != nil {
		return nil, err
	}

	log := l.logger.WithFields(logging.F(logging.FieldFile, path), logging.F(logging.FieldFormat, string(format)))
	log.Info("Reading transactions file")
	started := time.Now()

	var transactions []models.Transaction
	switch format {
	case FormatJSON:
		transactions, err = l.readJSON(path)
	case FormatCSV:
		transactions, err = l.readCSV(path)
	case FormatYAML:
		transactions, err = l.readYAML(path)
	case FormatXLSX:
		transactions, err = l.readXLSX(path)
	}
	if err != nil {
		log.WithError(err).Error("Failed to read transactions file")
		return nil, err
	}

	log.Info("Loaded transactions",
		logging.F(logging.FieldCount, len(transactions)),
		logging.F(logging.FieldDuration, time.Since(started).Milliseconds()))
	return transactions, nil
}

// LoadFiles reads all paths concurrently and returns their transactions
// concatenated in the order the paths were given. The first failure cancels
// the remaining reads and is returned.
func (l *Loader) LoadFiles(ctx context.Context, paths []string) ([]models.Transaction, error) {
	results := make([][]models.Transaction, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(l.maxConcurrency)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			transactions, err := l.LoadFile(path)
			if err != nil {
				return fmt.Errorf("loading %s: %w", path, err)
			}
			results[i] = transactions
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, r := range results {
		total += len(r)
	}
	all := make([]models.Transaction, 0, total)
	for _, r := range results {
		all = append(all, r...)
	}
	return all, nil
}

func openFile(path string) (*os.File, error) {
	file, err := os.Open(path) // #nosec G304 -- user-selected input file
	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}
	return file, nil
}

func (l *Loader) closeFile(file *os.File) {
	if err := file.Close(); err != nil {
		l.logger.WithError(err).Warn("Failed to close file", logging.F(logging.FieldFile, file.Name()))
	}
}

func amountError(parser, value string, err error) error {
	return &parsererror.ParseError{
		Parser: parser,
		Field:  models.FieldTransactionAmount,
		Value:  value,
		Err:    err,
	}
}
