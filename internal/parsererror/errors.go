// Package parsererror defines the typed errors reported when records cannot be read or parsed.
package parsererror

import "fmt"

// ParseError represents a field value that could not be parsed
type ParseError struct {
	Parser string
	Field  string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Parser, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// InvalidFormatError represents an error where the input file does not conform
// to the expected format.
type InvalidFormatError struct {
	FilePath             string
	ExpectedFormat       string
	ActualContentSnippet string // Optional: a snippet of the actual content for debugging
	Msg                  string
	Err                  error
}

func (e *InvalidFormatError) Error() string {
	if e.ActualContentSnippet != "" {
		return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s. Content snippet: '%s'",
			e.FilePath, e.Msg, e.ExpectedFormat, e.ActualContentSnippet)
	}
	return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s",
		e.FilePath, e.Msg, e.ExpectedFormat)
}

func (e *InvalidFormatError) Unwrap() error {
	return e.Err
}

// DataExtractionError represents a row whose required data could not be extracted,
// even though the file format itself is valid.
type DataExtractionError struct {
	FilePath  string
	Row       int
	FieldName string
	Reason    string
}

func (e *DataExtractionError) Error() string {
	return fmt.Sprintf("data extraction failed in file '%s' at row %d for field '%s': %s",
		e.FilePath, e.Row, e.FieldName, e.Reason)
}
