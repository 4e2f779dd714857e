package parsererror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseError(t *testing.T) {
	tests := []struct {
		name     string
		err      *ParseError
		expected string
	}{
		{
			name: "date parse error",
			err: &ParseError{
				Parser: "analyzer",
				Field:  "transaction_date",
				Value:  "05/01/2023",
				Err:    errors.New("not an ISO date"),
			},
			expected: "analyzer: failed to parse transaction_date='05/01/2023': not an ISO date",
		},
		{
			name: "parse error with empty value",
			err: &ParseError{
				Parser: "csv",
				Field:  "transaction_amount",
				Value:  "",
				Err:    errors.New("empty amount"),
			},
			expected: "csv: failed to parse transaction_amount='': empty amount",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestParseError_Unwrap(t *testing.T) {
	originalErr := errors.New("original error")
	parseErr := &ParseError{
		Parser: "json",
		Field:  "transaction_amount",
		Value:  "abc",
		Err:    originalErr,
	}

	assert.Equal(t, originalErr, parseErr.Unwrap())
	assert.True(t, errors.Is(parseErr, originalErr))
}

func TestInvalidFormatError(t *testing.T) {
	withSnippet := &InvalidFormatError{
		FilePath:             "records.json",
		ExpectedFormat:       "JSON array of transactions",
		ActualContentSnippet: "{\"oops\"",
		Msg:                  "unexpected end of input",
	}
	assert.Equal(t,
		"invalid format in file 'records.json': unexpected end of input. Expected: JSON array of transactions. Content snippet: '{\"oops\"'",
		withSnippet.Error())

	cause := errors.New("unsupported extension")
	withoutSnippet := &InvalidFormatError{
		FilePath:       "records.txt",
		ExpectedFormat: ".json, .csv, .yaml, .yml or .xlsx",
		Msg:            "unsupported file type",
		Err:            cause,
	}
	assert.Equal(t,
		"invalid format in file 'records.txt': unsupported file type. Expected: .json, .csv, .yaml, .yml or .xlsx",
		withoutSnippet.Error())
	assert.True(t, errors.Is(withoutSnippet, cause))
}

func TestDataExtractionError(t *testing.T) {
	err := &DataExtractionError{
		FilePath:  "records.xlsx",
		Row:       3,
		FieldName: "transaction_amount",
		Reason:    "cell is empty",
	}
	assert.Equal(t, "data extraction failed in file 'records.xlsx' at row 3 for field 'transaction_amount': cell is empty", err.Error())
}

func TestErrorTypeAssertions(t *testing.T) {
	wrapped := fmt.Errorf("loading records: %w", &ParseError{Parser: "csv", Field: "transaction_amount", Value: "x", Err: errors.New("bad")})

	var parseErr *ParseError
	assert.True(t, errors.As(wrapped, &parseErr))
	assert.Equal(t, "transaction_amount", parseErr.Field)

	var formatErr *InvalidFormatError
	assert.False(t, errors.As(wrapped, &formatErr))
}
