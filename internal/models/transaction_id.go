package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"
)

// TransactionID identifies a transaction. Identifiers are compared as strings;
// numeric identifiers are converted to their decimal string form.
type TransactionID string

// NewTransactionID converts a string or numeric identifier to a TransactionID.
// Floats without a fractional part are rendered as integers, so 999.0 and 999
// both yield "999".
func NewTransactionID(v interface{}) TransactionID {
	switch id := v.(type) {
	case TransactionID:
		return id
	case string:
		return TransactionID(id)
	case int:
		return TransactionID(strconv.Itoa(id))
	case int32:
		return TransactionID(strconv.FormatInt(int64(id), 10))
	case int64:
		return TransactionID(strconv.FormatInt(id, 10))
	case uint:
		return TransactionID(strconv.FormatUint(uint64(id), 10))
	case uint32:
		return TransactionID(strconv.FormatUint(uint64(id), 10))
	case uint64:
		return TransactionID(strconv.FormatUint(id, 10))
	case float32:
		return floatID(float64(id))
	case float64:
		return floatID(id)
	case json.Number:
		return TransactionID(id.String())
	case fmt.Stringer:
		return TransactionID(id.String())
	default:
		return TransactionID(fmt.Sprint(v))
	}
}

func floatID(f float64) TransactionID {
	if f == math.Trunc(f) && !math.IsInf(f, 0) {
		return TransactionID(strconv.FormatFloat(f, 'f', -1, 64))
	}
	return TransactionID(strconv.FormatFloat(f, 'g', -1, 64))
}

// String returns the identifier as a plain string.
func (id TransactionID) String() string {
	return string(id)
}

// UnmarshalJSON accepts both quoted strings and bare number literals.
func (id *TransactionID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = TransactionID(s)
		return nil
	}
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("transaction_id must be a string or number: %w", err)
	}
	*id = numericID(n.String())
	return nil
}

// UnmarshalYAML accepts any scalar node. Numeric scalars are normalized like UnmarshalJSON.
func (id *TransactionID) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("transaction_id must be a scalar, line %d", value.Line)
	}
	switch value.ShortTag() {
	case "!!int", "!!float":
		*id = numericID(value.Value)
	default:
		*id = TransactionID(value.Value)
	}
	return nil
}

// numericID converts a number literal the way NewTransactionID converts the
// number itself, so 999.0 and 1e3 become "999" and "1000". Literals that do not
// parse are kept verbatim.
func numericID(literal string) TransactionID {
	if i, err := strconv.ParseInt(literal, 0, 64); err == nil {
		return NewTransactionID(i)
	}
	if f, err := strconv.ParseFloat(literal, 64); err == nil {
		return NewTransactionID(f)
	}
	return TransactionID(literal)
}
