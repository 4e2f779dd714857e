package logging

// Standardized field names for structured logging.
const (
	FieldFile          = "file_path"
	FieldFormat        = "format"
	FieldTransactionID = "transaction_id"
	FieldType          = "transaction_type"
	FieldMerchant      = "merchant_name"
	FieldOperation     = "operation"
	FieldError         = "error"
	FieldDuration      = "duration_ms"
	FieldCount         = "count"
	FieldDelimiter     = "delimiter"
	FieldMonth         = "month"
	FieldComponent     = "component"
)
