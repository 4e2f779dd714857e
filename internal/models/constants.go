package models

// Transaction types the analyzer treats specially. The type field itself is an open set.
const (
	TransactionTypeDebit  = "debit"
	TransactionTypeCredit = "credit"
)

// Serialized field names shared by every record format.
const (
	FieldTransactionID          = "transaction_id"
	FieldTransactionDate        = "transaction_date"
	FieldTransactionAmount      = "transaction_amount"
	FieldTransactionType        = "transaction_type"
	FieldTransactionDescription = "transaction_description"
	FieldMerchantName           = "merchant_name"
	FieldCardType               = "card_type"
)

// Columns lists the record fields in their canonical column order.
var Columns = []string{
	FieldTransactionID,
	FieldTransactionDate,
	FieldTransactionAmount,
	FieldTransactionType,
	FieldTransactionDescription,
	FieldMerchantName,
	FieldCardType,
}
