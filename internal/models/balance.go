package models

// BalanceRecord is one extracted daily balance line: the statement date
// exactly as printed in the document, and the closing balance with the
// thousands separators already stripped.
type BalanceRecord struct {
	Date    string `json:"date" yaml:"date"`
	Balance string `json:"balance" yaml:"balance"`
}

// ExtractionResult is the outcome of processing one uploaded document.
// Exactly one variant applies: the document was read (Records holds zero or
// more balances) or reading it failed (Err is non-nil, Records is nil).
type ExtractionResult struct {
	Records []BalanceRecord
	Err     error
}

// FoundBalances returns the successful-read variant.
func FoundBalances(records []BalanceRecord) ExtractionResult {
	return ExtractionResult{Records: records}
}

// ReadFailure returns the failed-read variant.
func ReadFailure(err error) ExtractionResult {
	return ExtractionResult{Err: err}
}

// Failed reports whether the document could not be read at all.
func (r ExtractionResult) Failed() bool {
	return r.Err != nil
}

// Empty reports whether the document was read but no balance line matched.
func (r ExtractionResult) Empty() bool {
	return r.Err == nil && len(r.Records) == 0
}
