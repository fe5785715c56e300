package logging

// Standardized field names for structured logging.
// Keeping these in one place makes log output consistent across the
// extraction pipeline, the report builders and the web layer.
const (
	FieldFile      = "file"
	FieldIndex     = "index"
	FieldTotal     = "total"
	FieldPages     = "pages"
	FieldMatches   = "matches"
	FieldRows      = "rows"
	FieldRunID     = "run_id"
	FieldFormat    = "format"
	FieldDelimiter = "delimiter"
	FieldSize      = "size_bytes"
	FieldStatus    = "status"
	FieldMethod    = "method"
	FieldPath      = "path"
	FieldAddr      = "addr"
	FieldOperation = "operation"
	FieldError     = "error"
	FieldCount     = "count"
	FieldDuration  = "duration_ms"
)
