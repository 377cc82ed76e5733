package log

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldError     = "error"
	FieldPath      = "path"
	FieldYear      = "year"
	FieldMonth     = "month"
	FieldNumber    = "number"
	FieldFilename  = "filename"
	FieldOperation = "operation"
)

// Components defines standard component names
const (
	ComponentApp      = "app"
	ComponentConfig   = "config"
	ComponentArchive  = "archive"
	ComponentLedger   = "ledger"
	ComponentRender   = "render"
	ComponentWorkflow = "workflow"
)
