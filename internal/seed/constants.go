package seed

// SchemaName is the name the embedded schema is registered under
const SchemaName = "inventory.schema.json"

// DefaultSource names the embedded data set in logs and errors
const DefaultSource = "embedded default"

// File operation error messages
const (
	ErrMsgReadSeedFileFailed = "failed to read seed file: %w"
	ErrMsgParseSeedFailed    = "failed to parse seed data: %w"
	ErrMsgRegisterSchema     = "failed to register seed schema: %w"
)

// Validation error messages (fragments used with error wrapping)
const (
	ErrMsgDataNil = "seed data is nil"
)

// These format strings are used with fmt.Errorf for detailed error messages
const (
	ErrFmtSchemaInvalid        = "schema validation failed for %s: %w"
	ErrFmtDuplicateCategory    = "%w: category %q is listed more than once"
	ErrFmtItemEmptyName        = "%w: item at index %d has empty name"
	ErrFmtItemUnknownCategory  = "%w: item %q names unknown category %q"
	ErrFmtItemBadDate          = "%w: item %q has invalid %s %q"
	ErrFmtItemNegativeValue    = "%w: item %q has negative %s"
	ErrFmtItemReceiptAmbiguous = "%w: item %q receipt %q needs exactly one of url or data"
)

// Log messages
const (
	LogMsgSeedLoaded = "Seed data loaded"
)
