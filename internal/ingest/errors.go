package ingest

import "errors"

// Recoverable ingest failures. All of them surface as inline messages to
// the caller; none abort the server. Per-cell date problems are not errors
// at all, they come back as row warnings.
var (
	ErrUnreadableFile = errors.New("unreadable or unsupported spreadsheet")
	ErrMissingColumn  = errors.New("required column not mapped")
	ErrEmptyDataset   = errors.New("no rows found after parsing")
)
