package attack

import (
	"errors"

	"archivecrack/internal/archive"
	"archivecrack/internal/charset"
	"archivecrack/internal/config"
)

// Errors returned by Run. All of them are fatal and match with errors.Is.
var (
	ErrUnsupportedFormat       = archive.ErrUnsupportedFormat
	ErrNoRecognizableFile      = errors.New("no encrypted entry with a recognizable file type")
	ErrConflictingLengthParams = config.ErrConflictingLengthParams
	ErrInvalidLengthRange      = config.ErrInvalidLengthRange
	ErrZeroLength              = config.ErrZeroLength
	ErrEmptySelectorSet        = charset.ErrEmptySelectorSet
	ErrUnknownSelector         = charset.ErrUnknownSelector
	ErrKeyspaceOverflow        = charset.ErrKeyspaceOverflow
)
