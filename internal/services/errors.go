package services

import "errors"

// Classified failures of the extraction and validation stages. Handlers map
// these onto HTTP status codes; raw parser faults never cross this boundary.
var (
	// ErrUnsupportedFormat means the declared type/extension is neither PDF
	// nor DOCX. Detected before any parser runs.
	ErrUnsupportedFormat = errors.New("unsupported file type: please upload PDF or DOCX only")

	// ErrScannedDocument means a PDF produced almost no text, which usually
	// indicates a scanned (image-based) document with no text layer.
	ErrScannedDocument = errors.New("this PDF appears to be scanned (image-based): please upload a text-based PDF or DOCX")

	// ErrEmptyDocument means a DOCX parsed fine but carried almost no text.
	ErrEmptyDocument = errors.New("DOCX file appears to be empty or unreadable")

	// ErrExtractionFailed wraps an unexpected parser fault (corrupt archive,
	// malformed PDF structure). The parser's message is preserved.
	ErrExtractionFailed = errors.New("failed to read file")

	// ErrContentTooShort means the normalized text is below the minimum
	// length worth analyzing.
	ErrContentTooShort = errors.New("resume content is too short or unreadable")
)
