package services

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

const (
	mimePDF  = "application/pdf"
	mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

	// Extractions shorter than this (after trimming) are treated as
	// scanned or empty documents.
	minExtractedChars = 30
)

type documentFormat int

const (
	formatUnknown documentFormat = iota
	formatPDF
	formatDOCX
)

type DocumentExtractor interface {
	ExtractText(data []byte, contentType, filename string) (string, error)
}

type documentExtractor struct{}

func NewDocumentExtractor() DocumentExtractor {
	return &documentExtractor{}
}

// ExtractText converts raw document bytes into plain text. The format is
// resolved from the declared content type first, falling back to the filename
// extension when the type is absent or generic.
func (e *documentExtractor) ExtractText(data []byte, contentType, filename string) (text string, err error) {
	format := resolveFormat(contentType, filename)
	if format == formatUnknown {
		return "", ErrUnsupportedFormat
	}

	// The underlying parsers are not trusted with arbitrary input: a corrupt
	// archive or malformed xref table must surface as a classified error,
	// never as a crash.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("%w: %v", ErrExtractionFailed, r)
		}
	}()

	switch format {
	case formatPDF:
		return e.extractPDF(data)
	default:
		return e.extractDOCX(data)
	}
}

func resolveFormat(contentType, filename string) documentFormat {
	switch contentType {
	case mimePDF:
		return formatPDF
	case mimeDOCX:
		return formatDOCX
	}

	name := strings.ToLower(filename)
	switch {
	case strings.HasSuffix(name, ".pdf"):
		return formatPDF
	case strings.HasSuffix(name, ".docx"):
		return formatDOCX
	}

	return formatUnknown
}

func (e *documentExtractor) extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}

	var textBuilder strings.Builder
	totalPage := reader.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unreadable pages and keep going
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n")
	}

	text := textBuilder.String()
	if len(strings.TrimSpace(text)) < minExtractedChars {
		return "", ErrScannedDocument
	}

	return text, nil
}

var wmlTagPattern = regexp.MustCompile(`<[^>]+>`)

func (e *documentExtractor) extractDOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}
	defer doc.Close()

	text := stripWMLTags(doc.Editable().GetContent())
	if len(strings.TrimSpace(text)) < minExtractedChars {
		return "", ErrEmptyDocument
	}

	return text, nil
}

// stripWMLTags reduces the WordprocessingML body to plain text. Paragraph
// and tab markers become whitespace before the remaining tags are dropped.
func stripWMLTags(content string) string {
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	content = strings.ReplaceAll(content, "<w:tab/>", "\t")
	return wmlTagPattern.ReplaceAllString(content, " ")
}
