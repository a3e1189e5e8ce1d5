package printjob

// contentKind distinguishes the two content variants.
type contentKind int

const (
	contentKindFile contentKind = iota
	contentKindText
)

// Content is a tagged variant describing what to print: either an existing
// file referenced by path or inline text that must be materialized before it
// can be referenced positionally.
type Content struct {
	kind     contentKind
	filePath string
	text     string
}

// FileContent references an existing file at path.
func FileContent(path string) Content {
	return Content{kind: contentKindFile, filePath: path}
}

// TextContent wraps inline text to print. The text has no path until the
// command builder writes it to scratch storage.
func TextContent(text string) Content {
	return Content{kind: contentKindText, text: text}
}

// IsText reports whether the content is the inline-text variant.
func (content Content) IsText() bool {
	return content.kind == contentKindText
}

// FilePath returns the referenced path for the file variant and the empty
// string otherwise.
func (content Content) FilePath() string {
	return content.filePath
}

// Text returns the inline text for the text variant and the empty string
// otherwise.
func (content Content) Text() string {
	return content.text
}
