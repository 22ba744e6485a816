package folio

// CellKind classifies a notebook cell.
type CellKind int

const (
	// KindMarkup is descriptive text rendered as markdown.
	KindMarkup CellKind = 1

	// KindCode is executable source.
	KindCode CellKind = 2
)

// String returns the human-readable name of a cell kind.
func (k CellKind) String() string {
	switch k {
	case KindMarkup:
		return "markup"
	case KindCode:
		return "code"
	default:
		return "unknown"
	}
}

// Raw cell_type values of the persisted format.
const (
	CellTypeCode     = "code"
	CellTypeMarkdown = "markdown"
)

// Language tags assigned on decode.
const (
	LanguagePython   = "python"
	LanguageMarkdown = "markdown"
)

// MIMETextPlain is the only output MIME type the codec understands.
const MIMETextPlain = "text/plain"

// kindOf maps a raw cell_type to a cell kind.
// Anything other than "code" is markup, including unknown values.
func kindOf(cellType string) CellKind {
	if cellType == CellTypeCode {
		return KindCode
	}
	return KindMarkup
}

// cellTypeOf maps a cell kind back to its raw cell_type.
func cellTypeOf(kind CellKind) string {
	if kind == KindCode {
		return CellTypeCode
	}
	return CellTypeMarkdown
}

// languageOf returns the fixed decode-time language tag for a kind.
// The raw language field is not consulted.
func languageOf(kind CellKind) string {
	if kind == KindCode {
		return LanguagePython
	}
	return LanguageMarkdown
}
