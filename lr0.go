package lr0

import "fmt"

// --- Reserved tokens -------------------------------------------------------

// Spellings of the two reserved grammar symbols. Grammar sources use them
// verbatim; the grammar construction of package lr recognizes them by name.
const (
	Epsilon    = "ε" // the empty string
	EndOfInput = "$" // end-of-input marker, identifies the start rule
)

// --- Spans -----------------------------------------------------------------

// Span is a small type for capturing a run of input positions. Grammar
// sources use it to tell where a token or a syntax error occured. A span
// denotes a start position and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

// IsNull is a predicate: is s the zero span?
func (s Span) IsNull() bool {
	return s == Span{}
}

// Extend returns the smallest span covering s and other. Null spans do not
// contribute.
func (s Span) Extend(other Span) Span {
	if s.IsNull() {
		return other
	}
	if other.IsNull() {
		return s
	}
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}

// --- Errors ----------------------------------------------------------------

// ErrorKind categorizes errors of grammar construction, analysis and
// automaton construction.
type ErrorKind int8

// Kinds of errors. All of them are fatal for the operation reporting them;
// there is no retry path, as every computation is deterministic.
const (
	NoError        ErrorKind = iota
	MalformedItem            // dot out of range or rule not owned by LHS
	NoStartRule              // no rule contains the end-of-input marker
	AmbiguousStart           // start rule cannot be determined unambiguously
	NonConvergence           // a fixed-point iteration exceeded its bound
	PhaseOrder               // analysis phases requested out of order
	InvalidGrammar           // structurally invalid grammar construction
	SyntaxError              // grammar source could not be read
)

func (k ErrorKind) String() string {
	switch k {
	case NoError:
		return "no error"
	case MalformedItem:
		return "malformed item"
	case NoStartRule:
		return "no start rule"
	case AmbiguousStart:
		return "ambiguous start rule"
	case NonConvergence:
		return "non-convergence"
	case PhaseOrder:
		return "analysis phase order"
	case InvalidGrammar:
		return "invalid grammar"
	case SyntaxError:
		return "syntax error"
	}
	return fmt.Sprintf("error kind %d", k)
}

// Error is the error type of this module. Errors of the same kind match each
// other with errors.Is, if the target carries no message, which allows
// testing against the sentinel values below:
//
//    if errors.Is(err, lr0.ErrNoStartRule) { … }
//
type Error struct {
	Kind   ErrorKind
	Msg    string
	Line   int  // line in a grammar source, if > 0
	Column int  // column in a grammar source, if Line > 0
	Span   Span // byte span in a grammar source, if known
}

// Sentinel errors, one per kind.
var (
	ErrMalformedItem  = &Error{Kind: MalformedItem}
	ErrNoStartRule    = &Error{Kind: NoStartRule}
	ErrAmbiguousStart = &Error{Kind: AmbiguousStart}
	ErrNonConvergence = &Error{Kind: NonConvergence}
	ErrPhaseOrder     = &Error{Kind: PhaseOrder}
	ErrInvalidGrammar = &Error{Kind: InvalidGrammar}
	ErrSyntax         = &Error{Kind: SyntaxError}
)

// Errorf creates a new error of a given kind.
func Errorf(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{
		Kind: kind,
		Msg:  fmt.Sprintf(format, args...),
	}
}

// At returns a copy of e, positioned at line and column of a grammar source.
func (e *Error) At(line, col int, span Span) *Error {
	c := *e
	c.Line, c.Column, c.Span = line, col, span
	return &c
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return e.Kind.String()
	}
	if e.Line > 0 {
		return fmt.Sprintf("%s at %d:%d: %s", e.Kind, e.Line, e.Column, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Is makes errors of the same kind match the sentinel errors.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Msg == ""
}
