// Package schema validates karabiner.json documents against an embedded
// CUE schema.
package schema

import (
	_ "embed"
	"fmt"
	"strconv"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"
	cuejson "cuelang.org/go/encoding/json"

	"github.com/roach88/hyperkey/internal/karabiner"
	"github.com/roach88/hyperkey/internal/keycode"
)

// ErrSchemaViolation is the code of every Error.
const ErrSchemaViolation = "E301"

const schemaFile = "karabiner.cue"

//go:embed karabiner.cue
var document string

// Error is one schema violation.
type Error struct {
	Code    string    `json:"code" yaml:"code"`
	Path    string    `json:"path,omitempty" yaml:"path,omitempty"`
	Message string    `json:"message" yaml:"message"`
	Pos     token.Pos `json:"-" yaml:"-"`
}

func (e Error) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Message)
	}
	return e.Message
}

// Source returns the complete schema, including the key alphabet.
func Source() string {
	var b strings.Builder
	b.WriteString(document)
	b.WriteString("\n#KeyCode: ")
	b.WriteString(disjunction(keycode.All()))
	b.WriteString("\n#Modifier: ")
	b.WriteString(disjunction(keycode.Modifiers()))
	b.WriteString("\n#TopCase: ")
	b.WriteString(disjunction(keycode.TopCases()))
	b.WriteString("\n")
	return b.String()
}

func disjunction[T ~string](values []T) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = strconv.Quote(string(v))
	}
	return strings.Join(quoted, " | ")
}

// Validate checks raw karabiner.json contents. Returns all violations found;
// nil means the document is valid.
func Validate(data []byte) []Error {
	return ValidateNamed("karabiner.json", data)
}

// ValidateNamed is Validate with the file name used in error positions.
func ValidateNamed(name string, data []byte) []Error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(Source(), cue.Filename(schemaFile))
	if err := schema.Err(); err != nil {
		return fromCUE(fmt.Errorf("compiling schema: %w", err))
	}
	def := schema.LookupPath(cue.ParsePath("#Document"))

	expr, err := cuejson.Extract(name, data)
	if err != nil {
		return fromCUE(err)
	}
	doc := ctx.BuildExpr(expr)
	if err := doc.Err(); err != nil {
		return fromCUE(err)
	}

	if err := def.Unify(doc).Validate(cue.Concrete(true)); err != nil {
		return fromCUE(err)
	}
	return nil
}

// ValidateDocument checks an in-memory document as it would be written.
func ValidateDocument(doc karabiner.Document) []Error {
	data, err := karabiner.Marshal(doc)
	if err != nil {
		return []Error{{Code: ErrSchemaViolation, Message: err.Error()}}
	}
	return Validate(data)
}

// fromCUE flattens a CUE error list. Each error keeps one position,
// preferring the validated document over the schema.
func fromCUE(err error) []Error {
	cueErrs := errors.Errors(err)
	if len(cueErrs) == 0 {
		return []Error{{Code: ErrSchemaViolation, Message: err.Error()}}
	}

	out := make([]Error, 0, len(cueErrs))
	for _, e := range cueErrs {
		ve := Error{
			Code:    ErrSchemaViolation,
			Path:    strings.Join(e.Path(), "."),
			Message: e.Error(),
		}
		for _, pos := range errors.Positions(e) {
			if !ve.Pos.IsValid() || ve.Pos.Filename() == schemaFile {
				ve.Pos = pos
			}
		}
		out = append(out, ve)
	}
	return out
}
