package x509name

/*
err.go contains error constructors and literals used frequently
throughout this package.
*/

import (
	stderr "errors"
	"sync"

	"github.com/pkg/errors"
)

var mkerr func(string) error = stderr.New

/*
ErrUnsupported is returned, possibly wrapped, whenever a comparison or
feature is undefined for the name forms involved. Callers evaluating
name constraints MUST treat this condition as a failure and never as
a pass.
*/
var ErrUnsupported error = mkerr("unsupported operation")

/*
ErrConstraintViolation is the sentinel wrapped by every [ViolationError].
*/
var ErrConstraintViolation error = mkerr("name constraint violation")

var (
	errorNilInput        error = mkerr("nil or zero input instance")
	errorNilReceiver     error = mkerr("nil receiver instance")
	errorTrailingData    error = mkerr("trailing data after structure")
	errorTruncated       error = mkerr("truncated or malformed DER")
	errorDistanceFeature error = unsupportedErr{mkerr("minimum and maximum base distances")}
)

/*
OID errors.
*/
var (
	errorMinOIDArcs   = primitiveErr{mkerr("OBJECT IDENTIFIER: an OID must have two (2) or more number forms")}
	errorBadOIDRoot   = primitiveErr{mkerr("OBJECT IDENTIFIER: first arc must be 0, 1 or 2")}
	errorBadOIDSecond = primitiveErr{mkerr("OBJECT IDENTIFIER: second arc must be less than 40 when first arc is 0 or 1")}
	errorOIDOverflow  = primitiveErr{mkerr("OBJECT IDENTIFIER: arc overflows 64 bits")}
)

/*
types which implement the error interface.
*/
type (
	codecErr       struct{ e error }
	constraintErr  struct{ e error }
	nameErr        struct{ e error }
	primitiveErr   struct{ e error }
	tLVErr         struct{ e error }
	unsupportedErr struct{ e error }
)

func codecErrorf(m ...any) error          { return codecErr{mkerrf(m...)} }
func constraintViolationf(m ...any) error { return constraintErr{mkerrf(m...)} }
func nameErrorf(m ...any) error           { return nameErr{mkerrf(m...)} }
func primitiveErrorf(m ...any) error      { return primitiveErr{mkerrf(m...)} }
func tLVErrorf(m ...any) error            { return tLVErr{mkerrf(m...)} }
func unsupportedErrorf(m ...any) error    { return unsupportedErr{mkerrf(m...)} }

func (r codecErr) Error() string       { return `CODEC ERROR: ` + r.e.Error() }
func (r constraintErr) Error() string  { return `CONSTRAINT VIOLATION: ` + r.e.Error() }
func (r nameErr) Error() string        { return `NAME ERROR: ` + r.e.Error() }
func (r primitiveErr) Error() string   { return `PRIMITIVE ERROR: ` + r.e.Error() }
func (r tLVErr) Error() string         { return `TLV ERROR: ` + r.e.Error() }
func (r unsupportedErr) Error() string { return `UNSUPPORTED: ` + r.e.Error() }

/*
Is allows any unsupported-category error to satisfy [errors.Is] against
[ErrUnsupported].
*/
func (r unsupportedErr) Is(target error) bool { return target == ErrUnsupported }

func (r codecErr) Unwrap() error { return r.e }
func (r tLVErr) Unwrap() error   { return r.e }

/*
ParseError describes a syntax failure encountered while reading a
textual distinguished name or a DER structure. Input holds the text
or hex dump being parsed and Offset the zero-based position at which
the failure was detected, or -1 when no position applies. Err holds
the underlying cause, if any.
*/
type ParseError struct {
	Input  string
	Offset int
	Msg    string
	Err    error
}

/*
Error returns the string representation of the receiver instance.
*/
func (r *ParseError) Error() string {
	b := newStrBuilder()
	b.WriteString(`PARSE ERROR: `)
	b.WriteString(r.Msg)
	if r.Offset >= 0 {
		b.WriteString(` at offset `)
		b.WriteString(itoa(r.Offset))
	}
	if len(r.Input) > 0 {
		b.WriteString(` in "`)
		b.WriteString(r.Input)
		b.WriteString(`"`)
	}
	return b.String()
}

/*
Unwrap returns the underlying cause of the receiver instance, if any.
*/
func (r *ParseError) Unwrap() error { return r.Err }

func parseErrorf(input string, offset int, m ...any) error {
	return &ParseError{Input: input, Offset: offset, Msg: mkerrf(m...).Error()}
}

/*
derErrorf returns a *[ParseError] describing a DER decoding failure
within the input bytes.
*/
func derErrorf(der []byte, m ...any) error {
	in := hexstr(der)
	if len(in) > 64 {
		in = in[:64] + `...`
	}
	return &ParseError{Input: in, Offset: -1, Msg: mkerrf(m...).Error()}
}

/*
ViolationError is returned when a name falls outside the permitted
subtrees of a [NameConstraints] instance, or inside its excluded
subtrees. Subtree holds the constraint responsible, if any.
*/
type ViolationError struct {
	Name     NameValue
	Subtree  NameValue
	Excluded bool
}

/*
Error returns the string representation of the receiver instance.
*/
func (r *ViolationError) Error() string {
	b := newStrBuilder()
	b.WriteString(ErrConstraintViolation.Error())
	b.WriteString(`: `)
	b.WriteString(r.Name.Type().String())
	b.WriteString(` name "`)
	b.WriteString(r.Name.String())
	b.WriteString(`" `)
	if r.Excluded {
		b.WriteString(`is within excluded subtree "`)
		b.WriteString(r.Subtree.String())
		b.WriteString(`"`)
	} else {
		b.WriteString(`is not within any permitted subtree`)
	}
	return b.String()
}

/*
Unwrap returns [ErrConstraintViolation].
*/
func (r *ViolationError) Unwrap() error { return ErrConstraintViolation }

/*
wrapf annotates err with context while keeping it reachable through
both [errors.Cause] and the standard unwrapping chain.
*/
func wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return errors.Wrapf(err, format, args...)
}

var errCache sync.Map

func mkerrf(parts ...any) error {
	if len(parts) == 0 {
		return nil
	}

	if len(parts) == 1 {
		if s, ok := parts[0].(string); ok {
			if v, hit := errCache.Load(s); hit {
				return v.(error)
			}
		} else if parts[0] == nil {
			return nil
		}
	}

	b := newStrBuilder()
	for _, p := range parts {
		switch v := p.(type) {
		case TLV:
			b.WriteString(v.String())
		case NameType:
			b.WriteString(v.String())
		case Relation:
			b.WriteString(v.String())
		case ObjectIdentifier:
			b.WriteString(v.String())
		case error:
			b.WriteString(v.Error())
		case string:
			b.WriteString(v)
		case byte:
			b.WriteString(string(rune(v)))
		case int:
			b.WriteString(itoa(v))
		case int64:
			b.WriteString(itoa(int(v)))
		default:
			b.WriteString("<not supported>")
		}
	}
	msg := b.String()

	if v, hit := errCache.Load(msg); hit {
		return v.(error)
	}
	e := mkerr(msg)
	errCache.Store(msg, e)
	return e
}
