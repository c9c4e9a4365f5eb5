package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseValidate Phase = "validate" // schema construction
	PhaseDecode   Phase = "decode"   // storage to value
	PhaseEncode   Phase = "encode"   // value to storage
)

// Kind categorizes the error
type Kind string

const (
	KindTypeTooSmall             Kind = "type_too_small"
	KindSignedNeverNegative      Kind = "signed_field_never_negative"
	KindFieldExceedsStorage      Kind = "field_exceeds_storage"
	KindUnintendedOverlap        Kind = "unintended_overlap"
	KindAsymmetricAllowance      Kind = "asymmetric_overlap_allowance"
	KindUnnecessaryAllowance     Kind = "unnecessary_or_unknown_overlap_allowance"
	KindTypeWiderThanNeeded      Kind = "type_wider_than_needed"
	KindDuplicateField           Kind = "duplicate_field"
	KindDuplicateDiscriminant    Kind = "duplicate_discriminant"
	KindDiscriminantExceedsWidth Kind = "discriminant_exceeds_width"
	KindIncompleteEnum           Kind = "incomplete_enum"
	KindTypeMismatch             Kind = "type_mismatch"
	KindUnknownVariant           Kind = "unknown_variant"
	KindNotFound                 Kind = "not_found"
	KindInvalidInput             Kind = "invalid_input"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value    any
	Cause    error
	Phase    Phase
	Kind     Kind
	Fields   []string
	Width    uint32
	Capacity uint32
	Detail   string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Fields) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Fields, ", "))
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Fields sets the involved field names
func (b *Builder) Fields(fields ...string) *Builder {
	b.err.Fields = fields
	return b
}

// Width sets the declared field width
func (b *Builder) Width(w uint32) *Builder {
	b.err.Width = w
	return b
}

// Capacity sets the relevant bit capacity
func (b *Builder) Capacity(c uint32) *Builder {
	b.err.Capacity = c
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for the validation taxonomy

// TypeTooSmall reports a field wider than its value type's bit capacity
func TypeTooSmall(field string, width, capacity uint32) *Error {
	return &Error{
		Phase:    PhaseValidate,
		Kind:     KindTypeTooSmall,
		Fields:   []string{field},
		Width:    width,
		Capacity: capacity,
		Detail:   fmt.Sprintf("type holds %d bits, smaller than the declared width of %d bits", capacity, width),
	}
}

// SignedNeverNegative reports a signed field narrower than its type's full capacity
func SignedNeverNegative(field string, width, capacity uint32) *Error {
	return &Error{
		Phase:    PhaseValidate,
		Kind:     KindSignedNeverNegative,
		Fields:   []string{field},
		Width:    width,
		Capacity: capacity,
		Detail: fmt.Sprintf(
			"a signed field %d bits wide can never store negative numbers, use an unsigned type or width %d",
			width, capacity),
	}
}

// ExceedsStorage reports a field whose bit range runs past the storage capacity
func ExceedsStorage(field string, offset, width, storageBits uint32) *Error {
	return &Error{
		Phase:    PhaseValidate,
		Kind:     KindFieldExceedsStorage,
		Fields:   []string{field},
		Width:    width,
		Capacity: storageBits,
		Detail:   fmt.Sprintf("bits [%d, %d) exceed the %d-bit storage", offset, offset+width, storageBits),
	}
}

// UnintendedOverlap reports two fields sharing bits without mutual permission
func UnintendedOverlap(a, b string) *Error {
	return &Error{
		Phase:  PhaseValidate,
		Kind:   KindUnintendedOverlap,
		Fields: []string{a, b},
		Detail: fmt.Sprintf("field %q overlaps with field %q, declare the overlap on both fields if intended", a, b),
	}
}

// AsymmetricAllowance reports a one-sided overlap permission
func AsymmetricAllowance(granter, other string) *Error {
	return &Error{
		Phase:  PhaseValidate,
		Kind:   KindAsymmetricAllowance,
		Fields: []string{granter, other},
		Detail: fmt.Sprintf("field %q allows overlap with %q but %q does not reciprocate", granter, other, other),
	}
}

// StaleAllowance reports an allowance naming a non-overlapping or unknown field
func StaleAllowance(field, target, reason string) *Error {
	return &Error{
		Phase:  PhaseValidate,
		Kind:   KindUnnecessaryAllowance,
		Fields: []string{field, target},
		Detail: fmt.Sprintf("overlap allowance for %q is %s", target, reason),
	}
}

// TypeWiderThanNeeded reports a numeric type wider than the declared width requires
func TypeWiderThanNeeded(field string, width, capacity, narrowest uint32) *Error {
	return &Error{
		Phase:    PhaseValidate,
		Kind:     KindTypeWiderThanNeeded,
		Fields:   []string{field},
		Width:    width,
		Capacity: capacity,
		Detail:   fmt.Sprintf("field only uses %d bits, use a %d-bit type instead", width, narrowest),
	}
}

// DuplicateField reports a field name declared more than once
func DuplicateField(name string) *Error {
	return &Error{
		Phase:  PhaseValidate,
		Kind:   KindDuplicateField,
		Fields: []string{name},
		Detail: fmt.Sprintf("field %q is declared more than once", name),
	}
}

// DuplicateDiscriminant reports an enum mapping that is not injective
func DuplicateDiscriminant(field, a, b string, value uint64) *Error {
	return &Error{
		Phase:  PhaseValidate,
		Kind:   KindDuplicateDiscriminant,
		Fields: []string{field},
		Value:  value,
		Detail: fmt.Sprintf("variants %q and %q share discriminant %d", a, b, value),
	}
}

// DiscriminantExceedsWidth reports a variant value the field width cannot hold
func DiscriminantExceedsWidth(field, variant string, value uint64, width uint32) *Error {
	return &Error{
		Phase:  PhaseValidate,
		Kind:   KindDiscriminantExceedsWidth,
		Fields: []string{field},
		Width:  width,
		Value:  value,
		Detail: fmt.Sprintf("variant %q has discriminant %d, which does not fit in %d bits", variant, value, width),
	}
}

// IncompleteEnum reports a gap in an enum declared complete
func IncompleteEnum(field string, missing uint64, width uint32) *Error {
	return &Error{
		Phase:  PhaseValidate,
		Kind:   KindIncompleteEnum,
		Fields: []string{field},
		Width:  width,
		Value:  missing,
		Detail: fmt.Sprintf("enum is declared complete but raw value %d has no variant", missing),
	}
}

// TypeMismatch reports a typed accessor used against a field of another kind
func TypeMismatch(phase Phase, field, got, want string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindTypeMismatch,
		Fields: []string{field},
		Detail: fmt.Sprintf("field is %s, not %s", got, want),
	}
}

// UnknownVariant reports an encode with a variant name the enum does not declare
func UnknownVariant(field, variant string) *Error {
	return &Error{
		Phase:  PhaseEncode,
		Kind:   KindUnknownVariant,
		Fields: []string{field},
		Detail: fmt.Sprintf("enum declares no variant %q", variant),
	}
}

// NotFound reports an accessor naming a field the schema does not declare
func NotFound(phase Phase, field string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Fields: []string{field},
		Detail: fmt.Sprintf("schema declares no field %q", field),
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(detail string, args ...any) *Error {
	return &Error{
		Phase:  PhaseValidate,
		Kind:   KindInvalidInput,
		Detail: fmt.Sprintf(detail, args...),
	}
}
