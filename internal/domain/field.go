package domain

import "fmt"

// Field selects which text of an entry an ordering or lookup works on
type Field int

const (
	FieldWord Field = iota
	FieldTranslation
)

// String returns the field name as it appears in the persisted format
func (f Field) String() string {
	switch f {
	case FieldWord:
		return "word"
	case FieldTranslation:
		return "translation"
	default:
		return fmt.Sprintf("Field(%d)", int(f))
	}
}

// Of returns the value of the field in the given entry
func (f Field) Of(e Entry) string {
	if f == FieldTranslation {
		return e.Translation
	}
	return e.Word
}

// ParseField converts "word" or "translation" into a Field
func ParseField(s string) (Field, error) {
	switch s {
	case "word":
		return FieldWord, nil
	case "translation":
		return FieldTranslation, nil
	default:
		return 0, fmt.Errorf("unknown field %q (expected word or translation)", s)
	}
}
