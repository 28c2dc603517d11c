package wordsapi

import "fmt"

// ValueKind discriminates the shapes a transformed attribute value can take.
type ValueKind int

const (
	// KindList is a list of strings, the most common attribute shape.
	KindList ValueKind = iota
	// KindText is a single string, e.g. a pronunciation.
	KindText
	// KindNumber is a numeric attribute, e.g. frequency.
	KindNumber
	// KindObject is a raw response object. It appears when a multi-segment
	// key path stops partway through the response.
	KindObject
	// KindGroups is the grouped definitions shape.
	KindGroups
)

// Value is the transformed result of one attribute lookup. Exactly one of
// the shapes is populated, indicated by Kind.
type Value struct {
	kind   ValueKind
	list   []string
	text   string
	number float64
	object map[string]any
	groups []DefinitionGroup
}

// DefinitionGroup holds the definitions sharing one part of speech, in the
// order the API returned them.
type DefinitionGroup struct {
	PartOfSpeech string
	Entries      []DefinitionEntry
}

// DefinitionEntry is a single definition. Details holds the relation lists
// of that definition alone and is only populated by a full-detail fetch.
type DefinitionEntry struct {
	Definition string
	Details    map[Verb][]string
}

func listValue(items []string) Value {
	if items == nil {
		items = []string{}
	}
	return Value{kind: KindList, list: items}
}

func textValue(s string) Value {
	return Value{kind: KindText, text: s}
}

func numberValue(n float64) Value {
	return Value{kind: KindNumber, number: n}
}

func objectValue(obj map[string]any) Value {
	return Value{kind: KindObject, object: obj}
}

func groupsValue(groups []DefinitionGroup) Value {
	return Value{kind: KindGroups, groups: groups}
}

// valueFromRaw converts a decoded JSON value into a Value.
func valueFromRaw(raw any) Value {
	switch v := raw.(type) {
	case []any:
		items := make([]string, 0, len(v))
		for _, item := range v {
			items = append(items, fmt.Sprintf("%v", item))
		}
		return listValue(items)
	case string:
		return textValue(v)
	case float64:
		return numberValue(v)
	case map[string]any:
		return objectValue(v)
	default:
		return listValue(nil)
	}
}

// Kind reports which shape this value holds.
func (v Value) Kind() ValueKind { return v.kind }

// Strings returns the list shape, or nil for other kinds.
func (v Value) Strings() []string { return v.list }

// Text returns the string shape, or "" for other kinds.
func (v Value) Text() string { return v.text }

// Number returns the numeric shape, or 0 for other kinds.
func (v Value) Number() float64 { return v.number }

// Object returns the raw object shape, or nil for other kinds.
func (v Value) Object() map[string]any { return v.object }

// Groups returns the grouped definitions shape, or nil for other kinds.
func (v Value) Groups() []DefinitionGroup { return v.groups }

// IsEmpty reports whether the value carries no entries for its kind.
func (v Value) IsEmpty() bool {
	switch v.kind {
	case KindList:
		return len(v.list) == 0
	case KindText:
		return v.text == ""
	case KindObject:
		return len(v.object) == 0
	case KindGroups:
		return len(v.groups) == 0
	default:
		return false
	}
}
