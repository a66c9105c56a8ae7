package catalog

import (
	"encoding/json"
	"fmt"

	"github.com/elgs/gojq"
	"github.com/meschbach/go-junk-bucket/pkg/files"
	"github.com/nsf/jsondiff"
)

// Record is one JSON object of a data catalog, for example {"name":"Anna","origin":"SE","type":"female"}.
type Record json.RawMessage

// ParseRecords reads a JSON array of objects.
func ParseRecords(data []byte) (List[Record], error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return List[Record]{}, err
	}
	return recordsOf(raw), nil
}

// LoadRecords reads a JSON array of objects from a file.
func LoadRecords(fileName string) (List[Record], error) {
	var raw []json.RawMessage
	if err := files.ParseJSONFile(fileName, &raw); err != nil {
		return List[Record]{}, err
	}
	return recordsOf(raw), nil
}

func recordsOf(raw []json.RawMessage) List[Record] {
	out := make([]Record, len(raw))
	for i, r := range raw {
		out[i] = Record(r)
	}
	return List[Record]{items: out}
}

// Matches keeps records which contain every property of example with the same value.
func Matches(example json.RawMessage) Predicate[Record] {
	return func(r Record) bool {
		result, _ := jsondiff.Compare(r, example, &jsondiff.Options{})
		return result == jsondiff.SupersetMatch || result == jsondiff.FullMatch
	}
}

// PropertyEquals is Matches for a single top level property.
func PropertyEquals(property, value string) Predicate[Record] {
	example, err := json.Marshal(map[string]string{property: value})
	if err != nil {
		panic(err)
	}
	return Matches(example)
}

// Origin keeps records of the given country or region code.
func Origin(code string) Predicate[Record] {
	return PropertyEquals("origin", code)
}

// Kind keeps records of the given name type, for example "female", "male" or "last".
func Kind(kind string) Predicate[Record] {
	return PropertyEquals("type", kind)
}

// Field extracts a dotted path from the record as a string.
func (r Record) Field(path string) (string, error) {
	parser, err := gojq.NewStringQuery(string(r))
	if err != nil {
		return "", err
	}
	return parser.QueryToString(path)
}

type FieldError struct {
	Index int
	Path  string
	Cause error
}

func (f *FieldError) Error() string {
	return fmt.Sprintf("record %d: field %q: %s", f.Index, f.Path, f.Cause.Error())
}

func (f *FieldError) Unwrap() error {
	return f.Cause
}

// Strings projects every record onto the string found at path.
func Strings(records List[Record], path string) (List[string], error) {
	out := make([]string, 0, records.Len())
	for i, r := range records.All() {
		value, err := r.Field(path)
		if err != nil {
			return List[string]{}, &FieldError{Index: i, Path: path, Cause: err}
		}
		out = append(out, value)
	}
	return List[string]{items: out}, nil
}
