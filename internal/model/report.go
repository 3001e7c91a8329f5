package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// MutantStatus is the outcome the mutation tool recorded for a mutant.
type MutantStatus = string

// Statuses written by Stryker. Only Survived mutants produce prompts.
const (
	Survived     MutantStatus = "Survived"
	Killed       MutantStatus = "Killed"
	Timeout      MutantStatus = "Timeout"
	NoCoverage   MutantStatus = "NoCoverage"
	CompileError MutantStatus = "CompileError"
	RuntimeError MutantStatus = "RuntimeError"
	Ignored      MutantStatus = "Ignored"
	Pending      MutantStatus = "Pending"
)

// Report is the parsed mutation report.
type Report struct {
	Files Files `json:"files"`
}

// Files keeps the report's file entries in document order.
type Files []FileRecord

// FileRecord pairs a file path with its entry.
type FileRecord struct {
	Path  string
	Entry FileEntry
}

// FileEntry holds the source text of one file and the mutants applied to it.
type FileEntry struct {
	Source  *string  `json:"source,omitempty"`
	Mutants []Mutant `json:"mutants"`
}

// Mutant is a single mutation recorded in the report. Only the status is
// decoded for every mutant; the remaining fields are decoded for survived
// mutants alone.
type Mutant struct {
	Status      string    `json:"status"`
	Location    *Location `json:"location,omitempty"`
	Replacement *string   `json:"replacement,omitempty"`
	MutatorName *string   `json:"mutatorName,omitempty"`
}

// Location is the span of source code a mutant covers.
type Location struct {
	Start *Position `json:"start,omitempty"`
}

// Position is a 1-based source line.
type Position struct {
	Line *int `json:"line,omitempty"`
}

type rawMutant struct {
	Status      json.RawMessage `json:"status"`
	Location    json.RawMessage `json:"location"`
	Replacement json.RawMessage `json:"replacement"`
	MutatorName json.RawMessage `json:"mutatorName"`
}

// UnmarshalJSON reads the status first and skips the rest of a mutant that
// did not survive, whatever its other fields hold.
func (mt *Mutant) UnmarshalJSON(data []byte) error {
	var raw rawMutant
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*mt = Mutant{Status: statusText(raw.Status)}
	if !mt.IsSurvived() {
		return nil
	}

	if err := decodeOptional(raw.Location, &mt.Location); err != nil {
		return fmt.Errorf("location: %w", err)
	}

	if err := decodeOptional(raw.Replacement, &mt.Replacement); err != nil {
		return fmt.Errorf("replacement: %w", err)
	}

	if err := decodeOptional(raw.MutatorName, &mt.MutatorName); err != nil {
		return fmt.Errorf("mutatorName: %w", err)
	}

	return nil
}

// statusText returns a string status as is. Any other JSON value keeps its
// literal text, which never equals Survived.
func statusText(raw json.RawMessage) string {
	if len(raw) == 0 || isNull(raw) {
		return ""
	}

	var status string
	if err := json.Unmarshal(raw, &status); err == nil {
		return status
	}

	return string(bytes.TrimSpace(raw))
}

func decodeOptional(raw json.RawMessage, target any) error {
	if len(raw) == 0 {
		return nil
	}

	return json.Unmarshal(raw, target)
}

func isNull(raw []byte) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

var errFilesNotObject = errors.New("files must be a JSON object")

// UnmarshalJSON decodes the files object without losing key order.
func (f *Files) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return errFilesNotObject
	}

	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}

	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errFilesNotObject
	}

	records := Files{}
	seen := make(map[string]int)

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}

		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("unexpected files key %v", keyTok)
		}

		var entry FileEntry
		if err := dec.Decode(&entry); err != nil {
			return fmt.Errorf("file %q: %w", key, err)
		}

		// A repeated key replaces the earlier entry but keeps its position.
		if i, ok := seen[key]; ok {
			records[i].Entry = entry
			continue
		}

		seen[key] = len(records)
		records = append(records, FileRecord{Path: key, Entry: entry})
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*f = records

	return nil
}

// MarshalJSON encodes the files back into an object in the same order.
func (f Files) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, record := range f {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(record.Path)
		if err != nil {
			return nil, err
		}

		value, err := json.Marshal(record.Entry)
		if err != nil {
			return nil, err
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// IsSurvived reports whether the mutation tool recorded the mutant as survived.
func (mt Mutant) IsSurvived() bool {
	return mt.Status == Survived
}

// StartLine returns the 1-based line the mutant starts on.
func (mt Mutant) StartLine() (int, bool) {
	if mt.Location == nil || mt.Location.Start == nil || mt.Location.Start.Line == nil {
		return 0, false
	}

	return *mt.Location.Start.Line, true
}

// Mutator returns the name of the operator that produced the mutant.
func (mt Mutant) Mutator() (string, bool) {
	if mt.MutatorName == nil {
		return "", false
	}

	return *mt.MutatorName, true
}

// MutatedCode returns the replacement text, or NotAvailable when the report
// does not carry one.
func (mt Mutant) MutatedCode() string {
	if mt.Replacement == nil {
		return NotAvailable
	}

	return *mt.Replacement
}

// SourceText returns the file's source, or an empty string when absent.
func (fe FileEntry) SourceText() string {
	if fe.Source == nil {
		return ""
	}

	return *fe.Source
}
