package karabiner

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultProfileName is the profile the daemon selects on first launch.
const DefaultProfileName = "Default"

// DocumentOptions controls the envelope around the rule list.
type DocumentOptions struct {
	ShowInMenuBar bool
	ProfileName   string // defaults to DefaultProfileName
}

// NewDocument wraps rules in the fixed envelope: global settings plus a
// single profile holding the rules.
func NewDocument(rules []Rule, opts DocumentOptions) Document {
	name := opts.ProfileName
	if name == "" {
		name = DefaultProfileName
	}
	if rules == nil {
		rules = []Rule{}
	}
	return Document{
		Global: Global{ShowInMenuBar: opts.ShowInMenuBar},
		Profiles: []Profile{{
			Name:                 name,
			ComplexModifications: ComplexModifications{Rules: rules},
		}},
	}
}

// Rules returns the rules of the first profile.
func (d Document) Rules() []Rule {
	if len(d.Profiles) == 0 {
		return nil
	}
	return d.Profiles[0].ComplexModifications.Rules
}

// Marshal renders the document as two-space indented JSON. HTML escaping is
// disabled so shell commands such as "a && b" stay readable.
func Marshal(doc Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("marshaling document: %w", err)
	}
	return buf.Bytes(), nil
}

// Unmarshal parses karabiner.json contents.
func Unmarshal(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("parsing document: %w", err)
	}
	return doc, nil
}

// Write serializes doc to path, creating the parent directory first and
// overwriting any existing file.
func Write(path string, doc Document) ([]byte, error) {
	data, err := Marshal(doc)
	if err != nil {
		return nil, err
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating output directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, fmt.Errorf("writing file: %w", err)
	}

	return data, nil
}
