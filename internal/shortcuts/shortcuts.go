// Package shortcuts holds the static table of keyboard shortcuts shown by
// the shortcut visualizer, together with the keyboard layouts the table is
// drawn on.
//
// The table is data only. Rendering belongs to the caller; the CLI lists it
// as styled text, JSON or YAML.
package shortcuts

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Shortcut is one row of an app's shortcut table.
type Shortcut struct {
	// Keys is the chord as displayed, for example ["HYPER", "W", "C"].
	Keys []string `json:"keys" yaml:"keys"`

	// Action names what the chord does.
	Action string `json:"action" yaml:"action"`

	// ActionKeys are the non-modifier key labels to highlight on the layout.
	ActionKeys []string `json:"actionKeys" yaml:"actionKeys"`

	// Leader marks chords typed after the app's leader key.
	Leader bool `json:"leader,omitempty" yaml:"leader,omitempty"`
}

// Group is a titled list of shortcuts.
type Group struct {
	Name      string     `json:"name" yaml:"name"`
	Shortcuts []Shortcut `json:"shortcuts" yaml:"shortcuts"`
}

// App is the shortcut table of one application.
type App struct {
	ID     string  `json:"id" yaml:"id"`
	Name   string  `json:"name" yaml:"name"`
	Groups []Group `json:"groups" yaml:"groups"`
}

// Len returns the number of shortcuts across all groups.
func (a App) Len() int {
	n := 0
	for _, g := range a.Groups {
		n += len(g.Shortcuts)
	}
	return n
}

// Lookup returns the app with the given id.
func Lookup(id string) (App, bool) {
	for _, a := range Data() {
		if a.ID == id {
			return a, true
		}
	}
	return App{}, false
}

// IDs lists the known app ids in table order.
func IDs() []string {
	apps := Data()
	ids := make([]string, len(apps))
	for i, a := range apps {
		ids[i] = a.ID
	}
	return ids
}

var actionKeyIDs = map[string]string{
	"←": "arrow-left",
	"→": "arrow-right",
	"↑": "arrow-up",
	"↓": "arrow-down",
	"_": "-",
}

// NormalizeActionKey maps an action key label to the id of the layout key
// it highlights.
func NormalizeActionKey(key string) string {
	if id, ok := actionKeyIDs[key]; ok {
		return id
	}
	return cases.Lower(language.Und).String(key)
}

// HighlightIDs returns the layout key ids a shortcut highlights, in order
// and without duplicates.
func (s Shortcut) HighlightIDs() []string {
	seen := make(map[string]bool, len(s.ActionKeys))
	var ids []string
	for _, k := range s.ActionKeys {
		id := NormalizeActionKey(strings.TrimSpace(k))
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}
