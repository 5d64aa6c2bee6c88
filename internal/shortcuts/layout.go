package shortcuts

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Lang selects a keyboard layout.
type Lang string

const (
	English Lang = "en"
	Russian Lang = "ru"
)

// ParseLang returns the layout language for s, falling back to English.
func ParseLang(s string) Lang {
	if Lang(s) == Russian {
		return Russian
	}
	return English
}

func (l Lang) tag() language.Tag {
	if l == Russian {
		return language.Russian
	}
	return language.English
}

// KeyData is one key cap on a layout.
type KeyData struct {
	// Key is the printed label.
	Key string `json:"key" yaml:"key"`

	// Width names the cap size class; empty means a standard key.
	Width string `json:"width,omitempty" yaml:"width,omitempty"`

	// ID links the cap to action keys. Empty means the lower-cased label.
	ID string `json:"id,omitempty" yaml:"id,omitempty"`

	Modifier bool `json:"modifier,omitempty" yaml:"modifier,omitempty"`
}

// KeyID returns the id used to match the key against action keys.
func KeyID(k KeyData) string {
	if k.ID != "" {
		return k.ID
	}
	return cases.Lower(language.Und).String(k.Key)
}

// Layout returns the keyboard rows for lang. Unknown languages get the
// English layout.
func Layout(lang Lang) [][]KeyData {
	if lang == Russian {
		return clone(russianLayout)
	}
	return clone(englishLayout)
}

// Arrows returns the arrow cluster in display order.
func Arrows() []KeyData {
	return append([]KeyData(nil), arrows...)
}

// Label returns the label of the key with the given id on lang's layout, or
// the id itself when the layout has no such key.
func Label(lang Lang, id string) string {
	rows := Layout(lang)
	rows = append(rows, arrows)
	for _, row := range rows {
		for _, k := range row {
			if KeyID(k) == id {
				if k.Key == "" {
					return id
				}
				return cases.Upper(lang.tag()).String(k.Key)
			}
		}
	}
	return id
}

func clone(rows [][]KeyData) [][]KeyData {
	out := make([][]KeyData, len(rows))
	for i, row := range rows {
		out[i] = append([]KeyData(nil), row...)
	}
	return out
}

func keys(labels ...string) []KeyData {
	out := make([]KeyData, len(labels))
	for i, l := range labels {
		out[i] = KeyData{Key: l}
	}
	return out
}

func row(parts ...any) []KeyData {
	var out []KeyData
	for _, p := range parts {
		switch v := p.(type) {
		case KeyData:
			out = append(out, v)
		case []KeyData:
			out = append(out, v...)
		}
	}
	return out
}

// ruKeys pairs Cyrillic labels with the ids of the Latin keys at the same
// position.
func ruKeys(pairs ...string) []KeyData {
	out := make([]KeyData, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, KeyData{Key: pairs[i], ID: pairs[i+1]})
	}
	return out
}

var bottomRow = []KeyData{
	{Key: "ctrl", Width: "ctrl", Modifier: true},
	{Key: "⌥", Width: "alt", ID: "alt-l", Modifier: true},
	{Key: "⌘", Width: "cmd", ID: "cmd-l", Modifier: true},
	{Key: "", Width: "space"},
	{Key: "⌘", Width: "cmd", ID: "cmd-r", Modifier: true},
	{Key: "⌥", Width: "alt", ID: "alt-r", Modifier: true},
	{Key: "ctrl", Width: "ctrl", Modifier: true},
}

var (
	backspace = KeyData{Key: "⌫", Width: "backspace"}
	tab       = KeyData{Key: "⇥", Width: "tab"}
	backslash = KeyData{Key: "\\", Width: "backslash"}
	caps      = KeyData{Key: "⇪", Width: "caps", ID: "caps"}
	enter     = KeyData{Key: "↵", Width: "enter"}
	shiftL    = KeyData{Key: "⇧", Width: "shift-l", ID: "shift-l", Modifier: true}
	shiftR    = KeyData{Key: "⇧", Width: "shift-r", ID: "shift-r", Modifier: true}
)

var englishLayout = [][]KeyData{
	row(keys("`", "1", "2", "3", "4", "5", "6", "7", "8", "9", "0", "-", "="), backspace),
	row(tab, keys("Q", "W", "E", "R", "T", "Y", "U", "I", "O", "P", "[", "]"), backslash),
	row(caps, keys("A", "S", "D", "F", "G", "H", "J", "K", "L", ";", "'"), enter),
	row(shiftL, keys("Z", "X", "C", "V", "B", "N", "M", ",", ".", "/"), shiftR),
	bottomRow,
}

var russianLayout = [][]KeyData{
	row(ruKeys(
		"ё", "`", "1", "1", "2", "2", "3", "3", "4", "4", "5", "5", "6", "6",
		"7", "7", "8", "8", "9", "9", "0", "0", "-", "-", "=", "=",
	), backspace),
	row(tab, ruKeys(
		"Й", "q", "Ц", "w", "У", "e", "К", "r", "Е", "t", "Н", "y",
		"Г", "u", "Ш", "i", "Щ", "o", "З", "p", "Х", "[", "Ъ", "]",
	), backslash),
	row(caps, ruKeys(
		"Ф", "a", "Ы", "s", "В", "d", "А", "f", "П", "g", "Р", "h",
		"О", "j", "Л", "k", "Д", "l", "Ж", ";", "Э", "'",
	), enter),
	row(shiftL, ruKeys(
		"Я", "z", "Ч", "x", "С", "c", "М", "v", "И", "b", "Т", "n",
		"Ь", "m", "Б", ",", "Ю", ".", ".", "/",
	), shiftR),
	bottomRow,
}

var arrows = []KeyData{
	{Key: "←", ID: "arrow-left"},
	{Key: "↓", ID: "arrow-down"},
	{Key: "↑", ID: "arrow-up"},
	{Key: "→", ID: "arrow-right"},
}
