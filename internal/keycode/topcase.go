package keycode

import "slices"

// TopCase is an apple_vendor_top_case_key_code value. The laptop globe/fn
// key reports through this usage page rather than as a regular key code.
type TopCase string

const (
	KeyboardFn       TopCase = "keyboard_fn"
	BrightnessUp     TopCase = "brightness_up"
	BrightnessDown   TopCase = "brightness_down"
	IlluminationUp   TopCase = "illumination_up"
	IlluminationDown TopCase = "illumination_down"
)

// TopCases returns every known top-case key code, sorted.
func TopCases() []TopCase {
	out := []TopCase{KeyboardFn, BrightnessUp, BrightnessDown, IlluminationUp, IlluminationDown}
	slices.Sort(out)
	return out
}

// Valid reports whether t is a known top-case key code.
func (t TopCase) Valid() bool {
	switch t {
	case KeyboardFn, BrightnessUp, BrightnessDown, IlluminationUp, IlluminationDown:
		return true
	}
	return false
}
