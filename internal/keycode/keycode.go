package keycode

import "slices"

// Code is a key_code value understood by Karabiner-Elements.
type Code string

// Letters.
const (
	A Code = "a"
	B Code = "b"
	C Code = "c"
	D Code = "d"
	E Code = "e"
	F Code = "f"
	G Code = "g"
	H Code = "h"
	I Code = "i"
	J Code = "j"
	K Code = "k"
	L Code = "l"
	M Code = "m"
	N Code = "n"
	O Code = "o"
	P Code = "p"
	Q Code = "q"
	R Code = "r"
	S Code = "s"
	T Code = "t"
	U Code = "u"
	V Code = "v"
	W Code = "w"
	X Code = "x"
	Y Code = "y"
	Z Code = "z"
)

// Number row.
const (
	Num1 Code = "1"
	Num2 Code = "2"
	Num3 Code = "3"
	Num4 Code = "4"
	Num5 Code = "5"
	Num6 Code = "6"
	Num7 Code = "7"
	Num8 Code = "8"
	Num9 Code = "9"
	Num0 Code = "0"
)

// Editing, punctuation and whitespace.
const (
	ReturnOrEnter       Code = "return_or_enter"
	Escape              Code = "escape"
	DeleteOrBackspace   Code = "delete_or_backspace"
	DeleteForward       Code = "delete_forward"
	Tab                 Code = "tab"
	Spacebar            Code = "spacebar"
	Hyphen              Code = "hyphen"
	EqualSign           Code = "equal_sign"
	OpenBracket         Code = "open_bracket"
	CloseBracket        Code = "close_bracket"
	Backslash           Code = "backslash"
	NonUSPound          Code = "non_us_pound"
	Semicolon           Code = "semicolon"
	Quote               Code = "quote"
	GraveAccentAndTilde Code = "grave_accent_and_tilde"
	Comma               Code = "comma"
	Period              Code = "period"
	Slash               Code = "slash"
	NonUSBackslash      Code = "non_us_backslash"
	CapsLock            Code = "caps_lock"
	Insert              Code = "insert"
	PrintScreen         Code = "print_screen"
	ScrollLock          Code = "scroll_lock"
	Pause               Code = "pause"
	Application         Code = "application"
	Help                Code = "help"
	JapaneseEisuu       Code = "japanese_eisuu"
	JapaneseKana        Code = "japanese_kana"
	VKNone              Code = "vk_none"
)

// Navigation.
const (
	UpArrow    Code = "up_arrow"
	DownArrow  Code = "down_arrow"
	LeftArrow  Code = "left_arrow"
	RightArrow Code = "right_arrow"
	PageUp     Code = "page_up"
	PageDown   Code = "page_down"
	Home       Code = "home"
	End        Code = "end"
)

// Modifier keys.
const (
	LeftControl  Code = "left_control"
	LeftShift    Code = "left_shift"
	LeftOption   Code = "left_option"
	LeftCommand  Code = "left_command"
	RightControl Code = "right_control"
	RightShift   Code = "right_shift"
	RightOption  Code = "right_option"
	RightCommand Code = "right_command"
	Fn           Code = "fn"
)

// Function keys.
const (
	F1  Code = "f1"
	F2  Code = "f2"
	F3  Code = "f3"
	F4  Code = "f4"
	F5  Code = "f5"
	F6  Code = "f6"
	F7  Code = "f7"
	F8  Code = "f8"
	F9  Code = "f9"
	F10 Code = "f10"
	F11 Code = "f11"
	F12 Code = "f12"
	F13 Code = "f13"
	F14 Code = "f14"
	F15 Code = "f15"
	F16 Code = "f16"
	F17 Code = "f17"
	F18 Code = "f18"
	F19 Code = "f19"
	F20 Code = "f20"
)

// Media and display keys.
const (
	PlayOrPause                Code = "play_or_pause"
	Fastforward                Code = "fastforward"
	Rewind                     Code = "rewind"
	Mute                       Code = "mute"
	VolumeIncrement            Code = "volume_increment"
	VolumeDecrement            Code = "volume_decrement"
	DisplayBrightnessIncrement Code = "display_brightness_increment"
	DisplayBrightnessDecrement Code = "display_brightness_decrement"
	IlluminationIncrement      Code = "illumination_increment"
	IlluminationDecrement      Code = "illumination_decrement"
	MissionControl             Code = "mission_control"
	Launchpad                  Code = "launchpad"
	AppleDisplayBrightnessUp   Code = "apple_display_brightness_increment"
	AppleDisplayBrightnessDown Code = "apple_display_brightness_decrement"
)

// Keypad.
const (
	KeypadNumLock   Code = "keypad_num_lock"
	KeypadSlash     Code = "keypad_slash"
	KeypadAsterisk  Code = "keypad_asterisk"
	KeypadHyphen    Code = "keypad_hyphen"
	KeypadPlus      Code = "keypad_plus"
	KeypadEnter     Code = "keypad_enter"
	KeypadPeriod    Code = "keypad_period"
	KeypadEqualSign Code = "keypad_equal_sign"
	KeypadComma     Code = "keypad_comma"
	Keypad1         Code = "keypad_1"
	Keypad2         Code = "keypad_2"
	Keypad3         Code = "keypad_3"
	Keypad4         Code = "keypad_4"
	Keypad5         Code = "keypad_5"
	Keypad6         Code = "keypad_6"
	Keypad7         Code = "keypad_7"
	Keypad8         Code = "keypad_8"
	Keypad9         Code = "keypad_9"
	Keypad0         Code = "keypad_0"
)

var known = map[Code]bool{}

func init() {
	for _, c := range []Code{
		A, B, C, D, E, F, G, H, I, J, K, L, M, N, O, P, Q, R, S, T, U, V, W, X, Y, Z,
		Num1, Num2, Num3, Num4, Num5, Num6, Num7, Num8, Num9, Num0,
		ReturnOrEnter, Escape, DeleteOrBackspace, DeleteForward, Tab, Spacebar,
		Hyphen, EqualSign, OpenBracket, CloseBracket, Backslash, NonUSPound,
		Semicolon, Quote, GraveAccentAndTilde, Comma, Period, Slash, NonUSBackslash,
		CapsLock, Insert, PrintScreen, ScrollLock, Pause, Application, Help,
		JapaneseEisuu, JapaneseKana, VKNone,
		UpArrow, DownArrow, LeftArrow, RightArrow, PageUp, PageDown, Home, End,
		LeftControl, LeftShift, LeftOption, LeftCommand,
		RightControl, RightShift, RightOption, RightCommand, Fn,
		F1, F2, F3, F4, F5, F6, F7, F8, F9, F10,
		F11, F12, F13, F14, F15, F16, F17, F18, F19, F20,
		PlayOrPause, Fastforward, Rewind, Mute, VolumeIncrement, VolumeDecrement,
		DisplayBrightnessIncrement, DisplayBrightnessDecrement,
		IlluminationIncrement, IlluminationDecrement, MissionControl, Launchpad,
		AppleDisplayBrightnessUp, AppleDisplayBrightnessDown,
		KeypadNumLock, KeypadSlash, KeypadAsterisk, KeypadHyphen, KeypadPlus,
		KeypadEnter, KeypadPeriod, KeypadEqualSign, KeypadComma,
		Keypad1, Keypad2, Keypad3, Keypad4, Keypad5, Keypad6, Keypad7, Keypad8, Keypad9, Keypad0,
	} {
		known[c] = true
	}
}

// Valid reports whether c is a known key code.
func (c Code) Valid() bool {
	return known[c]
}

// Modifier returns the modifier name a modifier key reports while held.
func (c Code) Modifier() (Modifier, bool) {
	switch c {
	case LeftControl, LeftShift, LeftOption, LeftCommand,
		RightControl, RightShift, RightOption, RightCommand:
		return Modifier(c), true
	case Fn:
		return ModFn, true
	case CapsLock:
		return ModCapsLock, true
	}
	return "", false
}

// All returns every known key code in lexical order.
func All() []Code {
	codes := make([]Code, 0, len(known))
	for c := range known {
		codes = append(codes, c)
	}
	slices.Sort(codes)
	return codes
}
