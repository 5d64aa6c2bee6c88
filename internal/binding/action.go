package binding

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/roach88/hyperkey/internal/karabiner"
	"github.com/roach88/hyperkey/internal/keycode"
)

// TapHoldThreshold is how long a TapHold key must be held before the hold
// action fires.
const TapHoldThreshold = 300

type keyOptions struct {
	hyper     bool
	modifiers []keycode.Modifier
}

// KeyOption configures KeyCode.
type KeyOption func(*keyOptions)

// WithHyper prepends the four Hyper modifiers.
func WithHyper() KeyOption {
	return func(o *keyOptions) { o.hyper = true }
}

// WithModifiers adds explicit modifiers.
func WithModifiers(mods ...keycode.Modifier) KeyOption {
	return func(o *keyOptions) { o.modifiers = append(o.modifiers, mods...) }
}

// KeyCode emits a single key press.
func KeyCode(code keycode.Code, opts ...KeyOption) Command {
	var o keyOptions
	for _, opt := range opts {
		opt(&o)
	}

	var mods []keycode.Modifier
	if o.hyper {
		mods = append(mods, keycode.Hyper...)
	}
	mods = append(mods, o.modifiers...)

	return Command{To: []karabiner.To{karabiner.Key(code, mods...)}}
}

type openOptions struct {
	background bool
}

// OpenOption configures Open and OpenRaw.
type OpenOption func(*openOptions)

// Background opens without bringing the target to the foreground (open -g).
func Background() OpenOption {
	return func(o *openOptions) { o.background = true }
}

// OpenRaw returns the shell_command event for `open <what>`.
func OpenRaw(what string, opts ...OpenOption) karabiner.To {
	var o openOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.background {
		return karabiner.Shell("open -g " + what)
	}
	return karabiner.Shell("open " + what)
}

// Open runs `open <what>`.
func Open(what string, opts ...OpenOption) Command {
	return Command{
		Description: "Open " + what,
		To:          []karabiner.To{OpenRaw(what, opts...)},
	}
}

// Delegate opens a URL, handing it to whichever app owns the scheme.
func Delegate(u *url.URL, opts ...OpenOption) Command {
	return Open(u.String(), opts...)
}

// DelegateRaw is the event form of Delegate.
func DelegateRaw(u *url.URL, opts ...OpenOption) karabiner.To {
	return OpenRaw(u.String(), opts...)
}

// Shell runs each non-blank line of the formatted script as its own shell
// command. The description joins them with " && ".
func Shell(format string, args ...any) Command {
	script := format
	if len(args) > 0 {
		script = fmt.Sprintf(format, args...)
	}

	var lines []string
	for _, line := range strings.Split(script, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}

	to := make([]karabiner.To, len(lines))
	for i, line := range lines {
		to[i] = karabiner.Shell(line)
	}
	return Command{Description: strings.Join(lines, " && "), To: to}
}

// App launches or focuses a macOS application by name.
func App(name string) Command {
	return Open(fmt.Sprintf("-a '%s.app'", name))
}

// WindowManagement triggers a Raycast window-management command.
func WindowManagement(name string) Command {
	return Delegate(&url.URL{
		Scheme:   "raycast",
		Host:     "extensions",
		Path:     "/raycast/window-management/" + name,
		RawQuery: "launchType=background",
	})
}

// ExecuteCommand runs a Raycast extension command in the background,
// passing args as its JSON "arguments" query parameter. The URL is quoted
// because it carries more than one query parameter.
func ExecuteCommand(path string, args map[string]string) Command {
	query := url.Values{"launchType": {"background"}}
	if len(args) > 0 {
		encoded, err := json.Marshal(args)
		if err != nil {
			// map[string]string always encodes
			panic(err)
		}
		query.Set("arguments", string(encoded))
	}

	u := url.URL{
		Scheme:   "raycast",
		Host:     "extensions",
		Path:     "/" + strings.TrimPrefix(path, "/"),
		RawQuery: query.Encode(),
	}
	return Command{
		Description: "Run " + path,
		To:          []karabiner.To{karabiner.Shell(fmt.Sprintf("open '%s'", u.String()))},
	}
}

// TapHold runs tap when the key is tapped and hold once it has been held
// for TapHoldThreshold milliseconds.
func TapHold(tap, hold Command) Command {
	return Command{
		Description:  fmt.Sprintf("Tap: %s / Hold: %s", tap.Description, hold.Description),
		ToIfAlone:    tap.To,
		ToIfHeldDown: hold.To,
		Parameters:   karabiner.Parameters{karabiner.ParamToIfHeldDownThreshold: TapHoldThreshold},
	}
}

// SelectInputSource switches the keyboard input language.
func SelectInputSource(language string) Command {
	return Command{
		Description: "Switch input source to " + language,
		To:          []karabiner.To{karabiner.SelectLanguage(language)},
	}
}

// SetVariable assigns a value in the daemon's variable store.
func SetVariable(name string, value int) Command {
	return Command{To: []karabiner.To{karabiner.Set(name, value)}}
}
