package shortcuts

// Data returns every app's shortcut table in display order. The result is
// freshly built on each call and safe to modify.
func Data() []App {
	return []App{karabiner(), obsidian(), wezterm()}
}

func sc(action string, keys []string, actionKeys ...string) Shortcut {
	return Shortcut{Keys: keys, Action: action, ActionKeys: actionKeys}
}

func chord(k ...string) []string { return k }

func karabiner() App {
	ropt := func(key, app string) Shortcut {
		return sc(app, chord("R-OPT", key), key)
	}
	hyper := func(action string, keys []string, actionKeys ...string) Shortcut {
		return sc(action, append([]string{"HYPER"}, keys...), actionKeys...)
	}
	cell := func(key, what string) Shortcut {
		return hyper("Tap: Get / Hold: Save "+what, chord("M", key), "M", key)
	}

	return App{
		ID:   "karabiner",
		Name: "Karabiner",
		Groups: []Group{
			{Name: "Right Option + Key (Apps)", Shortcuts: []Shortcut{
				ropt("T", "WezTerm"),
				ropt("G", "GoLand"),
				ropt("W", "WebStorm"),
				ropt("B", "Dia"),
				ropt("Z", "Zed"),
				ropt("L", "Logseq"),
				ropt("M", "Telegram"),
				ropt("H", "Bruno"),
				ropt("N", "Obsidian"),
				ropt("F", "Finder"),
				ropt("C", "Claude"),
				ropt("4", "Sublime Merge"),
			}},
			{Name: "Right Option + Key (Media)", Shortcuts: []Shortcut{
				ropt("S", "Play/Pause"),
				ropt("D", "Fast Forward"),
				ropt("A", "Rewind"),
			}},
			{Name: "Hyper (Caps) → O (Search)", Shortcuts: []Shortcut{
				hyper("GitHub Search", chord("O", "G"), "O", "G"),
				hyper("Arc History", chord("O", "A"), "O", "A"),
				hyper("Arc Search", chord("O", "K"), "O", "K"),
			}},
			{Name: "Hyper (Caps) → W (Window)", Shortcuts: []Shortcut{
				hyper("Move Window", chord("W", "←→↑↓"), "W", "←", "→", "↑", "↓"),
				hyper("Maximize", chord("W", "↵"), "W"),
				hyper("Center", chord("W", "C"), "W", "C"),
				hyper("Hide Window", chord("W", "H"), "W", "H"),
				hyper("Top Half/Bottom", chord("W", "I/O"), "W", "I", "O"),
				hyper("Thirds", chord("W", "J/K/L"), "W", "J", "K", "L"),
				hyper("Prev/Next Display", chord("W", "[/]"), "W", "[", "]"),
				hyper("Restore", chord("W", "R"), "W", "R"),
			}},
			{Name: "Hyper (Caps) Shortcuts", Shortcuts: []Shortcut{
				hyper("Clipboard History", chord("C"), "C"),
				hyper("Raycast AI Chat", chord("G"), "G"),
			}},
			{Name: "Hyper (Caps) → S (Shortcuts)", Shortcuts: []Shortcut{
				hyper("Shortcut A", chord("S", "A"), "S", "A"),
				hyper("Shortcut T", chord("S", "T"), "S", "T"),
				hyper("Shortcut M", chord("S", "M"), "S", "M"),
			}},
			{Name: "Hyper (Caps) → A (Actions)", Shortcuts: []Shortcut{
				hyper("Action 1", chord("A", "E"), "A", "E"),
				hyper("Action 2", chord("A", "R"), "A", "R"),
				hyper("Action 3", chord("A", "N"), "A", "N"),
			}},
			{Name: "Hyper (Caps) → M (Memory Cells)", Shortcuts: []Shortcut{
				cell("1", "Cell 1"),
				cell("2", "Cell 2"),
				cell("3", "Cell 3"),
				cell("P", "Password"),
			}},
		},
	}
}

func obsidian() App {
	cmd := func(action, key string) Shortcut { return sc(action, chord("CMD", key), key) }
	cmdShift := func(action, key string) Shortcut { return sc(action, chord("CMD", "SHIFT", key), key) }

	return App{
		ID:   "obsidian",
		Name: "Obsidian",
		Groups: []Group{
			{Name: "Navigation", Shortcuts: []Shortcut{
				cmd("Quick Switcher", "E"),
				cmdShift("Previous file", "E"),
			}},
			{Name: "Templates", Shortcuts: []Shortcut{
				cmd("Templater", "T"),
				cmdShift("QuickAdd menu", "T"),
			}},
			{Name: "Panels", Shortcuts: []Shortcut{
				cmd("Left sidebar", "\\"),
				cmdShift("Right sidebar", "\\"),
			}},
			{Name: "Mode", Shortcuts: []Shortcut{
				cmd("Toggle Read/Edit view", "R"),
			}},
			{Name: "Periods", Shortcuts: []Shortcut{
				cmd("Current week", "D"),
				cmdShift("Previous week", "D"),
			}},
		},
	}
}

func wezterm() App {
	altShift := func(action, label string, actionKeys ...string) Shortcut {
		return sc(action, chord("ALT", "SHIFT", label), actionKeys...)
	}
	leader := func(action, key string) Shortcut {
		s := sc(action, chord("LEADER", key), key)
		s.Leader = true
		return s
	}

	return App{
		ID:   "wezterm",
		Name: "WezTerm",
		Groups: []Group{
			{Name: "Tabs", Shortcuts: []Shortcut{
				altShift("Switch to tab", "1-9,0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "0"),
				altShift("Previous tab", "[", "["),
				altShift("Next tab", "]", "]"),
				altShift("New tab", "T", "T"),
				altShift("Close tab", "W", "W"),
			}},
			{Name: "Panes", Shortcuts: []Shortcut{
				altShift("Split horizontal", "\\", "\\"),
				altShift("Split vertical", "_", "-"),
				altShift("Navigate panes", "←→↑↓", "←", "→", "↑", "↓"),
			}},
			{Name: "Copy Mode", Shortcuts: []Shortcut{
				altShift("Enter Copy Mode", "V", "V"),
			}},
			{Name: "Leader Mode (ALT+SHIFT+L)", Shortcuts: []Shortcut{
				leader("Workspace switcher", "S"),
				leader("Update plugins", "U"),
				leader("Close pane", "C"),
				leader("Toggle zoom", "Z"),
				leader("Equalize panes", "="),
				leader("Search scrollback", "F"),
				leader("Pane to new tab", "T"),
				leader("Pane to new window", "W"),
				leader("Gather windows", "A"),
				leader("Narrow prompt", "N"),
			}},
		},
	}
}
