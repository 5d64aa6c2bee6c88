package rules

import (
	"net/url"

	b "github.com/roach88/hyperkey/internal/binding"
	"github.com/roach88/hyperkey/internal/keycode"
)

// Media layer: right option acts as a plain modifier, no prefix variable.
const (
	MediaModifier    = keycode.ModRightOption
	MediaDescription = "Media Commands Sublayer + Apps"
)

// MediaLayer holds the right option bindings for media keys and app launch.
func MediaLayer() b.Layer {
	return b.Sub(
		b.On(keycode.S, b.KeyCode(keycode.PlayOrPause)),
		b.On(keycode.D, b.KeyCode(keycode.Fastforward)),
		b.On(keycode.A, b.KeyCode(keycode.Rewind)),
		b.On(keycode.T, b.App("WezTerm")),
		b.On(keycode.G, b.App("GoLand")),
		b.On(keycode.W, b.App("WebStorm")),
		b.On(keycode.B, b.App("Arc")),
		b.On(keycode.Z, b.App("Zed")),
		b.On(keycode.L, b.App("Logseq")),
		b.On(keycode.M, b.App("Telegram")),
		b.On(keycode.H, b.App("Bruno")),
	)
}

// HyperLayers is everything reachable through the Hyper key.
func HyperLayers() b.Layer {
	return b.Sub(
		// o = search
		b.On(keycode.O, b.Sub(
			b.On(keycode.G, b.Open("raycast://extensions/raycast/github/search-repositories")),
			b.On(keycode.A, b.Open("raycast://extensions/the-browser-company/arc/search-history")),
			b.On(keycode.K, b.Open("raycast://extensions/the-browser-company/arc/search")),
		)),

		// w = window, handled by the window manager's Hyper shortcuts
		b.On(keycode.W, b.Sub(
			forward(keycode.LeftArrow),
			forward(keycode.RightArrow),
			forward(keycode.DownArrow),
			forward(keycode.UpArrow),
			forward(keycode.ReturnOrEnter),
			forward(keycode.C),
			// hide window
			b.On(keycode.H, b.KeyCode(keycode.W, b.WithModifiers(keycode.ModRightCommand))),
			forward(keycode.I),
			forward(keycode.O),
			forward(keycode.P),
			forward(keycode.Quote),
			forward(keycode.Semicolon),
			forward(keycode.L),
			forward(keycode.K),
			forward(keycode.J),
			forward(keycode.OpenBracket),
			forward(keycode.CloseBracket),
			forward(keycode.R),
		)),

		b.On(keycode.C, b.Delegate(raycast("/raycast/clipboard-history/clipboard-history"))),
		b.On(keycode.G, b.Delegate(raycast("/raycast/raycast-ai/ai-chat"))),

		b.On(keycode.S, b.Sub(
			b.On(keycode.A, b.KeyCode(keycode.S, b.WithHyper())),
			b.On(keycode.T, b.KeyCode(keycode.T, b.WithHyper())),
			b.On(keycode.M, b.KeyCode(keycode.M, b.WithHyper())),
		)),
		b.On(keycode.A, b.Sub(
			b.On(keycode.E, b.KeyCode(keycode.Num1, b.WithHyper())),
			b.On(keycode.R, b.KeyCode(keycode.Num2, b.WithHyper())),
			b.On(keycode.N, b.KeyCode(keycode.Num3, b.WithHyper())),
		)),

		// m = memory cells: tap to paste, hold to save
		b.On(keycode.M, b.Sub(
			memCell(keycode.Num1, "mem-cell-1"),
			memCell(keycode.Num2, "mem-cell-2"),
			memCell(keycode.Num3, "mem-cell-3"),
			memCell(keycode.P, "mock-pass"),
		)),
	)
}

// forward binds key to itself pressed with the Hyper chord.
func forward(key keycode.Code) b.Entry {
	return b.On(key, b.KeyCode(key, b.WithHyper()))
}

func memCell(key keycode.Code, cell string) b.Entry {
	args := map[string]string{"cellName": cell}
	return b.On(key, b.TapHold(
		b.ExecuteCommand("pk-workspace/memcell/get-mem-cell", args),
		b.ExecuteCommand("pk-workspace/memcell/save-mem-cell", args),
	))
}

func raycast(path string) *url.URL {
	return &url.URL{Scheme: "raycast", Host: "extensions", Path: path}
}
