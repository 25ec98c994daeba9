package app

import (
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/depeter/stickypager/internal/config"
)

// keyAliases are the short names accepted in the config on top of
// Ebitengine's own key names ("ArrowLeft", "Digit1", "F5", ...).
var keyAliases = map[string]ebiten.Key{
	"left":   ebiten.KeyArrowLeft,
	"right":  ebiten.KeyArrowRight,
	"up":     ebiten.KeyArrowUp,
	"down":   ebiten.KeyArrowDown,
	"return": ebiten.KeyEnter,
	"esc":    ebiten.KeyEscape,
	"pgup":   ebiten.KeyPageUp,
	"pgdn":   ebiten.KeyPageDown,
}

// parseKey converts a config key name to an ebiten.Key.
func parseKey(name string) (ebiten.Key, bool) {
	if k, ok := keyAliases[strings.ToLower(name)]; ok {
		return k, true
	}
	var k ebiten.Key
	if err := k.UnmarshalText([]byte(name)); err != nil {
		return 0, false
	}
	return k, true
}

// binding is a resolved keybind; unbound ones never fire.
type binding struct {
	key   ebiten.Key
	bound bool
}

func bind(action, name string) binding {
	if name == "" {
		return binding{}
	}
	k, ok := parseKey(name)
	if !ok {
		log.Printf("Unknown key %q for %s, leaving it unbound", name, action)
		return binding{}
	}
	return binding{key: k, bound: true}
}

func (b binding) justPressed() bool {
	return b.bound && inpututil.IsKeyJustPressed(b.key)
}

// keybinds are the config keybinds resolved once at startup.
type keybinds struct {
	nextPage   binding
	prevPage   binding
	reload     binding
	scrollTop  binding
	fullscreen binding
}

func resolveKeybinds(kb config.KeybindConfig) keybinds {
	return keybinds{
		nextPage:   bind("next_page", kb.NextPage),
		prevPage:   bind("prev_page", kb.PrevPage),
		reload:     bind("reload", kb.Reload),
		scrollTop:  bind("scroll_top", kb.ScrollTop),
		fullscreen: bind("fullscreen", kb.Fullscreen),
	}
}
