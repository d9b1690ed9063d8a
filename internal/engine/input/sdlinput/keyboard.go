package sdlinput

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/vrbox/internal/engine/input"
)

// Keyboard reads arrows/WASD as the directional schema. Space sits.
type Keyboard struct {
	sitToggle bool
	sit       input.Toggle
}

// NewKeyboard creates a keyboard source. With sitToggle set, Space flips a
// sticky sit state; otherwise the character sits while Space is held.
func NewKeyboard(sitToggle bool) *Keyboard {
	return &Keyboard{sitToggle: sitToggle}
}

// Sample reads the current keyboard state.
func (k *Keyboard) Sample() input.Sample {
	return k.sampleKeys(sdl.GetKeyboardState())
}

// Reset stands the character up.
func (k *Keyboard) Reset() {
	k.sit.Set(false)
}

func (k *Keyboard) sampleKeys(keys []uint8) input.Sample {
	d := directional(keys)
	space := down(keys, sdl.SCANCODE_SPACE)
	if k.sitToggle {
		d.Sit = k.sit.Update(space)
	} else {
		d.Sit = space
	}
	return d.Sample()
}

func directional(keys []uint8) input.Directional {
	return input.Directional{
		Forward:  down(keys, sdl.SCANCODE_UP) || down(keys, sdl.SCANCODE_W),
		Backward: down(keys, sdl.SCANCODE_DOWN) || down(keys, sdl.SCANCODE_S),
		Left:     down(keys, sdl.SCANCODE_LEFT) || down(keys, sdl.SCANCODE_A),
		Right:    down(keys, sdl.SCANCODE_RIGHT) || down(keys, sdl.SCANCODE_D),
	}
}

func down(keys []uint8, sc sdl.Scancode) bool {
	return int(sc) < len(keys) && keys[sc] != 0
}
