package animation

import "sort"

// FallbackMessage is written once to a client whose configured animation
// name is unknown. An unknown name is not a fatal condition.
const FallbackMessage = "Animation missing."

var registry = map[string]func() Animation{
	"lollercoaster": func() Animation { return Lollercoaster() },
	"roflcopter":    func() Animation { return Roflcopter() },
	"lollerskates":  func() Animation { return Lollerskates() },
}

// New resolves a configured animation name to a fresh instance. The second
// return is false for unknown names.
func New(name string) (Animation, bool) {
	factory, ok := registry[name]
	if !ok {
		return nil, false
	}
	return factory(), true
}

// Tracked resolves a name to a rollercoaster-style animation. Flicker
// animations return false; they carry no position state to inspect.
func Tracked(name string) (*Rollercoaster, bool) {
	a, ok := New(name)
	if !ok {
		return nil, false
	}
	r, ok := a.(*Rollercoaster)
	return r, ok
}

// Names returns the registered animation names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
