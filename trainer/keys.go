package trainer

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	edge       key.Binding
	climax     key.Binding
	ejaculated key.Binding
	arousal    key.Binding
	finish     key.Binding
	abort      key.Binding
}

var defaultKeymap = keymap{
	edge: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edge"),
	),
	climax: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "held"),
	),
	ejaculated: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "ejaculated"),
	),
	arousal: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9", "0"),
		key.WithHelp("1-0", "arousal"),
	),
	finish: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "finish"),
	),
	abort: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "abort"),
	),
}

// arousalValue maps a digit key to a reading on the 1-10 scale.
func arousalValue(k string) (float64, bool) {
	if len(k) != 1 || k[0] < '0' || k[0] > '9' {
		return 0, false
	}

	if k == "0" {
		return 10, true
	}

	return float64(k[0] - '0'), true
}
