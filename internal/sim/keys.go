// internal/sim/keys.go
package sim

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	Next     key.Binding
	Previous key.Binding
	Select   key.Binding
	Long     key.Binding
	Quit     key.Binding
}

var keys = keymap{
	Next: key.NewBinding(
		key.WithKeys("right", "n"),
		key.WithHelp("→/n", "next"),
	),
	Previous: key.NewBinding(
		key.WithKeys("left", "p"),
		key.WithHelp("←/p", "previous"),
	),
	Select: key.NewBinding(
		key.WithKeys(" ", "space", "s"),
		key.WithHelp("space", "refresh"),
	),
	Long: key.NewBinding(
		key.WithKeys("enter", "h"),
		key.WithHelp("enter", "jump home"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func helpLine() string {
	var out string
	for i, b := range []key.Binding{keys.Next, keys.Previous, keys.Select, keys.Long, keys.Quit} {
		if i > 0 {
			out += "  "
		}
		h := b.Help()
		out += h.Key + " " + h.Desc
	}
	return out
}
