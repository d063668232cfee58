package screens

import "github.com/charmbracelet/bubbles/key"

// pickerKeys are the bindings added on top of the list's own navigation.
type pickerKeys struct {
	Run     key.Binding
	Copy    key.Binding
	Preview key.Binding
	Quit    key.Binding
}

func newPickerKeys() pickerKeys {
	return pickerKeys{
		Run:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run")),
		Copy:    key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy command")),
		Preview: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "preview")),
		Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k pickerKeys) short() []key.Binding {
	return []key.Binding{k.Run, k.Copy, k.Preview}
}
