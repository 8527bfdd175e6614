package model

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the application.
type KeyMap struct {
	Up           key.Binding
	Down         key.Binding
	Decrease     key.Binding
	Increase     key.Binding
	DecreaseStep key.Binding
	IncreaseStep key.Binding
	EditValue    key.Binding
	EditHex      key.Binding
	Save         key.Binding
	NextSaved    key.Binding
	PrevSaved    key.Binding
	Remove       key.Binding
	LoadSaved    key.Binding
	CopyHex      key.Binding
	Esc          key.Binding
	Help         key.Binding
	ToggleLog    key.Binding
	ToggleDark   key.Binding
	ToggleDebug  key.Binding
	Quit         key.Binding
}

// DefaultKeyMap returns a KeyMap with default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "previous channel"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "next channel"),
		),
		Decrease: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("←/h", "decrease by 1"),
		),
		Increase: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("→/l", "increase by 1"),
		),
		DecreaseStep: key.NewBinding(
			key.WithKeys("shift+left", "-"),
			key.WithHelp("shift+←/-", "decrease by step"),
		),
		IncreaseStep: key.NewBinding(
			key.WithKeys("shift+right", "+", "="),
			key.WithHelp("shift+→/+", "increase by step"),
		),
		EditValue: key.NewBinding(
			key.WithKeys("e", "enter"),
			key.WithHelp("e/enter", "type a value"),
		),
		EditHex: key.NewBinding(
			key.WithKeys("#"),
			key.WithHelp("#", "enter a hex color"),
		),
		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save color"),
		),
		NextSaved: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next saved color"),
		),
		PrevSaved: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous saved color"),
		),
		Remove: key.NewBinding(
			key.WithKeys("x", "delete"),
			key.WithHelp("x/del", "remove saved color"),
		),
		LoadSaved: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pick saved color"),
		),
		CopyHex: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy hex"),
		),
		Esc: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel/back"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		ToggleLog: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "toggle log overlay"),
		),
		ToggleDark: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "toggle dark/light mode"),
		),
		ToggleDebug: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "toggle debug info"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q/ctrl+c", "quit"),
		),
	}
}

// FullHelp returns bindings for the main help view.
// It's a slice of slices, where each inner slice is a column in the help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Decrease, k.Increase, k.DecreaseStep, k.IncreaseStep, k.EditValue, k.EditHex}, // Color column
		{k.Save, k.NextSaved, k.PrevSaved, k.Remove, k.LoadSaved, k.CopyHex},                              // Saved colors column
		{k.Help, k.ToggleLog, k.ToggleDark, k.ToggleDebug, k.Esc, k.Quit},                                 // UI/General column
	}
}

// ShortHelp returns a minimal set of bindings, used for the status bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Save, k.CopyHex, k.Help, k.Quit}
}
