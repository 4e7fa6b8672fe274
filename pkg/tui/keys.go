package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Prev      key.Binding
	Next      key.Binding
	MoveLeft  key.Binding
	MoveRight key.Binding
	Grab      key.Binding
	Drop      key.Binding
	Menu      key.Binding
	MenuUp    key.Binding
	MenuDown  key.Binding
	Add       key.Binding
	Append    key.Binding
	Rename    key.Binding
	Copy      key.Binding
	Duplicate key.Binding
	Delete    key.Binding
	SetFirst  key.Binding
	Yank      key.Binding
	Help      key.Binding
	Cancel    key.Binding
	Quit      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Prev:      Shortcuts.Prev.Binding("previous page"),
		Next:      Shortcuts.Next.Binding("next page"),
		MoveLeft:  Shortcuts.MoveLeft.Binding("move left"),
		MoveRight: Shortcuts.MoveRight.Binding("move right"),
		Grab:      Shortcuts.Grab.Binding("drag page"),
		Drop:      Shortcuts.Drop.Binding("drop"),
		Menu:      Shortcuts.Menu.Binding("page menu"),
		MenuUp:    Shortcuts.MenuUp.Binding("up"),
		MenuDown:  Shortcuts.MenuDn.Binding("down"),
		Add:       Shortcuts.Add.Binding("add after"),
		Append:    Shortcuts.Append.Binding("add at end"),
		Rename:    Shortcuts.Rename.Binding("rename"),
		Copy:      Shortcuts.Copy.Binding("copy"),
		Duplicate: Shortcuts.Dup.Binding("duplicate"),
		Delete:    Shortcuts.Delete.Binding("delete"),
		SetFirst:  Shortcuts.SetFirst.Binding("set first"),
		Yank:      Shortcuts.Yank.Binding("yank name"),
		Help:      Shortcuts.Help.Binding("help"),
		Cancel:    Shortcuts.Cancel.Binding("cancel"),
		Quit:      Shortcuts.Quit.Binding("quit"),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Grab, k.Menu, k.Add, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.MoveLeft, k.MoveRight, k.Grab, k.Drop},
		{k.Menu, k.Add, k.Append, k.Rename, k.Copy, k.Duplicate, k.Delete, k.SetFirst},
		{k.Yank, k.Help, k.Quit},
	}
}

// dragKeyMap is shown in the footer while a keyboard drag is active.
type dragKeyMap struct{ k keyMap }

func (d dragKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{d.k.Prev, d.k.Next, d.k.Drop, d.k.Cancel}
}

func (d dragKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{d.ShortHelp()}
}
