package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"pkt.systems/pslog"

	"github.com/pluqqy/pagetabs/internal/logx"
	"github.com/pluqqy/pagetabs/pkg/models"
	"github.com/pluqqy/pagetabs/pkg/pages"
)

const (
	appTitle       = "Pages"
	statusDuration = 2 * time.Second
)

type App struct {
	nav      *pages.Navigator
	settings models.Settings
	log      pslog.Logger
	zones    *zone.Manager
	keys     keyMap
	help     help.Model
	rename   *RenameState
	confirm  *ConfirmationModel
	helpView *helpRenderer

	width  int
	height int

	statusMsg     string
	statusSeq     int
	statusPending bool
	showHelp      bool

	menuCursor   int
	keyboardDrag bool
	pressedID    string
	layout       tabLayout
	menuRect     pages.Rect

	updates        <-chan *models.Settings
	clipboardWrite func(string) error
}

type appConfig struct {
	log       pslog.Logger
	ids       pages.IDGenerator
	updates   <-chan *models.Settings
	clipboard func(string) error
}

// AppOption configures an App.
type AppOption func(*appConfig)

// WithLogger sets the logger for the app and its store.
func WithLogger(log pslog.Logger) AppOption {
	return func(c *appConfig) { c.log = log }
}

// WithIDGenerator overrides page id generation.
func WithIDGenerator(gen pages.IDGenerator) AppOption {
	return func(c *appConfig) { c.ids = gen }
}

// WithSettingsUpdates feeds reloaded settings into the app.
func WithSettingsUpdates(ch <-chan *models.Settings) AppOption {
	return func(c *appConfig) { c.updates = ch }
}

// WithClipboard replaces the system clipboard writer.
func WithClipboard(write func(string) error) AppOption {
	return func(c *appConfig) { c.clipboard = write }
}

// NewApp builds the page bar for the given settings. The page list is seeded
// from settings.Pages.
func NewApp(settings models.Settings, opts ...AppOption) *App {
	cfg := appConfig{clipboard: clipboard.WriteAll}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.log == nil {
		cfg.log = logx.Ctx(context.Background())
	}
	settings.Normalize()

	a := &App{
		settings:       settings,
		log:            cfg.log,
		zones:          zone.New(),
		keys:           newKeyMap(),
		help:           help.New(),
		rename:         NewRenameState(),
		confirm:        NewConfirmation(),
		helpView:       newHelpRenderer(),
		updates:        cfg.updates,
		clipboardWrite: cfg.clipboard,
	}

	storeOpts := []pages.Option{pages.WithLogger(cfg.log), pages.WithObserver(a.onPageEvent)}
	if cfg.ids != nil {
		storeOpts = append(storeOpts, pages.WithIDGenerator(cfg.ids))
	}
	store := pages.NewStore(settings.Pages, storeOpts...)
	a.nav = pages.NewNavigator(store, geometryFor(settings.UI), nil)
	return a
}

func geometryFor(ui models.UISettings) pages.MenuGeometry {
	return pages.MenuGeometry{Width: ui.MenuWidth, Margin: ui.MenuMargin, Gap: ui.MenuGap}
}

// Navigator exposes the page state driven by the app.
func (a *App) Navigator() *pages.Navigator {
	return a.nav
}

func (a *App) Init() tea.Cmd {
	return waitForSettings(a.updates)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := a.update(msg)
	if a.statusPending {
		a.statusPending = false
		cmd = tea.Batch(cmd, clearStatusAfter(a.statusSeq))
	}
	return a, cmd
}

func (a *App) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		return nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case tea.MouseMsg:
		if !a.settings.UI.Mouse {
			return nil
		}
		return a.handleMouse(msg)

	case RenameSubmittedMsg:
		if !a.nav.ApplyRename(msg.PageID, msg.Name) {
			a.setStatus("Page no longer exists")
		}
		return nil

	case SettingsReloadedMsg:
		a.applySettings(msg.Settings)
		return waitForSettings(a.updates)

	case StatusMsg:
		a.setStatus(string(msg))
		return nil

	case clearStatusMsg:
		if msg.seq == a.statusSeq {
			a.statusMsg = ""
		}
		return nil
	}
	return nil
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyCtrlC {
		return tea.Quit
	}

	if a.confirm.Active() {
		return a.confirm.Update(msg)
	}

	if a.rename.Active {
		_, cmd := a.rename.HandleInput(msg)
		return cmd
	}

	if a.showHelp {
		if key.Matches(msg, a.keys.Help, a.keys.Cancel) {
			a.showHelp = false
		} else if key.Matches(msg, a.keys.Quit) {
			return tea.Quit
		}
		return nil
	}

	if a.keyboardDrag {
		return a.handleDragKey(msg)
	}

	if a.nav.Menu.IsOpen() {
		return a.handleMenuKey(msg)
	}

	active := a.nav.Store.Active()
	idx := a.nav.Store.ActiveIndex()

	switch {
	case key.Matches(msg, a.keys.Quit):
		return tea.Quit

	case key.Matches(msg, a.keys.Prev):
		a.selectAt(idx - 1)

	case key.Matches(msg, a.keys.Next):
		a.selectAt(idx + 1)

	case key.Matches(msg, a.keys.MoveLeft):
		if idx > 0 {
			a.nav.Store.Move(active, idx-1)
		}

	case key.Matches(msg, a.keys.MoveRight):
		if idx >= 0 && idx < a.nav.Store.Len()-1 {
			a.nav.Store.Move(active, idx+2)
		}

	case key.Matches(msg, a.keys.Grab):
		if idx < 0 {
			return nil
		}
		a.nav.StartDrag(active)
		a.nav.DragOver(idx)
		a.keyboardDrag = true

	case key.Matches(msg, a.keys.Menu):
		if idx < 0 {
			return nil
		}
		a.openMenu(active, a.triggerRect(active))

	case key.Matches(msg, a.keys.Add):
		a.addPage(idx + 1)

	case key.Matches(msg, a.keys.Append):
		a.addPage(a.nav.Store.Len())

	case key.Matches(msg, a.keys.Rename):
		return a.runAction(pages.ActionRename, active)

	case key.Matches(msg, a.keys.Copy):
		return a.runAction(pages.ActionCopy, active)

	case key.Matches(msg, a.keys.Duplicate):
		return a.runAction(pages.ActionDuplicate, active)

	case key.Matches(msg, a.keys.Delete):
		return a.runAction(pages.ActionDelete, active)

	case key.Matches(msg, a.keys.SetFirst):
		return a.runAction(pages.ActionSetFirst, active)

	case key.Matches(msg, a.keys.Yank):
		return a.yankActive()

	case key.Matches(msg, a.keys.Help):
		a.showHelp = true
	}
	return nil
}

// handleDragKey moves the hovered slot of a keyboard drag.
func (a *App) handleDragKey(msg tea.KeyMsg) tea.Cmd {
	slot, ok := a.nav.Drag.HoverSlot()
	if !ok {
		slot = a.nav.Store.Index(a.nav.Drag.PageID())
	}

	switch {
	case key.Matches(msg, a.keys.Prev):
		if slot > 0 {
			a.nav.DragOver(slot - 1)
		}

	case key.Matches(msg, a.keys.Next):
		if slot < a.nav.Store.Len() {
			a.nav.DragOver(slot + 1)
		}

	case key.Matches(msg, a.keys.Drop):
		a.keyboardDrag = false
		a.nav.Drop(slot)

	case key.Matches(msg, a.keys.Cancel):
		a.keyboardDrag = false
		a.nav.EndDrag()
		a.setStatus("Move cancelled")

	case key.Matches(msg, a.keys.Quit):
		return tea.Quit
	}
	return nil
}

// handleMenuKey drives the open settings menu from the keyboard.
func (a *App) handleMenuKey(msg tea.KeyMsg) tea.Cmd {
	items := pages.MenuItems()

	switch {
	case key.Matches(msg, a.keys.MenuUp):
		a.menuCursor = (a.menuCursor - 1 + len(items)) % len(items)

	case key.Matches(msg, a.keys.MenuDown):
		a.menuCursor = (a.menuCursor + 1) % len(items)

	case msg.Type == tea.KeyEnter:
		state, ok := a.nav.Menu.State()
		if !ok {
			return nil
		}
		action := items[a.menuCursor].Action
		a.nav.CloseMenu()
		return a.runAction(action, state.PageID)

	case key.Matches(msg, a.keys.Cancel), key.Matches(msg, a.keys.Menu):
		a.nav.CloseMenu()

	case key.Matches(msg, a.keys.Quit):
		return tea.Quit
	}
	return nil
}

func (a *App) selectAt(index int) {
	if page, ok := a.nav.Store.At(index); ok {
		a.nav.SelectPage(page.ID)
	}
}

func (a *App) addPage(slot int) {
	if _, err := a.nav.AddPage(slot); err != nil {
		a.log.Debug("add refused", "slot", slot, "err", err)
		a.setStatus("Finish moving the page first")
	}
}

// triggerRect returns where the page's menu trigger was last drawn.
func (a *App) triggerRect(id string) pages.Rect {
	if r, ok := a.layout.triggers[id]; ok {
		return r
	}
	row := a.layout.row
	return pages.Rect{Left: 0, Top: row, Right: 1, Bottom: row + 1}
}

func (a *App) openMenu(id string, trigger pages.Rect) {
	if a.nav.OpenMenu(id, trigger, a.width) {
		a.menuCursor = 0
	}
}

// runAction applies a menu action to a page, opening the rename modal or the
// delete confirmation when needed.
func (a *App) runAction(action pages.MenuAction, id string) tea.Cmd {
	page, ok := a.nav.Store.Page(id)
	if !ok {
		return nil
	}

	switch action {
	case pages.ActionRename:
		return a.rename.Start(id, page.Name)

	case pages.ActionDelete:
		if a.settings.UI.ConfirmDelete {
			a.confirm.ShowInline(
				fmt.Sprintf("Delete page %q?", page.Name),
				true,
				func() tea.Cmd {
					a.apply(pages.ActionDelete, id)
					return nil
				},
				func() tea.Cmd {
					return func() tea.Msg { return StatusMsg("Delete cancelled") }
				},
			)
			return nil
		}
	}

	a.apply(action, id)
	return nil
}

func (a *App) apply(action pages.MenuAction, id string) {
	if err := a.nav.Apply(action, id); err != nil {
		a.log.Warn("page action failed", "action", action.String(), "page", id, "err", err)
		a.setStatus(fmt.Sprintf("✗ %s failed", action))
	}
}

// onPageEvent turns store events into status feedback.
func (a *App) onPageEvent(ev pages.Event) {
	switch ev.Type {
	case pages.EventCreated:
		a.setStatus(fmt.Sprintf("✓ Added %q", ev.Page.Name))
	case pages.EventDeleted:
		a.setStatus(fmt.Sprintf("✓ Deleted %q", ev.Page.Name))
	case pages.EventRenamed:
		a.setStatus(fmt.Sprintf("✓ Renamed to %q", ev.Page.Name))
	case pages.EventMoved:
		a.setStatus(fmt.Sprintf("✓ Moved %q to position %d", ev.Page.Name, ev.Index+1))
	}
}

func (a *App) setStatus(text string) {
	a.statusMsg = text
	a.statusSeq++
	a.statusPending = true
}

// applySettings re-applies UI settings from a reloaded settings file. Pages
// are owned by the running store and are left alone.
func (a *App) applySettings(s *models.Settings) {
	if s == nil {
		return
	}
	next := *s
	next.Normalize()
	a.settings.UI = next.UI
	a.nav.Geometry = geometryFor(next.UI)
	a.log.Info("settings reloaded", "menu_width", next.UI.MenuWidth, "mouse", next.UI.Mouse)
	a.setStatus("Settings reloaded")
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	header := renderHeader(a.width, appTitle)
	row := lipgloss.Height(header)
	bar := a.renderTabBar(row)
	footer := a.renderFooter()

	bodyHeight := a.height - row - lipgloss.Height(bar) - lipgloss.Height(footer)
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	var body string
	if a.showHelp {
		body = lipgloss.NewStyle().Width(a.width).Height(bodyHeight).MaxHeight(bodyHeight).
			Render(a.helpView.Render(a.keys, a.width))
	} else {
		body = a.renderBody(bodyHeight)
	}

	view := lipgloss.JoinVertical(lipgloss.Left, header, bar, body, footer)

	if state, ok := a.nav.Menu.State(); ok {
		menu := a.renderMenu()
		a.updateMenuRect(state.X, state.Y, menu)
		view = placeOverlay(state.X, state.Y, menu, view)
	}

	if a.rename.Active {
		dialog := a.rename.View(a.width)
		x := (a.width - lipgloss.Width(dialog)) / 2
		y := (a.height - lipgloss.Height(dialog)) / 2
		view = placeOverlay(x, y, dialog, view)
	}

	return a.zones.Scan(view)
}

func (a *App) renderFooter() string {
	var rows []string
	if a.confirm.Active() {
		rows = append(rows, a.confirm.View(a.width))
	}
	if a.statusMsg != "" {
		rows = append(rows, StatusBarStyle.Render(a.statusMsg))
	}
	if a.settings.UI.ShowHelp {
		if a.keyboardDrag {
			rows = append(rows, a.help.View(dragKeyMap{k: a.keys}))
		} else {
			rows = append(rows, a.help.View(a.keys))
		}
	}
	if len(rows) == 0 {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// StatusMsg shows a transient message in the status line.
type StatusMsg string

type clearStatusMsg struct{ seq int }

func clearStatusAfter(seq int) tea.Cmd {
	return tea.Tick(statusDuration, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

// SettingsReloadedMsg carries settings re-read after the file changed.
type SettingsReloadedMsg struct {
	Settings *models.Settings
}

func waitForSettings(ch <-chan *models.Settings) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		s, ok := <-ch
		if !ok {
			return nil
		}
		return SettingsReloadedMsg{Settings: s}
	}
}
