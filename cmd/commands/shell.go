package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/charmbracelet/lipgloss"
	"github.com/erikgeiser/promptkit"
	"github.com/erikgeiser/promptkit/selection"
	"github.com/erikgeiser/promptkit/textinput"
	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/mattn/go-shellwords"
	"github.com/spf13/cobra"
	"pkt.systems/pslog"

	"github.com/pluqqy/pagetabs/internal/cli"
	"github.com/pluqqy/pagetabs/pkg/models"
	"github.com/pluqqy/pagetabs/pkg/pages"
)

const (
	shellPrompt      = "pages> "
	shellDefaultCols = 80
)

var shellHelp = heredoc.Doc(`
	Commands:
	  list                      show pages in order (* marks the selected page)
	  add [slot]                insert a new page at slot 0..n (default: end)
	  select [page]             select a page
	  rename [page] [name...]   rename; without a name you are prompted
	  copy [page]               insert "<name> (Copy)" after the page
	  dup [page]                insert "<name> (Duplicate)" after the page
	  first [page]              move the page to the front
	  delete [page]             remove the page
	  move <page> <slot>        drop the page on insertion slot 0..n
	  menu [page] [--width N]   open the settings menu for a page
	  help                      show this help
	  quit                      leave the shell

	<page> is a 1-based position, an id, or a name. Omit it to pick one.
	Quote names with spaces where more arguments follow:
	  rename "New Page" Summary
`)

// errPickCancelled reports that an interactive selection was dismissed.
var errPickCancelled = errors.New("selection cancelled")

// Picker chooses a page or a menu action interactively.
type Picker interface {
	PickPage(list []models.Page) (string, error)
	PickAction(pageName string, items []pages.MenuItem) (pages.MenuAction, error)
}

// Shell is a line-mode host for the page navigator.
type Shell struct {
	nav      *pages.Navigator
	resolver *cli.PageResolver
	picker   Picker
	out      io.Writer
	log      pslog.Logger
	viewport int
}

// NewShell creates a shell over nav writing to out.
func NewShell(nav *pages.Navigator, picker Picker, out io.Writer, log pslog.Logger) *Shell {
	return &Shell{
		nav:      nav,
		resolver: cli.NewPageResolver(nav.Store),
		picker:   picker,
		out:      out,
		log:      log,
		viewport: shellDefaultCols,
	}
}

// NewShellCommand creates the shell command
func NewShellCommand(opts *GlobalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Edit pages from a line-mode prompt",
		Long: heredoc.Doc(`
			Starts a line-mode session over the configured pages for terminals
			where the interactive page bar cannot run. Changes last for the
			session only.
		`) + "\n" + shellHelp,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := pslog.Ctx(cmd.Context())
			cc := cli.NewCommandContext(opts.ConfigPath, log)
			settings := cc.LoadSettingsWithDefault()

			nav := pages.NewNavigator(cc.NewStore(), cli.MenuGeometry(settings), promptPrompter{})
			sh := NewShell(nav, fuzzyPicker{}, cmd.OutOrStdout(), log)
			return sh.Run(cmd.Context(), cmd.InOrStdin())
		},
	}
	return cmd
}

// Run reads commands from in until quit, end of input or ctx is done.
func (s *Shell) Run(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	fmt.Fprintln(s.out, "Type 'help' for commands.")
	s.printBar()
	fmt.Fprint(s.out, shellPrompt)

	for scanner.Scan() {
		if ctx.Err() != nil {
			return nil
		}
		quit, err := s.Exec(scanner.Text())
		switch {
		case errors.Is(err, errPickCancelled):
			s.info("Cancelled")
		case err != nil:
			s.log.Debug("shell command failed", "line", scanner.Text(), "err", err)
			s.fail(err)
		}
		if quit {
			return nil
		}
		fmt.Fprint(s.out, shellPrompt)
	}
	return scanner.Err()
}

// Exec runs one command line. It reports whether the shell should exit.
func (s *Shell) Exec(line string) (bool, error) {
	parser := shellwords.NewParser()
	fields, err := parser.Parse(line)
	if err != nil {
		return false, fmt.Errorf("invalid command line: %w", err)
	}
	if parser.Position >= 0 {
		return false, fmt.Errorf("invalid command line: unexpected %q (quote names that contain it)", line[parser.Position])
	}
	if len(fields) == 0 {
		return false, nil
	}
	name, args := strings.ToLower(fields[0]), fields[1:]

	switch name {
	case "quit", "exit", "q":
		return true, nil

	case "help", "?":
		fmt.Fprint(s.out, shellHelp)
		return false, nil

	case "list", "ls":
		s.printList()
		return false, nil

	case "add":
		return false, s.add(args)

	case "select", "sel":
		id, err := s.pageArg(strings.Join(args, " "))
		if err != nil {
			return false, err
		}
		s.nav.SelectPage(id)
		s.printBar()
		return false, nil

	case "rename":
		return false, s.rename(args)

	case "copy", "cp":
		return false, s.apply(pages.ActionCopy, args)

	case "dup", "duplicate":
		return false, s.apply(pages.ActionDuplicate, args)

	case "first":
		return false, s.apply(pages.ActionSetFirst, args)

	case "delete", "rm":
		return false, s.apply(pages.ActionDelete, args)

	case "move", "mv":
		return false, s.move(args)

	case "menu":
		return false, s.menu(args)
	}

	return false, fmt.Errorf("unknown command %q (try 'help')", name)
}

func (s *Shell) add(args []string) error {
	slot := s.nav.Store.Len()
	if len(args) > 0 {
		var err error
		if slot, err = cli.ParseSlot(args[0], s.nav.Store.Len()); err != nil {
			return err
		}
	}
	page, err := s.nav.AddPage(slot)
	if err != nil {
		return err
	}
	s.success("Added %q at position %d", page.Name, s.nav.Store.Index(page.ID)+1)
	s.printBar()
	return nil
}

func (s *Shell) apply(action pages.MenuAction, args []string) error {
	id, err := s.pageArg(strings.Join(args, " "))
	if err != nil {
		return err
	}
	page, _ := s.nav.Store.Page(id)
	if err := s.nav.Apply(action, id); err != nil {
		return err
	}
	s.success("%s %q", actionVerb(action), page.Name)
	s.printBar()
	return nil
}

func (s *Shell) rename(args []string) error {
	ref := ""
	if len(args) > 0 {
		ref = args[0]
	}
	id, err := s.pageArg(ref)
	if err != nil {
		return err
	}

	if len(args) > 1 {
		name, err := cli.ValidatePageName(strings.Join(args[1:], " "))
		if err != nil {
			return err
		}
		s.nav.ApplyRename(id, name)
	} else {
		renamed, err := s.nav.RenameWithPrompt(id)
		if err != nil {
			return err
		}
		if !renamed {
			s.info("Name unchanged")
			return nil
		}
	}

	page, _ := s.nav.Store.Page(id)
	s.success("Renamed to %q", page.Name)
	s.printBar()
	return nil
}

func (s *Shell) move(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: move <page> <slot>")
	}
	last := len(args) - 1
	id, err := s.resolver.Resolve(strings.Join(args[:last], " "))
	if err != nil {
		return err
	}
	slot, err := cli.ParseSlot(args[last], s.nav.Store.Len())
	if err != nil {
		return err
	}

	s.nav.StartDrag(id)
	s.nav.DragOver(slot)
	s.nav.Drop(slot)

	page, _ := s.nav.Store.Page(id)
	s.success("Moved %q to position %d", page.Name, s.nav.Store.Index(id)+1)
	s.printBar()
	return nil
}

// menu opens the settings menu the way the page bar would, shows where it
// lands for the given terminal width, and runs the chosen action.
func (s *Shell) menu(args []string) error {
	width, rest, err := s.menuWidth(args)
	if err != nil {
		return err
	}
	id, err := s.pageArg(strings.Join(rest, " "))
	if err != nil {
		return err
	}

	bar, triggers := renderShellBar(s.nav.Store)
	if !s.nav.OpenMenu(id, triggers[id], width) {
		return fmt.Errorf("menu for %q: %w", id, pages.ErrPageNotFound)
	}
	state, _ := s.nav.Menu.State()
	page, _ := s.nav.Store.Page(id)

	fmt.Fprintln(s.out, bar)
	fmt.Fprintf(s.out, "%s^\n", strings.Repeat(" ", triggers[id].Left))
	fmt.Fprintf(s.out, "Settings for %q at column %d, row %d (width %d)\n", page.Name, state.X, state.Y, width)

	action, err := s.picker.PickAction(page.Name, pages.MenuItems())
	if err != nil {
		s.nav.CloseMenu()
		return err
	}
	if err := s.nav.Invoke(action); err != nil {
		return err
	}
	s.success("%s %q", actionVerb(action), page.Name)
	s.printBar()
	return nil
}

// menuWidth pulls "--width N", "--width=N" or "-w N" out of args. Everything
// else is the page reference.
func (s *Shell) menuWidth(args []string) (int, []string, error) {
	width := s.viewport
	rest := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		var value string
		switch {
		case arg == "--width" || arg == "-w":
			if i+1 >= len(args) {
				return 0, nil, fmt.Errorf("%s needs a value", arg)
			}
			i++
			value = args[i]
		case strings.HasPrefix(arg, "--width="):
			value = strings.TrimPrefix(arg, "--width=")
		default:
			rest = append(rest, arg)
			continue
		}
		w, err := strconv.Atoi(value)
		if err != nil || w <= 0 {
			return 0, nil, fmt.Errorf("invalid width %q: must be a positive number", value)
		}
		width = w
	}
	return width, rest, nil
}

// pageArg resolves ref, or asks the picker when ref is empty.
func (s *Shell) pageArg(ref string) (string, error) {
	if strings.TrimSpace(ref) != "" {
		return s.resolver.Resolve(ref)
	}
	list := s.nav.Store.Pages()
	if len(list) == 0 {
		return "", fmt.Errorf("no pages")
	}
	return s.picker.PickPage(list)
}

func (s *Shell) printBar() {
	bar, _ := renderShellBar(s.nav.Store)
	fmt.Fprintln(s.out, bar)
}

func (s *Shell) printList() {
	if err := outputListText(s.out, listResult(s.nav.Store)); err != nil {
		s.fail(err)
	}
}

func (s *Shell) success(format string, args ...interface{}) {
	s.print("✓", "OK:", format, args...)
}

func (s *Shell) info(format string, args ...interface{}) {
	s.print("ℹ", "INFO:", format, args...)
}

func (s *Shell) fail(err error) {
	s.print("✗", "ERROR:", "%v", err)
}

func (s *Shell) print(symbol, plain, format string, args ...interface{}) {
	prefix := symbol
	if cli.NoColor() {
		prefix = plain
	}
	fmt.Fprintf(s.out, "%s %s\n", prefix, fmt.Sprintf(format, args...))
}

func actionVerb(action pages.MenuAction) string {
	switch action {
	case pages.ActionSetFirst:
		return "Moved to front:"
	case pages.ActionRename:
		return "Renamed"
	case pages.ActionCopy:
		return "Copied"
	case pages.ActionDuplicate:
		return "Duplicated"
	case pages.ActionDelete:
		return "Deleted"
	default:
		return action.String()
	}
}

// renderShellBar draws the pages as one line of bracketed tabs and returns
// where each page's menu trigger sits on that line.
func renderShellBar(store *pages.Store) (string, map[string]pages.Rect) {
	triggers := make(map[string]pages.Rect)
	list := store.Pages()
	if len(list) == 0 {
		return "(no pages)", triggers
	}

	var b strings.Builder
	x := 0
	for i, p := range list {
		if i > 0 {
			b.WriteString(" ")
			x++
		}
		label := "[" + p.Name + " "
		if p.ID == store.Active() {
			label = "[*" + p.Name + " "
		}
		b.WriteString(label)
		x += lipgloss.Width(label)
		triggers[p.ID] = pages.Rect{Left: x, Top: 0, Right: x + 1, Bottom: 1}
		b.WriteString("⋮]")
		x += 2
	}
	return b.String(), triggers
}

// promptPrompter asks for a new page name with a promptkit text input.
type promptPrompter struct{}

func (promptPrompter) PromptName(current string) (string, bool, error) {
	input := textinput.New("New page name:")
	input.InitialValue = current
	input.Placeholder = "page name"

	name, err := input.RunPrompt()
	if errors.Is(err, promptkit.ErrAborted) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return name, true, nil
}

// fuzzyPicker selects pages with a fuzzy finder and actions with a promptkit
// selection list.
type fuzzyPicker struct{}

func (fuzzyPicker) PickPage(list []models.Page) (string, error) {
	idx, err := fuzzyfinder.Find(list, func(i int) string {
		return fmt.Sprintf("%d. %s", i+1, list[i].Name)
	}, fuzzyfinder.WithHeader("Select a page"))
	if errors.Is(err, fuzzyfinder.ErrAbort) {
		return "", errPickCancelled
	}
	if err != nil {
		return "", fmt.Errorf("page picker: %w", err)
	}
	return list[idx].ID, nil
}

func (fuzzyPicker) PickAction(pageName string, items []pages.MenuItem) (pages.MenuAction, error) {
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = item.Label
	}

	sp := selection.New(fmt.Sprintf("Settings for %q", pageName), labels)
	sp.PageSize = len(labels)
	choice, err := sp.RunPrompt()
	if errors.Is(err, promptkit.ErrAborted) {
		return 0, errPickCancelled
	}
	if err != nil {
		return 0, fmt.Errorf("menu: %w", err)
	}

	for _, item := range items {
		if item.Label == choice {
			return item.Action, nil
		}
	}
	return 0, fmt.Errorf("menu: unknown choice %q", choice)
}

var _ pages.Prompter = promptPrompter{}
