package pages

import (
	"context"

	"github.com/pluqqy/pagetabs/internal/logx"
	"github.com/pluqqy/pagetabs/pkg/models"
	"pkt.systems/pslog"
)

// Store owns the ordered page list and the current selection. It is not safe
// for concurrent use; hosts drive it from a single event loop.
type Store struct {
	pages     []models.Page
	active    string
	ids       IDGenerator
	log       pslog.Logger
	observers []Observer
}

// Option configures a Store.
type Option func(*Store)

// WithIDGenerator overrides the default UUID generator.
func WithIDGenerator(gen IDGenerator) Option {
	return func(s *Store) {
		if gen != nil {
			s.ids = gen
		}
	}
}

// WithLogger sets the logger used for mutation records.
func WithLogger(log pslog.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// WithObserver registers an observer for page events.
func WithObserver(obs Observer) Option {
	return func(s *Store) {
		if obs != nil {
			s.observers = append(s.observers, obs)
		}
	}
}

// NewStore builds a store seeded with the given pages in order. Seed pages
// without an id get a generated one; duplicate ids are reassigned. The first
// page starts selected.
func NewStore(seed []models.Page, opts ...Option) *Store {
	s := &Store{ids: UUIDGenerator{}}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = logx.Ctx(context.Background())
	}

	seen := make(map[string]struct{}, len(seed))
	s.pages = make([]models.Page, 0, len(seed))
	for _, p := range seed {
		if _, dup := seen[p.ID]; p.ID == "" || dup {
			p.ID = s.ids.NewID()
		}
		seen[p.ID] = struct{}{}
		s.pages = append(s.pages, p)
	}
	if len(s.pages) > 0 {
		s.active = s.pages[0].ID
	}
	return s
}

// Pages returns a copy of the ordered list.
func (s *Store) Pages() []models.Page {
	out := make([]models.Page, len(s.pages))
	copy(out, s.pages)
	return out
}

// Len returns the number of pages.
func (s *Store) Len() int {
	return len(s.pages)
}

// Active returns the selected page id, or "" when nothing is selected.
func (s *Store) Active() string {
	return s.active
}

// ActivePage returns the selected page when it exists in the list.
func (s *Store) ActivePage() (models.Page, bool) {
	return s.Page(s.active)
}

// ActiveIndex returns the position of the selected page, or -1.
func (s *Store) ActiveIndex() int {
	return s.Index(s.active)
}

// Index returns the position of id, or -1.
func (s *Store) Index(id string) int {
	if id == "" {
		return -1
	}
	for i, p := range s.pages {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// Page looks up a page by id.
func (s *Store) Page(id string) (models.Page, bool) {
	if idx := s.Index(id); idx >= 0 {
		return s.pages[idx], true
	}
	return models.Page{}, false
}

// At returns the page at index.
func (s *Store) At(index int) (models.Page, bool) {
	if index < 0 || index >= len(s.pages) {
		return models.Page{}, false
	}
	return s.pages[index], true
}

// IconAt returns the icon for the page at index.
func (s *Store) IconAt(index int) models.PageIconType {
	return models.IconTypeAt(index, len(s.pages))
}

// Add inserts a new page at index, clamped to [0, Len()], and selects it.
func (s *Store) Add(index int) models.Page {
	id := s.ids.NewID()
	name := newPageName(namesOf(s.pages), len(s.pages), func() string {
		return fallbackName(id)
	})
	page := models.Page{ID: id, Name: name}

	index = clamp(index, 0, len(s.pages))
	s.pages = insertAt(s.pages, index, page)
	s.active = id

	logx.WithSlot(logx.WithPage(s.log, page), index).Info("page added")
	s.emit(Event{Type: EventCreated, Page: page, Index: index})
	return page
}

// Delete removes the page with id. When it was selected, the page before it
// (or the new first page) becomes selected; an emptied list selects nothing.
func (s *Store) Delete(id string) bool {
	idx := s.Index(id)
	if idx < 0 {
		s.log.Trace("delete ignored: page not found", "page", id)
		return false
	}
	page := s.pages[idx]
	s.pages = removeAt(s.pages, idx)

	if s.active == id {
		if len(s.pages) == 0 {
			s.active = ""
		} else {
			s.active = s.pages[max(0, idx-1)].ID
		}
	}

	logx.WithPage(s.log, page).Info("page deleted", "active", s.active)
	s.emit(Event{Type: EventDeleted, Page: page, Index: idx})
	return true
}

// Copy inserts "{name} (Copy)" right after the page and selects it.
func (s *Store) Copy(id string) (models.Page, bool) {
	return s.clone(id, copyLabel)
}

// Duplicate inserts "{name} (Duplicate)" right after the page and selects it.
func (s *Store) Duplicate(id string) (models.Page, bool) {
	return s.clone(id, duplicateLabel)
}

func (s *Store) clone(id, label string) (models.Page, bool) {
	idx := s.Index(id)
	if idx < 0 {
		s.log.Trace("clone ignored: page not found", "page", id, "label", label)
		return models.Page{}, false
	}
	src := s.pages[idx]
	page := models.Page{
		ID:   s.ids.NewID(),
		Name: derivedName(namesOf(s.pages), src.Name, label),
	}
	s.pages = insertAt(s.pages, idx+1, page)
	s.active = page.ID

	logx.WithPage(s.log, page).Info("page cloned", "source", src.ID, "label", label)
	s.emit(Event{Type: EventCreated, Page: page, Index: idx + 1})
	return page, true
}

// Rename sets the page name verbatim. Uniqueness is not enforced here;
// callers trim input and skip blank names.
func (s *Store) Rename(id, name string) bool {
	idx := s.Index(id)
	if idx < 0 {
		s.log.Trace("rename ignored: page not found", "page", id)
		return false
	}
	old := s.pages[idx].Name
	s.pages[idx].Name = name

	logx.WithPage(s.log, s.pages[idx]).Info("page renamed", "old_name", old)
	s.emit(Event{Type: EventRenamed, Page: s.pages[idx], Index: idx})
	return true
}

// SetAsFirst moves the page to the front, keeping the others in order, and
// selects it.
func (s *Store) SetAsFirst(id string) bool {
	idx := s.Index(id)
	if idx < 0 {
		s.log.Trace("set first ignored: page not found", "page", id)
		return false
	}
	page := s.pages[idx]
	s.pages = insertAt(removeAt(s.pages, idx), 0, page)
	s.active = id

	logx.WithPage(s.log, page).Info("page set as first", "from", idx)
	s.emit(Event{Type: EventMoved, Page: page, Index: 0})
	return true
}

// Move reinserts the page at an insertion slot in [0, Len()], where slot k
// means "before the page currently at k". Dropping a page on either slot that
// touches it leaves the order unchanged. Selection is not affected.
func (s *Store) Move(id string, slot int) bool {
	src := s.Index(id)
	if src < 0 {
		s.log.Trace("move ignored: page not found", "page", id, "slot", slot)
		return false
	}
	page := s.pages[src]
	rest := removeAt(s.pages, src)

	target := slot
	if src < target {
		target--
	}
	target = clamp(target, 0, len(rest))
	s.pages = insertAt(rest, target, page)

	logx.WithSlot(logx.WithPage(s.log, page), slot).Info("page moved", "from", src, "to", target)
	s.emit(Event{Type: EventMoved, Page: page, Index: target})
	return true
}

// Select marks id as the active page. The id is not checked against the list.
func (s *Store) Select(id string) {
	if s.active == id {
		return
	}
	s.active = id
	page, _ := s.Page(id)
	if page.ID == "" {
		page.ID = id
	}
	logx.WithPage(s.log, page).Trace("page selected")
	s.emit(Event{Type: EventSelected, Page: page, Index: s.Index(id)})
}

func (s *Store) emit(ev Event) {
	ev.Active = s.active
	for _, obs := range s.observers {
		obs(ev)
	}
}

func insertAt(list []models.Page, index int, page models.Page) []models.Page {
	out := make([]models.Page, 0, len(list)+1)
	out = append(out, list[:index]...)
	out = append(out, page)
	return append(out, list[index:]...)
}

func removeAt(list []models.Page, index int) []models.Page {
	out := make([]models.Page, 0, len(list)-1)
	out = append(out, list[:index]...)
	return append(out, list[index+1:]...)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
