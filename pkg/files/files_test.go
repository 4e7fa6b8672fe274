package files

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"pkt.systems/pslog"

	"github.com/pluqqy/pagetabs/pkg/models"
)

func TestInitProjectStructure(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigDir, SettingsFile)

	if err := InitProjectStructure(path, false); err != nil {
		t.Fatalf("InitProjectStructure failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected settings file at %s: %v", path, err)
	}

	written, err := ReadSettings(path)
	if err != nil {
		t.Fatalf("ReadSettings failed: %v", err)
	}
	for _, p := range written.Pages {
		if p.ID == "" {
			t.Errorf("page %q written without id", p.Name)
		}
	}

	err = InitProjectStructure(path, false)
	if !errors.Is(err, ErrSettingsExist) {
		t.Fatalf("second init error = %v, want ErrSettingsExist", err)
	}

	if err := InitProjectStructure(path, true); err != nil {
		t.Fatalf("forced init failed: %v", err)
	}
}

func TestReadSettingsMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.yaml")

	settings, err := ReadSettings(path)
	if err != nil {
		t.Fatalf("ReadSettings failed: %v", err)
	}

	def := models.DefaultSettings()
	if len(settings.Pages) != len(def.Pages) {
		t.Fatalf("Pages = %v, want %v", settings.Pages, def.Pages)
	}
	if settings.UI.MenuWidth != def.UI.MenuWidth {
		t.Errorf("MenuWidth = %d, want %d", settings.UI.MenuWidth, def.UI.MenuWidth)
	}
	if !settings.UI.Mouse {
		t.Error("Mouse should default to true")
	}
}

func TestReadSettingsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), SettingsFile)
	content := `pages:
  - name: Welcome
  - id: fixed
    name: Thanks
ui:
  menu_width: 30
  confirm_delete: true
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	settings, err := ReadSettings(path)
	if err != nil {
		t.Fatalf("ReadSettings failed: %v", err)
	}

	if len(settings.Pages) != 2 {
		t.Fatalf("Pages = %v, want 2 entries", settings.Pages)
	}
	if settings.Pages[0].Name != "Welcome" || settings.Pages[0].ID != "" {
		t.Errorf("Pages[0] = %+v", settings.Pages[0])
	}
	if settings.Pages[1].ID != "fixed" || settings.Pages[1].Name != "Thanks" {
		t.Errorf("Pages[1] = %+v", settings.Pages[1])
	}
	if settings.UI.MenuWidth != 30 {
		t.Errorf("MenuWidth = %d, want 30", settings.UI.MenuWidth)
	}
	if !settings.UI.ConfirmDelete {
		t.Error("ConfirmDelete should be true")
	}
	if settings.UI.MenuMargin != 1 {
		t.Errorf("MenuMargin = %d, want default 1", settings.UI.MenuMargin)
	}
	if settings.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", settings.Logging.Level)
	}
}

func TestReadSettingsEmptyPageList(t *testing.T) {
	path := filepath.Join(t.TempDir(), SettingsFile)
	if err := os.WriteFile(path, []byte("pages: []\n"), 0644); err != nil {
		t.Fatal(err)
	}

	settings, err := ReadSettings(path)
	if err != nil {
		t.Fatalf("ReadSettings failed: %v", err)
	}
	if len(settings.Pages) != 0 {
		t.Errorf("Pages = %v, want empty", settings.Pages)
	}
}

func TestReadSettingsEnvOverride(t *testing.T) {
	t.Setenv("PAGETABS_UI_MENU_WIDTH", "40")

	settings, err := ReadSettings(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("ReadSettings failed: %v", err)
	}
	if settings.UI.MenuWidth != 40 {
		t.Errorf("MenuWidth = %d, want 40", settings.UI.MenuWidth)
	}
}

func TestReadSettingsInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), SettingsFile)
	if err := os.WriteFile(path, []byte("pages: [\n  - broken"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := ReadSettings(path); err == nil {
		t.Fatal("expected parse error")
	}
	if got := LoadSettingsWithDefault(path); got.UI.MenuWidth != models.DefaultSettings().UI.MenuWidth {
		t.Errorf("LoadSettingsWithDefault should fall back to defaults, got %+v", got.UI)
	}
}

func TestWriteThenReadSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), SettingsFile)
	want := models.DefaultSettings()
	want.UI.NameMaxWidth = 12
	want.Pages = []models.Page{{ID: "a", Name: "Start"}}

	if err := WriteSettings(path, want); err != nil {
		t.Fatalf("WriteSettings failed: %v", err)
	}
	got, err := ReadSettings(path)
	if err != nil {
		t.Fatalf("ReadSettings failed: %v", err)
	}
	if got.UI.NameMaxWidth != 12 {
		t.Errorf("NameMaxWidth = %d, want 12", got.UI.NameMaxWidth)
	}
	if len(got.Pages) != 1 || got.Pages[0] != want.Pages[0] {
		t.Errorf("Pages = %+v, want %+v", got.Pages, want.Pages)
	}
}

func TestSettingsWatcherReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, SettingsFile)
	if err := WriteSettings(path, models.DefaultSettings()); err != nil {
		t.Fatal(err)
	}

	log := pslog.NewWithOptions(io.Discard, pslog.Options{Mode: pslog.ModeStructured, NoColor: true})
	w, err := NewSettingsWatcher(path, log)
	if err != nil {
		t.Fatalf("NewSettingsWatcher failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	updated := models.DefaultSettings()
	updated.UI.MenuWidth = 33
	if err := WriteSettings(path, updated); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-w.Updates():
		if got == nil || got.UI.MenuWidth != 33 {
			t.Fatalf("reloaded settings = %+v, want menu width 33", got)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for settings reload")
	}

	cancel()
	for range w.Updates() {
	}
}

func TestSettingsWatcherMissingDir(t *testing.T) {
	log := pslog.NewWithOptions(io.Discard, pslog.Options{Mode: pslog.ModeStructured, NoColor: true})
	_, err := NewSettingsWatcher(filepath.Join(t.TempDir(), "nope", SettingsFile), log)
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
}
