package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, validateConfig(cfg))

	assert.Positive(t, cfg.Window.DefaultWidth)
	assert.Positive(t, cfg.Window.DefaultHeight)
	assert.Positive(t, cfg.Window.ControlStripHeight)
	assert.NotEmpty(t, cfg.Pages.BlankPage)
	assert.NotEmpty(t, cfg.Pages.StartPage)
	assert.NotEmpty(t, cfg.Pages.ControlPage)
}

func TestValidateConfigRejectsBadGeometry(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Window.DefaultWidth = 0
	err := validateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "window.default_width")
}

func TestValidateConfigRejectsMinLargerThanDefault(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Window.MinWidth = cfg.Window.DefaultWidth + 1
	err := validateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "window.min_width")
}

func TestValidateConfigRejectsUnknownTitleBarStyle(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Window.TitleBarStyle = "floating"
	err := validateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "title_bar_style")
}

func TestValidateConfigRejectsEmptyPages(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Pages.BlankPage = ""
	err := validateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pages.blank_page")
}

func TestValidateConfigRejectsBadLogging(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "loud"
	cfg.Logging.Format = "xml"
	err := validateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.level")
	assert.Contains(t, err.Error(), "logging.format")
}

func TestManagerLoadCreatesDefaultConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	require.NotNil(t, cfg)
	assert.Equal(t, DefaultConfig().Window.DefaultWidth, cfg.Window.DefaultWidth)
	assert.NotEmpty(t, cfg.Database.Path, "database path should be resolved from XDG dirs")
}

func TestManagerEnvOverride(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	t.Setenv("TABWIN_WINDOW_DEFAULT_WIDTH", "999")

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	assert.Equal(t, 999, mgr.Get().Window.DefaultWidth)
}

func TestManagerGetReturnsCopy(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	first := mgr.Get()
	first.Window.DefaultWidth = 1

	second := mgr.Get()
	assert.NotEqual(t, 1, second.Window.DefaultWidth)
}

func TestManagerPersistTabCount(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	require.NoError(t, mgr.PersistTabCount(5))
	assert.Equal(t, 5, mgr.Get().Bookkeeping.LastTabCount)
}
