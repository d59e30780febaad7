// Package testenv provides the shared environment for compositor unit tests:
// canonical window dimensions and the location of bundled test resources.
package testenv

import (
	"os"
	"path"
)

// resourcesEnv names the environment variable that overrides the test
// resources directory.
const resourcesEnv = "COMPOSITOR_TEST_RESOURCES"

// defaultTestPage is the bundled page every harness-level test loads first.
const defaultTestPage = "default_test_page.html"

// Canonical default window dimensions for unit tests.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// Environment describes the fixture configuration for one test run.
type Environment struct {
	defaultWidth  int
	defaultHeight int
	useX11Window  bool
}

// New creates a test environment. The useX11Window flag records whether
// tests should drive a real X11 window; the default window dimensions are
// 800×600 either way.
func New(useX11Window bool) *Environment {
	return &Environment{
		defaultWidth:  DefaultWidth,
		defaultHeight: DefaultHeight,
		useX11Window:  useX11Window,
	}
}

// DefaultWidth returns the default test window width in pixels.
func (e *Environment) DefaultWidth() int {
	return e.defaultWidth
}

// DefaultHeight returns the default test window height in pixels.
func (e *Environment) DefaultHeight() int {
	return e.defaultHeight
}

// UseX11Window reports whether tests run against a real X11 window.
func (e *Environment) UseX11Window() bool {
	return e.useX11Window
}

// DefaultTestPageURL returns the file URL of the bundled default test page.
func (e *Environment) DefaultTestPageURL() string {
	return "file://" + path.Join(ResourcesDir(), defaultTestPage)
}

// ResourcesDir returns the test resources directory: the value of
// COMPOSITOR_TEST_RESOURCES if set, otherwise the package-relative testdata
// directory.
func ResourcesDir() string {
	if dir := os.Getenv(resourcesEnv); dir != "" {
		return dir
	}
	return "testdata"
}
