package theme

import (
	"sync"

	"github.com/umputun/delta/app/enum"
)

// Controller owns the active theme of one rendering surface.
// It starts at light and changes only on Toggle. The zero value reports light.
type Controller struct {
	mu      sync.Mutex
	current enum.Theme
}

// NewController makes a controller in the initial light state.
func NewController() *Controller {
	return &Controller{current: enum.ThemeLight}
}

// Current returns the active theme.
func (c *Controller) Current() enum.Theme {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.get()
}

// Toggle flips the active theme to the other one.
func (c *Controller) Toggle() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = c.get().Toggle()
}

// get returns current theme, mapping unset value to light. Must be called with lock held.
func (c *Controller) get() enum.Theme {
	if c.current == (enum.Theme{}) {
		return enum.ThemeLight
	}
	return c.current
}
