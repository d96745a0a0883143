package theme

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/umputun/delta/app/enum"
)

func TestController_Initial(t *testing.T) {
	assert.Equal(t, enum.ThemeLight, NewController().Current())

	var zero Controller
	assert.Equal(t, enum.ThemeLight, zero.Current(), "zero value behaves as a fresh controller")
	zero.Toggle()
	assert.Equal(t, enum.ThemeDark, zero.Current())
}

func TestController_Toggle(t *testing.T) {
	c := NewController()
	c.Toggle()
	assert.Equal(t, enum.ThemeDark, c.Current())
	c.Toggle()
	assert.Equal(t, enum.ThemeLight, c.Current())
}

func TestController_DoubleToggleIdentity(t *testing.T) {
	for _, start := range enum.ThemeValues {
		t.Run(start.String(), func(t *testing.T) {
			c := NewController()
			if start == enum.ThemeDark {
				c.Toggle()
			}
			assert.Equal(t, start, c.Current())
			c.Toggle()
			assert.NotEqual(t, start, c.Current())
			c.Toggle()
			assert.Equal(t, start, c.Current())
		})
	}
}

func TestController_ClosedDomain(t *testing.T) {
	c := NewController()
	rnd := rand.New(rand.NewSource(42)) //nolint:gosec // deterministic sequence for test
	toggles := 0
	for range 1000 {
		if rnd.Intn(2) == 1 {
			c.Toggle()
			toggles++
		}
		cur := c.Current()
		assert.Contains(t, enum.ThemeValues, cur)
		if toggles%2 == 0 {
			assert.Equal(t, enum.ThemeLight, cur)
		} else {
			assert.Equal(t, enum.ThemeDark, cur)
		}
	}
}

func TestController_Concurrent(t *testing.T) {
	c := NewController()
	var wg sync.WaitGroup
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Toggle()
			_ = c.Current()
		}()
	}
	wg.Wait()
	assert.Equal(t, enum.ThemeLight, c.Current(), "even number of toggles returns to light")
}
