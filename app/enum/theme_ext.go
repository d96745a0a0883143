package enum

// Toggle returns the opposite theme (light↔dark).
// The domain has exactly two members; adding a third one must redefine this as a cyclic next value.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}
