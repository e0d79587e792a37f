package client

// FreeTheme is the single theme available to free accounts.
const FreeTheme = "gradient"

// ProThemes are unlocked only for pro accounts.
var ProThemes = []string{"space", "ocean", "sunset", "forest"}

// ThemeGate gates cosmetic themes on the entitlement flag.
type ThemeGate struct {
	mgr *Manager
}

func NewThemeGate(mgr *Manager) *ThemeGate {
	return &ThemeGate{mgr: mgr}
}

func (t *ThemeGate) IsUnlocked(theme string) bool {
	if theme == FreeTheme {
		return true
	}
	return t.mgr.IsPro()
}

func (t *ThemeGate) Available() []string {
	if t.mgr.IsPro() {
		return append([]string{FreeTheme}, ProThemes...)
	}
	return []string{FreeTheme}
}

// Apply persists and returns the selected theme. A locked request
// silently falls back to the free theme; that fallback is never an
// error. The error reports persistence failure only.
func (t *ThemeGate) Apply(theme string) (string, error) {
	if !t.IsUnlocked(theme) {
		theme = FreeTheme
	}
	return theme, t.mgr.store.Set(keyTheme, theme)
}

func (t *ThemeGate) Current() string {
	if theme, ok := t.mgr.store.Get(keyTheme); ok {
		return theme
	}
	return FreeTheme
}
