package ui

import "testing"

func TestGetThemeIsCaseInsensitive(t *testing.T) {
	if got := GetTheme(" kanagawa ").Name; got != "Kanagawa" {
		t.Fatalf("GetTheme = %q, want Kanagawa", got)
	}
	if got := GetTheme("dracula").Name; got != "Nightfox" {
		t.Fatalf("GetTheme unknown = %q, want Nightfox", got)
	}
}

func TestNextThemeCycles(t *testing.T) {
	names := ThemeNames()
	if len(names) != 3 {
		t.Fatalf("ThemeNames = %v, want 3 themes", names)
	}
	current := names[0]
	for i := 1; i <= len(names); i++ {
		current = NextTheme(current)
		if want := names[i%len(names)]; current != want {
			t.Fatalf("step %d: NextTheme = %q, want %q", i, current, want)
		}
	}
	if got := NextTheme("unknown"); got != names[0] {
		t.Fatalf("NextTheme unknown = %q, want %q", got, names[0])
	}
}

func TestEveryThemeColorsEveryStatus(t *testing.T) {
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		for _, status := range []string{"unset", "loading", "idle", "failed", "offline", "invalid", "pending"} {
			if th.StatusColors[status] == "" {
				t.Fatalf("%s has no color for %q", name, status)
			}
		}
	}
}
