package icons_test

import (
	"testing"

	"github.com/jlrickert/cli-toolkit/sandbox"
	"github.com/qsdots/qsutil/pkg/icons"
	"github.com/stretchr/testify/require"
)

func TestNewResolver_DetectsTheme(t *testing.T) {
	t.Parallel()

	sb := NewSandbox(t, sandbox.WithFixture("dotfiles", "~"))
	require.Equal(t, "Papirus", newResolver(t, sb, "").Theme())
	require.Equal(t, "breeze", newResolver(t, sb, "breeze").Theme())
}

func TestResolve_PrefersCurrentThemeOverHicolor(t *testing.T) {
	t.Parallel()

	sb := NewSandbox(t, sandbox.WithFixture("dotfiles", "~"))
	r := newResolver(t, sb, "")

	require.Equal(t, userIcons+"/Papirus/48x48/apps/firefox.svg", r.Resolve(sb.Context(), "firefox"))
	require.Equal(t, userIcons+"/hicolor/scalable/apps/gimp.svg", r.Resolve(sb.Context(), "gimp"))
}

func TestResolve_SizeAndExtensionOrder(t *testing.T) {
	t.Parallel()

	sb := NewSandbox(t)
	writeIcon(t, sb, "/usr/share/icons/breeze/64x64/apps/krita.svg")
	writeIcon(t, sb, "/usr/share/icons/breeze/48x48/apps/krita.png")
	writeIcon(t, sb, "/usr/share/icons/breeze/apps/48/inkscape.svg")
	// Empty files are not icons.
	writeFile(t, sb, "/usr/share/icons/breeze/scalable/apps/krita.svg", "")

	r := newResolver(t, sb, "breeze")
	require.Equal(t, "/usr/share/icons/breeze/48x48/apps/krita.png", r.Resolve(sb.Context(), "krita"))
	require.Equal(t, "/usr/share/icons/breeze/apps/48/inkscape.svg", r.Resolve(sb.Context(), "inkscape"))
}

func TestResolve_Substitutions(t *testing.T) {
	t.Parallel()

	sb := NewSandbox(t)
	writeIcon(t, sb, "/usr/share/icons/hicolor/scalable/apps/visual-studio-code.svg")
	r := newResolver(t, sb, "breeze")

	require.Equal(t, "/usr/share/icons/hicolor/scalable/apps/visual-studio-code.svg",
		r.Resolve(sb.Context(), "Code"))
	require.Equal(t, "file://"+userIcons+"/scalable/apps/lutris.svg",
		r.Resolve(sb.Context(), "lutris"))
}

func TestResolve_WindowClassFollowsDesktopFileSubstitution(t *testing.T) {
	t.Parallel()

	sb := NewSandbox(t)
	r := newResolver(t, sb, "breeze")
	require.Equal(t, "file://"+userIcons+"/AffinityPhoto.png", r.Resolve(sb.Context(), "Photo.exe"))
}

func TestResolve_DesktopFileIcon(t *testing.T) {
	t.Parallel()

	sb := NewSandbox(t)
	writeFile(t, sb, home+"/.local/share/applications/absolute.desktop",
		"[Desktop Entry]\nName=Absolute\nExec=absolute\nIcon=/opt/absolute/icon.png\n")
	writeFile(t, sb, "/usr/share/applications/appimage.desktop",
		"[Desktop Entry]\nName=AppImage\nExec=/opt/Tool.AppImage --no-sandbox %U\nIcon=tool\n")
	writeFile(t, sb, "/usr/local/share/applications/themed.desktop",
		"[Desktop Entry]\nName=Themed\nExec=themed\nIcon=themed-icon\n")
	writeIcon(t, sb, "/usr/share/icons/breeze/32x32/apps/themed-icon.png")

	r := newResolver(t, sb, "breeze")
	ctx := sb.Context()
	require.Equal(t, "file:///opt/absolute/icon.png", r.Resolve(ctx, "absolute"))
	require.Equal(t, "/opt/Tool.AppImage/.DirIcon", r.Resolve(ctx, "appimage"))
	require.Equal(t, "/usr/share/icons/breeze/32x32/apps/themed-icon.png", r.Resolve(ctx, "themed"))
}

func TestResolve_LowercaseAndMappedVariations(t *testing.T) {
	t.Parallel()

	sb := NewSandbox(t)
	writeIcon(t, sb, "/usr/share/icons/breeze/scalable/apps/com.discordapp.Discord.svg")
	writeIcon(t, sb, "/usr/share/icons/breeze/scalable/apps/thunderbird.svg")

	r := newResolver(t, sb, "breeze")
	require.Equal(t, "/usr/share/icons/breeze/scalable/apps/com.discordapp.Discord.svg",
		r.Resolve(sb.Context(), "discord"))
	require.Equal(t, "/usr/share/icons/breeze/scalable/apps/thunderbird.svg",
		r.Resolve(sb.Context(), "Thunderbird"))
}

func TestResolve_TerminalFallback(t *testing.T) {
	t.Parallel()

	sb := NewSandbox(t)
	r := newResolver(t, sb, "breeze")
	require.Equal(t, icons.TerminalIcon, r.Resolve(sb.Context(), "no-such-app"))
	require.Equal(t, "", r.Resolve(sb.Context(), "  "))

	sb2 := NewSandbox(t)
	writeIcon(t, sb2, "/usr/share/icons/hicolor/48x48/apps/utilities-terminal.png")
	r2 := newResolver(t, sb2, "breeze")
	require.Equal(t, "/usr/share/icons/hicolor/48x48/apps/utilities-terminal.png",
		r2.Resolve(sb2.Context(), "no-such-app"))
}

func TestResolve_CachesUntilThemeChanges(t *testing.T) {
	t.Parallel()

	sb := NewSandbox(t)
	rt := sb.Runtime()
	writeIcon(t, sb, "/usr/share/icons/breeze/scalable/apps/kate.svg")
	writeIcon(t, sb, "/usr/share/icons/breeze-dark/scalable/apps/kate.svg")

	r := newResolver(t, sb, "breeze")
	first := r.Resolve(sb.Context(), "kate")
	require.Equal(t, "/usr/share/icons/breeze/scalable/apps/kate.svg", first)

	require.NoError(t, rt.Remove("/usr/share/icons/breeze/scalable/apps/kate.svg", false))
	require.Equal(t, first, r.Resolve(sb.Context(), "kate"))

	r.SetTheme("breeze-dark")
	require.Equal(t, "/usr/share/icons/breeze-dark/scalable/apps/kate.svg", r.Resolve(sb.Context(), "kate"))
}
