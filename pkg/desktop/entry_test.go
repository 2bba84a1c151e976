package desktop_test

import (
	"testing"

	"github.com/qsdots/qsutil/pkg/desktop"
	"github.com/stretchr/testify/require"
)

const firefox = `[Desktop Entry]
Version=1.0
Name=Firefox
Name[de]=Firefox Webbrowser
Comment=Browse the Web # not a comment
Exec=/usr/lib/firefox/firefox %u
Icon=firefox
Terminal=false
Type=Application
Categories=Network;WebBrowser;
MimeType=text/html;text/xml;

[Desktop Action new-window]
Name=New Window
Exec=/usr/lib/firefox/firefox --new-window %u
`

func TestParse_ReadsDesktopEntrySection(t *testing.T) {
	t.Parallel()

	e, err := desktop.Parse("/usr/share/applications/firefox.desktop", []byte(firefox))
	require.NoError(t, err)
	require.Equal(t, "Firefox", e.Name)
	require.Equal(t, "firefox", e.Icon)
	require.Equal(t, "/usr/lib/firefox/firefox %u", e.Exec)
	require.Equal(t, "Network;WebBrowser;", e.Categories)
	require.False(t, e.NoDisplay)
	require.Equal(t, "/usr/lib/firefox/firefox", e.ExecToken())
}

func TestParse_NameFallsBackToFileName(t *testing.T) {
	t.Parallel()

	e, err := desktop.Parse("/tmp/apps/tool.desktop", []byte("[Desktop Entry]\nExec=tool\n"))
	require.NoError(t, err)
	require.Equal(t, "tool.desktop", e.Name)
	require.Empty(t, e.Icon)
	require.Empty(t, e.Categories)
}

func TestParse_KeysAreCaseInsensitive(t *testing.T) {
	t.Parallel()

	e, err := desktop.Parse("x.desktop", []byte("[Desktop Entry]\nNAME=Shout\nexec=shout --loud\nnodisplay=TRUE\n"))
	require.NoError(t, err)
	require.Equal(t, "Shout", e.Name)
	require.Equal(t, "shout", e.ExecToken())
	require.True(t, e.NoDisplay)
}

func TestParse_NoDisplay(t *testing.T) {
	t.Parallel()

	cases := map[string]bool{
		"true":  true,
		"True":  true,
		"false": false,
		"1":     false,
		"yes":   false,
	}
	for value, want := range cases {
		e, err := desktop.Parse("x.desktop", []byte("[Desktop Entry]\nExec=x\nNoDisplay="+value+"\n"))
		require.NoError(t, err)
		require.Equal(t, want, e.NoDisplay, "NoDisplay=%s", value)
	}
}

func TestParse_KeepsRawValues(t *testing.T) {
	t.Parallel()

	raw := "[Desktop Entry]\nName=\"Quoted\" App\nExec=env FOO=%(bar)s app --x=1\n"
	e, err := desktop.Parse("x.desktop", []byte(raw))
	require.NoError(t, err)
	require.Equal(t, `"Quoted" App`, e.Name)
	require.Equal(t, "env FOO=%(bar)s app --x=1", e.Exec)
	require.Equal(t, "env", e.ExecToken())
}

func TestParse_MissingSection(t *testing.T) {
	t.Parallel()

	_, err := desktop.Parse("x.desktop", []byte("[Other]\nName=Nope\n"))
	require.ErrorIs(t, err, desktop.ErrNoDesktopEntry)

	_, err = desktop.Parse("empty.desktop", nil)
	require.ErrorIs(t, err, desktop.ErrNoDesktopEntry)
}

func TestParse_Malformed(t *testing.T) {
	t.Parallel()

	_, err := desktop.Parse("bad.desktop", []byte("[Desktop Entry]\nthis line has no delimiter\n"))
	require.ErrorIs(t, err, desktop.ErrParse)
	require.Contains(t, err.Error(), "bad.desktop")
}

func TestEntry_ExecTokenBlank(t *testing.T) {
	t.Parallel()

	require.Empty(t, (&desktop.Entry{Exec: "   "}).ExecToken())
	require.Equal(t, "foo", (&desktop.Entry{Exec: "  foo\tbar"}).ExecToken())
}
