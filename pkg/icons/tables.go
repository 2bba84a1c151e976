package icons

import (
	"path/filepath"
	"regexp"
	"strings"
)

// MissingIcon is the name guessed for an empty icon name.
const MissingIcon = "image-missing"

// TerminalIcon is returned when nothing else resolves.
const TerminalIcon = "gnome-terminal"

var terminalIcons = []string{TerminalIcon, "utilities-terminal", "terminal"}

// FallbackThemes are probed in order when qt6ct names no icon theme.
var FallbackThemes = []string{
	"Tela-circle",
	"Tela-circle-blue",
	"Tela-circle-blue-dark",
	"OneUI",
	"OneUI-dark",
	"breeze",
	"breeze-dark",
}

// HicolorTheme is the XDG fallback theme.
const HicolorTheme = "hicolor"

var sizeDirs = []string{
	"scalable/apps",
	"48x48/apps",
	"64x64/apps",
	"32x32/apps",
	"128x128/apps",
	"256x256/apps",
	"apps/48",
	"apps/64",
	"apps/32",
}

var extensions = []string{".svg", ".png"}

// nameSubstitutions rename well known window classes and app ids.
var nameSubstitutions = map[string]string{
	"code-url-handler":  "visual-studio-code",
	"Code":              "visual-studio-code",
	"GitHub Desktop":    "github-desktop",
	"Minecraft* 1.20.1": "minecraft",
	"gnome-tweaks":      "org.gnome.tweaks",
	"pavucontrol-qt":    "pavucontrol",
	"wps":               "wps-office2019-kprometheus",
	"wpsoffice":         "wps-office2019-kprometheus",
	"footclient":        "foot",
	"zen":               "zen-browser",
	"better-control":    "settings",
	"better_control.py": "settings",
	"":                  MissingIcon,
}

type root int

const (
	homeRoot root = iota
	configRoot
)

type fileSubstitution struct {
	root root
	rel  string
}

// fileSubstitutions point names at icon files shipped outside any theme.
var fileSubstitutions = map[string]fileSubstitution{
	"ptyxis":                               {homeRoot, ".local/share/icons/scalable/apps/org.gnome.Ptyxis.svg"},
	"AffinityPhoto.desktop":                {homeRoot, ".local/share/icons/AffinityPhoto.png"},
	"steam-native":                         {homeRoot, ".local/share/icons/scalable/apps/steam.svg"},
	"steam_tray_mono":                      {homeRoot, ".local/share/icons/scalable/apps/steam.svg"},
	"lutris":                               {homeRoot, ".local/share/icons/scalable/apps/lutris.svg"},
	"com.blackmagicdesign.resolve.desktop": {homeRoot, ".local/share/icons/scalable/apps/resolve.svg"},
	"cider":                                {homeRoot, ".local/share/icons/scalable/apps/cider.svg"},
	"vesktop":                              {homeRoot, ".local/share/icons/scalable/apps/vesktop.svg"},
	"obs":                                  {configRoot, "quickshell/assets/icons/obs.svg"},
	"heroic":                               {homeRoot, ".local/share/icons/scalable/apps/heroic.svg"},
	"microsoft-edge-dev":                   {homeRoot, ".local/share/icons/scalable/apps/microsoft-edge-dev.svg"},
	"org.gnome.Nautilus":                   {homeRoot, ".local/share/icons/scalable/apps/nautilus.svg"},
}

type regexSubstitution struct {
	re      *regexp.Regexp
	replace string
}

var regexSubstitutions = []regexSubstitution{
	{regexp.MustCompile(`^steam_app_(\d+)$`), "steam_icon_${1}"},
	{regexp.MustCompile(`Minecraft.*$`), "minecraft"},
}

var editorIcons = []string{"accessories-text-editor", "io.elementary.code", "code", "text-editor"}
var affinityIcons = []string{"AffinityPhoto", "photo", "image-editor"}
var nautilusIcons = []string{"nautilus", "file-manager", "system-file-manager"}
var ptyxisIcons = []string{"terminal", "org.gnome.Terminal"}

// appMappings lists alternative icon names tried after the name itself.
var appMappings = map[string][]string{
	"Cursor":                editorIcons,
	"cursor":                editorIcons,
	"cursor-cursor":         editorIcons,
	"qt6ct":                 {"preferences-system", "system-preferences", "preferences-desktop"},
	"steam":                 {"steam-native", "steam-launcher", "steam-icon"},
	"steam-native":          {"steam", "steam-launcher", "steam-icon"},
	"microsoft-edge-dev":    {"microsoft-edge", "msedge", "edge", "web-browser"},
	"vesktop":               {"discord", "com.discordapp.Discord"},
	"discord":               {"vesktop", "com.discordapp.Discord"},
	"cider":                 {"apple-music", "music"},
	"org.gnome.Nautilus":    nautilusIcons,
	"org.gnome.nautilus":    nautilusIcons,
	"nautilus":              {"org.gnome.Nautilus", "file-manager", "system-file-manager"},
	"obs":                   {"com.obsproject.Studio", "obs-studio"},
	"ptyxis":                ptyxisIcons,
	"org.gnome.ptyxis":      ptyxisIcons,
	"org.gnome.Ptyxis":      ptyxisIcons,
	"AffinityPhoto":         affinityIcons,
	"AffinityPhoto.desktop": affinityIcons,
	"photo.exe":             affinityIcons,
	"Photo.exe":             affinityIcons,
}

// windowClassDesktopFiles maps Wine window classes to the desktop file that
// launched them.
var windowClassDesktopFiles = map[string]string{
	"photo.exe":    "AffinityPhoto.desktop",
	"Photo.exe":    "AffinityPhoto.desktop",
	"designer.exe": "AffinityDesigner.desktop",
	"Designer.exe": "AffinityDesigner.desktop",
}

// Dirs are the user directories icon lookups are rooted in.
type Dirs struct {
	Home   string
	Config string
}

// Substitute applies the name, file and regex substitution tables in that
// order. ok is false when no table matched.
func (d Dirs) Substitute(name string) (string, bool) {
	if s, ok := nameSubstitutions[name]; ok {
		return s, true
	}
	if s, ok := fileSubstitutions[name]; ok {
		base := d.Home
		if s.root == configRoot {
			base = d.Config
		}
		return filepath.Join(base, filepath.FromSlash(s.rel)), true
	}
	for _, sub := range regexSubstitutions {
		if replaced := sub.re.ReplaceAllString(name, sub.replace); replaced != name {
			return replaced, true
		}
	}
	return name, false
}

var whitespace = regexp.MustCompile(`\s+`)

// Guess turns a window class or app id into a likely icon name without
// touching the filesystem.
func (d Dirs) Guess(name string) string {
	if name == "" {
		return MissingIcon
	}
	if s, ok := d.Substitute(name); ok {
		return s
	}
	// Reverse domain names (org.gnome.Nautilus) are already icon names.
	if !strings.Contains(name, ".") {
		name = whitespace.ReplaceAllString(strings.ToLower(name), "-")
	}
	return name
}

// Variations lists the names tried in themes for name: the name, its
// mappings, then its lowercase form and that form's mappings.
func Variations(name string) []string {
	out := []string{name}
	out = append(out, appMappings[name]...)
	if lower := strings.ToLower(name); lower != name {
		out = append(out, lower)
		out = append(out, appMappings[lower]...)
	}
	return out
}
