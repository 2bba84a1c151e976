package dock

// SectionKey is the top-level key holding the dock settings in the shell
// config.
const SectionKey = "dock"

// DefaultConfigPath is where the shell keeps its user config.
const DefaultConfigPath = "~/.config/quickshell/config.json"

// Property is a single dock setting and its default value.
type Property struct {
	Key   string
	Value any
}

var pinnedApps = [...]string{
	"microsoft-edge-dev",
	"org.gnome.Nautilus",
	"vesktop",
	"cider",
	"steam-native",
	"lutris",
	"heroic",
	"obs",
	"org.gnome.Ptyxis",
}

// defaults mirrors the dock section of the shell's ConfigOptions. Order is
// significant: missing keys are appended in this order.
var defaults = [...]Property{
	{Key: "height", Value: 60},
	{Key: "hoverRegionHeight", Value: 3},
	{Key: "pinnedOnStartup", Value: false},
	{Key: "hoverToReveal", Value: false},
	{Key: "enable", Value: true},
	{Key: "radius", Value: 12},
	{Key: "iconSize", Value: 48},
	{Key: "spacing", Value: 8},
	{Key: "autoHide", Value: false},
	{Key: "hideDelay", Value: 200},
	{Key: "showDelay", Value: 50},
	{Key: "showPreviews", Value: true},
	{Key: "showLabels", Value: false},
	{Key: "transparency", Value: 0.9},
	{Key: "pinnedApps", Value: pinnedApps[:]},
}

// Defaults returns a fresh copy of the dock default table. Callers may modify
// the result freely.
func Defaults() []Property {
	out := make([]Property, len(defaults))
	for i, p := range defaults {
		if apps, ok := p.Value.([]string); ok {
			p.Value = append([]string(nil), apps...)
		}
		out[i] = p
	}
	return out
}

// Keys returns the default property names in table order.
func Keys() []string {
	keys := make([]string, len(defaults))
	for i, p := range defaults {
		keys[i] = p.Key
	}
	return keys
}

// PinnedApps returns the application identifiers pinned to a fresh dock.
func PinnedApps() []string {
	return append([]string(nil), pinnedApps[:]...)
}
