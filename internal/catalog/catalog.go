package catalog

import "github.com/cruciblehq/forgeup/internal/build"

// A named variant of the step and package lists.
type Profile string

const (

	// Builds the core desktop stack.
	ProfileDesktop Profile = "desktop"

	// Desktop plus the EDID parsing library registered with dpkg as a
	// virtual package, and the extra packages that build needs.
	ProfileFull Profile = "full"
)

// Returns all known profiles.
func Profiles() []Profile {
	return []Profile{ProfileDesktop, ProfileFull}
}

// Core desktop stack, built from source in dependency order. The order is
// fixed and manually curated: later steps link against earlier ones.
var desktopSteps = []build.Step{
	{Name: "wayland", Repo: "https://gitlab.freedesktop.org/wayland/wayland.git", Ref: "1.23.1"},
	{Name: "wayland-protocols", Repo: "https://gitlab.freedesktop.org/wayland/wayland-protocols.git", Ref: "1.45"},
	{Name: "libdrm", Repo: "https://gitlab.freedesktop.org/mesa/drm.git", Ref: "libdrm-2.4.124"},
	{Name: "seatd", Repo: "https://git.sr.ht/~kennylevinsen/seatd", Ref: "0.9.1"},
	{Name: "json-c", Repo: "https://github.com/json-c/json-c.git", Ref: "json-c-0.18-20240915"},
	{Name: "scdoc", Repo: "https://git.sr.ht/~sircmpwn/scdoc", Ref: "1.11.3"},
	{Name: "wlroots", Repo: "https://gitlab.freedesktop.org/wlroots/wlroots.git", Ref: "0.18.2"},
	{Name: "sway", Repo: "https://github.com/swaywm/sway.git", Ref: "1.10.1"},
}

// Extra step for the full profile, inserted before wlroots so the
// compositor build picks it up.
var displayInfoStep = build.Step{
	Name: "libdisplay-info",
	Repo: "https://gitlab.freedesktop.org/emersion/libdisplay-info.git",
	Ref:  "0.2.0",
}

// Packages every profile needs before the first step runs.
var basePackages = []string{
	"build-essential",
	"cmake",
	"git",
	"hwdata",
	"libcairo2-dev",
	"libegl1-mesa-dev",
	"libexpat1-dev",
	"libffi-dev",
	"libgbm-dev",
	"libgdk-pixbuf-2.0-dev",
	"libgles2-mesa-dev",
	"libinput-dev",
	"libpango1.0-dev",
	"libpcre2-dev",
	"libpixman-1-dev",
	"libudev-dev",
	"libxcb1-dev",
	"libxkbcommon-dev",
	"libxml2-dev",
	"meson",
	"ninja-build",
	"pkg-config",
}

// Extra packages for the full profile.
var fullPackages = []string{
	"checkinstall",
	"libpciaccess-dev",
}

// Returns the ordered step list for a profile.
//
// The returned slice is a copy; callers cannot mutate the catalog.
func Steps(profile Profile) []build.Step {
	steps := make([]build.Step, 0, len(desktopSteps)+1)
	for _, step := range desktopSteps {
		if profile == ProfileFull && step.Name == "wlroots" {
			steps = append(steps, displayInfoStep)
		}
		steps = append(steps, step)
	}
	return steps
}

// Returns the apt package list for a profile, in install order.
func Packages(profile Profile) []string {
	pkgs := append([]string{}, basePackages...)
	if profile == ProfileFull {
		pkgs = append(pkgs, fullPackages...)
	}
	return pkgs
}
