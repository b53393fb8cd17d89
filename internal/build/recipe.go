package build

import "github.com/cruciblehq/forgeup/internal/host"

// Install prefix for everything built from source. Keeps self-built
// artifacts out of dpkg-managed /usr.
const installPrefix = "/usr/local"

// Produces the command sequence for each stage of a step.
//
// Recipes are stateless values. A stage may produce no commands, in which
// case the runner skips straight to the next stage.
type Recipe interface {

	// Name of the recipe variant, for logs and listings.
	Name() string

	// Commands that clone the step's repository into dir.
	Fetch(step Step, dir string) []host.Command

	// Commands that prepare the checkout in dir for building.
	Configure(dir string) []host.Command

	// Commands that compile the checkout in dir.
	Build(dir string) []host.Command

	// Commands that install the build result system-wide. These are the
	// only commands in the pipeline that run privileged.
	Install(dir string) []host.Command
}

// Specialized recipes keyed by step name. Steps not listed here fall back
// to the generic make recipe.
var specialized = map[string]Recipe{
	"wayland":           mesonRecipe{},
	"wayland-protocols": mesonRecipe{},
	"libdrm":            mesonRecipe{},
	"seatd":             mesonRecipe{},
	"wlroots":           mesonRecipe{},
	"sway":              mesonRecipe{},
	"json-c":            cmakeRecipe{},
	"libdisplay-info": checkinstallRecipe{
		pkg:      "libdisplay-info",
		version:  "0.2.0",
		provides: "libdisplay-info-dev",
	},
}

// Returns the recipe for a step name.
//
// Selection is deterministic: the same name always resolves to the same
// specialized recipe, or to the default make recipe when none is listed.
func RecipeFor(name string) Recipe {
	if r, ok := specialized[name]; ok {
		return r
	}
	return makeRecipe{}
}

// Clones a step's repository into dir.
//
// Shallow clone; the ref, when set, selects a branch or tag. All recipe
// variants share this fetch.
func gitFetch(step Step, dir string) []host.Command {
	args := []string{"git", "clone", "--depth", "1"}
	if step.Ref != "" {
		args = append(args, "--branch", step.Ref)
	}
	args = append(args, step.Repo, dir)
	return []host.Command{{Args: args}}
}

// Builds meson projects: meson setup, ninja, ninja install.
type mesonRecipe struct{}

func (mesonRecipe) Name() string { return "meson" }

func (mesonRecipe) Fetch(step Step, dir string) []host.Command {
	return gitFetch(step, dir)
}

func (mesonRecipe) Configure(dir string) []host.Command {
	return []host.Command{{
		Args: []string{"meson", "setup", "build", "--prefix", installPrefix, "--buildtype", "release"},
		Dir:  dir,
	}}
}

func (mesonRecipe) Build(dir string) []host.Command {
	return []host.Command{{
		Args: []string{"ninja", "-C", "build"},
		Dir:  dir,
	}}
}

func (mesonRecipe) Install(dir string) []host.Command {
	return []host.Command{{
		Args:       []string{"ninja", "-C", "build", "install"},
		Dir:        dir,
		Privileged: true,
	}}
}

// Builds cmake projects with an out-of-tree build directory.
type cmakeRecipe struct{}

func (cmakeRecipe) Name() string { return "cmake" }

func (cmakeRecipe) Fetch(step Step, dir string) []host.Command {
	return gitFetch(step, dir)
}

func (cmakeRecipe) Configure(dir string) []host.Command {
	return []host.Command{{
		Args: []string{
			"cmake", "-S", ".", "-B", "build",
			"-DCMAKE_BUILD_TYPE=Release",
			"-DCMAKE_INSTALL_PREFIX=" + installPrefix,
		},
		Dir: dir,
	}}
}

func (cmakeRecipe) Build(dir string) []host.Command {
	return []host.Command{{
		Args: []string{"cmake", "--build", "build"},
		Dir:  dir,
	}}
}

func (cmakeRecipe) Install(dir string) []host.Command {
	return []host.Command{{
		Args:       []string{"cmake", "--install", "build"},
		Dir:        dir,
		Privileged: true,
	}}
}

// The default recipe for projects with a plain Makefile. No configure
// stage; the install prefix is passed as a make variable.
type makeRecipe struct{}

func (makeRecipe) Name() string { return "make" }

func (makeRecipe) Fetch(step Step, dir string) []host.Command {
	return gitFetch(step, dir)
}

func (makeRecipe) Configure(string) []host.Command {
	return nil
}

func (makeRecipe) Build(dir string) []host.Command {
	return []host.Command{{
		Args: []string{"make", "PREFIX=" + installPrefix},
		Dir:  dir,
	}}
}

func (makeRecipe) Install(dir string) []host.Command {
	return []host.Command{{
		Args:       []string{"make", "PREFIX=" + installPrefix, "install"},
		Dir:        dir,
		Privileged: true,
	}}
}

// A meson build whose install is wrapped in checkinstall, producing a
// Debian package that registers a virtual package with dpkg. Lets apt
// consider the dependency satisfied for packages built on top of it.
type checkinstallRecipe struct {
	mesonRecipe

	pkg      string // Debian package name for the generated package.
	version  string // Package version recorded with dpkg.
	provides string // Virtual package the install satisfies.
}

func (r checkinstallRecipe) Name() string { return "meson+checkinstall" }

func (r checkinstallRecipe) Install(dir string) []host.Command {
	return []host.Command{{
		Args: []string{
			"checkinstall", "--default", "--nodoc",
			"--pkgname", r.pkg,
			"--pkgversion", r.version,
			"--provides", r.provides,
			"ninja", "-C", "build", "install",
		},
		Dir:        dir,
		Privileged: true,
	}}
}
