package build

// One named upstream project to build from source.
//
// Steps are immutable values created from the static catalog. The name
// doubles as the clone directory under the scratch root and as the key
// for recipe selection.
type Step struct {
	Name string // Step identifier, unique within a run.
	Repo string // Git URL to clone.
	Ref  string // Optional branch or tag to check out. Empty clones the default branch.
}

// One phase of a step's lifecycle.
type Stage string

const (
	StageFetch     Stage = "fetch"
	StageConfigure Stage = "configure"
	StageBuild     Stage = "build"
	StageInstall   Stage = "install"
)

// Returns the sentinel error for a failure in this stage.
func (s Stage) failure() error {
	switch s {
	case StageFetch:
		return ErrFetch
	case StageConfigure:
		return ErrConfigure
	case StageInstall:
		return ErrInstall
	default:
		return ErrBuild
	}
}
