package build

import "errors"

var (
	ErrPrerequisite = errors.New("prerequisite missing")
	ErrFetch        = errors.New("fetch failed")
	ErrConfigure    = errors.New("configure failed")
	ErrBuild        = errors.New("build failed")
	ErrInstall      = errors.New("install failed")
	ErrScratch      = errors.New("scratch directory setup failed")
)
