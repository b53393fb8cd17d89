package build

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cruciblehq/forgeup/internal/host"
)

// Records every command and fails the ones matching failOn.
type fakeExecutor struct {
	commands []host.Command
	failOn   string // Substring of the command line that should exit non-zero.
	missing  map[string]bool
}

func (f *fakeExecutor) Run(_ context.Context, cmd host.Command, _ io.Writer) (*host.ExecResult, error) {
	f.commands = append(f.commands, cmd)
	if f.failOn != "" && strings.Contains(cmd.String(), f.failOn) {
		return &host.ExecResult{ExitCode: 1}, nil
	}
	return &host.ExecResult{ExitCode: 0}, nil
}

func (f *fakeExecutor) LookPath(name string) (string, error) {
	if f.missing[name] {
		return "", fmt.Errorf("%s not found", name)
	}
	return "/usr/bin/" + name, nil
}

func testSteps() []Step {
	return []Step{
		{Name: "alpha", Repo: "https://example.com/alpha.git"},
		{Name: "wlroots", Repo: "https://example.com/wlroots.git", Ref: "0.18.2"},
		{Name: "omega", Repo: "https://example.com/omega.git"},
	}
}

func TestRunAllStepsSucceed(t *testing.T) {
	x := &fakeExecutor{}
	scratch := filepath.Join(t.TempDir(), "scratch")

	result, err := Run(context.Background(), x, Options{Steps: testSteps(), Scratch: scratch})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(result.Completed) != 3 {
		t.Fatalf("completed = %v, want 3 steps", result.Completed)
	}
	if result.FailedStep != "" || result.FailedStage != "" {
		t.Fatalf("failure recorded on success: %q/%q", result.FailedStep, result.FailedStage)
	}
	if _, err := os.Stat(scratch); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("scratch tree not removed: %v", err)
	}
}

func TestRunStopsAtFirstFailure(t *testing.T) {
	// wlroots is meson-based; fail its ninja build.
	x := &fakeExecutor{failOn: "ninja -C build"}
	scratch := filepath.Join(t.TempDir(), "scratch")

	result, err := Run(context.Background(), x, Options{Steps: testSteps(), Scratch: scratch})
	if err == nil {
		t.Fatal("Run succeeded, want build failure")
	}
	if !errors.Is(err, ErrBuild) {
		t.Fatalf("err = %v, want ErrBuild", err)
	}

	if result.FailedStep != "wlroots" {
		t.Fatalf("failed step = %q, want wlroots", result.FailedStep)
	}
	if result.FailedStage != StageBuild {
		t.Fatalf("failed stage = %q, want build", result.FailedStage)
	}
	if len(result.Completed) != 1 || result.Completed[0] != "alpha" {
		t.Fatalf("completed = %v, want [alpha]", result.Completed)
	}

	// No command of the step after the failing one may have run.
	for _, cmd := range x.commands {
		if strings.Contains(cmd.String(), "omega") {
			t.Fatalf("step after failure was started: %s", cmd)
		}
	}

	if _, err := os.Stat(scratch); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("scratch tree not removed after failure: %v", err)
	}
}

func TestRunFetchFailureAborts(t *testing.T) {
	x := &fakeExecutor{failOn: "git clone"}
	scratch := filepath.Join(t.TempDir(), "scratch")

	result, err := Run(context.Background(), x, Options{Steps: testSteps(), Scratch: scratch})
	if !errors.Is(err, ErrFetch) {
		t.Fatalf("err = %v, want ErrFetch", err)
	}
	if result.FailedStep != "alpha" || result.FailedStage != StageFetch {
		t.Fatalf("failure = %q/%q, want alpha/fetch", result.FailedStep, result.FailedStage)
	}
	if len(x.commands) != 1 {
		t.Fatalf("%d commands ran, want 1 (the failing clone)", len(x.commands))
	}
}

func TestRunEmptyStepList(t *testing.T) {
	x := &fakeExecutor{}
	scratch := filepath.Join(t.TempDir(), "scratch")

	result, err := Run(context.Background(), x, Options{Scratch: scratch})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(result.Completed) != 0 {
		t.Fatalf("completed = %v, want none", result.Completed)
	}
	if len(x.commands) != 0 {
		t.Fatalf("%d commands ran, want none", len(x.commands))
	}
	if _, err := os.Stat(scratch); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("scratch tree not removed: %v", err)
	}
}

func TestRunInstallGatedOnBuild(t *testing.T) {
	x := &fakeExecutor{failOn: "make PREFIX=/usr/local"}
	scratch := filepath.Join(t.TempDir(), "scratch")

	_, err := Run(context.Background(), x, Options{
		Steps:   []Step{{Name: "alpha", Repo: "https://example.com/alpha.git"}},
		Scratch: scratch,
	})
	if !errors.Is(err, ErrBuild) {
		t.Fatalf("err = %v, want ErrBuild", err)
	}

	for _, cmd := range x.commands {
		if cmd.Privileged {
			t.Fatalf("install command ran after failed build: %s", cmd)
		}
	}
}

func TestRunKeepPreservesScratch(t *testing.T) {
	x := &fakeExecutor{}
	scratch := filepath.Join(t.TempDir(), "scratch")

	_, err := Run(context.Background(), x, Options{Scratch: scratch, Keep: true})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if _, err := os.Stat(scratch); err != nil {
		t.Fatalf("scratch tree missing with Keep set: %v", err)
	}
}

func TestRunRepeatedRunsSameOutcome(t *testing.T) {
	scratch := filepath.Join(t.TempDir(), "scratch")

	for i := 0; i < 2; i++ {
		x := &fakeExecutor{}
		result, err := Run(context.Background(), x, Options{Steps: testSteps(), Scratch: scratch})
		if err != nil {
			t.Fatalf("run %d failed: %v", i+1, err)
		}
		if len(result.Completed) != 3 {
			t.Fatalf("run %d completed = %v, want 3 steps", i+1, result.Completed)
		}
	}
}

func TestRunOnlyInstallRunsPrivileged(t *testing.T) {
	x := &fakeExecutor{}
	scratch := filepath.Join(t.TempDir(), "scratch")

	if _, err := Run(context.Background(), x, Options{Steps: testSteps(), Scratch: scratch}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	for _, cmd := range x.commands {
		install := strings.Contains(cmd.String(), "install")
		if cmd.Privileged && !install {
			t.Fatalf("non-install command ran privileged: %s", cmd)
		}
		if !cmd.Privileged && install && !strings.Contains(cmd.String(), "clone") {
			t.Fatalf("install command not privileged: %s", cmd)
		}
	}
}

func TestCheckPrerequisites(t *testing.T) {
	if err := CheckPrerequisites(&fakeExecutor{}); err != nil {
		t.Fatalf("check failed with all tools present: %v", err)
	}

	err := CheckPrerequisites(&fakeExecutor{missing: map[string]bool{"git": true}})
	if !errors.Is(err, ErrPrerequisite) {
		t.Fatalf("err = %v, want ErrPrerequisite", err)
	}
	if !strings.Contains(err.Error(), "git") {
		t.Fatalf("err = %v, want mention of git", err)
	}
}
