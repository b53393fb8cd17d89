package internal

import "testing"

func TestVersionStringLocalBuild(t *testing.T) {
	// Neither ldflag is set in tests, so the build is local.
	if !IsLocal() {
		t.Fatal("test build reported as non-local")
	}
	if got := VersionString(); got != "(local)" {
		t.Fatalf("VersionString() = %q, want (local)", got)
	}
}

func TestVersionUndefined(t *testing.T) {
	if got := Version(); got != "(undefined)" {
		t.Fatalf("Version() = %q, want (undefined)", got)
	}
	if got := GitCommit(); got != "(undefined)" {
		t.Fatalf("GitCommit() = %q, want (undefined)", got)
	}
}
