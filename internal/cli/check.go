package cli

import (
	"context"
	"fmt"

	"github.com/cruciblehq/forgeup/internal/build"
	"github.com/cruciblehq/forgeup/internal/host"
)

// Represents the 'forgeup check' command.
type CheckCmd struct{}

// Executes the check command, probing for required tools without
// starting a run.
func (c *CheckCmd) Run(ctx context.Context) error {
	if err := build.CheckPrerequisites(host.New()); err != nil {
		return err
	}
	fmt.Println("all prerequisites found")
	return nil
}
