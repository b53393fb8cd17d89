package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/cruciblehq/forgeup/internal/build"
	"github.com/cruciblehq/forgeup/internal/catalog"
)

// Represents the 'forgeup list' command.
type ListCmd struct {
	Profile string `help:"Step and package profile." enum:"desktop,full" default:"desktop"`
}

// Executes the list command, printing the step catalog in run order.
func (c *ListCmd) Run(ctx context.Context) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tRECIPE\tREPOSITORY\tREF")

	for _, step := range catalog.Steps(catalog.Profile(c.Profile)) {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			step.Name, build.RecipeFor(step.Name).Name(), step.Repo, step.Ref)
	}

	return w.Flush()
}
