package commands

import "fmt"

// version is injected at build time via ldflags.
var version = "dev"

type VersionCommand struct{}

func (command *VersionCommand) Execute(args []string) error {
	fmt.Printf("password-meter %s\n", version)
	return nil
}
