package main

import "github.com/Guerrilla-Interactive/justrun/cmd"

// Version is set via linker flags during build.
var Version = "v0.1.0"

func main() {
	cmd.Execute(Version)
}
