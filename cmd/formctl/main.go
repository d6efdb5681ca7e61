package main

import (
	"log"
	"os"

	"github.com/Annany2002/schema-builder/internal/cli/commands"
)

// Version will be set during build with ldflags
var Version = "0.1.0"

func main() {
	if err := commands.NewApp(Version).Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
