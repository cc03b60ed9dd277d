package main

import (
	"log"

	"github.com/agiangrant/grouped/cmd/albumctl/commands"
)

func main() {
	if err := commands.New().Execute(); err != nil {
		log.Fatalf("error during command execution: %v", err)
	}
}
