package main

import (
	"log"

	"github.com/talent-concierge/fit-scorer/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
