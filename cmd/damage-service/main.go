package main

import (
	"log"

	"github.com/damage-control/damage-service/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
