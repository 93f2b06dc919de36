package main

import (
	"log"

	"github.com/nutrikit/trophe/pkg/api"
)

func main() {
	if err := api.Serve(); err != nil {
		log.Fatal(err)
	}
}
