package main

import (
	"os"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	if err := execute(); err != nil {
		os.Exit(1)
	}
}
