package main

import (
	"github.com/BenjaminHaaseT/recipe-api/pkg/cli"
)

func main() {
	cli.Execute()
}
