// Command matroidx solves matroid intersection instances described in YAML
// or JSON files.
//
//	matroidx solve triangle.yaml
//	matroidx solve --trace --output yaml instances.yaml
//	matroidx verify --solution 0,1 triangle.yaml
//	matroidx catalog > catalog.yaml
package main

import "github.com/katalvlaran/matroid/internal/cli"

func main() {
	cli.Execute()
}
