// Command heavyedge averages, fits and reshapes edge profile datasets.
package main

import "github.com/katalvlaran/heavyedge/cli"

func main() {
	cli.Execute()
}
