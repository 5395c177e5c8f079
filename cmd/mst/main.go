// Command mst computes minimum spanning trees of edge-list graphs.
package main

import "github.com/katalvlaran/mstlab/cmd/mst/commands"

func main() {
	commands.Execute()
}
