// Command pagegraphctl loads, inspects, and runs PageRank over GraphML
// graphs from the command line.
package main

import "github.com/valtrix-labs/pagegraph/cmd/pagegraphctl/cmd"

func main() {
	cmd.Execute()
}
