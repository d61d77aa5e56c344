// cmd/riseshine/main.go
//
// Entry point. All the wiring lives in internal/cli; this just runs it.

package main

import "github.com/kingrea/riseshine/internal/cli"

func main() {
	cli.Execute()
}
