// ABOUTME: Entry point for the weekcal command line tool
// ABOUTME: Delegates to the cobra command tree in the cli package

package main

import "weekcal-api/cmd/weekcal/cli"

func main() {
	cli.Execute()
}
