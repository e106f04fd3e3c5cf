package main

import (
	"io"
	"os"

	"github.com/haukened/rr-blocklist/internal/blocklist/cli"
)

const (
	// Version information
	version = "0.0.2"
	appName = "rr-blocklist"
)

// description is the long help text.
const description = `Takes a list of domains, one per line, with # as the comment char
and converts it into a format that can be directly added to the pi-hole software.

pi-hole is a DNS server implementation that blocks advertisers based on DNS lists
pi-hole: https://github.com/pi-hole/pi-hole

Distributed under the GPLv3
https://www.gnu.org/licenses/gpl-3.0.txt`

// outputHeader is written at the top of every generated blocklist.
const outputHeader = `# Title: StalkerwareDNS/Hosts
# Automaticly generated list of stalkerware DNS entries for the pi-hole
# https://github.com/GIJack/stalkerware-urls
# pi-hole: https://github.com/pi-hole/pi-hole
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run encapsulates the program so it can be exercised without exiting the process.
func run(args []string, stdout, stderr io.Writer) int {
	return cli.Run(cli.Build{
		Name:        appName,
		Version:     version,
		Description: description,
		Header:      outputHeader,
	}, args, stdout, stderr)
}
