// Command wkbctl inspects, normalizes, packs and queries WKB geometries.
package main

import "github.com/arloliu/wkb/cmd/wkbctl/internal/cli"

func main() {
	cli.Execute()
}
