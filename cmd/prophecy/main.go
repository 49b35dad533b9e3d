// Command prophecy browses the prophecy cycles catalog from the terminal.
//
// Usage:
//
//	prophecy cycles --tradition Mayan
//	prophecy cycles --year 2100BCE
//	prophecy compare --format json
//	prophecy export --db data/prophecy.db
package main

import "github.com/zapponejosh/prophecy-cycles/internal/cli"

func main() {
	cli.Execute()
}
