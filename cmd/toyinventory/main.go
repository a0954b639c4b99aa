// Command toyinventory lists, searches and updates a toy store inventory.
package main

import "toyinventory/internal/cli"

func main() {
	cli.Execute()
}
