// Package main provides the shelf CLI.
package main

import "github.com/mesh-intelligence/shelf/internal/cli"

func main() {
	cli.Execute()
}
