//go:build mage

// Package main provides build targets for the shelf project using Mage.
//
// Usage:
//
//	mage build          Compile shelf binary to bin/
//	mage test:all       Run all tests
//	mage test:unit      Run tests in short mode
//	mage test:cover     Run all tests and write coverage.out
//	mage lint           Run golangci-lint
//	mage clean          Remove build artifacts
//	mage install        Install shelf to GOPATH/bin
//	mage stats          Print Go LOC and documentation word counts
package main
