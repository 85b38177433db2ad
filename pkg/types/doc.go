// Package types defines the Book and Catalog data model, the Shelf interface,
// configuration, and the sentinel errors shared by the shelf packages.
package types
