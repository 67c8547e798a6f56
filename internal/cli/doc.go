// Package cli implements the clippy command line: metadata, option
// listing, downloads, audio extraction and playlist listing.
package cli
