// Package bibliofile holds module-wide metadata.
package bibliofile

// Version is the released version of the shelf CLI and library.
var Version = "0.1.0"
