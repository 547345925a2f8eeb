// Package domain holds the core types and pure validation logic for
// remote knowledge-base management. Nothing in this package performs I/O;
// parsing and validation of tool inputs happens here once, at the boundary.
package domain
