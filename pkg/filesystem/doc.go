// Package filesystem provides filesystem implementations for easyfile.
//
// This package contains implementations of the types.FS interface: the
// standard OS filesystem used by the CLI and an afero-backed filesystem
// used by tests, plus a DirEnsurer that works on top of any types.FS.
package filesystem
