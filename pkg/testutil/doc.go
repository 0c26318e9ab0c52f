// Package testutil provides utilities for testing easyfile components.
//
// Key components:
//   - ScriptedPrompter: replays a fixed sequence of answers to Select and Input
//   - MemFS: afero-backed types.FS pre-populated from inline fixtures
//   - StaticPaths: a paths.Paths with fixed directories, no environment lookups
//
// Usage guidelines:
//   - Tests that do not need the real disk should use NewMemFS
//   - All test data should be defined inline, not in external files
package testutil
