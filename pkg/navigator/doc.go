// Package navigator implements the interactive folder picker and the file
// name prompt used when creating a file.
//
// The picker keeps exactly one current directory. Each step lists the
// immediate child folders of that directory, builds a fresh menu from them
// and hands it to a types.Prompter. The user can confirm the current
// directory, create a new folder inside it, go up one level (except at the
// workspace root) or descend into a child. Dismissing the menu ends the
// loop with no selection.
package navigator
