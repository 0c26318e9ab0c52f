// Package createfile implements the "new" command: pick a folder inside the
// workspace, ask for a file name, seed the file from the matching template
// and open it.
package createfile
