// Package fileutil holds the permissions used for files and directories
// written by the generator and the CLI.
package fileutil

import "os"

// ReadableByAll is the file permission mode for generated source code
// files intended to be read by build tools and other users.
const ReadableByAll os.FileMode = 0o644

// DirPerm is the permission mode for package directories created under the
// output directory.
const DirPerm os.FileMode = 0o755
