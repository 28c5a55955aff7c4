// Package fileutil holds file permission modes shared by the CLI and tools.
package fileutil

import "os"

// OwnerReadWrite is the mode for normalized documents written to disk.
// Documents may carry user data, so only the owner can read them.
const OwnerReadWrite os.FileMode = 0o600
