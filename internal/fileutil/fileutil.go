// Package fileutil holds file permission conventions shared across packages.
package fileutil

import "os"

// OwnerReadWrite is the mode for written documents. Merged masters and
// role-scoped documents can describe internal surfaces, so they stay
// readable by the owner only.
const OwnerReadWrite os.FileMode = 0o600
