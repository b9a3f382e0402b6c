// Package pathutil provides output path sanitization.
//
// [SanitizeOutputPath] validates and cleans output file paths before
// writing. It resolves ".." components and rejects paths that resolve to
// symlinks:
//
//	safe, err := pathutil.SanitizeOutputPath(userProvidedPath)
//	if err != nil {
//	    return err // traversal target or symlink detected
//	}
package pathutil
