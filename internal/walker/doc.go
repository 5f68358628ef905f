// Package walker mirrors a source file or directory tree onto a destination
// root, redacting every regular file on the way through. Traversal is
// sequential and depth-first, and the first error aborts the whole run.
package walker
