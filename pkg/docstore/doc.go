// Package docstore is a thin facade over the per-user Documents
// directory: it lists its contents, checks for files, and reads and
// writes text, raw bytes, and canonically formatted JSON objects.
//
// Every operation re-resolves the documents root, performs a single
// file-system call, and returns. There is no caching, no locking, and
// no background work; concurrent writers to the same filename race at
// whatever granularity the host file system provides.
package docstore
