// Package workflows implements the two core pieces of the sync run: the
// Discoverer, which enumerates non-archived repositories tagged with a topic,
// and the Syncer, which reconciles a local directory of workflow files into a
// repository's .github/workflows directory file by file.
package workflows
