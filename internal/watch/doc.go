// Package watch collects the set of files modified under a directory tree
// while an external tool runs.
//
// A Collector watches a root recursively with fsnotify and records every
// file written or created until it is closed. The recorded paths let the
// host reload exactly the files the tool touched instead of rescanning
// the whole workspace. Collection is best effort: watch failures degrade
// to an empty result, they never fail the surrounding operation.
package watch
