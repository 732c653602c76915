// Package platform supplies per-platform configuration for the embedded web
// content view and the iOS storage-isolation version heuristic.
//
// Everything here is a pure function of its inputs; the only state a
// [Provider] carries is the configured isolation threshold.
package platform
