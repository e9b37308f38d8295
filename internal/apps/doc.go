// Package apps holds the registry of install-banner demo scenarios. Each
// scenario names a demo site variant, such as a web app or a site with a
// related Play app, and flags which optional fragments the renderer includes
// for it.
//
// The registry is built once from a literal table and never changes, so it is
// safe for concurrent use without locking.
package apps
