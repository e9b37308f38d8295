// Package render turns registry scenarios into the files of a demo site.
//
// Templates and shared scripts are embedded in the binary and parsed once by
// New. Each scenario renders to index.html plus, depending on its flags, a
// web app manifest and a service worker. Rendered manifests are checked
// against the manifest schema before they are returned.
package render
