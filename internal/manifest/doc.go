// Package manifest handles parsing and validation of web app manifests
// (manifest.json) produced for the demo scenarios. Validation runs against the
// JSON Schema embedded under schema/, which covers the members the install
// banner checks look at: name, start_url, display, icons and
// related_applications.
package manifest
