// Package site writes the rendered demo scenarios to a directory tree that can
// be served by any static file host. It powers the "appdemos generate" command.
//
// Layout:
//
//	<out>/index.html            listing of every scenario
//	<out>/static/...            shared scripts and icon
//	<out>/<id>/index.html       one directory per scenario
//	<out>/.appdemos.json        build stamp
package site
