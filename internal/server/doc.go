// Package server serves rendered demo scenarios over HTTP for local preview.
// Pages are rendered on first request and cached; unknown scenarios answer
// 404.
package server
