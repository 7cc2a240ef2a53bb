// Package server runs the standalone development stub server.
//
// It owns the HTTP server lifecycle: startup, POSIX signal handling and
// graceful shutdown. The request handling itself comes from the grustnotest
// package; this package only keeps it alive on a real port.
package server
