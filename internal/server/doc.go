// Package server implements the MCP (Model Context Protocol) server for
// cross-stitch pattern generation.
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
//   - image_load: Load a photograph and report its dimensions
//   - pattern_generate: Build a chart from a photograph and write it to disk
//   - thread_nearest: Match a single color against the thread catalog
//   - thread_catalog: List the catalog or look up a thread by code
//
// Photographs are cached by path for the lifetime of the process, so
// image_load followed by pattern_generate decodes the file once. image_load
// always re-reads the file, replacing any cached copy.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with
// code -32000 and the Go error string as data. Pipeline failures name the
// stage that failed, e.g. "reduce stage failed: invalid color count 0: at
// least 1 color is required".
//
// # Usage
//
//	cat, _ := threads.Default()
//	srv := server.New(cat)
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
