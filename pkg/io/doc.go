// Package io reads and writes trees for the treeprinter CLI and server.
//
// # JSON Format
//
// A tree is a nested object. Both children are optional; null or a missing
// key is the absent child:
//
//	{
//	  "label": "root",
//	  "left":  {"label": "a"},
//	  "right": {"label": 42, "left": null, "right": {"label": "b"}}
//	}
//
// Labels may be strings or numbers. A node without a label has an empty
// label, which is not the same as an absent node. A top-level array holds
// several trees, e.g. for a page; null entries are absent trees.
//
// # Level Order
//
// [ReadLevelOrder] accepts the compact breadth-first notation used by many
// coding sites, one tree per line:
//
//	[1, 2, 3, null, 4]
//	5 # 6
//
// Tokens are separated by whitespace or commas. The tokens null, nil, # and
// - mark absent positions. Each present node consumes the next two tokens
// as its left and right child.
//
// # Import and Export
//
// Use [ImportJSON] to read trees from a file path and [ReadJSON] for any
// io.Reader. [WriteJSON] and [ExportJSON] write trees back out in the JSON
// format, so output can be re-imported unchanged.
//
// Malformed input is reported with code INVALID_INPUT and a missing file
// with FILE_NOT_FOUND (see package errors).
package io
