// Package mirror streams the live grid to read-only viewers over WebSocket.
//
// The editor pushes every paint and clear into a Hub, which keeps a shadow
// copy of the painted cells and fans messages out to connected viewers.
// Viewers receive a full snapshot on join, then incremental updates:
//
//	{"type":"snapshot","size":16,"cells":[{"col":3,"row":0,"name":"red","color":"#E63C3C"}]}
//	{"type":"cell","cell":{"col":4,"row":0,"name":"red","color":"#E63C3C"}}
//	{"type":"clear"}
//
// The mirror is transport, not storage: nothing is persisted, and viewers
// cannot paint. Slow viewers are dropped rather than allowed to stall the
// editor's event loop.
//
// Endpoints:
//   - /ws        WebSocket stream of snapshot + updates
//   - /grid.csv  current state in the CSV export format
package mirror
