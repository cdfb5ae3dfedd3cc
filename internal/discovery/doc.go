// Package discovery advertises the mirror server over mDNS.
//
// When sharing is enabled with --announce, the editor registers a
// "_pixelgrid._tcp" service in the local domain carrying the mirror port
// and the grid size as a TXT record. Viewers on the same network can then
// browse for the service instead of being told an address.
//
// The advertisement is withdrawn on shutdown; nothing is persisted.
package discovery
