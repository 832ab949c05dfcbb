// Package clientip extracts the originating client IP address from an HTTP
// request, checking common proxy headers before falling back to the
// connection's remote address.
package clientip
