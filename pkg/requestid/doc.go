// Package requestid assigns a UUID to every incoming HTTP request and makes
// it available through the request context, so log lines and error reports
// for the same request can be correlated.
package requestid
