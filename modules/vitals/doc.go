// Package vitals receives Core Web Vitals beacons from the landing page and
// keeps a per-metric rating distribution in Redis. Beacons are
// fire-and-forget: malformed ones are dropped with a warning and the
// endpoint never reports a server error back to the browser.
package vitals
