// Package contact implements the contact form submission flow: requests are
// run through the contactform rule table, accepted leads are stored in Redis
// and forwarded to the office inbox, and in-progress drafts can be saved and
// restored via a browser cookie.
package contact
