// Package version pins the SDK release version and derives the User-Agent
// string sent with every API request.
package version
