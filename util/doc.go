// Package util provides small generic helpers shared across the client.
//
// It includes pointer helpers for optional model fields, slice lookups, and
// secret masking for log output.
package util
