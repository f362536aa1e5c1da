// Package constant holds identifiers shared by every part of mydrama.
package constant

const (
	// MyDrama is the application name used for paths, env vars and branding.
	MyDrama = "mydrama"

	// Version is the semantic version of this build.
	Version = "0.3.1"

	// UserAgent is sent with every catalog request.
	UserAgent = MyDrama + "/" + Version + " (+https://github.com/mydrama-tv/mydrama)"
)

// Set at link time with -ldflags "-X ...".
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
