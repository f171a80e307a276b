// Package buildinfo carries version metadata injected at link time:
//
//	go build -ldflags "-X github.com/varsilias/openclaw-setup/internal/buildinfo.Version=v1.0.0"
package buildinfo

var (
	Version = "v1.0.0"
	Commit  = "dev"
	BuiltAt = "unknown"
)
