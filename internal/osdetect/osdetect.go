// Package osdetect classifies a client platform string and picks the matching
// installer download.
package osdetect

import (
	"strings"
	"sync"

	"github.com/varsilias/openclaw-setup/internal/config"
	"github.com/varsilias/openclaw-setup/internal/platform"
)

type OS string

const (
	Windows OS = "Windows"
	Mac     OS = "Mac"
	Linux   OS = "Linux"
	Unknown OS = "Unknown"
)

// Detect maps a platform signal (User-Agent or navigator.platform) to an OS.
func Detect(signal string) OS {
	switch {
	case strings.Contains(signal, "Win"):
		return Windows
	case strings.Contains(signal, "Mac"):
		return Mac
	case strings.Contains(signal, "Linux"):
		return Linux
	default:
		return Unknown
	}
}

// Offer is the call-to-action shown for a classification.
type Offer struct {
	OS      OS
	Href    string
	Label   string
	Enabled bool
	Icon    string
	Hint    string
}

const scriptsPrefix = "/scripts/"

func OfferFor(os OS) Offer {
	switch os {
	case Windows:
		return Offer{
			OS:      Windows,
			Href:    scriptsPrefix + config.WindowsInstaller,
			Label:   "Download Installer for Windows",
			Enabled: true,
			Icon:    "🪟",
			Hint:    "(Check your Downloads folder)",
		}
	case Mac:
		return Offer{
			OS:      Mac,
			Href:    scriptsPrefix + config.UnixInstaller,
			Label:   "Download Installer for Mac",
			Enabled: true,
			Icon:    "🍎",
			Hint:    "(You may need to run it in Terminal)",
		}
	case Linux:
		return Offer{
			OS:      Linux,
			Href:    scriptsPrefix + config.UnixInstaller,
			Label:   "Download Installer for Linux",
			Enabled: true,
			Icon:    "🐧",
			Hint:    "(You may need to run it in Terminal)",
		}
	default:
		return Offer{OS: Unknown, Href: "#", Label: "Download Installer"}
	}
}

// Detector reads the environment's platform signal once and caches the result.
type Detector struct {
	env  platform.Environment
	once sync.Once
	os   OS
}

func NewDetector(env platform.Environment) *Detector {
	return &Detector{env: env}
}

func (d *Detector) OS() OS {
	d.once.Do(func() {
		d.os = Detect(d.env.PlatformSignal())
	})
	return d.os
}

func (d *Detector) Offer() Offer { return OfferFor(d.OS()) }
