package config

// Installer scripts served under /scripts/. Their contents are opaque to the server.
const (
	WindowsInstaller = "install_openclaw.bat"
	UnixInstaller    = "mac_install.sh"
)

// ThemeKey is the client-storage key holding "dark" or "light".
const ThemeKey = "theme"
