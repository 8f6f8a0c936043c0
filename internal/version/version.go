package version

// AppName is the binary name shown in help and version output.
const AppName = "gittr"

// Version is the current gittr release.
// Bump it on every release.
const Version = "1.0.0"

// FullVersion returns the version with the v prefix
func FullVersion() string {
	return "v" + Version
}
