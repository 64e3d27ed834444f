package version

// Version represents the current version of go-isogeo
const Version = "1.0.0"

// BuildVersion returns the version string for display
func BuildVersion() string {
	return "isogeo version " + Version
}

// UserAgent returns the default User-Agent value sent with API requests
func UserAgent() string {
	return "go-isogeo/" + Version
}
