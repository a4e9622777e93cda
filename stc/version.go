package stc

// Version information for the singlethread module.
const (
	// Version is the current version of the stc package.
	Version = "0.1.0"

	// VersionMajor is the major version number.
	VersionMajor = 0

	// VersionMinor is the minor version number.
	VersionMinor = 1

	// VersionPatch is the patch version number.
	VersionPatch = 0
)

// Info provides build-time information about the package.
type Info struct {
	// Version is the package version string.
	Version string

	// AffinityChecks reports whether borrows verify goroutine affinity.
	// False when built with the stc_unchecked tag.
	AffinityChecks bool
}

// GetInfo returns information about this build of the package.
//
// Example:
//
//	info := stc.GetInfo()
//	fmt.Printf("stc %s (affinity checks: %v)\n", info.Version, info.AffinityChecks)
func GetInfo() Info {
	return Info{
		Version:        Version,
		AffinityChecks: affinityChecks,
	}
}
