package translator

import "runtime/debug"

// modulePath is this library's module path in build metadata.
const modulePath = "github.com/randalmurphal/translator"

// versionFallback is reported when build metadata is unavailable.
const versionFallback = "Version unspecified"

// Version reports the library version recorded in the binary's build
// metadata. When the metadata is unavailable (for example in a test binary
// or a non-module build), it returns a fixed placeholder rather than
// failing.
func Version() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return versionFallback
	}
	if info.Main.Path == modulePath && info.Main.Version != "" {
		return info.Main.Version
	}
	for _, dep := range info.Deps {
		if dep.Path == modulePath && dep.Version != "" {
			return dep.Version
		}
	}
	return versionFallback
}
