// Package build contains build-time constants, set by the linker.
package build

// BuildVersion is set by: -ldflags "-X github.com/kobotools/kobotab/internal/pkg/build.BuildVersion=..."
var BuildVersion = "dev"
