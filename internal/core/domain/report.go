package domain

import "fmt"

// Report describes the outcome of a successful packaging run.
type Report struct {
	// BinaryPath is the built executable, relative to the working directory.
	BinaryPath string
	// SizeBytes is the size of the executable.
	SizeBytes int64
	// Checksum is the xxhash digest of the executable, hex encoded.
	Checksum string
	// PortableDir is the staged portable distribution directory, empty if
	// staging was skipped.
	PortableDir string
}

// HumanSize renders SizeBytes with a binary unit suffix.
func (r *Report) HumanSize() string {
	const unit = 1024
	if r.SizeBytes < unit {
		return fmt.Sprintf("%d B", r.SizeBytes)
	}
	div, exp := int64(unit), 0
	for n := r.SizeBytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(r.SizeBytes)/float64(div), "KMGTPE"[exp])
}
