package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidSpec is returned when the packaging spec fails validation.
	ErrInvalidSpec = zerr.New("invalid packaging spec")

	// ErrInterpreterNotFound is returned when no Python interpreter is on PATH.
	ErrInterpreterNotFound = zerr.New("python interpreter not found")

	// ErrInterpreterTooOld is returned when the interpreter is below the
	// minimum supported version.
	ErrInterpreterTooOld = zerr.New("python version too old")

	// ErrDependencyInstallFailed is returned when installing a missing
	// dependency fails. There is no retry.
	ErrDependencyInstallFailed = zerr.New("dependency installation failed")

	// ErrEntryPointMissing is returned when the application entry point does
	// not exist in the working directory.
	ErrEntryPointMissing = zerr.New("entry point file not found")

	// ErrBuildFailed is returned when the packaging tool exits nonzero.
	ErrBuildFailed = zerr.New("packaging tool failed")

	// ErrArtifactMissing is returned when the packaging tool reported success
	// but the expected executable is absent.
	ErrArtifactMissing = zerr.New("expected executable not found after build")
)
