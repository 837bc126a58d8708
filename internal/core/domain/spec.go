// Package domain contains the core domain model for the packaging pipeline.
package domain

import (
	"path/filepath"
	"runtime"
	"strings"

	"go.trai.ch/zerr"
)

// DataFile describes an auxiliary file bundled into the executable.
// Dest is the location inside the bundle, relative to the bundle root.
type DataFile struct {
	Source string
	Dest   string
}

// Spec describes one packaging run. The zero value is not usable; start from
// DefaultSpec and override fields as needed.
type Spec struct {
	// AppName is the name of the produced executable (without extension).
	AppName string

	// EntryPoint is the application's main source file, relative to the
	// working directory.
	EntryPoint string

	// MinPython is the minimum interpreter version accepted by the
	// environment check.
	MinPython PythonVersion

	// Dependencies are probed in order and installed on probe failure.
	Dependencies []Dependency

	DataFiles      []DataFile
	HiddenImports  []string
	ExcludeModules []string

	// CleanDirs is the fixed list of directories removed before a build.
	CleanDirs []string
	// SpecGlob matches generated packaging spec files to remove.
	SpecGlob string

	// DistDir is the directory the packaging tool writes the executable to.
	DistDir string

	// Portable distribution layout.
	PortableDir  string
	DocFile      string
	SampleFile   string
	LauncherName string
	NotesName    string

	// GOOS selects platform-specific behavior (binary extension, exec bits,
	// launcher generation). DefaultSpec sets it to runtime.GOOS.
	GOOS string
}

// DefaultSpec returns the fixed packaging spec for the novel reader.
func DefaultSpec() *Spec {
	return &Spec{
		AppName:    "小说阅读器",
		EntryPoint: "main.py",
		MinPython:  PythonVersion{Major: 3, Minor: 7},
		Dependencies: []Dependency{
			{PipName: "PySide6", ImportName: "PySide6"},
			{PipName: "chardet", ImportName: "chardet"},
			{PipName: "pyinstaller", ImportName: "PyInstaller"},
		},
		DataFiles: []DataFile{
			{Source: "test.txt", Dest: "."},
			{Source: "README.md", Dest: "."},
		},
		HiddenImports: []string{
			"chardet",
			"PySide6.QtCore",
			"PySide6.QtWidgets",
			"PySide6.QtGui",
		},
		ExcludeModules: []string{
			"tkinter",
			"matplotlib",
			"numpy",
			"scipy",
			"pandas",
			"jupyter",
			"IPython",
			"PIL",
			"cv2",
		},
		CleanDirs:    []string{"build", "dist", "__pycache__", "NovelReader_Portable"},
		SpecGlob:     "*.spec",
		DistDir:      "dist",
		PortableDir:  "NovelReader_Portable",
		DocFile:      "README.md",
		SampleFile:   "test.txt",
		LauncherName: "启动.sh",
		NotesName:    "使用说明.txt",
		GOOS:         runtime.GOOS,
	}
}

// BinaryName returns the executable name including the platform extension.
func (s *Spec) BinaryName() string {
	if s.GOOS == "windows" {
		return s.AppName + ".exe"
	}
	return s.AppName
}

// BinaryPath returns the path of the built executable relative to the
// working directory.
func (s *Spec) BinaryPath() string {
	return filepath.Join(s.DistDir, s.BinaryName())
}

// Windows reports whether the spec targets Windows.
func (s *Spec) Windows() bool {
	return s.GOOS == "windows"
}

// Validate checks the spec for values the pipeline cannot work with.
func (s *Spec) Validate() error {
	if strings.TrimSpace(s.AppName) == "" {
		return zerr.With(ErrInvalidSpec, "field", "appName")
	}
	if strings.TrimSpace(s.EntryPoint) == "" {
		return zerr.With(ErrInvalidSpec, "field", "entryPoint")
	}
	// The entry point is passed to the packaging tool relative to the
	// working directory; directory components are not supported.
	if strings.ContainsRune(s.EntryPoint, '/') || strings.ContainsRune(s.EntryPoint, filepath.Separator) {
		return zerr.With(zerr.With(ErrInvalidSpec, "field", "entryPoint"), "value", s.EntryPoint)
	}
	if s.DistDir == "" {
		return zerr.With(ErrInvalidSpec, "field", "distDir")
	}
	if s.PortableDir == "" {
		return zerr.With(ErrInvalidSpec, "field", "portableDir")
	}
	for _, dep := range s.Dependencies {
		if dep.PipName == "" || dep.ImportName == "" {
			return zerr.With(ErrInvalidSpec, "field", "dependencies")
		}
	}
	return nil
}
