// Package config provides the packaging spec loader.
package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/novelreader/novelpack/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader. The spec starts from the built-in
// defaults; a config file, when present, overrides individual fields.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load returns the packaging spec for the given config path. A missing file
// yields the default spec so the zero-argument invocation stays fixed.
func (l *Loader) Load(path string) (*domain.Spec, error) {
	spec := domain.DefaultSpec()

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return spec, spec.Validate()
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
	}

	if err := apply(spec, &file); err != nil {
		return nil, err
	}
	return spec, spec.Validate()
}

// apply overlays the non-zero fields of file onto spec.
func apply(spec *domain.Spec, file *File) error {
	if file.AppName != "" {
		spec.AppName = file.AppName
	}
	if file.EntryPoint != "" {
		spec.EntryPoint = file.EntryPoint
	}
	if file.MinPython != "" {
		v, err := domain.ParsePythonVersion(file.MinPython)
		if err != nil {
			return zerr.Wrap(err, "invalid minPython")
		}
		spec.MinPython = v
	}
	if len(file.Dependencies) > 0 {
		deps := make([]domain.Dependency, 0, len(file.Dependencies))
		for _, d := range file.Dependencies {
			imp := d.Import
			if imp == "" {
				imp = d.Pip
			}
			deps = append(deps, domain.Dependency{PipName: d.Pip, ImportName: imp})
		}
		spec.Dependencies = deps
	}
	if len(file.DataFiles) > 0 {
		files := make([]domain.DataFile, 0, len(file.DataFiles))
		for _, f := range file.DataFiles {
			dest := f.Dest
			if dest == "" {
				dest = "."
			}
			files = append(files, domain.DataFile{Source: f.Source, Dest: dest})
		}
		spec.DataFiles = files
	}
	if len(file.HiddenImports) > 0 {
		spec.HiddenImports = file.HiddenImports
	}
	if len(file.ExcludeModules) > 0 {
		spec.ExcludeModules = file.ExcludeModules
	}
	if len(file.CleanDirs) > 0 {
		spec.CleanDirs = file.CleanDirs
	}
	if file.DistDir != "" {
		spec.DistDir = file.DistDir
	}
	if file.Portable.Dir != "" {
		spec.PortableDir = file.Portable.Dir
	}
	if file.Portable.Doc != "" {
		spec.DocFile = file.Portable.Doc
	}
	if file.Portable.Sample != "" {
		spec.SampleFile = file.Portable.Sample
	}
	if file.Portable.Launcher != "" {
		spec.LauncherName = file.Portable.Launcher
	}
	if file.Portable.Notes != "" {
		spec.NotesName = file.Portable.Notes
	}
	return nil
}
