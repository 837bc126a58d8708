package domain

// Dependency is a Python package required by the application.
// PipName is the name handed to the installer; ImportName is the module name
// used for the import probe. They differ for pyinstaller/PyInstaller.
type Dependency struct {
	PipName    string `yaml:"pip"`
	ImportName string `yaml:"import"`
}

// String returns the installer-facing name.
func (d Dependency) String() string {
	return d.PipName
}
