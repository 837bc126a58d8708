package config

// File represents the structure of the novelpack.yaml override file.
// Every field is optional; zero values keep the built-in defaults.
type File struct {
	AppName        string          `yaml:"appName"`
	EntryPoint     string          `yaml:"entryPoint"`
	MinPython      string          `yaml:"minPython"`
	Dependencies   []DependencyDTO `yaml:"dependencies"`
	DataFiles      []DataFileDTO   `yaml:"dataFiles"`
	HiddenImports  []string        `yaml:"hiddenImports"`
	ExcludeModules []string        `yaml:"excludeModules"`
	CleanDirs      []string        `yaml:"cleanDirs"`
	DistDir        string          `yaml:"distDir"`
	Portable       PortableDTO     `yaml:"portable"`
}

// DependencyDTO represents one required Python package.
type DependencyDTO struct {
	Pip    string `yaml:"pip"`
	Import string `yaml:"import"`
}

// DataFileDTO represents one bundled data file.
type DataFileDTO struct {
	Source string `yaml:"source"`
	Dest   string `yaml:"dest"`
}

// PortableDTO represents the portable distribution layout.
type PortableDTO struct {
	Dir      string `yaml:"dir"`
	Doc      string `yaml:"doc"`
	Sample   string `yaml:"sample"`
	Launcher string `yaml:"launcher"`
	Notes    string `yaml:"notes"`
}
