package fs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/novelreader/novelpack/internal/core/domain"
	"github.com/novelreader/novelpack/internal/core/ports"
	"go.trai.ch/zerr"
)

// Stager implements ports.Stager.
type Stager struct {
	logger ports.Logger
}

var _ ports.Stager = (*Stager)(nil)

// NewStager creates a new Stager.
func NewStager(logger ports.Logger) *Stager {
	return &Stager{
		logger: logger,
	}
}

// Stage assembles the portable distribution directory: the executable, the
// documentation file, the sample file, generated usage notes, and (off
// Windows) an executable launcher script. Cleanup already removed any
// previous portable directory.
func (s *Stager) Stage(spec *domain.Spec, report *domain.Report) error {
	dir := spec.PortableDir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create portable directory"), "path", dir)
	}

	binName := spec.BinaryName()
	if err := copyFile(report.BinaryPath, filepath.Join(dir, binName), 0o755); err != nil {
		return err
	}
	if err := copyFile(spec.DocFile, filepath.Join(dir, spec.DocFile), 0o644); err != nil {
		return err
	}
	if err := copyFile(spec.SampleFile, filepath.Join(dir, spec.SampleFile), 0o644); err != nil {
		return err
	}

	if !spec.Windows() {
		launcher := filepath.Join(dir, spec.LauncherName)
		if err := os.WriteFile(launcher, []byte(launcherScript(binName)), 0o755); err != nil { //nolint:gosec // launcher must be executable
			return zerr.With(zerr.Wrap(err, "failed to write launcher script"), "path", launcher)
		}
	}

	notes := filepath.Join(dir, spec.NotesName)
	if err := os.WriteFile(notes, []byte(usageNotes(spec)), 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write usage notes"), "path", notes)
	}

	report.PortableDir = dir
	s.logger.Success("portable package created: " + dir)
	return nil
}

// launcherScript returns the two-command launcher: change into the script's
// own directory, then execute the binary.
func launcherScript(binName string) string {
	return "#!/bin/bash\ncd \"$(dirname \"$0\")\"\n./" + binName + "\n"
}

// usageNotes renders the bundled Chinese usage notes for the portable folder.
func usageNotes(spec *domain.Spec) string {
	binName := spec.BinaryName()
	return fmt.Sprintf(`# %s 便携版

## 使用方法
1. 直接运行: ./%s
2. 使用启动脚本: ./%s (Linux/macOS)

## 文件说明
- %s: 主程序
- %s: 程序说明
- %s: 示例小说文件
- %s: 启动脚本 (Linux/macOS)

## 注意事项
- 本程序无需安装，可直接运行
- 支持拖拽打开txt文件
- 支持多种编码格式
`,
		spec.AppName,
		binName,
		spec.LauncherName,
		binName,
		spec.DocFile,
		spec.SampleFile,
		spec.LauncherName,
	)
}

// copyFile copies src to dst with the given mode, truncating dst.
func copyFile(src, dst string, mode os.FileMode) error {
	in, err := os.Open(src) //nolint:gosec // paths come from the packaging spec
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open source file"), "path", src)
	}
	defer in.Close() //nolint:errcheck // best effort close in defer

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode) //nolint:gosec // staged binary must keep its exec bit
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create destination file"), "path", dst)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return zerr.With(zerr.Wrap(err, "failed to copy file"), "path", dst)
	}
	if err := out.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to close destination file"), "path", dst)
	}
	return nil
}
