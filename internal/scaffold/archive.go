package scaffold

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

// Archive writes the generated project directory as a zip archive. Entry
// names are relative to the project directory's parent, so unpacking
// recreates the project under its own directory.
func Archive(fsys billy.Filesystem, projectDir string, w io.Writer) error {
	zw := zip.NewWriter(w)

	prefix := path.Dir(strings.TrimSuffix(projectDir, "/"))
	err := util.Walk(fsys, projectDir, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		name := p
		if prefix != "." && prefix != "/" {
			name = strings.TrimPrefix(p, prefix+"/")
		}

		entry, err := zw.Create(name)
		if err != nil {
			return fmt.Errorf("create zip entry %s: %w", name, err)
		}
		data, err := util.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("read %s: %w", p, err)
		}
		if _, err := entry.Write(data); err != nil {
			return fmt.Errorf("write zip entry %s: %w", name, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	return zw.Close()
}
