package loader

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/deansher/morphics-v0.1/internal/charter"
)

// Discover resolves a path into the list of charter files it names. A file
// path must carry a supported extension and is returned as-is; a directory
// is walked recursively for .json and .hcl files, in sorted order so runs
// are reproducible.
func Discover(path string) ([]string, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("charter path not found: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("error accessing path %s: %w", path, err)
	}

	if !info.IsDir() {
		if !supportedExt(path) {
			return nil, fmt.Errorf("unsupported charter file extension: %s", path)
		}
		return []string{path}, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && supportedExt(p) {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// LoadFile reads and decodes one charter file. I/O and syntax-level HCL
// failures return an error; charter shape defects do not — they travel as
// Malformed markers inside the returned tree so the resolution pass reports
// them alongside everything else it finds.
func LoadFile(path string) (*charter.Charter, error) {
	switch filepath.Ext(path) {
	case ".json":
		src, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read charter file %s: %w", path, err)
		}
		return charter.Parse(src), nil
	case ".hcl":
		return loadHCL(path)
	default:
		return nil, fmt.Errorf("unsupported charter file extension: %s", path)
	}
}

func supportedExt(path string) bool {
	ext := filepath.Ext(path)
	return ext == ".json" || ext == ".hcl"
}
