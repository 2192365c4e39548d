package mockup

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/unitrack/mockups/screens"
	"go.yaml.in/yaml/v3"
)

// ManifestName is the file name of the manifest, in the output directory.
const ManifestName = "manifest.yaml"

// Entry describes one written file.
type Entry struct {
	File   string `yaml:"file"`
	Screen string `yaml:"screen"`
	Format Format `yaml:"format"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Digest string `yaml:"blake2b"`
}

// Manifest lists the files of a run, in output order.
type Manifest struct {
	Files []Entry `yaml:"files"`
}

func (m Manifest) write(dir string) error {
	path := filepath.Join(dir, ManifestName)
	_, err := writeFile(path, func(w io.Writer) error {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(m); err != nil {
			return err
		}
		return enc.Close()
	})
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// ReadManifest reads the manifest of the output directory `dir`.
func ReadManifest(dir string) (Manifest, error) {
	var m Manifest
	b, err := os.ReadFile(filepath.Join(dir, ManifestName))
	if err != nil {
		return m, err
	}
	if err := yaml.Unmarshal(b, &m); err != nil {
		return m, fmt.Errorf("parsing %s: %w", ManifestName, err)
	}
	return m, nil
}

// MissingError lists the expected files absent from the output directory.
type MissingError struct {
	Dir   string
	Files []string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("%d mockup(s) missing in %s: %s", len(e.Files), e.Dir, strings.Join(e.Files, ", "))
}

// Check verifies that `dir` holds the files of `catalog` in every format.
// When a manifest is present, the digests of the files are also checked.
func Check(dir string, catalog []screens.Screen, formats []Format) error {
	missing := &MissingError{Dir: dir}
	for _, s := range catalog {
		for _, f := range formats {
			name := FileName(s.Seq, s.Slug, f)
			info, err := os.Stat(filepath.Join(dir, name))
			if err != nil || info.IsDir() {
				missing.Files = append(missing.Files, name)
			}
		}
	}
	var errs []error
	if len(missing.Files) > 0 {
		errs = append(errs, missing)
	}

	m, err := ReadManifest(dir)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		errs = append(errs, err)
	default:
		for _, e := range m.Files {
			digest, err := fileDigest(filepath.Join(dir, e.File))
			if err != nil {
				continue // reported as missing if expected
			}
			if digest != e.Digest {
				errs = append(errs, fmt.Errorf("%s differs from the manifest", e.File))
			}
		}
	}
	return errors.Join(errs...)
}

func fileDigest(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return hashReader(f)
}
