package sources

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/afero"
)

// LoadFile reads extra sources from a plain "name = url" file, one entry
// per line. Blank lines and lines starting with # are skipped. A missing
// file is not an error; a malformed line is.
func LoadFile(fs afero.Fs, path string) ([]Source, error) {
	exists, err := afero.Exists(fs, path)
	if err != nil {
		return nil, fmt.Errorf("stat sources file: %w", err)
	}
	if !exists {
		return nil, nil
	}

	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sources file: %w", err)
	}
	defer f.Close()

	var srcs []Source
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		name, url, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("sources file %s:%d: expected \"name = url\", got %q", path, lineNo, line)
		}

		name = strings.TrimSpace(name)
		url = strings.TrimSpace(url)
		if name == "" || url == "" {
			return nil, fmt.Errorf("sources file %s:%d: empty name or url", path, lineNo)
		}

		srcs = append(srcs, Source{Name: name, URL: url})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read sources file: %w", err)
	}

	return srcs, nil
}
