package hist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	gzip "github.com/klauspost/pgzip"
)

var gz = regexp.MustCompile(`\.gz$`)

// Counts maps a histogram key to its running sum across files.
type Counts map[string]int64

// Load adds every key<TAB>count line of r to c.
// Blank lines and lines without exactly two fields are skipped;
// a count that is not an integer is an error.
func (c Counts) Load(r io.Reader) error {
	var (
		scanner = bufio.NewScanner(r)
		lineNo  = 0
	)
	scanner.Buffer(make([]byte, 0, 64*1024), 10*1024*1024)
	for scanner.Scan() {
		lineNo++
		var line = strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var fields = strings.Split(line, "\t")
		if len(fields) != 2 {
			continue
		}
		count, err := strconv.ParseInt(strings.TrimSpace(fields[1]), 10, 64)
		if err != nil {
			return fmt.Errorf("line %d: bad count %q: %w", lineNo, fields[1], err)
		}
		c[fields[0]] += count
	}
	return scanner.Err()
}

// LoadFile opens path, gunzipping *.gz, and adds its entries to c.
func (c Counts) LoadFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var r io.Reader = file
	if gz.MatchString(path) {
		zr, err := gzip.NewReader(file)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		defer zr.Close()
		r = zr
	}
	if err := c.Load(r); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// Filter returns the keys whose sum is at least threshold, sorted bytewise.
func (c Counts) Filter(threshold int64) []string {
	var keys []string
	for key, count := range c {
		if count >= threshold {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}

// FindFiles lists the files of dir ending in ext or ext.gz, skipping directories.
// dir is taken literally, a missing dir yields no files.
func FindFiles(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var files []string
	for _, entry := range entries {
		var name = entry.Name()
		if !strings.HasSuffix(name, ext) && !strings.HasSuffix(name, ext+".gz") {
			continue
		}
		var path = filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			continue
		}
		files = append(files, path)
	}
	sort.Strings(files)
	return files, nil
}

// WriteKeys writes one key per line to path, replacing any previous content.
func WriteKeys(path string, keys []string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	var w = bufio.NewWriter(file)
	for _, key := range keys {
		if _, err = fmt.Fprintln(w, key); err != nil {
			file.Close()
			return err
		}
	}
	if err = w.Flush(); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
