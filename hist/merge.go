package hist

import (
	"log"
	"path/filepath"

	"github.com/cheggaaa/pb/v3"
)

const (
	DefaultExt       = ".hist"
	DefaultOutput    = "filter.txt"
	DefaultThreshold = 100
)

// Merger sums the histograms of one directory and writes the keys that pass Threshold.
type Merger struct {
	Dir       string
	Threshold int64
	Ext       string // defaults to DefaultExt
	Output    string // file name inside Dir, defaults to DefaultOutput
	Bar       bool   // progress bar on stderr, next to the per-file log
}

type Summary struct {
	Files  int
	Unique int
	Kept   int
	Output string // empty when nothing was written
}

// Run merges every histogram file in m.Dir.
// Finding no file is not an error: nothing is written and the summary is zero.
// The output is only written once all files were aggregated.
func (m *Merger) Run() (summary Summary, err error) {
	var ext = m.Ext
	if ext == "" {
		ext = DefaultExt
	}
	var output = m.Output
	if output == "" {
		output = DefaultOutput
	}

	files, err := FindFiles(m.Dir, ext)
	if err != nil {
		return
	}
	if len(files) == 0 {
		log.Printf("No %s files found in %s", ext, m.Dir)
		return
	}
	summary.Files = len(files)
	log.Printf("Found %d hist file(s)", len(files))

	var bar *pb.ProgressBar
	if m.Bar {
		bar = pb.Full.Start64(int64(len(files)))
		defer bar.Finish()
	}

	var counts = make(Counts)
	for _, path := range files {
		log.Printf("Reading %s", path)
		if err = counts.LoadFile(path); err != nil {
			return
		}
		if bar != nil {
			bar.Increment()
		}
	}
	summary.Unique = len(counts)
	log.Printf("Total unique keys: %d", summary.Unique)

	var keys = counts.Filter(m.Threshold)
	summary.Kept = len(keys)
	log.Printf("Keys with count >= %d: %d", m.Threshold, summary.Kept)

	var outPath = filepath.Join(m.Dir, output)
	if err = WriteKeys(outPath, keys); err != nil {
		return
	}
	summary.Output = outPath
	log.Printf("Wrote %d keys to %s", summary.Kept, outPath)
	return
}
