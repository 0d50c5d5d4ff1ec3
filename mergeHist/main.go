package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/liserjrqlxue/simple-util"

	"github.com/liserjrqlxue/barcodePrep/hist"
)

var errUsage = errors.New("usage")

type options struct {
	dataDir   string
	threshold int64
	ext       string
	output    string
	bar       bool
	logFile   string
}

func newFlagSet(opt *options, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("mergeHist", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(
		&opt.ext,
		"ext",
		hist.DefaultExt,
		"histogram file extension",
	)
	fs.StringVar(
		&opt.output,
		"output",
		hist.DefaultOutput,
		"output file name, written inside data_dir",
	)
	fs.BoolVar(
		&opt.bar,
		"bar",
		false,
		"show progress bar on stderr",
	)
	fs.StringVar(
		&opt.logFile,
		"log",
		"",
		"output log file, default stderr",
	)
	fs.Usage = func() {
		var out = fs.Output()
		fmt.Fprintln(out, "Usage: mergeHist [options] [data_dir] [threshold]")
		fmt.Fprintln(out, "  data_dir:  directory containing .hist files (default: data)")
		fmt.Fprintf(out, "  threshold: minimum sum of counts to include key (default: %d)\n", hist.DefaultThreshold)
		fmt.Fprintln(out, "Options:")
		fs.PrintDefaults()
	}
	return fs
}

// parseArgs reads data_dir and the optional threshold, later args are ignored
func parseArgs(args []string) (dataDir string, threshold int64, err error) {
	if len(args) < 1 {
		return "", 0, errUsage
	}
	dataDir = args[0]
	threshold = hist.DefaultThreshold
	if len(args) > 1 {
		threshold, err = strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return "", 0, fmt.Errorf("threshold must be an integer: %q", args[1])
		}
	}
	return
}

// run returns the process exit code
func run(argv []string, stderr io.Writer) int {
	var opt options
	fs := newFlagSet(&opt, stderr)
	if err := fs.Parse(argv); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 1
	}
	var err error
	opt.dataDir, opt.threshold, err = parseArgs(fs.Args())
	if err != nil {
		if err != errUsage {
			fmt.Fprintln(stderr, err)
		}
		fs.Usage()
		return 1
	}

	if opt.logFile != "" {
		logF, err := os.Create(opt.logFile)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		defer simple_util.DeferClose(logF)
		log.SetOutput(logF)
	}
	log.SetFlags(log.Ldate | log.Ltime)

	var merger = &hist.Merger{
		Dir:       opt.dataDir,
		Threshold: opt.threshold,
		Ext:       opt.ext,
		Output:    opt.output,
		Bar:       opt.bar,
	}
	if _, err := merger.Run(); err != nil {
		log.Print(err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}
