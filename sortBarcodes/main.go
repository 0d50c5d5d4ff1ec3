package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/liserjrqlxue/simple-util"

	"github.com/liserjrqlxue/barcodePrep/barcode"
)

type options struct {
	crlf    bool
	logFile string
}

func newFlagSet(opt *options, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("sortBarcodes", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(
		&opt.crlf,
		"crlf",
		false,
		"end output lines with \\r\\n",
	)
	fs.StringVar(
		&opt.logFile,
		"log",
		"",
		"output log file, default stderr",
	)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: sortBarcodes [options] <csv_path>")
		fmt.Fprintf(fs.Output(), "  writes <csv_path>%s with columns %v\n", barcode.SortedSuffix, barcode.Columns)
		fs.PrintDefaults()
	}
	return fs
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
	if fs.NArg() != 1 {
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

	if _, _, err := barcode.Run(fs.Arg(0), opt.crlf); err != nil {
		log.Print(err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}
