package main

import (
	"flag"
	"log"
	"os"

	"github.com/liserjrqlxue/simple-util"
)

var (
	input = flag.String(
		"input",
		"",
		"task list, tsv with columns step input [threshold ext output]",
	)
	crlf = flag.Bool(
		"crlf",
		false,
		"end sortBarcodes output lines with \\r\\n",
	)
	logFile = flag.String(
		"log",
		"",
		"output log file, default stderr",
	)
)

func main() {
	flag.Parse()
	if *input == "" {
		flag.Usage()
		log.Printf("-input required")
		os.Exit(1)
	}

	if *logFile != "" {
		logF, err := os.Create(*logFile)
		simple_util.CheckErr(err)
		defer simple_util.DeferClose(logF)
		log.SetOutput(logF)
	}
	log.SetFlags(log.Ldate | log.Ltime)

	taskList, err := parseTasks(*input)
	simple_util.CheckErr(err)
	log.Printf("Load %d task(s) from %s", len(taskList), *input)

	simple_util.CheckErr(runTasks(taskList, *crlf))
}
