package barcode

import (
	"bufio"
	"fmt"
	"log"
	"os"
)

const SortedSuffix = ".sorted"

// OutputPath is the sibling file written for input.
func OutputPath(input string) string {
	return input + SortedSuffix
}

// Run normalizes, sorts and renumbers the barcode CSV at input and writes OutputPath(input).
// The output file is created only after every row was read and parsed.
func Run(input string, crlf bool) (output string, n int, err error) {
	file, err := os.Open(input)
	if err != nil {
		return
	}
	records, err := ReadRecords(bufio.NewReader(file))
	file.Close()
	if err != nil {
		err = fmt.Errorf("%s: %w", input, err)
		return
	}
	log.Printf("Read %d barcodes from %s", len(records), input)

	Normalize(records)
	Sort(records)
	Renumber(records)

	output = OutputPath(input)
	out, err := os.Create(output)
	if err != nil {
		return
	}
	var w = bufio.NewWriter(out)
	if err = WriteRecords(w, records, crlf); err == nil {
		err = w.Flush()
	}
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return
	}
	n = len(records)
	log.Printf("Wrote %d barcodes to %s", n, output)
	return
}
