package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/liserjrqlxue/goUtil/textUtil"

	"github.com/liserjrqlxue/barcodePrep/barcode"
	"github.com/liserjrqlxue/barcodePrep/hist"
)

// task steps
const (
	StepMergeHist    = "mergeHist"
	StepSortBarcodes = "sortBarcodes"
)

type Task struct {
	TaskName  string
	Step      string
	Input     string
	Threshold int64
	Ext       string
	Output    string
}

func createTask(cfg map[string]string, index int) (*Task, error) {
	task := Task{
		TaskName:  fmt.Sprintf("%s[%d]", cfg["step"], index),
		Step:      cfg["step"],
		Input:     cfg["input"],
		Threshold: hist.DefaultThreshold,
		Ext:       cfg["ext"],
		Output:    cfg["output"],
	}
	switch task.Step {
	case StepMergeHist, StepSortBarcodes:
	default:
		return nil, fmt.Errorf("task %d: unknown step %q", index, task.Step)
	}
	if task.Input == "" {
		return nil, fmt.Errorf("task %d: empty input", index)
	}
	if cfg["threshold"] != "" {
		threshold, err := strconv.ParseInt(cfg["threshold"], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("task %d: bad threshold %q", index, cfg["threshold"])
		}
		task.Threshold = threshold
	}
	return &task, nil
}

// checkTaskList fails on a missing list or a row wider than the header
func checkTaskList(input string) error {
	file, err := os.Open(input)
	if err != nil {
		return fmt.Errorf("task list: %w", err)
	}
	defer file.Close()

	var (
		scanner = bufio.NewScanner(file)
		width   = -1
		lineNo  = 0
	)
	for scanner.Scan() {
		lineNo++
		var n = len(strings.Split(scanner.Text(), "\t"))
		if width < 0 {
			width = n
			continue
		}
		if n > width {
			return fmt.Errorf("task list %s line %d: %d fields, header has %d", input, lineNo, n, width)
		}
	}
	return scanner.Err()
}

// parseTasks reads the task list TSV, rows with empty step are skipped
func parseTasks(input string) (taskList []*Task, err error) {
	if err = checkTaskList(input); err != nil {
		return
	}
	cfgInfo, _ := textUtil.File2MapArray(input, "\t", nil)
	for i, item := range cfgInfo {
		if item["step"] == "" {
			continue
		}
		task, err := createTask(item, i+1)
		if err != nil {
			return nil, err
		}
		taskList = append(taskList, task)
	}
	return
}

func (task *Task) Run(crlf bool) error {
	log.Printf("Task[%-16s] start %s", task.TaskName, task.Input)
	switch task.Step {
	case StepMergeHist:
		var merger = &hist.Merger{
			Dir:       task.Input,
			Threshold: task.Threshold,
			Ext:       task.Ext,
			Output:    task.Output,
		}
		if _, err := merger.Run(); err != nil {
			return fmt.Errorf("Task[%s]: %w", task.TaskName, err)
		}
	case StepSortBarcodes:
		if _, _, err := barcode.Run(task.Input, crlf); err != nil {
			return fmt.Errorf("Task[%s]: %w", task.TaskName, err)
		}
	}
	log.Printf("Task[%-16s] done", task.TaskName)
	return nil
}

func runTasks(taskList []*Task, crlf bool) error {
	for _, task := range taskList {
		if err := task.Run(crlf); err != nil {
			return err
		}
	}
	return nil
}
