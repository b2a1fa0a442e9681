package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"maintenance-task-parser/internal/parser"
	parserUC "maintenance-task-parser/internal/parser/usecase"
	"maintenance-task-parser/pkg/datemath"
	"maintenance-task-parser/pkg/log"
	"maintenance-task-parser/pkg/nlpsvc"
	"maintenance-task-parser/pkg/response"
)

var parseFlags struct {
	file         string
	keywordsPath string
	timezone     string
	nlpURL       string
	nlpTimeout   time.Duration
}

var parseCmd = &cobra.Command{
	Use:   "parse [text]",
	Short: "Parse request text from an argument, a file, or stdin",
	Long: `Parse maintenance request text and print one JSON record per line.

Usage:
  mtparse parse "Light fixture broken in room 204, fix by Friday"
  mtparse parse -f requests.txt
  cat requests.txt | mtparse parse

Lines that cannot be parsed report an error field without failing the run.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	f := parseCmd.Flags()
	f.StringVarP(&parseFlags.file, "file", "f", "", "Read request text from a file instead of the argument")
	f.StringVar(&parseFlags.keywordsPath, "keywords", "", "YAML keyword table overrides")
	f.StringVar(&parseFlags.timezone, "timezone", "UTC", "IANA timezone for relative date phrases")
	f.StringVar(&parseFlags.nlpURL, "nlp-url", "http://localhost:8090", "NLP sidecar base URL")
	f.DurationVar(&parseFlags.nlpTimeout, "nlp-timeout", 10*time.Second, "NLP sidecar request timeout")
}

// lineRecord is the CLI output shape, one object per input line.
type lineRecord struct {
	ID       string  `json:"id"`
	Line     string  `json:"line"`
	TaskType string  `json:"task_type,omitempty"`
	Location *string `json:"location,omitempty"`
	Asset    *string `json:"asset,omitempty"`
	Priority string  `json:"priority,omitempty"`
	DueDate  *string `json:"due_date,omitempty"`
	Error    string  `json:"error,omitempty"`
}

func runParse(cmd *cobra.Command, args []string) error {
	text, err := readInput(args)
	if err != nil {
		return err
	}

	tables := parser.DefaultTables()
	if parseFlags.keywordsPath != "" {
		tables, err = parser.LoadTables(parseFlags.keywordsPath)
		if err != nil {
			return err
		}
	}

	dateMath, err := datemath.NewParser(parseFlags.timezone)
	if err != nil {
		return err
	}

	logger := log.Init(log.ZapConfig{Level: "error", Mode: "production", Encoding: "console"})
	nlp := nlpsvc.NewClient(parseFlags.nlpURL, parseFlags.nlpTimeout)

	uc := parserUC.New(logger, tables, nlp, dateMath, nil, "")
	out, err := uc.ParseBatch(cmd.Context(), parser.ParseBatchInput{Text: text})
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	for _, res := range out.Results {
		rec := lineRecord{ID: res.ID, Line: res.Line}
		if res.Err != nil {
			rec.Error = res.Err.Error()
		} else if res.Task != nil {
			rec.TaskType = string(res.Task.TaskType)
			rec.Location = res.Task.Location
			rec.Asset = res.Task.Asset
			rec.Priority = string(res.Task.Priority)
			if res.Task.DueDate != nil {
				due := res.Task.DueDate.Format(response.DateFormat)
				rec.DueDate = &due
			}
		}
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("encode record: %w", err)
		}
	}
	return nil
}

func readInput(args []string) (string, error) {
	if parseFlags.file != "" {
		data, err := os.ReadFile(parseFlags.file)
		if err != nil {
			return "", fmt.Errorf("read input file: %w", err)
		}
		return string(data), nil
	}
	if len(args) > 0 {
		return args[0], nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}
