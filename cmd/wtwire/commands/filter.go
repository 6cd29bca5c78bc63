package commands

import (
	"fmt"
	"time"

	"github.com/DR-BoneZ/lightning-wire-msgs-go/pkg/log"
)

// FilterOptions holds event selection flags as typed on the command line.
// Empty fields match everything.
type FilterOptions struct {
	ConnID      string
	Layer       string
	Direction   string
	Category    string
	MessageType string
	TimeStart   string
	TimeEnd     string
}

// BuildFilter parses opts into a log.Filter.
func BuildFilter(opts FilterOptions) (log.Filter, error) {
	filter := log.Filter{ConnectionID: opts.ConnID}

	if opts.Layer != "" {
		l, err := ParseLayerFlag(opts.Layer)
		if err != nil {
			return log.Filter{}, err
		}
		filter.Layer = &l
	}
	if opts.Direction != "" {
		d, err := ParseDirectionFlag(opts.Direction)
		if err != nil {
			return log.Filter{}, err
		}
		filter.Direction = &d
	}
	if opts.Category != "" {
		c, err := ParseCategoryFlag(opts.Category)
		if err != nil {
			return log.Filter{}, err
		}
		filter.Category = &c
	}
	if opts.MessageType != "" {
		t, err := ParseMessageTypeFlag(opts.MessageType)
		if err != nil {
			return log.Filter{}, err
		}
		filter.MessageType = &t
	}
	if opts.TimeStart != "" {
		t, err := time.Parse(time.RFC3339, opts.TimeStart)
		if err != nil {
			return log.Filter{}, fmt.Errorf("invalid time-start format: %w", err)
		}
		filter.TimeStart = &t
	}
	if opts.TimeEnd != "" {
		t, err := time.Parse(time.RFC3339, opts.TimeEnd)
		if err != nil {
			return log.Filter{}, fmt.Errorf("invalid time-end format: %w", err)
		}
		filter.TimeEnd = &t
	}
	return filter, nil
}

// RunFilter copies the events of the capture at path that match filter to
// a new capture at output, returning how many were copied.
func RunFilter(path, output string, filter log.Filter) (int, error) {
	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	logger, err := log.NewFileLogger(output)
	if err != nil {
		return 0, fmt.Errorf("failed to create output logger: %w", err)
	}

	count := 0
	err = forEach(reader, func(event log.Event) error {
		logger.Log(event)
		count++
		return nil
	})
	if closeErr := logger.Close(); err == nil {
		err = closeErr
	}
	return count, err
}
