package commands

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/DR-BoneZ/lightning-wire-msgs-go/pkg/log"
)

// Stats holds aggregate statistics about a capture.
type Stats struct {
	TotalEvents       int
	EventsByLayer     map[log.Layer]int
	EventsByCategory  map[log.Category]int
	EventsByDirection map[log.Direction]int
	MessagesByName    map[string]int
	Connections       map[string]*ConnectionStats
	Errors            int
	Start, End        time.Time
}

// ConnectionStats holds statistics for a single connection.
type ConnectionStats struct {
	FirstSeen  time.Time
	LastSeen   time.Time
	Events     int
	Role       log.Role
	RemoteAddr string
	Bytes      int
}

// CollectStats reads every event from reader.
func CollectStats(reader *log.Reader) (*Stats, error) {
	stats := &Stats{
		EventsByLayer:     make(map[log.Layer]int),
		EventsByCategory:  make(map[log.Category]int),
		EventsByDirection: make(map[log.Direction]int),
		MessagesByName:    make(map[string]int),
		Connections:       make(map[string]*ConnectionStats),
	}

	err := forEach(reader, func(event log.Event) error {
		stats.TotalEvents++
		stats.EventsByLayer[event.Layer]++
		stats.EventsByCategory[event.Category]++
		stats.EventsByDirection[event.Direction]++

		if stats.Start.IsZero() || event.Timestamp.Before(stats.Start) {
			stats.Start = event.Timestamp
		}
		if event.Timestamp.After(stats.End) {
			stats.End = event.Timestamp
		}

		conn, ok := stats.Connections[event.ConnectionID]
		if !ok {
			conn = &ConnectionStats{FirstSeen: event.Timestamp, LastSeen: event.Timestamp, Role: event.LocalRole}
			stats.Connections[event.ConnectionID] = conn
		}
		conn.Events++
		if event.Timestamp.After(conn.LastSeen) {
			conn.LastSeen = event.Timestamp
		}
		if conn.RemoteAddr == "" {
			conn.RemoteAddr = event.RemoteAddr
		}

		switch {
		case event.Frame != nil:
			conn.Bytes += event.Frame.Size
		case event.Message != nil:
			stats.MessagesByName[event.Message.Name]++
		case event.Error != nil:
			stats.Errors++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// RunStats analyzes the capture at path and prints statistics.
func RunStats(path string, w io.Writer) error {
	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	stats, err := CollectStats(reader)
	if err != nil {
		return err
	}
	printStats(w, stats)
	return nil
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== Watchtower Protocol Log Statistics ===")
	fmt.Fprintln(w)

	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n", stats.Start.Format(time.RFC3339), stats.End.Format(time.RFC3339))
		fmt.Fprintf(w, "Duration:   %s\n\n", stats.End.Sub(stats.Start).Round(time.Second))
	}
	fmt.Fprintf(w, "Total Events: %d\n\n", stats.TotalEvents)

	fmt.Fprintln(w, "Events by Layer:")
	for _, layer := range []log.Layer{log.LayerTransport, log.LayerWire, log.LayerSession} {
		if n := stats.EventsByLayer[layer]; n > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", layer.String()+":", n)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Category:")
	for _, cat := range []log.Category{log.CategoryMessage, log.CategoryState, log.CategoryError} {
		if n := stats.EventsByCategory[cat]; n > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", cat.String()+":", n)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Direction:")
	for _, dir := range []log.Direction{log.DirectionIn, log.DirectionOut} {
		if n := stats.EventsByDirection[dir]; n > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", dir.String()+":", n)
		}
	}
	fmt.Fprintln(w)

	if len(stats.MessagesByName) > 0 {
		names := make([]string, 0, len(stats.MessagesByName))
		for name := range stats.MessagesByName {
			names = append(names, name)
		}
		sort.Strings(names)
		fmt.Fprintln(w, "Messages:")
		for _, name := range names {
			fmt.Fprintf(w, "  %-20s %d\n", name+":", stats.MessagesByName[name])
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Connections: %d\n", len(stats.Connections))
	ids := make([]string, 0, len(stats.Connections))
	for id := range stats.Connections {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return stats.Connections[ids[i]].FirstSeen.Before(stats.Connections[ids[j]].FirstSeen)
	})
	for _, id := range ids {
		c := stats.Connections[id]
		fmt.Fprintf(w, "  [%s] %s, %d events, %d frame bytes, duration %s\n",
			shortenConnID(id), c.Role, c.Events, c.Bytes, c.LastSeen.Sub(c.FirstSeen).Round(time.Millisecond))
		if c.RemoteAddr != "" {
			fmt.Fprintf(w, "           Remote: %s\n", c.RemoteAddr)
		}
	}

	if stats.Errors > 0 {
		fmt.Fprintf(w, "\nErrors: %d\n", stats.Errors)
	}
}
