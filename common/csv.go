package common

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/researchaccelerator-hub/channel-categorizer/model"
)

// Header names accepted for the URL column, compared case-insensitively.
var urlHeaders = []string{"channel url", "youtube channel url", "url"}

// Header names accepted for the name column.
var nameHeaders = []string{"channel name", "name"}

// LoadRecords parses a header-based CSV of channel URLs into pending
// records. Rows with an empty URL cell are skipped; rows without a name get
// "Channel {n}" based on their position.
func LoadRecords(r io.Reader) ([]model.ChannelRecord, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("CSV file is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	urlCol := findColumn(header, urlHeaders)
	if urlCol < 0 {
		return nil, fmt.Errorf("CSV header has no channel URL column (accepted: %s)", strings.Join(urlHeaders, ", "))
	}
	nameCol := findColumn(header, nameHeaders)

	var records []model.ChannelRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}

		if urlCol >= len(row) {
			continue
		}
		url := strings.TrimSpace(row[urlCol])
		if url == "" {
			continue
		}

		name := ""
		if nameCol >= 0 && nameCol < len(row) {
			name = strings.TrimSpace(row[nameCol])
		}
		if name == "" {
			name = fmt.Sprintf("Channel %d", len(records)+1)
		}

		records = append(records, model.ChannelRecord{
			URL:    url,
			Name:   name,
			Status: model.StatusPending,
		})
	}

	return records, nil
}

// WriteRecords serializes processed records as CSV with the stable
// URL,NAME,CATEGORY shape downstream consumers expect.
func WriteRecords(w io.Writer, records []model.ChannelRecord) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"URL", "NAME", "CATEGORY"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, rec := range records {
		if err := writer.Write([]string{rec.URL, rec.Name, rec.Category}); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// findColumn returns the index of the first header cell matching any of the
// accepted names, or -1.
func findColumn(header []string, accepted []string) int {
	for i, cell := range header {
		cell = strings.ToLower(strings.TrimSpace(cell))
		for _, name := range accepted {
			if cell == name {
				return i
			}
		}
	}
	return -1
}
