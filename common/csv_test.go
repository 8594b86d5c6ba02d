package common

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/researchaccelerator-hub/channel-categorizer/model"
)

func TestLoadRecords(t *testing.T) {
	t.Run("url and name columns", func(t *testing.T) {
		in := "Channel URL,Channel Name\nhttps://youtube.com/@a,Alpha\nhttps://youtube.com/@b,Beta\n"
		records, err := LoadRecords(strings.NewReader(in))
		assert.NoError(t, err)
		assert.Len(t, records, 2)
		assert.Equal(t, "https://youtube.com/@a", records[0].URL)
		assert.Equal(t, "Alpha", records[0].Name)
		assert.Equal(t, model.StatusPending, records[0].Status)
	})

	t.Run("url-only header gets generated names", func(t *testing.T) {
		in := "YouTube Channel URL\nhttps://youtube.com/@a\nhttps://youtube.com/@b\n"
		records, err := LoadRecords(strings.NewReader(in))
		assert.NoError(t, err)
		assert.Len(t, records, 2)
		assert.Equal(t, "Channel 1", records[0].Name)
		assert.Equal(t, "Channel 2", records[1].Name)
	})

	t.Run("empty URL cells skipped without breaking numbering", func(t *testing.T) {
		in := "Channel URL\nhttps://youtube.com/@a\n\nhttps://youtube.com/@c\n"
		records, err := LoadRecords(strings.NewReader(in))
		assert.NoError(t, err)
		assert.Len(t, records, 2)
		assert.Equal(t, "Channel 2", records[1].Name)
	})

	t.Run("header matching is case-insensitive", func(t *testing.T) {
		in := "CHANNEL URL,CHANNEL NAME\nhttps://youtube.com/@a,Alpha\n"
		records, err := LoadRecords(strings.NewReader(in))
		assert.NoError(t, err)
		assert.Len(t, records, 1)
	})

	t.Run("missing url column is an error", func(t *testing.T) {
		in := "Something,Else\nfoo,bar\n"
		_, err := LoadRecords(strings.NewReader(in))
		assert.Error(t, err)
	})

	t.Run("empty input is an error", func(t *testing.T) {
		_, err := LoadRecords(strings.NewReader(""))
		assert.Error(t, err)
	})
}

func TestWriteRecords(t *testing.T) {
	records := []model.ChannelRecord{
		{URL: "https://youtube.com/@a", Name: "Alpha", Category: "Cars", Status: model.StatusCompleted},
		{URL: "https://youtube.com/@b", Name: "Beta", Status: model.StatusError, Error: "not found"},
	}

	var buf bytes.Buffer
	err := WriteRecords(&buf, records)
	assert.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, "URL,NAME,CATEGORY", lines[0])
	assert.Equal(t, "https://youtube.com/@a,Alpha,Cars", lines[1])
	// Errored records export with an empty category.
	assert.Equal(t, "https://youtube.com/@b,Beta,", lines[2])
}

func TestGenerateBatchID(t *testing.T) {
	a := GenerateBatchID()
	b := GenerateBatchID()
	assert.NotEqual(t, a, b)
	assert.Regexp(t, `^\d{14}-[0-9a-f]{8}$`, a)
}
