package model

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gocarina/gocsv"
	"github.com/stretchr/testify/assert"
)

func TestPlayerCSV_CSVTags(t *testing.T) {
	row := PlayerCSV{
		Name: "Alice",
		Team: "CT",
	}

	var buf bytes.Buffer
	err := gocsv.Marshal([]*PlayerCSV{&row}, &buf)
	assert.NoError(t, err)

	csvContent := buf.String()
	assert.Contains(t, csvContent, "name,team")
	assert.Contains(t, csvContent, "Alice,CT")
}

func TestPlayerCSV_CSVUnmarshaling(t *testing.T) {
	csvContent := `name,team
Alice,CT
Bob,TT`

	reader := strings.NewReader(csvContent)
	var rows []*PlayerCSV
	err := gocsv.Unmarshal(reader, &rows)
	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, "Alice", rows[0].Name)
	assert.Equal(t, "CT", rows[0].Team)
	assert.Equal(t, "Bob", rows[1].Name)
	assert.Equal(t, "TT", rows[1].Team)
}

func TestPlayerCSV_EmptyFields(t *testing.T) {
	csvContent := `name,team
Alice,
,TT
,`

	reader := strings.NewReader(csvContent)
	var rows []*PlayerCSV
	err := gocsv.Unmarshal(reader, &rows)
	assert.NoError(t, err)
	assert.Len(t, rows, 3)
	assert.Equal(t, "Alice", rows[0].Name)
	assert.Equal(t, "", rows[0].Team)
	assert.Equal(t, "", rows[1].Name)
	assert.Equal(t, "TT", rows[1].Team)
	assert.Equal(t, "", rows[2].Name)
	assert.Equal(t, "", rows[2].Team)
}

func TestPlayerCSV_QuotedFields(t *testing.T) {
	csvContent := `name,team
"Smith, John",CT
"Ana ""Ace"" Lee",TT`

	reader := strings.NewReader(csvContent)
	var rows []*PlayerCSV
	err := gocsv.Unmarshal(reader, &rows)
	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, "Smith, John", rows[0].Name)
	assert.Equal(t, `Ana "Ace" Lee`, rows[1].Name)
}

func TestPlayerCSV_InvalidCSV(t *testing.T) {
	csvContent := `name,team
"Unclosed quote,CT`

	reader := strings.NewReader(csvContent)
	var rows []*PlayerCSV
	err := gocsv.Unmarshal(reader, &rows)
	assert.Error(t, err)
}

func TestPlayerCSV_HeadersOnly(t *testing.T) {
	csvContent := `name,team`

	reader := strings.NewReader(csvContent)
	var rows []*PlayerCSV
	err := gocsv.Unmarshal(reader, &rows)
	assert.NoError(t, err)
	assert.Len(t, rows, 0)
}

func TestPlayerCSV_ExtraColumns(t *testing.T) {
	csvContent := `name,team,rank
Alice,CT,ignored
Bob,TT,also ignored`

	reader := strings.NewReader(csvContent)
	var rows []*PlayerCSV
	err := gocsv.Unmarshal(reader, &rows)
	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, "Alice", rows[0].Name)
	assert.Equal(t, "CT", rows[0].Team)
}
