// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pubmed-fetcher/pkg/types"
)

func sampleRows() []types.ArticleRow {
	return []types.ArticleRow{
		{
			PubmedID:                 "12345678",
			Title:                    "Example Study",
			PublicationDate:          "2020-3",
			Authors:                  "Smith, Jane",
			NonAcademicAuthors:       "Smith, Jane",
			CompanyAffiliations:      "Acme Biotech, jsmith@acme.com",
			CorrespondingAuthorEmail: "jsmith@acme.com",
		},
		{
			PubmedID:                 "87654321",
			Title:                    `A "quoted" title, with commas`,
			PublicationDate:          "2023--05",
			Authors:                  "Doe, John; Roe, Ann",
			CorrespondingAuthorEmail: types.NoEmail,
		},
	}
}

func TestWriteCSV_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")
	rows := sampleRows()

	require.NoError(t, WriteCSV(path, rows))

	header, got, err := ReadCSV(path)
	require.NoError(t, err)
	assert.Equal(t, types.Columns, header)
	assert.Equal(t, rows, got)
}

func TestWriteCSV_HeaderAndLineEndings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")
	require.NoError(t, WriteCSV(path, sampleRows()[:1]))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"PubmedID,Title,Publication Date,Authors,Non-academic Authors,Company Affiliations,Corresponding Author Email\r\n"+
			`12345678,Example Study,2020-3,"Smith, Jane","Smith, Jane","Acme Biotech, jsmith@acme.com",jsmith@acme.com`+"\r\n",
		string(data))
}

func TestWriteCSV_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")
	require.NoError(t, os.WriteFile(path, []byte("old content that is much longer than needed\n"), 0o644))

	require.NoError(t, WriteCSV(path, nil))

	header, rows, err := ReadCSV(path)
	require.NoError(t, err)
	assert.Equal(t, types.Columns, header)
	assert.Empty(t, rows)
}

func TestWriteCSV_BadPath(t *testing.T) {
	err := WriteCSV(filepath.Join(t.TempDir(), "missing", "results.csv"), sampleRows())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating CSV file")
}

func TestReadCSV_Errors(t *testing.T) {
	dir := t.TempDir()

	empty := filepath.Join(dir, "empty.csv")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))
	_, _, err := ReadCSV(empty)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no header")

	short := filepath.Join(dir, "short.csv")
	require.NoError(t, os.WriteFile(short, []byte("a,b\n"), 0o644))
	_, _, err = ReadCSV(short)
	require.Error(t, err)

	_, _, err = ReadCSV(filepath.Join(dir, "nope.csv"))
	require.Error(t, err)
}

func TestPrint_Table(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Print(&buf, sampleRows(), types.OutputTable))

	out := buf.String()
	assert.Contains(t, out, "PubmedID:")
	assert.Contains(t, out, "12345678")
	assert.Contains(t, out, "Corresponding Author Email:")
	assert.Contains(t, out, "----")
}

func TestPrint_DefaultIsTable(t *testing.T) {
	var a, b bytes.Buffer
	require.NoError(t, Print(&a, sampleRows(), ""))
	require.NoError(t, Print(&b, sampleRows(), types.OutputTable))
	assert.Equal(t, a.String(), b.String())
}

func TestPrint_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Print(&buf, sampleRows(), types.OutputJSON))

	var got []types.ArticleRow
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sampleRows(), got)
	assert.Contains(t, buf.String(), `"pubmed_id": "12345678"`)
}

func TestPrint_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Print(&buf, sampleRows(), types.OutputYAML))

	var got []types.ArticleRow
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sampleRows(), got)
	assert.Contains(t, buf.String(), "pubmed_id: \"12345678\"")
}

func TestPrint_UnknownFormat(t *testing.T) {
	err := Print(&bytes.Buffer{}, sampleRows(), "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}
