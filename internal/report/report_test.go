package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleResult() *Result {
	return &Result{
		Day:   "01",
		Title: "Report Repair",
		Answers: []Answer{
			{Part: 1, Label: "product of pair", Value: 514579},
			{Part: 2, Label: "product of triple", Value: nil},
		},
	}
}

func TestWrite_Text(t *testing.T) {
	out := &bytes.Buffer{}

	require.NoError(t, Write(out, FormatText, sampleResult()))

	want := "Day 01: Report Repair\n" +
		"  [Part 1] product of pair: 514579\n" +
		"  [Part 2] product of triple: (none)\n"
	assert.Equal(t, want, out.String())
}

func TestWrite_JSON(t *testing.T) {
	out := &bytes.Buffer{}

	require.NoError(t, Write(out, FormatJSON, sampleResult()))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, "01", decoded["day"])
	answers := decoded["answers"].([]any)
	require.Len(t, answers, 2)
	assert.EqualValues(t, 514579, answers[0].(map[string]any)["value"])
	assert.Nil(t, answers[1].(map[string]any)["value"])
}

func TestWrite_YAML(t *testing.T) {
	out := &bytes.Buffer{}

	require.NoError(t, Write(out, FormatYAML, sampleResult()))

	var decoded Result
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, "Report Repair", decoded.Title)
	require.Len(t, decoded.Answers, 2)
	assert.Equal(t, 514579, decoded.Answers[0].Value)
	assert.Nil(t, decoded.Answers[1].Value)
}

func TestWrite_UnknownFormat(t *testing.T) {
	err := Write(&bytes.Buffer{}, "xml", sampleResult())
	assert.ErrorContains(t, err, `unsupported report format "xml"`)
	assert.False(t, Valid("xml"))
	assert.True(t, Valid(FormatYAML))
}
