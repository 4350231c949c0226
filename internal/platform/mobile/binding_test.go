package mobile

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"passwordStrengthChecker/internal/adapter/export"
	"passwordStrengthChecker/internal/core/domain"
	"passwordStrengthChecker/internal/core/service"
)

type reply struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func decode(t *testing.T, s string) reply {
	t.Helper()
	var e reply
	require.NoError(t, json.Unmarshal([]byte(s), &e))
	return e
}

func newBinding() *MobileBinding {
	return NewMobileBinding(service.NewStrengthService(nil), export.NewExporter())
}

func TestAnalyze(t *testing.T) {
	out := newBinding().Analyze("hunter2")
	assert.NotContains(t, out, "hunter2")

	e := decode(t, out)
	require.True(t, e.Success)
	var report domain.Report
	require.NoError(t, json.Unmarshal(e.Data, &report))
	assert.Equal(t, 7, report.Length)
	assert.Equal(t, "*******", report.Password)
}

func TestExport_AcceptsEnvelopeOrBareReport(t *testing.T) {
	b := newBinding()
	wrapped := b.Analyze("Tr0ub4dor&3")
	bare := string(decode(t, wrapped).Data)
	dir := t.TempDir()

	for i, in := range []string{wrapped, bare} {
		path := filepath.Join(dir, []string{"a.json", "b.txt"}[i])
		format := []string{"json", "txt"}[i]
		e := decode(t, b.Export(in, path, format))
		assert.True(t, e.Success, e.Error)
		assert.FileExists(t, path)
	}
}

func TestExport_Errors(t *testing.T) {
	b := newBinding()
	report := b.Analyze("abc")

	e := decode(t, b.Export("{not json", filepath.Join(t.TempDir(), "x.json"), "json"))
	assert.False(t, e.Success)
	assert.Contains(t, e.Error, "invalid report json")

	path := filepath.Join(t.TempDir(), "x.xml")
	e = decode(t, b.Export(report, path, "xml"))
	assert.False(t, e.Success)
	assert.Contains(t, e.Error, string(domain.ErrInvalidFormat))
	assert.NoFileExists(t, path)
}

func TestExport_RejectsFailedEnvelope(t *testing.T) {
	b := newBinding()
	failed := respond(nil, errors.New("analysis unavailable"))

	path := filepath.Join(t.TempDir(), "x.json")
	e := decode(t, b.Export(failed, path, "json"))
	assert.False(t, e.Success)
	assert.Contains(t, e.Error, "analysis unavailable")
	assert.NoFileExists(t, path)
}

func TestRespond_UnencodableData(t *testing.T) {
	e := decode(t, respond(make(chan int), nil))
	assert.False(t, e.Success)
	assert.Contains(t, e.Error, "unsupported type")
	assert.Empty(t, e.Data)
}
