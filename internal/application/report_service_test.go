package application_test

import (
	"errors"
	"testing"

	"github.com/ScottGunn22/dirchecker/internal/application"
	"github.com/ScottGunn22/dirchecker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReader struct {
	page *domain.PageContent
	err  error
}

func (f *fakeReader) ReadFirstPage(string) (*domain.PageContent, error) { return f.page, f.err }

type fakeConfig struct{ cfg domain.QCConfig }

func (f *fakeConfig) Load(string) (domain.QCConfig, error) { return f.cfg, nil }

type memHistory struct{ entries []domain.RunEntry }

func (m *memHistory) Save(_ string, e domain.RunEntry) error {
	m.entries = append(m.entries, e)
	return nil
}
func (m *memHistory) Load(string) ([]domain.RunEntry, error) { return m.entries, nil }

func goodPage() *domain.PageContent {
	return &domain.PageContent{
		Text: "Penetration Testing Report\n" +
			"Preliminary Date: 02/14/2025\n" +
			"Report Issued Date: 02/21/2025\n" +
			"Report Status: Preliminary Report\n" +
			"VA Manager: Jane Smith\n" +
			"IP Address: 10.0.0.1\n10.0.0.2\n" +
			"URL Tested: https://example.com\n",
	}
}

func newReportService(reader domain.PageReader, history domain.RunHistory) *application.ReportService {
	return application.NewReportService(reader, &fakeConfig{cfg: domain.DefaultConfig()}, history, nil)
}

func TestValidateReport_AllFieldsValid(t *testing.T) {
	svc := newReportService(&fakeReader{page: goodPage()}, nil)

	result, err := svc.ValidateReport("report.pdf")
	require.NoError(t, err)

	assert.True(t, result.Passed)
	assert.Empty(t, result.Errors)
	require.Len(t, result.Fields, 5)
	for _, f := range result.Fields {
		assert.True(t, f.Valid, "%s: %s (value %q)", f.Name, f.Message, f.Value)
	}

	ip, ok := result.Field("IP Address")
	require.True(t, ok)
	assert.Equal(t, "10.0.0.1\n10.0.0.2", ip.Value)
}

func TestValidateReport_MissingFieldFailsDocument(t *testing.T) {
	page := goodPage()
	page.Text = "Preliminary Date: 02/14/2025\nReport Status: Preliminary Report\n"
	svc := newReportService(&fakeReader{page: page}, nil)

	result, err := svc.ValidateReport("report.pdf")
	require.NoError(t, err)

	assert.False(t, result.Passed)

	issued, ok := result.Field("Report Issued Date")
	require.True(t, ok)
	assert.False(t, issued.Valid)
	assert.Equal(t, "", issued.Value)
	assert.Contains(t, issued.Message, "field is empty")

	// Field order is preserved even through failures.
	names := make([]string, 0, len(result.Fields))
	for _, f := range result.Fields {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{
		"Preliminary Date", "Report Issued Date", "Report Status", "VA Manager", "IP Address",
	}, names)
}

func TestValidateReport_BackendFailureIsNotFatal(t *testing.T) {
	svc := newReportService(&fakeReader{err: errors.New("malformed xref table")}, nil)

	result, err := svc.ValidateReport("broken.pdf")
	require.NoError(t, err, "backend failures become report errors, not hard errors")

	assert.False(t, result.Passed)
	assert.Empty(t, result.Fields)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "malformed xref table")
}

func TestValidateReport_EmptyFirstPage(t *testing.T) {
	svc := newReportService(&fakeReader{page: &domain.PageContent{Text: "   \n"}}, nil)

	result, err := svc.ValidateReport("empty.pdf")
	require.NoError(t, err)

	assert.False(t, result.Passed)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "could not extract text")
}

func TestValidateReport_TableOnlyPageStillValidates(t *testing.T) {
	page := &domain.PageContent{
		Tables: [][][]string{{
			{"Preliminary Date", "02/14/2025"},
			{"Report Issued Date", "02/21/2025"},
			{"Report Status", "Preliminary Report"},
			{"VA Manager", "Jane Smith"},
			{"IP Address", "10.0.0.1"},
		}},
	}
	svc := newReportService(&fakeReader{page: page}, nil)

	result, err := svc.ValidateReport("tabular.pdf")
	require.NoError(t, err)
	assert.True(t, result.Passed)
}

func TestValidateReport_RecordsRun(t *testing.T) {
	history := &memHistory{}
	svc := newReportService(&fakeReader{page: goodPage()}, history)

	_, err := svc.ValidateReport("report.pdf")
	require.NoError(t, err)

	require.Len(t, history.entries, 1)
	assert.Equal(t, "report", history.entries[0].Kind)
	assert.Equal(t, "report.pdf", history.entries[0].Target)
	assert.True(t, history.entries[0].Passed)
}
