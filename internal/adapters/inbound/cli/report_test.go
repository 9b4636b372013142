package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/ScottGunn22/dirchecker/internal/adapters/inbound/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportCommand_CorruptPDFFails(t *testing.T) {
	t.Chdir(t.TempDir())

	path := filepath.Join(t.TempDir(), "report.pdf")
	require.NoError(t, os.WriteFile(path, []byte("not a pdf at all"), 0o644))

	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"report", path})
	err := cmd.Execute()
	assert.Error(t, err, "an unreadable PDF should fail QC")
	assert.Contains(t, buf.String(), "QC FAILED")
	assert.Contains(t, buf.String(), "error processing PDF")
}

func TestReportCommand_NoArgsShowsUsage(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"report"})
	err := cmd.Execute()
	assert.Error(t, err)
	assert.Contains(t, buf.String(), "usage: dirchecker report")
}

func TestReportCommand_TooManyArgsShowsUsage(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"report", "a.pdf", "b.pdf"})
	err := cmd.Execute()
	assert.Error(t, err)
	assert.Contains(t, buf.String(), "usage: dirchecker report")
}
