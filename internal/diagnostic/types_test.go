package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics(t *testing.T) {
	var d Diagnostics
	assert.NoError(t, d.Error())

	d.AddWarning(CodeUnknownMember, "no member Nme", "Customer", "Nme", "Name")
	d.AddInfo("note", "just saying", "", "")
	assert.False(t, d.HasErrors())

	d.AddError(CodeInvalidPath, "empty member name", "", "A..B")
	require.True(t, d.HasErrors())

	all := d.All()
	require.Len(t, all, 3)
	assert.Equal(t, DiagnosticError, all[0].Severity)
	assert.Equal(t, "A..B: [invalid-path] empty member name", d.Error().Error())
	assert.Equal(t,
		"[Customer] Nme: [unknown-member] no member Nme (did you mean Name?)",
		d.Warnings[0].String())

	var other Diagnostics
	other.AddError(CodeRowWidth, "row 2 has 3 cells", "", "")
	d.Merge(other)
	assert.Len(t, d.Errors, 2)
}

func TestDiagnosticSeverity_String(t *testing.T) {
	assert.Equal(t, "info", DiagnosticInfo.String())
	assert.Equal(t, "warning", DiagnosticWarning.String())
	assert.Equal(t, "error", DiagnosticError.String())
	assert.Equal(t, "unknown", DiagnosticSeverity(9).String())
}
