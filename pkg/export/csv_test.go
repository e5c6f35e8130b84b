package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVExporterRender(t *testing.T) {
	exporter := NewCSVExporter()

	data, err := exporter.Render(Dataset{
		Headers: []string{"Matric Number", "Full Name"},
		Rows: []map[string]string{
			{"Matric Number": "csc/2025/6612", "Full Name": "Ada Obi"},
			{"Matric Number": "phy/2024/1200"},
		},
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Matric Number,Full Name", lines[0])
	assert.Equal(t, "csc/2025/6612,Ada Obi", lines[1])
	assert.Equal(t, "phy/2024/1200,", lines[2])
}

func TestCSVExporterRequiresHeaders(t *testing.T) {
	exporter := NewCSVExporter()

	_, err := exporter.Render(Dataset{})
	assert.Error(t, err)
}
