package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDataset() Dataset {
	return Dataset{
		Headers: []string{"ID", "Name", "Code"},
		Rows: [][]string{
			{"1", "Mathematics", "MATH"},
			{"2", "Physics", "PHYS"},
		},
	}
}

func TestCSVRender(t *testing.T) {
	body, err := NewCSVExporter().Render(sampleDataset())
	require.NoError(t, err)
	assert.Equal(t, "ID,Name,Code\n1,Mathematics,MATH\n2,Physics,PHYS\n", string(body))
}

func TestCSVRenderRequiresHeaders(t *testing.T) {
	_, err := NewCSVExporter().Render(Dataset{})
	assert.Error(t, err)
}

func TestCSVRenderPadsShortRows(t *testing.T) {
	data := Dataset{
		Headers: []string{"ID", "Name"},
		Rows:    [][]string{{"1"}},
	}
	body, err := NewCSVExporter().Render(data)
	require.NoError(t, err)
	assert.Equal(t, "ID,Name\n1,\n", string(body))
}

func TestPDFRender(t *testing.T) {
	body, err := NewPDFExporter().Render(sampleDataset(), "departments")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")), "well-formed PDF header")
}
