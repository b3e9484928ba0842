package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDataset() Dataset {
	return Dataset{
		Headers: []string{"Name", "Email"},
		Rows: []map[string]string{
			{"Name": "Dita", "Email": "dita@example.com"},
			{"Name": "Rian, Jr.", "Email": "rian@example.com"},
		},
	}
}

func TestCSVRender(t *testing.T) {
	out, err := NewCSVExporter().Render(sampleDataset())
	require.NoError(t, err)

	assert.Equal(t, "Name,Email\nDita,dita@example.com\n\"Rian, Jr.\",rian@example.com\n", string(out))
}

func TestCSVRenderMissingColumnIsEmpty(t *testing.T) {
	out, err := NewCSVExporter().Render(Dataset{
		Headers: []string{"Name", "Phone"},
		Rows:    []map[string]string{{"Name": "Dita"}},
	})
	require.NoError(t, err)

	assert.Contains(t, string(out), "Dita,\n")
}

func TestCSVRenderRequiresHeaders(t *testing.T) {
	_, err := NewCSVExporter().Render(Dataset{})
	assert.Error(t, err)
}

func TestPDFRender(t *testing.T) {
	out, err := NewPDFExporter().Render(sampleDataset(), "Contact Messages")
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
	assert.NotEmpty(t, out)
}

func TestPDFRenderRequiresHeaders(t *testing.T) {
	_, err := NewPDFExporter().Render(Dataset{}, "empty")
	assert.Error(t, err)
}
