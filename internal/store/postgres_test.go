package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRequirements(t *testing.T) {
	c := Company{ID: 3}
	err := decodeRequirements([]byte(`{"skills": ["python"], "experience": 2}`), &c)
	require.NoError(t, err)

	assert.Equal(t, []string{"python"}, c.Requirements.Skills)
	require.NotNil(t, c.Requirements.Experience)
	assert.Equal(t, 2.0, *c.Requirements.Experience)
}

func TestDecodeRequirements_CorruptRow(t *testing.T) {
	c := Company{ID: 7}
	err := decodeRequirements([]byte(`{not json`), &c)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "company 7")
}
