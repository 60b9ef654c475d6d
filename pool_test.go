package xbrl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractMembersPooled_PreservesArchiveOrder(t *testing.T) {
	members := []ZipMember{
		{Name: "Prod224_3082_00000001_20201231.html", Data: []byte("<html></html>")},
		{Name: "Prod224_3082_00000002_20201231.html", Data: []byte("<html></html>")},
		{Name: "Prod224_3082_00000003_20201231.html", Data: []byte("<html></html>")},
		{Name: "Prod224_3082_00000004_20201231.html", Data: []byte("<html></html>")},
	}

	results, err := ExtractMembersPooled(context.Background(), members, 2)
	require.NoError(t, err)
	require.Len(t, results, len(members))
	for i, result := range results {
		assert.Equal(t, members[i].Name, result.Member.Name)
		assert.NoError(t, result.Err)
		assert.Len(t, result.Rows, 1)
	}
}

func TestExtractMembersPooled_BadFilenameSurfacesInResultErr(t *testing.T) {
	members := []ZipMember{
		{Name: "Prod224_3082_00000001_20201231.html", Data: []byte("<html></html>")},
		{Name: "not-a-valid-accounts-filename.html", Data: []byte("<html></html>")},
	}

	results, err := ExtractMembersPooled(context.Background(), members, 2)
	require.NoError(t, err)
	require.Len(t, results, len(members))

	assert.NoError(t, results[0].Err)
	assert.Len(t, results[0].Rows, 1)

	require.Error(t, results[1].Err)
	var badFilename *BadFilenameError
	assert.ErrorAs(t, results[1].Err, &badFilename)
	assert.Nil(t, results[1].Rows)
}

func TestExtractMembersPooled_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	members := []ZipMember{
		{Name: "Prod224_3082_00000001_20201231.html", Data: []byte("<html></html>")},
	}
	_, err := ExtractMembersPooled(ctx, members, 1)
	assert.Error(t, err)
}
