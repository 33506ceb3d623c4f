package gemini

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToGenai(t *testing.T) {
	got := toGenai([]Content{
		NewText(RoleUser, "q1"),
		NewText(RoleModel, "<p>a1</p>"),
		{Role: RoleUser},
	})

	require.Len(t, got, 3)

	assert.Equal(t, "user", got[0].Role)
	require.Len(t, got[0].Parts, 1)
	assert.Equal(t, "q1", got[0].Parts[0].Text)

	assert.Equal(t, "model", got[1].Role)
	require.Len(t, got[1].Parts, 1)
	assert.Equal(t, "<p>a1</p>", got[1].Parts[0].Text)

	// no parts still yields one empty text part
	assert.Equal(t, "user", got[2].Role)
	require.Len(t, got[2].Parts, 1)
	assert.Empty(t, got[2].Parts[0].Text)
}

func TestToGenai_UnknownRoleIsUser(t *testing.T) {
	got := toGenai([]Content{NewText("system", "x")})
	require.Len(t, got, 1)
	assert.Equal(t, "user", got[0].Role)
}

func TestNewVertexClient_RequiresProjectAndLocation(t *testing.T) {
	_, err := NewVertexClient(context.Background(), "", "us-central1", "")
	assert.Error(t, err)

	_, err = NewVertexClient(context.Background(), "proj", "", "")
	assert.Error(t, err)
}
