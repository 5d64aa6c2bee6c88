package karabiner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDigestStableAcrossFormatting(t *testing.T) {
	doc := NewDocument(sampleRules(), DocumentOptions{})

	fromDoc, err := Digest(doc)
	require.NoError(t, err)

	pretty, err := Marshal(doc)
	require.NoError(t, err)
	fromJSON, err := DigestJSON(pretty)
	require.NoError(t, err)

	assert.Equal(t, fromDoc, fromJSON)
	assert.Len(t, fromDoc, 64)
}

func TestDigestChangesWithContent(t *testing.T) {
	a, err := Digest(NewDocument(sampleRules(), DocumentOptions{}))
	require.NoError(t, err)
	b, err := Digest(NewDocument(sampleRules(), DocumentOptions{ShowInMenuBar: true}))
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestHashWithDomainSeparation(t *testing.T) {
	data := []byte("{}")
	assert.NotEqual(t, hashWithDomain("hyperkey/document/v1", data), hashWithDomain("hyperkey/document/v2", data))
	assert.Equal(t, hashWithDomain(DomainDocument, data), hashWithDomain(DomainDocument, data))
}

func TestDigestJSONInvalid(t *testing.T) {
	_, err := DigestJSON([]byte("not json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DigestJSON")
}
