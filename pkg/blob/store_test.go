package blob

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeys(t *testing.T) {
	assert.Equal(t, "proj-1/outputs/system_architecture.txt", StageOutputKey("proj-1", "system_architecture"))
	assert.Equal(t, "proj-1/files/src/main.py", ProjectFileKey("proj-1", "src/main.py"))
	assert.Equal(t, "proj-1/files/", ProjectFilesPrefix("proj-1"))
}

func TestRefRoundTrip(t *testing.T) {
	ref := FormatRef("nexus-ai-workflow-files", "workflow-files/proj-1/outputs/agent_design.txt")
	assert.Equal(t, "s3://nexus-ai-workflow-files/workflow-files/proj-1/outputs/agent_design.txt", ref)

	bucket, key, err := ParseRef(ref)
	require.NoError(t, err)
	assert.Equal(t, "nexus-ai-workflow-files", bucket)
	assert.Equal(t, "workflow-files/proj-1/outputs/agent_design.txt", key)
}

func TestParseRefInvalid(t *testing.T) {
	for _, ref := range []string{"", "http://bucket/key", "s3://", "s3://bucket", "s3://bucket/"} {
		_, _, err := ParseRef(ref)
		assert.Error(t, err, ref)
	}
}
