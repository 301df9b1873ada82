package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_SkillGapPrompt(t *testing.T) {
	prompt, err := Get(SkillGapFile, "analyze")
	require.NoError(t, err)
	assert.Contains(t, prompt, "career advisor and skills gap analyzer")
	assert.Contains(t, prompt, `"learningResources"`)
	assert.Contains(t, prompt, "{{.Resume}}")
	assert.Contains(t, prompt, "{{.JobRole}}")
}

func TestGet_InvalidFile(t *testing.T) {
	_, err := Get("nonexistent.json", "some-key")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read prompt file")
}

func TestGet_InvalidKey(t *testing.T) {
	_, err := Get(SkillGapFile, "nonexistent-key")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestFormat(t *testing.T) {
	template := "Hello {{.Name}}, welcome to {{.Company}}! {{.Unknown}}"
	data := map[string]string{
		"Name":    "Alice",
		"Company": "Acme Corp",
	}

	result := Format(template, data)
	assert.Equal(t, "Hello Alice, welcome to Acme Corp! {{.Unknown}}", result)
}

func TestFormat_ValuesAreNotReexpanded(t *testing.T) {
	result := Format("{{.A}} {{.B}}", map[string]string{"A": "{{.B}}", "B": "b"})
	assert.Equal(t, "{{.B}} b", result)
}

func TestRender(t *testing.T) {
	prompt, err := Render(SkillGapFile, "analyze", map[string]string{
		"Resume":  "Go developer, 5 years",
		"JobRole": "Platform Engineer",
	})
	require.NoError(t, err)
	assert.Contains(t, prompt, "My resume: Go developer, 5 years")
	assert.Contains(t, prompt, "My desired job role: Platform Engineer")
	assert.NotContains(t, prompt, "{{.")
}
