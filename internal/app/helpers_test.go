package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"github.com/tacogips/crogen/internal/greeter"
)

func init() {
	color.NoColor = true
	greeter.SetPlain(true)
}

const projectConfig = `experimentation:
  testNameFormat: "[<%= testId %>][<%= experiment.testType %>][<%= testName %>]"
  projects:
    - project_name: Main
      auth_token: secret
      project_id: 123
      default: true
      audiences:
        mobile: 11
prompts:
  config:
    developers: [Ada, Grace]
    childFolders: [teamA]
    homepageUrl: https://shop.test/
    testIdExample: CRO-1
    testNameExample: Hero banner
  files:
    control: {showInPrompts: true, checkedByDefault: true}
    shared: {showInPrompts: true, checkedByDefault: true}
    variation: {showInPrompts: true, checkedByDefault: true}
    js: {showInPrompts: true, checkedByDefault: true}
    css: {showInPrompts: true, checkedByDefault: false}
    readme: {showInPrompts: true, checkedByDefault: true, fileExtension: md, singleFile: true}
output:
  destination: _tests
  localhost: http://localhost:3000
templates:
  customDirectory: _templates
`

// writeProject creates a project directory holding cro.config.yaml.
func writeProject(t *testing.T, cfg string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cro.config.yaml"), []byte(cfg), 0644))
	return dir
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
