package harness

import (
	"bytes"
	"fmt"
	"text/template"
	"time"
)

// sessionStampLayout is the layout for session headings in progress.txt.
const sessionStampLayout = "2006-01-02 15:04"

// progressTemplate is the initial progress.txt. The first session entry
// records what initialization did; the closing checklist is the fixed
// ritual for starting every later session.
var progressTemplate = template.Must(template.New("progress").Parse(`# Project Progress Log

## Project: {{.Name}}
**Description:** {{.Description}}
**Created:** {{.Created}}

---

## Session: {{.Created}} (Initialization)

### What was done:
- Initialized project harness
- Created feature_list.json with initial feature requirements
- Created progress.txt for session tracking
- Created init.sh for environment setup

### Current State:
- Project is ready for development
- Feature list needs to be expanded based on requirements

### Next Steps:
- Review and expand feature_list.json with all required features
- Implement the first feature from the list

---

## Notes for Future Sessions

When starting a new session:
1. Read this file to understand recent progress
2. Check git log for commit history
3. Review feature_list.json for next task
4. Run ./init.sh to start development environment
5. Pick ONE feature and implement it
6. Update this file before ending session

`))

// RenderProgress renders the initial progress log for a project.
func RenderProgress(projectName, description string, now time.Time) ([]byte, error) {
	var buf bytes.Buffer
	err := progressTemplate.Execute(&buf, struct {
		Name        string
		Description string
		Created     string
	}{
		Name:        projectName,
		Description: description,
		Created:     now.Format(sessionStampLayout),
	})
	if err != nil {
		return nil, fmt.Errorf("rendering progress log: %w", err)
	}
	return buf.Bytes(), nil
}
