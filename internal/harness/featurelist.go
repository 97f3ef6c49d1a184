package harness

import (
	"encoding/json"
	"fmt"
	"time"
)

// timestampLayout is the layout for the created/last_updated fields in
// feature_list.json (ISO-8601, local time, seconds precision).
const timestampLayout = "2006-01-02T15:04:05"

// FeatureList is the schema of feature_list.json. Struct field order fixes
// the key order so the file diffs cleanly when hand-edited later.
type FeatureList struct {
	Project  ProjectInfo `json:"project"`
	Features []Feature   `json:"features"`
	Metadata Metadata    `json:"metadata"`
}

// ProjectInfo identifies the project the harness belongs to.
type ProjectInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Created     string `json:"created"`
}

// Feature is one backlog entry. A feature counts as done only when Passes
// is true.
type Feature struct {
	ID          int      `json:"id"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Steps       []string `json:"steps"`
	Priority    string   `json:"priority"`
	Passes      bool     `json:"passes"`
}

// Metadata holds backlog counters. TotalFeatures always equals
// len(Features) at generation time; CompletedFeatures is 0 because no
// feature starts passed.
type Metadata struct {
	TotalFeatures     int    `json:"total_features"`
	CompletedFeatures int    `json:"completed_features"`
	LastUpdated       string `json:"last_updated"`
}

// SeedFeatureList builds the initial backlog: a fixed project-setup entry
// and a TODO-marked placeholder for the first real feature. Both are high
// priority and not yet passing.
func SeedFeatureList(projectName, description string, now time.Time) FeatureList {
	stamp := now.Format(timestampLayout)

	features := []Feature{
		{
			ID:          1,
			Category:    "setup",
			Description: "Project initialization and basic structure",
			Steps: []string{
				"Create project directory structure",
				"Initialize package management",
				"Verify basic setup works",
			},
			Priority: "high",
			Passes:   false,
		},
		{
			ID:          2,
			Category:    "core",
			Description: "[TODO: Add core feature description]",
			Steps: []string{
				"[TODO: Add verification step 1]",
				"[TODO: Add verification step 2]",
			},
			Priority: "high",
			Passes:   false,
		},
	}

	return FeatureList{
		Project: ProjectInfo{
			Name:        projectName,
			Description: description,
			Created:     stamp,
		},
		Features: features,
		Metadata: Metadata{
			TotalFeatures:     len(features),
			CompletedFeatures: 0,
			LastUpdated:       stamp,
		},
	}
}

// RenderFeatureList serializes the list as indented JSON with a trailing
// newline, so the file stays hand-editable.
func RenderFeatureList(list FeatureList) ([]byte, error) {
	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling feature list: %w", err)
	}
	return append(data, '\n'), nil
}
