package server

import (
	"testing"
)

func TestGetToolDefinitions(t *testing.T) {
	tools := GetToolDefinitions()

	expectedTools := []string{
		"image_load",
		"pattern_generate",
		"thread_nearest",
		"thread_catalog",
	}

	toolMap := make(map[string]Tool)
	for _, tool := range tools {
		toolMap[tool.Name] = tool
	}

	for _, name := range expectedTools {
		if _, ok := toolMap[name]; !ok {
			t.Errorf("Expected tool %s not found", name)
		}
	}
	if len(tools) != len(expectedTools) {
		t.Errorf("got %d tools, want %d", len(tools), len(expectedTools))
	}
}

func TestToolDefinitions_Structure(t *testing.T) {
	for _, tool := range GetToolDefinitions() {
		t.Run(tool.Name, func(t *testing.T) {
			if tool.Description == "" {
				t.Error("Tool description is empty")
			}
			if tool.InputSchema["type"] != "object" {
				t.Errorf("InputSchema type: got %v, want 'object'", tool.InputSchema["type"])
			}

			props, ok := tool.InputSchema["properties"].(map[string]interface{})
			if !ok {
				t.Fatal("InputSchema properties should be a map")
			}

			// every required field must be a declared property
			if req, ok := tool.InputSchema["required"].([]string); ok {
				for _, r := range req {
					if _, ok := props[r]; !ok {
						t.Errorf("required field %s has no property", r)
					}
				}
			}
		})
	}
}

func TestPatternGenerate_RequiredFields(t *testing.T) {
	var tool Tool
	for _, tt := range GetToolDefinitions() {
		if tt.Name == "pattern_generate" {
			tool = tt
		}
	}

	req, ok := tool.InputSchema["required"].([]string)
	if !ok {
		t.Fatal("pattern_generate should declare required fields")
	}

	want := map[string]bool{"path": true, "colors": true, "stitches": true, "out_dir": true}
	if len(req) != len(want) {
		t.Fatalf("required: got %v", req)
	}
	for _, r := range req {
		if !want[r] {
			t.Errorf("unexpected required field %s", r)
		}
	}
}
