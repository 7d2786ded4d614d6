package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

var regionSchema = map[string]interface{}{
	"type": "object",
	"properties": map[string]interface{}{
		"x1": map[string]interface{}{"type": "integer"},
		"y1": map[string]interface{}{"type": "integer"},
		"x2": map[string]interface{}{"type": "integer"},
		"y2": map[string]interface{}{"type": "integer"},
	},
	"required":    []string{"x1", "y1", "x2", "y2"},
	"description": "Optional part of the photograph to turn into a pattern. (x1,y1) inclusive, (x2,y2) exclusive.",
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "image_load",
			Description: "Load a photograph and return its dimensions, format and aspect ratio. Use the aspect ratio to predict how many stitches tall a pattern will be.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "pattern_generate",
			Description: "Turn a photograph into a cross-stitch chart using at most N thread colors. Writes color and black-and-white symbol charts, a color-only preview, the key as PNG and CSV, and a compressed pattern document to out_dir.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the source photograph",
					},
					"colors": map[string]interface{}{
						"type":        "integer",
						"description": "Maximum number of thread colors (at least 1)",
					},
					"stitches": map[string]interface{}{
						"type":        "integer",
						"description": "Number of stitches across the pattern width",
					},
					"out_dir": map[string]interface{}{
						"type":        "string",
						"description": "Directory to write the chart files to. Created if missing.",
					},
					"cell_size": map[string]interface{}{
						"type":        "integer",
						"description": "Pixels per stitch in the chart images (default 10)",
						"default":     10,
					},
					"key_size": map[string]interface{}{
						"type":        "integer",
						"description": "Row height in pixels of the key image (default 40)",
						"default":     40,
					},
					"working_width": map[string]interface{}{
						"type":        "integer",
						"description": "Width the photograph is resized to before sampling (default 1000)",
						"default":     1000,
					},
					"quantizer": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"median_cut", "kmeans"},
						"description": "Color reduction algorithm (default median_cut)",
						"default":     "median_cut",
					},
					"prematch": map[string]interface{}{
						"type":        "boolean",
						"description": "Snap every sampled pixel to its nearest thread before reducing (default false)",
						"default":     false,
					},
					"order": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"row-major", "column-major"},
						"description": "Visiting order of the isolated stitch cleanup (default row-major)",
						"default":     "row-major",
					},
					"region": regionSchema,
				},
				"required": []string{"path", "colors", "stitches", "out_dir"},
			},
		},
		{
			Name:        "thread_nearest",
			Description: "Find the catalog thread closest to a color, using the weighted RGB distance. Give either r, g and b or a hex string.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"r":   map[string]interface{}{"type": "integer", "description": "Red (0-255)"},
					"g":   map[string]interface{}{"type": "integer", "description": "Green (0-255)"},
					"b":   map[string]interface{}{"type": "integer", "description": "Blue (0-255)"},
					"hex": map[string]interface{}{"type": "string", "description": "Color as #RRGGBB"},
				},
			},
		},
		{
			Name:        "thread_catalog",
			Description: "List the thread catalog in load order, or look up a single thread by code.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"code": map[string]interface{}{
						"type":        "string",
						"description": "Optional thread code (e.g. \"310\"). If omitted, the whole catalog is returned.",
					},
				},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
