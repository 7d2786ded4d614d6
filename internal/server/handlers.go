package server

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/ironsheep/stitch-pattern-mcp/internal/imaging"
	"github.com/ironsheep/stitch-pattern-mcp/internal/pattern"
	"github.com/ironsheep/stitch-pattern-mcp/internal/quantize"
	"github.com/ironsheep/stitch-pattern-mcp/internal/render"
	"github.com/ironsheep/stitch-pattern-mcp/internal/stitch"
	"github.com/ironsheep/stitch-pattern-mcp/internal/threads"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "pattern_generate").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	if s.Debug {
		log.Printf("tools/call %s", params.Name)
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "image_load":
		return s.handleImageLoad(args)
	case "pattern_generate":
		return s.handlePatternGenerate(args)
	case "thread_nearest":
		return s.handleThreadNearest(args)
	case "thread_catalog":
		return s.handleThreadCatalog(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Image Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	// an explicit load always re-reads the file, picking up edits on disk
	s.cache.Evict(a.Path)
	return imaging.LoadImageInfo(s.cache, a.Path)
}

// === Pattern Handlers ===

type patternGenerateArgs struct {
	Path         string          `json:"path"`
	Colors       int             `json:"colors"`
	Stitches     int             `json:"stitches"`
	OutDir       string          `json:"out_dir"`
	CellSize     int             `json:"cell_size"`
	KeySize      int             `json:"key_size"`
	WorkingWidth int             `json:"working_width"`
	Quantizer    string          `json:"quantizer"`
	PreMatch     bool            `json:"prematch"`
	Order        string          `json:"order"`
	Region       *imaging.Region `json:"region"`
}

// PatternResult summarises a generated pattern.
type PatternResult struct {
	*render.Result

	// StitchesWide and StitchesHigh are the chart dimensions in stitches.
	StitchesWide int `json:"stitches_wide"`
	StitchesHigh int `json:"stitches_high"`

	Stride  int               `json:"stride"`
	Cleaned int               `json:"cleaned"`
	Key     []render.KeyEntry `json:"key"`
}

func (s *Server) handlePatternGenerate(args json.RawMessage) (interface{}, error) {
	var a patternGenerateArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, fmt.Errorf("path is required")
	}

	q, err := quantize.ByName(a.Quantizer)
	if err != nil {
		return nil, err
	}
	order, err := pattern.ParseOrder(a.Order)
	if err != nil {
		return nil, err
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	chart, err := stitch.Generate(s.catalog, img, stitch.Options{
		Colors:       a.Colors,
		Stitches:     a.Stitches,
		WorkingWidth: a.WorkingWidth,
		Quantizer:    q,
		Region:       a.Region,
		PreMatch:     a.PreMatch,
		Order:        order,
		Debug:        s.Debug,
	})
	if err != nil {
		return nil, err
	}

	res, err := render.Render(chart, render.Options{
		OutDir:   a.OutDir,
		CellSize: a.CellSize,
		KeySize:  a.KeySize,
	})
	if err != nil {
		return nil, err
	}

	return &PatternResult{
		Result:       res,
		StitchesWide: chart.Grid.Cols,
		StitchesHigh: chart.Grid.Rows,
		Stride:       chart.Stride,
		Cleaned:      chart.Cleaned,
		Key:          render.Legend(chart),
	}, nil
}

// === Thread Handlers ===

type threadNearestArgs struct {
	R   *int   `json:"r"`
	G   *int   `json:"g"`
	B   *int   `json:"b"`
	Hex string `json:"hex"`
}

// NearestResult is the answer to a thread_nearest call.
type NearestResult struct {
	Input    string              `json:"input"`
	Thread   threads.ThreadColor `json:"thread"`
	Hex      string              `json:"thread_hex"`
	Distance float64             `json:"distance"`
}

func (a threadNearestArgs) color() (imaging.RGBColor, error) {
	if a.Hex != "" {
		return imaging.ParseHex(a.Hex)
	}
	if a.R == nil || a.G == nil || a.B == nil {
		return imaging.RGBColor{}, fmt.Errorf("either hex or all of r, g and b are required")
	}
	var out [3]uint8
	for i, v := range []int{*a.R, *a.G, *a.B} {
		if v < 0 || v > 255 {
			return imaging.RGBColor{}, fmt.Errorf("channel value %d out of range 0-255", v)
		}
		out[i] = uint8(v)
	}
	return imaging.RGBColor{R: out[0], G: out[1], B: out[2]}, nil
}

func (s *Server) handleThreadNearest(args json.RawMessage) (interface{}, error) {
	var a threadNearestArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c, err := a.color()
	if err != nil {
		return nil, err
	}
	tc, d := s.catalog.NearestWithDistance(c)
	return &NearestResult{
		Input:    c.Hex(),
		Thread:   tc,
		Hex:      tc.RGB.Hex(),
		Distance: d,
	}, nil
}

type threadCatalogArgs struct {
	Code string `json:"code"`
}

// CatalogResult lists catalog entries.
type CatalogResult struct {
	Count   int                   `json:"count"`
	Threads []threads.ThreadColor `json:"threads"`
}

func (s *Server) handleThreadCatalog(args json.RawMessage) (interface{}, error) {
	var a threadCatalogArgs
	if len(args) > 0 {
		if err := json.Unmarshal(args, &a); err != nil {
			return nil, err
		}
	}
	if a.Code != "" {
		tc, ok := s.catalog.Lookup(a.Code)
		if !ok {
			return nil, fmt.Errorf("no thread with code %q", a.Code)
		}
		return &CatalogResult{Count: 1, Threads: []threads.ThreadColor{tc}}, nil
	}
	entries := s.catalog.Entries()
	return &CatalogResult{Count: len(entries), Threads: entries}, nil
}
