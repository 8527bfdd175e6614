package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"swatchctl/internal/color"
	"swatchctl/internal/swatch"
	"swatchctl/pkg/logging"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Classification is the result of the color_classify tool.
type Classification struct {
	Name     string  `json:"name"`
	Hex      string  `json:"hex"`
	Distance float64 `json:"distance"`
}

// PaletteEntry is one row of the color_palette tool.
type PaletteEntry struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
	R    uint8  `json:"r"`
	G    uint8  `json:"g"`
	B    uint8  `json:"b"`
}

func colorInputOptions() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithString("hex",
			mcp.Description("Color as #rrggbb or #rgb. Takes precedence over r, g and b"),
		),
		mcp.WithNumber("r",
			mcp.Description("Red channel 0-255; out-of-range values are clamped"),
		),
		mcp.WithNumber("g",
			mcp.Description("Green channel 0-255; out-of-range values are clamped"),
		),
		mcp.WithNumber("b",
			mcp.Description("Blue channel 0-255; out-of-range values are clamped"),
		),
	}
}

func colorTools() []server.ServerTool {
	describeOpts := append([]mcp.ToolOption{
		mcp.WithDescription("Describe an RGB color: hex, HSL and nearest named color"),
	}, colorInputOptions()...)

	classifyOpts := append([]mcp.ToolOption{
		mcp.WithDescription("Classify an RGB color by its nearest reference palette entry"),
	}, colorInputOptions()...)

	return []server.ServerTool{
		{
			Tool:    mcp.NewTool("color_describe", describeOpts...),
			Handler: handleDescribe,
		},
		{
			Tool:    mcp.NewTool("color_classify", classifyOpts...),
			Handler: handleClassify,
		},
		{
			Tool: mcp.NewTool("color_palette",
				mcp.WithDescription("List the reference palette used for classification, in tie-break order"),
			),
			Handler: handlePalette,
		},
	}
}

// colorFromRequest reads either "hex" or all of "r", "g" and "b".
func colorFromRequest(request mcp.CallToolRequest) (color.Color, error) {
	if hex := request.GetString("hex", ""); hex != "" {
		return color.ParseHex(hex)
	}

	args := request.GetArguments()
	var c color.Color
	for _, ch := range color.Channels {
		raw, ok := args[ch.String()]
		if !ok {
			return color.Color{}, fmt.Errorf("%s parameter is required when hex is not given", ch)
		}
		v, err := color.Clamp(raw)
		if err != nil {
			return color.Color{}, err
		}
		c = c.With(ch, v)
	}
	return c, nil
}

func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to format result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}

func handleDescribe(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	c, err := colorFromRequest(request)
	if err != nil {
		logging.Debug(subsystem, "color_describe rejected input: %v", err)
		return mcp.NewToolResultError(fmt.Sprintf("Invalid color: %v", err)), nil
	}
	return jsonResult(swatch.Describe(c))
}

func handleClassify(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	c, err := colorFromRequest(request)
	if err != nil {
		logging.Debug(subsystem, "color_classify rejected input: %v", err)
		return mcp.NewToolResultError(fmt.Sprintf("Invalid color: %v", err)), nil
	}

	nearest, dist := color.Nearest(c)
	return jsonResult(Classification{
		Name:     nearest.Name,
		Hex:      nearest.Color.Hex(),
		Distance: dist,
	})
}

func handlePalette(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	palette := color.Palette()
	entries := make([]PaletteEntry, len(palette))
	for i, nc := range palette {
		entries[i] = PaletteEntry{
			Name: nc.Name,
			Hex:  nc.Color.Hex(),
			R:    nc.Color.R,
			G:    nc.Color.G,
			B:    nc.Color.B,
		}
	}
	return jsonResult(entries)
}
