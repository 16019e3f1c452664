package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/huangsam/yomu/core"
	"github.com/huangsam/yomu/internal/contract"
	"github.com/huangsam/yomu/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.CacheManager
}

func (h *toolHandler) handleScoreText(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.Text = request.GetString("text", "")
	if src := request.GetString("lee_sentence_source", ""); src != "" {
		cfg.LeeSentenceSource = schema.SentenceSource(src)
		if _, ok := schema.ValidSentenceSources[cfg.LeeSentenceSource]; !ok {
			return mcp.NewToolResultError(fmt.Sprintf("invalid lee_sentence_source '%s'", src)), nil
		}
	}

	result, _, err := core.GetTextResult(core.WithSuppressHeader(ctx), cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("scoring failed: %v", err)), nil
	}
	return jsonResult(result), nil
}

func (h *toolHandler) handleScoreCorpus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	p := request.GetString("corpus_path", "")
	if p == "" {
		return mcp.NewToolResultError("corpus_path is required"), nil
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid corpus_path: %v", err)), nil
	}
	cfg.CorpusPaths = []string{abs}
	if s := request.GetString("sort", ""); s != "" {
		cfg.Sort = schema.SortKey(s)
		if _, ok := schema.ValidSortKeys[cfg.Sort]; !ok {
			return mcp.NewToolResultError(fmt.Sprintf("invalid sort key '%s'", s)), nil
		}
	}
	if f := request.GetString("filter", ""); f != "" {
		cfg.TitleFilter = f
	}
	if l := request.GetInt("limit", 0); l > 0 {
		cfg.ResultLimit = min(l, contract.MaxResultLimit)
	}

	output, _, err := core.GetScoreResults(core.WithSuppressHeader(ctx), cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("scoring failed: %v", err)), nil
	}
	return jsonResult(schema.EnrichTitles(output.Results)), nil
}

func (h *toolHandler) handleClassifyText(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text := request.GetString("text", "")
	if text == "" {
		return mcp.NewToolResultError("text is required"), nil
	}
	return jsonResult(core.ClassifyText(text)), nil
}

// jsonResult renders data as an indented JSON text result.
func jsonResult(data any) *mcp.CallToolResult {
	jsonData, _ := json.MarshalIndent(data, "", "  ")
	return mcp.NewToolResultText(string(jsonData))
}
