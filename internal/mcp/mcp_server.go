// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/yomu/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the Yomu MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.CacheManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Yomu Readability Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: score_text ---
	s.AddTool(mcp.NewTool("score_text",
		mcp.WithDescription("Score a Japanese text with the Tateisi and Lee readability formulas."),
		mcp.WithString("text", mcp.Description("The Japanese text to score."), mcp.Required()),
		mcp.WithString("lee_sentence_source", mcp.Description("Sentence lengths for the Lee formula. Defaults to 'tateisi'."), mcp.Enum("tateisi", "tokens")),
	), h.handleScoreText)

	// --- 2. Tool: score_corpus ---
	s.AddTool(mcp.NewTool("score_corpus",
		mcp.WithDescription("Score every .txt file under a directory and rank the titles."),
		mcp.WithString("corpus_path", mcp.Description("Directory or file holding the texts."), mcp.Required()),
		mcp.WithString("sort", mcp.Description("Ranking key (title, tateisi, lee). Defaults to 'title'."), mcp.Enum("title", "tateisi", "lee")),
		mcp.WithString("filter", mcp.Description("Keep only titles containing this substring.")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of results returned.")),
	), h.handleScoreCorpus)

	// --- 3. Tool: classify_text ---
	s.AddTool(mcp.NewTool("classify_text",
		mcp.WithDescription("Show the character category of every character in a text."),
		mcp.WithString("text", mcp.Description("The text to classify."), mcp.Required()),
	), h.handleClassifyText)

	return s
}

// StartMCPServer starts the Yomu MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.CacheManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
