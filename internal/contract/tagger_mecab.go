package contract

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/huangsam/yomu/schema"
)

// mecabEOS marks the end of one sentence in MeCab output.
const mecabEOS = "EOS"

// MeCabTagger runs a local mecab binary with a UniDic dictionary.
type MeCabTagger struct {
	path string
	args []string
}

// NewMeCabTagger checks that the binary can be found and returns a tagger for it.
func NewMeCabTagger(path string, args []string) (*MeCabTagger, error) {
	resolved, err := exec.LookPath(path)
	if err != nil {
		return nil, fmt.Errorf("mecab binary %q not found: %w", path, err)
	}
	return &MeCabTagger{path: resolved, args: args}, nil
}

// Name implements Tagger.
func (m *MeCabTagger) Name() string {
	return "mecab:" + strings.Join(m.args, " ")
}

// Tag implements Tagger. The sentence is fed on stdin.
func (m *MeCabTagger) Tag(ctx context.Context, sentence string) ([]schema.Token, error) {
	cmd := exec.CommandContext(ctx, m.path, m.args...)
	cmd.Stdin = strings.NewReader(sentence + "\n")

	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("mecab failed: %w: %s", err, strings.TrimSpace(stderr.String()))
	}
	return ParseMeCabOutput(out), nil
}

// ParseMeCabOutput parses MeCab text output with UniDic features.
//
// Each line is "surface\tfeature0,feature1,...". Reading stops at the first
// EOS line. A line without a tab is kept as a token without a part of speech
// so that it is counted as malformed downstream. Blank lines are ignored.
func ParseMeCabOutput(raw []byte) []schema.Token {
	var tokens []schema.Token
	scanner := bufio.NewScanner(bytes.NewReader(raw))
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == mecabEOS {
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		surface, features, ok := strings.Cut(line, "\t")
		if !ok {
			tokens = append(tokens, schema.Token{Surface: line})
			continue
		}
		tokens = append(tokens, tokenFromFeatures(surface, strings.Split(features, ",")))
	}
	return tokens
}
