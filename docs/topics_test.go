package docs

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/etnz/ytd"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"
)

func TestTopics(t *testing.T) {
	// Every topic listed in readme.md can be loaded, and every topic file is listed.
	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var topicsInReadme []string
	scanner := bufio.NewScanner(file)
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	for scanner.Scan() {
		if matches := topicRegex.FindStringSubmatch(scanner.Text()); len(matches) > 1 {
			topicsInReadme = append(topicsInReadme, strings.TrimSpace(matches[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}

	for _, topic := range topicsInReadme {
		if _, err := GetTopic(topic); err != nil {
			t.Errorf("failed to get topic %q: %v", topic, err)
		}
	}

	all, err := GetAllTopics()
	if err != nil {
		t.Fatal(err)
	}
	for _, topic := range all {
		found := false
		for _, listed := range topicsInReadme {
			if listed == topic {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("topic %q is not listed in readme.md", topic)
		}
	}
}

func TestGetTopicStar(t *testing.T) {
	all, err := GetTopic("*")
	if err != nil {
		t.Fatal(err)
	}
	for _, title := range []string{"# Ledger", "# Market", "# Return on investment", "# Preferences"} {
		if !strings.Contains(all, title) {
			t.Errorf("GetTopic(*) does not contain %q", title)
		}
	}
	if _, err := GetTopic("nope"); err == nil {
		t.Error("GetTopic(nope) succeeded, want an error")
	}
}

// Block is a fenced code block in a markdown file.
type Block struct {
	Lang    string
	Content string
	File    string
	Line    int
}

func TestCodeBlocks(t *testing.T) {
	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}
	for _, file := range files {
		for _, block := range parseMarkdown(t, file) {
			switch block.Lang {
			case "json":
				checkJSONBlock(t, block)
			case "yaml":
				var prefs map[string]any
				if err := yaml.Unmarshal([]byte(block.Content), &prefs); err != nil {
					t.Errorf("%s:%d: invalid yaml: %v", block.File, block.Line, err)
				}
			}
		}
	}
}

// checkJSONBlock decodes a json example as whatever file format it documents.
func checkJSONBlock(t *testing.T, block *Block) {
	t.Helper()
	r := strings.NewReader(block.Content)
	var err error
	switch {
	case strings.Contains(block.Content, `"type"`):
		_, err = ytd.DecodeLedger(r)
	case strings.Contains(block.Content, `"price"`):
		_, err = ytd.DecodeMarket(r)
	default:
		_, err = ytd.DecodePosition(r)
	}
	if err != nil {
		t.Errorf("%s:%d: invalid example: %v", block.File, block.Line, err)
	}
}

// parseMarkdown parses a markdown file and returns its fenced code blocks.
func parseMarkdown(t *testing.T, file string) []*Block {
	t.Helper()

	content, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("failed to read %s: %v", file, err)
	}
	root := goldmark.DefaultParser().Parse(text.NewReader(content))

	var blocks []*Block
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		fcb, ok := n.(*ast.FencedCodeBlock)
		if !ok || fcb.Info == nil {
			return ast.WalkContinue, nil
		}
		var b strings.Builder
		for i := 0; i < fcb.Lines().Len(); i++ {
			line := fcb.Lines().At(i)
			b.Write(line.Value(content))
		}
		blocks = append(blocks, &Block{
			Lang:    string(fcb.Language(content)),
			Content: b.String(),
			File:    file,
			Line:    strings.Count(string(content[:fcb.Info.Segment.Start]), "\n") + 1,
		})
		return ast.WalkContinue, nil
	})
	return blocks
}
