package markdown_test

import (
	"strings"
	"testing"

	"sukhan/internal/platform/markdown"
)

type noteMeta struct {
	ID    string   `yaml:"id"`
	Title string   `yaml:"title"`
	Tags  []string `yaml:"tags"`
}

func TestDecodeFrontmatterIntoStruct(t *testing.T) {
	t.Parallel()
	content := "---\nid: unit-1\ntitle: Basics\ntags: [a, b]\n---\n# Body\n"
	meta := noteMeta{}
	body, err := markdown.DecodeFrontmatter(content, &meta)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if meta.ID != "unit-1" || meta.Title != "Basics" || len(meta.Tags) != 2 {
		t.Fatalf("unexpected meta: %+v", meta)
	}
	if body != "# Body\n" {
		t.Fatalf("unexpected body: %q", body)
	}
}

func TestDecodeFrontmatterEdgeCases(t *testing.T) {
	t.Parallel()
	meta := noteMeta{ID: "keep"}
	body, err := markdown.DecodeFrontmatter("plain body", &meta)
	if err != nil || body != "plain body" || meta.ID != "keep" {
		t.Fatalf("content without frontmatter must pass through, got %q %+v %v", body, meta, err)
	}
	if _, err := markdown.DecodeFrontmatter("---\nid: x\nno closing", &meta); err == nil {
		t.Fatalf("missing closing separator must fail")
	}
	meta = noteMeta{}
	if _, err := markdown.DecodeFrontmatter("---\r\nid: crlf\r\n---", &meta); err != nil || meta.ID != "crlf" {
		t.Fatalf("crlf frontmatter without body: %+v %v", meta, err)
	}
}

func TestRenderFrontmatterRoundTrip(t *testing.T) {
	t.Parallel()
	rendered, err := markdown.RenderFrontmatter(noteMeta{ID: "s-1", Title: "Session"}, "# Session\n")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.HasPrefix(rendered, "---\nid: s-1\n") || !strings.HasSuffix(rendered, "---\n\n# Session\n") {
		t.Fatalf("unexpected rendering: %q", rendered)
	}
	meta := noteMeta{}
	if _, err := markdown.DecodeFrontmatter(rendered, &meta); err != nil || meta.Title != "Session" {
		t.Fatalf("decode rendered note: %+v %v", meta, err)
	}
}
