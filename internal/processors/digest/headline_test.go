package digest

import (
	"context"
	"errors"
	"testing"

	"github.com/bakkerme/internwatch/internal/core"
	"github.com/bakkerme/internwatch/internal/llm"
	llmmock "github.com/bakkerme/internwatch/internal/llm/mock"
)

func TestHeadlineDigestSetsHeadline(t *testing.T) {
	client := &llmmock.Client{
		Responses: []llm.ChatResponse{{Content: "  3 new SWE internships at Acme\n"}},
	}
	p, err := NewHeadlineProcessor(client, "gpt-4o-mini", 0)
	if err != nil {
		t.Fatalf("NewHeadlineProcessor: %v", err)
	}

	current := &core.RunDigest{Markdown: "# New internships"}
	blocks := []*core.ListingBlock{{ID: "a", Title: "SWE Intern", Company: "Acme"}}

	digest, err := p.Digest(context.Background(), blocks, current)
	if err != nil {
		t.Fatalf("Digest: %v", err)
	}
	if digest.Headline != "3 new SWE internships at Acme" {
		t.Fatalf("Headline = %q", digest.Headline)
	}
	if current.Headline != "" {
		t.Fatal("input digest mutated")
	}
	if len(client.Calls) != 1 {
		t.Fatalf("llm calls = %d, want 1", len(client.Calls))
	}
}

func TestHeadlineDigestDegradesOnError(t *testing.T) {
	client := &llmmock.Client{Err: errors.New("rate limited")}
	p, err := NewHeadlineProcessor(client, "gpt-4o-mini", 0)
	if err != nil {
		t.Fatalf("NewHeadlineProcessor: %v", err)
	}

	current := &core.RunDigest{Markdown: "# New internships"}
	blocks := []*core.ListingBlock{{ID: "a", Title: "SWE Intern"}}

	digest, err := p.Digest(context.Background(), blocks, current)
	if err != nil {
		t.Fatalf("Digest: %v", err)
	}
	if digest != current {
		t.Fatal("expected unchanged digest on llm failure")
	}
}

func TestHeadlineDigestSkipsEmptyRun(t *testing.T) {
	client := &llmmock.Client{}
	p, err := NewHeadlineProcessor(client, "gpt-4o-mini", 0)
	if err != nil {
		t.Fatalf("NewHeadlineProcessor: %v", err)
	}
	current := &core.RunDigest{}
	digest, err := p.Digest(context.Background(), nil, current)
	if err != nil {
		t.Fatalf("Digest: %v", err)
	}
	if digest != current || len(client.Calls) != 0 {
		t.Fatal("expected no llm call for empty run")
	}
}
