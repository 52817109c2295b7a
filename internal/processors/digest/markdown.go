// Package digest renders the surviving listings into the notification body.
package digest

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"github.com/bakkerme/internwatch/internal/config"
	"github.com/bakkerme/internwatch/internal/core"
	"github.com/bakkerme/internwatch/internal/timex"
)

type MarkdownProcessor struct {
	name      string
	location  *time.Location
	converter goldmark.Markdown
	now       func() time.Time
}

// NewMarkdownProcessor renders the digest body. Listings are sorted
// latest-first before rendering; the header carries the current time in the
// configured display timezone (Eastern by default).
func NewMarkdownProcessor(cfg *config.DigestConfig) (*MarkdownProcessor, error) {
	location := timex.Eastern()
	if cfg != nil && cfg.Timezone != "" {
		loc, err := time.LoadLocation(cfg.Timezone)
		if err != nil {
			return nil, fmt.Errorf("invalid digest timezone: %w", err)
		}
		location = loc
	}
	return &MarkdownProcessor{
		name:      "markdown",
		location:  location,
		converter: newMarkdownConverter(),
		now:       func() time.Time { return time.Now().UTC() },
	}, nil
}

func (p *MarkdownProcessor) Name() string {
	return p.name
}

func (p *MarkdownProcessor) Validate() error {
	if p.converter == nil {
		return fmt.Errorf("markdown converter is required")
	}
	return nil
}

func (p *MarkdownProcessor) Digest(ctx context.Context, blocks []*core.ListingBlock, current *core.RunDigest) (*core.RunDigest, error) {
	_ = ctx
	if err := p.Validate(); err != nil {
		return nil, err
	}

	now := p.now()
	sortLatestFirst(blocks, now)

	var b strings.Builder
	b.WriteString("# New internships\n\n")
	fmt.Fprintf(&b, "%d new as of %s\n", len(blocks), now.In(p.location).Format("Jan 02, 2006 03:04 PM MST"))
	for _, block := range blocks {
		b.WriteString("\n")
		if block.Company != "" {
			fmt.Fprintf(&b, "- **%s** | %s\n", block.Title, block.Company)
		} else {
			fmt.Fprintf(&b, "- **%s**\n", block.Title)
		}
		fmt.Fprintf(&b, "  Posted: %s", block.PostedDisplay(p.location))
		if block.Salary != "" {
			fmt.Fprintf(&b, " | %s", block.Salary)
		}
		if block.Location != "" {
			fmt.Fprintf(&b, " | %s", block.Location)
		}
		b.WriteString("\n")
		fmt.Fprintf(&b, "  <%s>\n", block.URL)
	}

	markdown := b.String()
	html, err := renderMarkdown(p.converter, markdown)
	if err != nil {
		return nil, fmt.Errorf("render digest: %w", err)
	}

	updated := core.RunDigest{}
	if current != nil {
		updated = *current
	}
	updated.ProcessorName = p.name
	updated.Markdown = markdown
	updated.HTML = html
	updated.ListingCount = len(blocks)
	updated.ProcessedAt = time.Now().UTC()
	return &updated, nil
}

// sortLatestFirst orders blocks newest first. Relative posted strings rank by
// their implied timestamp, which puts them ahead of date-only postings.
func sortLatestFirst(blocks []*core.ListingBlock, now time.Time) {
	sort.SliceStable(blocks, func(i, j int) bool {
		return effectiveTime(blocks[i], now).After(effectiveTime(blocks[j], now))
	})
}

func effectiveTime(block *core.ListingBlock, now time.Time) time.Time {
	if age, _, ok := timex.ParseRelative(block.PostedText); ok {
		return now.Add(-age)
	}
	if block.PostedAt != nil {
		return block.PostedAt.UTC()
	}
	return time.Time{}
}

func renderMarkdown(converter goldmark.Markdown, input string) (string, error) {
	var buf bytes.Buffer
	if err := converter.Convert([]byte(input), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func newMarkdownConverter() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	)
}
