package config

import (
	"testing"

	"github.com/bakkerme/internwatch/internal/core"
	"gopkg.in/yaml.v3"
)

const validDocument = `
workflow:
  name: intern-alerts
  sources:
    - intern_list:
        urls:
          - "https://www.intern-list.com/"
    - jobright:
        urls:
          - "https://swe-intern-list.jobright.ai/"
  filters:
    - window:
        duration: "2h"
    - rule:
        name: "no-unpaid"
        rule: 'salary contains "unpaid"'
        result: "drop"
  output:
    - email:
        to: "you@example.com"
`

type countingFactory struct {
	sources []string
	filters []string
	digests []string
	outputs int
}

func (f *countingFactory) NewCronTrigger(cfg *CronTrigger) (core.TriggerProcessor, error) {
	return nil, nil
}

func (f *countingFactory) NewInternListSource(cfg *InternListSource) (core.SourceProcessor, error) {
	f.sources = append(f.sources, "intern_list")
	return nil, nil
}

func (f *countingFactory) NewJobrightSource(cfg *JobrightSource) (core.SourceProcessor, error) {
	f.sources = append(f.sources, "jobright")
	return nil, nil
}

func (f *countingFactory) NewRSSSource(cfg *RSSSource) (core.SourceProcessor, error) {
	f.sources = append(f.sources, "rss")
	return nil, nil
}

func (f *countingFactory) NewRedditSource(cfg *RedditSource) (core.SourceProcessor, error) {
	f.sources = append(f.sources, "reddit")
	return nil, nil
}

func (f *countingFactory) NewWindowFilter(cfg *WindowFilter) (core.FilterProcessor, error) {
	f.filters = append(f.filters, "window")
	return nil, nil
}

func (f *countingFactory) NewRuleFilter(cfg *RuleFilter) (core.FilterProcessor, error) {
	f.filters = append(f.filters, cfg.Name)
	return nil, nil
}

func (f *countingFactory) NewSeenFilter() (core.FilterProcessor, error) {
	f.filters = append(f.filters, "seen")
	return nil, nil
}

func (f *countingFactory) NewMarkdownDigest(cfg *DigestConfig) (core.DigestProcessor, error) {
	f.digests = append(f.digests, "markdown")
	return nil, nil
}

func (f *countingFactory) NewHeadlineDigest(cfg *DigestConfig) (core.DigestProcessor, error) {
	f.digests = append(f.digests, "headline")
	return nil, nil
}

func (f *countingFactory) NewEmailOutput(cfg *EmailOutput) (core.OutputProcessor, error) {
	f.outputs++
	return nil, nil
}

func TestParseToFlowAppendsSeenFilterLast(t *testing.T) {
	var doc WatchDocument
	if err := yaml.Unmarshal([]byte(validDocument), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	factory := &countingFactory{}
	flow, err := doc.ParseToFlowWithFactory(factory)
	if err != nil {
		t.Fatalf("ParseToFlowWithFactory: %v", err)
	}

	if flow.Name != "intern-alerts" {
		t.Fatalf("Name = %q", flow.Name)
	}
	if len(factory.sources) != 2 {
		t.Fatalf("sources = %v", factory.sources)
	}
	want := []string{"window", "no-unpaid", "seen"}
	if len(factory.filters) != len(want) {
		t.Fatalf("filters = %v, want %v", factory.filters, want)
	}
	for i := range want {
		if factory.filters[i] != want[i] {
			t.Fatalf("filters = %v, want %v", factory.filters, want)
		}
	}
	if len(factory.digests) != 1 || factory.digests[0] != "markdown" {
		t.Fatalf("digests = %v", factory.digests)
	}
	if factory.outputs != 1 {
		t.Fatalf("outputs = %d", factory.outputs)
	}
}

func TestValidateRejectsBadDocuments(t *testing.T) {
	cases := []struct {
		name string
		doc  WatchDocument
	}{
		{"missing name", WatchDocument{Workflow: Workflow{
			Sources: []SourceConfig{{InternList: &InternListSource{URLs: []string{"https://www.intern-list.com/"}}}},
			Output:  []OutputConfig{{Email: &EmailOutput{}}},
		}}},
		{"no sources", WatchDocument{Workflow: Workflow{
			Name:   "w",
			Output: []OutputConfig{{Email: &EmailOutput{}}},
		}}},
		{"no output", WatchDocument{Workflow: Workflow{
			Name:    "w",
			Sources: []SourceConfig{{InternList: &InternListSource{URLs: []string{"https://www.intern-list.com/"}}}},
		}}},
		{"bad window duration", WatchDocument{Workflow: Workflow{
			Name:    "w",
			Sources: []SourceConfig{{InternList: &InternListSource{URLs: []string{"https://www.intern-list.com/"}}}},
			Filters: []FilterConfig{{Window: &WindowFilter{Duration: "nope"}}},
			Output:  []OutputConfig{{Email: &EmailOutput{}}},
		}}},
		{"bad rule result", WatchDocument{Workflow: Workflow{
			Name:    "w",
			Sources: []SourceConfig{{InternList: &InternListSource{URLs: []string{"https://www.intern-list.com/"}}}},
			Filters: []FilterConfig{{Rule: &RuleFilter{Name: "r", Rule: "true", Result: "maybe"}}},
			Output:  []OutputConfig{{Email: &EmailOutput{}}},
		}}},
		{"bad email address", WatchDocument{Workflow: Workflow{
			Name:    "w",
			Sources: []SourceConfig{{InternList: &InternListSource{URLs: []string{"https://www.intern-list.com/"}}}},
			Output:  []OutputConfig{{Email: &EmailOutput{To: "not-an-address"}}},
		}}},
	}

	for _, tc := range cases {
		if err := tc.doc.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
	}
}
