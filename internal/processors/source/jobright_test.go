package source

import (
	"context"
	"testing"

	"github.com/bakkerme/internwatch/internal/config"
	"github.com/bakkerme/internwatch/internal/sources/jobright"
	jobrightmock "github.com/bakkerme/internwatch/internal/sources/jobright/mock"
)

func TestJobrightFetchAppliesGuardrails(t *testing.T) {
	fetcher := &jobrightmock.Fetcher{
		Items: []jobright.Item{
			{ID: "jr_1", Title: "SWE Intern", Company: "Acme", URL: "https://jobright.ai/jobs/info/1", Salary: "$30-$40/hr", Location: "New York, NY", PostedMillis: 1770000000000},
			{ID: "jr_2", Title: "Cheap Intern", Company: "Acme", URL: "https://jobright.ai/jobs/info/2", Salary: "$15/hr", Location: "Austin, TX", PostedMillis: 1770000000000},
			{ID: "jr_3", Title: "Abroad Intern", Company: "Acme", URL: "https://jobright.ai/jobs/info/3", Salary: "$35/hr", Location: "Toronto, Canada", PostedMillis: 1770000000000},
			{ID: "jr_4", Title: "No Salary Intern", Company: "Acme", URL: "https://jobright.ai/jobs/info/4", Salary: "N/A", Location: "Remote", PostedMillis: 1770000000000},
		},
	}

	p, err := NewJobrightProcessor(&config.JobrightSource{URLs: []string{"https://swe.jobright.ai/"}}, fetcher)
	if err != nil {
		t.Fatalf("NewJobrightProcessor: %v", err)
	}

	blocks, err := p.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
	if blocks[0].ID != "jr_1" {
		t.Fatalf("unexpected survivor: %s", blocks[0].ID)
	}
	if blocks[0].PostedAt == nil || blocks[0].PostedAt.UnixMilli() != 1770000000000 {
		t.Fatalf("posted time not carried: %+v", blocks[0].PostedAt)
	}
}

func TestJobrightFetchGuardrailOverrides(t *testing.T) {
	minPay := 10.0
	usOnly := false
	fetcher := &jobrightmock.Fetcher{
		Items: []jobright.Item{
			{ID: "jr_2", Title: "Cheap Intern", Salary: "$15/hr", Location: "Austin, TX"},
			{ID: "jr_3", Title: "Abroad Intern", Salary: "$35/hr", Location: "Toronto, Canada"},
		},
	}
	p, err := NewJobrightProcessor(&config.JobrightSource{
		URLs:         []string{"https://swe.jobright.ai/"},
		MinHourlyPay: &minPay,
		USOnly:       &usOnly,
	}, fetcher)
	if err != nil {
		t.Fatalf("NewJobrightProcessor: %v", err)
	}
	blocks, err := p.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(blocks) != 2 {
		t.Fatalf("got %d blocks, want 2", len(blocks))
	}
}
