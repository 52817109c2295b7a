package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/bakkerme/internwatch/internal/fetch"
	"github.com/bakkerme/internwatch/internal/sources/jobright"
)

const infoURLPrefix = "https://jobright.ai/jobs/info/"

type Fetcher struct {
	client *fetch.Client
}

func NewFetcher(client *fetch.Client) *Fetcher {
	return &Fetcher{client: client}
}

func (f *Fetcher) Fetch(ctx context.Context, pageURL string) ([]jobright.Item, error) {
	html, err := f.client.Get(ctx, pageURL)
	if err != nil {
		return nil, err
	}
	return Parse(html)
}

type nextData struct {
	Props struct {
		PageProps struct {
			InitialJobs []initialJob `json:"initialJobs"`
		} `json:"pageProps"`
	} `json:"props"`
}

type initialJob struct {
	ID         string      `json:"id"`
	Title      string      `json:"title"`
	Company    string      `json:"company"`
	ApplyURL   string      `json:"applyUrl"`
	Salary     string      `json:"salary"`
	Location   string      `json:"location"`
	PostedDate json.Number `json:"postedDate"`
}

// Parse extracts initialJobs from the page's __NEXT_DATA__ script. Jobs
// without an id are skipped; duplicate ids within the page are dropped.
func Parse(html string) ([]jobright.Item, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse jobright page: %w", err)
	}

	payload := strings.TrimSpace(doc.Find(`script#__NEXT_DATA__`).First().Text())
	if payload == "" {
		return nil, fmt.Errorf("jobright page has no __NEXT_DATA__ payload")
	}

	var data nextData
	if err := json.Unmarshal([]byte(payload), &data); err != nil {
		return nil, fmt.Errorf("decode __NEXT_DATA__: %w", err)
	}

	items := []jobright.Item{}
	seen := map[string]bool{}
	for _, job := range data.Props.PageProps.InitialJobs {
		if job.ID == "" || seen[job.ID] {
			continue
		}
		posted, err := job.PostedDate.Int64()
		if err != nil {
			continue
		}

		seen[job.ID] = true
		items = append(items, jobright.Item{
			ID:           "jr_" + job.ID,
			Title:        strings.TrimSpace(job.Title),
			Company:      strings.TrimSpace(job.Company),
			URL:          applyURL(job.ApplyURL, job.ID),
			Salary:       strings.TrimSpace(job.Salary),
			Location:     strings.TrimSpace(job.Location),
			PostedMillis: posted,
		})
	}

	return items, nil
}

// applyURL strips tracking query parameters and falls back to the canonical
// job info page when the apply link is missing or not http(s).
func applyURL(raw, id string) string {
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, "http") {
		return infoURLPrefix + id
	}
	if idx := strings.IndexByte(raw, '?'); idx >= 0 {
		raw = raw[:idx]
	}
	return raw
}
