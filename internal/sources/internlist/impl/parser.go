package impl

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/bakkerme/internwatch/internal/fetch"
	"github.com/bakkerme/internwatch/internal/sources/internlist"
)

const listingPathPrefix = "/da-intern-list/"

// Fetcher retrieves and parses an intern-list page. The Webflow CMS renders
// each listing as an anchor card carrying jobtitle/blogtag/companyname_list
// paragraphs; the stable identifier is the last segment of the card's path.
type Fetcher struct {
	client *fetch.Client
}

func NewFetcher(client *fetch.Client) *Fetcher {
	return &Fetcher{client: client}
}

func (f *Fetcher) Fetch(ctx context.Context, pageURL string) ([]internlist.Item, error) {
	html, err := f.client.Get(ctx, pageURL)
	if err != nil {
		return nil, err
	}
	return Parse(html, pageURL)
}

// Parse extracts listings from page HTML. Malformed cards are skipped;
// duplicate identifiers within the page are dropped.
func Parse(html, pageURL string) ([]internlist.Item, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse intern-list page: %w", err)
	}

	base := siteBase(pageURL)
	items := []internlist.Item{}
	seen := map[string]bool{}

	doc.Find(`a[href^="` + listingPathPrefix + `"]`).Each(func(_ int, card *goquery.Selection) {
		path, ok := card.Attr("href")
		if !ok {
			return
		}
		id := strings.TrimSuffix(path[strings.LastIndex(path, "/")+1:], "/")
		if id == "" || seen[id] {
			return
		}

		title := strings.TrimSpace(card.Find("p.jobtitle").First().Text())
		if title == "" {
			return
		}
		company := strings.TrimSpace(card.Find("p.companyname_list").First().Text())
		dateText := strings.TrimSpace(card.Find("p.blogtag").First().Text())

		item := internlist.Item{
			ID:         "il_" + id,
			Title:      title,
			Company:    company,
			URL:        base + path,
			PostedText: dateText,
		}
		if posted, err := time.ParseInLocation("January 2, 2006", dateText, time.UTC); err == nil {
			item.PostedAt = &posted
		}

		seen[id] = true
		items = append(items, item)
	})

	return items, nil
}

func siteBase(pageURL string) string {
	u, err := url.Parse(pageURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "https://www.intern-list.com"
	}
	return u.Scheme + "://" + u.Host
}
