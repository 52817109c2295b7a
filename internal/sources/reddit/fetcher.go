package reddit

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	goreddit "github.com/vartanbeno/go-reddit/v2/reddit"

	"github.com/bakkerme/internwatch/internal/retry"
)

// RedditFetcher pulls the newest posts from the configured subreddits using
// the read-only reddit API client. New-post order matters here: listings are
// announcements, so hot/top sorts would hide fresh posts.
type RedditFetcher struct {
	client  *goreddit.Client
	initErr error
}

func NewFetcher(timeout time.Duration, userAgent string) Fetcher {
	if userAgent == "" {
		userAgent = "internwatch/0.1"
	}
	httpClient := &http.Client{Timeout: timeout}
	client, err := goreddit.NewReadonlyClient(
		goreddit.WithHTTPClient(httpClient),
		goreddit.WithUserAgent(userAgent),
	)
	return &RedditFetcher{client: client, initErr: err}
}

func (f *RedditFetcher) Fetch(ctx context.Context, config Config) ([]Item, error) {
	if f.initErr != nil {
		return nil, f.initErr
	}
	if len(config.Subreddits) == 0 {
		return nil, fmt.Errorf("no subreddits configured")
	}

	limit := config.Limit
	if limit <= 0 {
		limit = 25
	}

	subreddits := strings.Join(config.Subreddits, "+")
	var posts []*goreddit.Post
	err := retry.Do(ctx, retry.Config{Attempts: 3, BaseDelay: 200 * time.Millisecond}, func() error {
		var (
			resp *goreddit.Response
			err  error
		)
		posts, resp, err = f.client.Subreddit.NewPosts(ctx, subreddits, &goreddit.ListOptions{Limit: limit})
		if err != nil {
			if resp != nil && resp.StatusCode >= http.StatusInternalServerError {
				return fmt.Errorf("reddit transient error: %w", err)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("fetch reddit posts: %w", err)
	}

	items := make([]Item, 0, len(posts))
	for _, post := range posts {
		if post == nil || post.ID == "" {
			continue
		}
		item := Item{
			ID:     post.ID,
			Title:  post.Title,
			URL:    canonicalPostURL(post.Permalink),
			Author: post.Author,
		}
		if post.Created != nil {
			item.CreatedAt = post.Created.Time.UTC()
		}
		items = append(items, item)
	}

	return items, nil
}

func canonicalPostURL(permalink string) string {
	if permalink == "" {
		return ""
	}
	if strings.HasPrefix(permalink, "http://") || strings.HasPrefix(permalink, "https://") {
		return permalink
	}
	if strings.HasPrefix(permalink, "/") {
		return "https://www.reddit.com" + permalink
	}
	return "https://www.reddit.com/" + permalink
}
