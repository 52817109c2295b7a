package config

import (
	"fmt"
	"net/mail"

	"github.com/bakkerme/internwatch/internal/core"
)

// WatchDocument represents the top-level structure of an internwatch.yaml file
type WatchDocument struct {
	Workflow Workflow `yaml:"workflow"`
}

// Workflow contains the complete workflow configuration
type Workflow struct {
	Name    string          `yaml:"name"`
	Version string          `yaml:"version,omitempty"`
	Trigger []TriggerConfig `yaml:"trigger,omitempty"`
	Sources []SourceConfig  `yaml:"sources"`
	Filters []FilterConfig  `yaml:"filters,omitempty"`
	Digest  *DigestConfig   `yaml:"digest,omitempty"`
	Output  []OutputConfig  `yaml:"output"`
}

// TriggerConfig wraps different trigger types
type TriggerConfig struct {
	Cron *CronTrigger `yaml:"cron,omitempty"`
}

// CronTrigger defines a scheduled trigger
type CronTrigger struct {
	Schedule string `yaml:"schedule"`
	Timezone string `yaml:"timezone,omitempty"`
}

// SourceConfig wraps different source types
type SourceConfig struct {
	InternList *InternListSource `yaml:"intern_list,omitempty"`
	Jobright   *JobrightSource   `yaml:"jobright,omitempty"`
	RSS        *RSSSource        `yaml:"rss,omitempty"`
	Reddit     *RedditSource     `yaml:"reddit,omitempty"`
}

// InternListSource defines the Webflow CMS listing page configuration
type InternListSource struct {
	URLs  []string `yaml:"urls"`
	Limit int      `yaml:"limit,omitempty"`
}

// JobrightSource defines the Next.js minisite configuration. The pay and
// location guardrails apply to this source only; the other sources carry no
// salary or location data.
type JobrightSource struct {
	URLs         []string `yaml:"urls"`
	MinHourlyPay *float64 `yaml:"min_hourly_pay,omitempty"`
	USOnly       *bool    `yaml:"us_only,omitempty"`
}

// RSSSource defines RSS/Atom job feed configuration
type RSSSource struct {
	Feeds     []string `yaml:"feeds"`
	Limit     int      `yaml:"limit,omitempty"`
	UserAgent string   `yaml:"user_agent,omitempty"`
}

// RedditSource defines internship subreddit configuration
type RedditSource struct {
	Subreddits []string `yaml:"subreddits"`
	Limit      int      `yaml:"limit,omitempty"`
}

// FilterConfig wraps different filter types
type FilterConfig struct {
	Window *WindowFilter `yaml:"window,omitempty"`
	Rule   *RuleFilter   `yaml:"rule,omitempty"`
}

// WindowFilter keeps only listings posted within the given duration.
// Durations accept Go syntax plus d/w units.
type WindowFilter struct {
	Duration string `yaml:"duration"`
}

// RuleFilter defines expression-based filtering over listing fields
type RuleFilter struct {
	Name   string `yaml:"name"`
	Rule   string `yaml:"rule"`
	Result string `yaml:"result"` // "pass" or "drop"
}

// DigestConfig controls notification body rendering
type DigestConfig struct {
	Headline bool   `yaml:"headline,omitempty"`
	Timezone string `yaml:"timezone,omitempty"`
}

type OutputConfig struct {
	Email *EmailOutput `yaml:"email,omitempty"`
}

// EmailOutput defines email delivery configuration. SMTP fields are optional
// overrides; env defaults apply when unset.
type EmailOutput struct {
	To           string `yaml:"to"`
	From         string `yaml:"from,omitempty"`
	Subject      string `yaml:"subject,omitempty"`
	SMTPHost     string `yaml:"smtp_host,omitempty"`
	SMTPPort     int    `yaml:"smtp_port,omitempty"`
	SMTPUser     string `yaml:"smtp_user,omitempty"`
	SMTPPassword string `yaml:"smtp_password,omitempty"`
	TLSMode      string `yaml:"tls_mode,omitempty"`
}

// ProcessorFactory constructs concrete processor implementations for a parsed
// document.
type ProcessorFactory interface {
	NewCronTrigger(config *CronTrigger) (core.TriggerProcessor, error)
	NewInternListSource(config *InternListSource) (core.SourceProcessor, error)
	NewJobrightSource(config *JobrightSource) (core.SourceProcessor, error)
	NewRSSSource(config *RSSSource) (core.SourceProcessor, error)
	NewRedditSource(config *RedditSource) (core.SourceProcessor, error)
	NewWindowFilter(config *WindowFilter) (core.FilterProcessor, error)
	NewRuleFilter(config *RuleFilter) (core.FilterProcessor, error)
	// NewSeenFilter builds the dedupe stage. It is always appended after the
	// configured filters so an already-notified listing can never reach an
	// output.
	NewSeenFilter() (core.FilterProcessor, error)
	NewMarkdownDigest(config *DigestConfig) (core.DigestProcessor, error)
	// NewHeadlineDigest may return a nil processor when no LLM is configured.
	NewHeadlineDigest(config *DigestConfig) (core.DigestProcessor, error)
	NewEmailOutput(config *EmailOutput) (core.OutputProcessor, error)
}

// Validate performs validation on the watch document
func (d *WatchDocument) Validate() error {
	if d.Workflow.Name == "" {
		return fmt.Errorf("workflow name is required")
	}

	if len(d.Workflow.Sources) == 0 {
		return fmt.Errorf("at least one source is required")
	}

	if len(d.Workflow.Output) == 0 {
		return fmt.Errorf("output configuration is required")
	}

	for i, trigger := range d.Workflow.Trigger {
		if trigger.Cron == nil {
			return fmt.Errorf("trigger %d: unsupported trigger type", i)
		}
		if trigger.Cron.Schedule == "" {
			return fmt.Errorf("trigger %d: cron schedule is required", i)
		}
	}

	for i, source := range d.Workflow.Sources {
		switch {
		case source.InternList != nil:
			if len(source.InternList.URLs) == 0 {
				return fmt.Errorf("source %d: at least one intern-list url is required", i)
			}
		case source.Jobright != nil:
			if len(source.Jobright.URLs) == 0 {
				return fmt.Errorf("source %d: at least one jobright url is required", i)
			}
		case source.RSS != nil:
			if len(source.RSS.Feeds) == 0 {
				return fmt.Errorf("source %d: at least one rss feed is required", i)
			}
		case source.Reddit != nil:
			if len(source.Reddit.Subreddits) == 0 {
				return fmt.Errorf("source %d: at least one subreddit is required", i)
			}
		default:
			return fmt.Errorf("source %d: unsupported source type", i)
		}
	}

	for i, filter := range d.Workflow.Filters {
		switch {
		case filter.Window != nil:
			if filter.Window.Duration == "" {
				return fmt.Errorf("filter %d: window duration is required", i)
			}
			if _, err := parseDurationExtended(filter.Window.Duration); err != nil {
				return fmt.Errorf("filter %d: invalid window duration: %w", i, err)
			}
		case filter.Rule != nil:
			if filter.Rule.Name == "" || filter.Rule.Rule == "" {
				return fmt.Errorf("filter %d: rule name and expression are required", i)
			}
			if filter.Rule.Result != "pass" && filter.Rule.Result != "drop" {
				return fmt.Errorf("filter %d: result must be 'pass' or 'drop'", i)
			}
		default:
			return fmt.Errorf("filter %d: unsupported filter type", i)
		}
	}

	for i, output := range d.Workflow.Output {
		if output.Email == nil {
			return fmt.Errorf("output %d: unsupported output type", i)
		}
		if output.Email.To != "" {
			if _, err := mail.ParseAddress(output.Email.To); err != nil {
				return fmt.Errorf("output %d: invalid to address", i)
			}
		}
		if output.Email.From != "" {
			if _, err := mail.ParseAddress(output.Email.From); err != nil {
				return fmt.Errorf("output %d: invalid from address", i)
			}
		}
	}

	return nil
}

// ParseToFlowWithFactory validates the document and builds a runnable Flow
// using the provided factory. Processor order: triggers, sources, window and
// rule filters as declared, then the seen-set dedupe filter, then digest
// processors, then outputs.
func (d *WatchDocument) ParseToFlowWithFactory(factory ProcessorFactory) (*core.Flow, error) {
	if factory == nil {
		return nil, fmt.Errorf("processor factory is required")
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}

	flow := &core.Flow{
		Name:    d.Workflow.Name,
		Version: d.Workflow.Version,
		Status:  core.FlowStatusWaiting,
	}

	for i, trigger := range d.Workflow.Trigger {
		processor, err := factory.NewCronTrigger(trigger.Cron)
		if err != nil {
			return nil, fmt.Errorf("trigger %d: %w", i, err)
		}
		flow.Triggers = append(flow.Triggers, processor)
	}

	for i, source := range d.Workflow.Sources {
		var (
			processor core.SourceProcessor
			err       error
		)
		switch {
		case source.InternList != nil:
			processor, err = factory.NewInternListSource(source.InternList)
		case source.Jobright != nil:
			processor, err = factory.NewJobrightSource(source.Jobright)
		case source.RSS != nil:
			processor, err = factory.NewRSSSource(source.RSS)
		case source.Reddit != nil:
			processor, err = factory.NewRedditSource(source.Reddit)
		}
		if err != nil {
			return nil, fmt.Errorf("source %d: %w", i, err)
		}
		flow.Sources = append(flow.Sources, processor)
	}

	for i, filter := range d.Workflow.Filters {
		var (
			processor core.FilterProcessor
			err       error
		)
		switch {
		case filter.Window != nil:
			processor, err = factory.NewWindowFilter(filter.Window)
		case filter.Rule != nil:
			processor, err = factory.NewRuleFilter(filter.Rule)
		}
		if err != nil {
			return nil, fmt.Errorf("filter %d: %w", i, err)
		}
		flow.Filters = append(flow.Filters, processor)
	}

	seen, err := factory.NewSeenFilter()
	if err != nil {
		return nil, fmt.Errorf("seen filter: %w", err)
	}
	flow.Filters = append(flow.Filters, seen)

	markdown, err := factory.NewMarkdownDigest(d.Workflow.Digest)
	if err != nil {
		return nil, fmt.Errorf("digest: %w", err)
	}
	flow.Digests = append(flow.Digests, markdown)

	if d.Workflow.Digest != nil && d.Workflow.Digest.Headline {
		headline, err := factory.NewHeadlineDigest(d.Workflow.Digest)
		if err != nil {
			return nil, fmt.Errorf("headline digest: %w", err)
		}
		if headline != nil {
			flow.Digests = append(flow.Digests, headline)
		}
	}

	for i, output := range d.Workflow.Output {
		processor, err := factory.NewEmailOutput(output.Email)
		if err != nil {
			return nil, fmt.Errorf("output %d: %w", i, err)
		}
		flow.Outputs = append(flow.Outputs, processor)
	}

	return flow, nil
}
