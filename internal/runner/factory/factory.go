package factory

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/bakkerme/internwatch/internal/config"
	"github.com/bakkerme/internwatch/internal/core"
	"github.com/bakkerme/internwatch/internal/dedupe"
	"github.com/bakkerme/internwatch/internal/fetch"
	"github.com/bakkerme/internwatch/internal/llm"
	llmopenai "github.com/bakkerme/internwatch/internal/llm/openai"
	"github.com/bakkerme/internwatch/internal/outputs/email"
	"github.com/bakkerme/internwatch/internal/outputs/email/console"
	"github.com/bakkerme/internwatch/internal/outputs/email/smtp"
	"github.com/bakkerme/internwatch/internal/processors/digest"
	filterproc "github.com/bakkerme/internwatch/internal/processors/filter"
	"github.com/bakkerme/internwatch/internal/processors/output"
	"github.com/bakkerme/internwatch/internal/processors/source"
	"github.com/bakkerme/internwatch/internal/processors/trigger"
	"github.com/bakkerme/internwatch/internal/sources/internlist"
	internlistimpl "github.com/bakkerme/internwatch/internal/sources/internlist/impl"
	"github.com/bakkerme/internwatch/internal/sources/jobright"
	jobrightimpl "github.com/bakkerme/internwatch/internal/sources/jobright/impl"
	"github.com/bakkerme/internwatch/internal/sources/reddit"
	"github.com/bakkerme/internwatch/internal/sources/rss"
	rssimpl "github.com/bakkerme/internwatch/internal/sources/rss/impl"
)

type Factory struct {
	Logger             *slog.Logger
	LLMClient          llm.Client
	DefaultModel       string
	DefaultTemperature *float64
	SMTPDefaults       config.SMTPEnvConfig
	EmailDefaults      config.EmailEnvConfig
	WindowDefault      time.Duration
	SeenStore          dedupe.SeenStore
	InternListFetcher  internlist.Fetcher
	JobrightFetcher    jobright.Fetcher
	RSSFetcher         rss.Fetcher
	RedditFetcher      reddit.Fetcher
	EmailSender        email.Sender
}

// NewFromEnvConfig builds a factory wired with real fetchers, the configured
// seen store and an LLM client when an API key is present. The email sender
// is left nil so per-flow SMTP overrides in the watch document take effect;
// without SMTP credentials delivery falls back to stdout.
func NewFromEnvConfig(logger *slog.Logger, env config.EnvConfig) (*Factory, error) {
	if logger == nil {
		logger = slog.Default()
	}

	store, err := newSeenStore(env.Seen)
	if err != nil {
		return nil, fmt.Errorf("open seen store: %w", err)
	}

	var llmClient llm.Client
	if env.OpenAI.APIKey != "" || env.OpenAI.BaseURL != "" {
		llmClient = llmopenai.NewClient(env.OpenAI)
	}

	httpClient := fetch.NewClient(env.HTTP.Timeout, env.HTTP.UserAgent)

	return &Factory{
		Logger:             logger,
		LLMClient:          llmClient,
		DefaultModel:       env.OpenAI.Model,
		DefaultTemperature: env.OpenAI.Temperature,
		SMTPDefaults:       env.SMTP,
		EmailDefaults:      env.Email,
		WindowDefault:      env.Window,
		SeenStore:          store,
		InternListFetcher:  internlistimpl.NewFetcher(httpClient),
		JobrightFetcher:    jobrightimpl.NewFetcher(httpClient),
		RSSFetcher:         rssimpl.NewFetcher(env.HTTP.Timeout, env.HTTP.UserAgent),
		RedditFetcher:      reddit.NewFetcher(env.HTTP.Timeout, env.HTTP.UserAgent),
		EmailSender:        nil,
	}, nil
}

func newSeenStore(cfg config.SeenEnvConfig) (dedupe.SeenStore, error) {
	switch cfg.Backend {
	case "", "file":
		return dedupe.NewFileStore(cfg.File)
	case "sqlite":
		return dedupe.NewSQLiteStore(cfg.DSN, cfg.Table, cfg.TTL)
	default:
		return nil, fmt.Errorf("unsupported seen store backend %q", cfg.Backend)
	}
}

// Close releases the seen store.
func (f *Factory) Close() error {
	if f.SeenStore != nil {
		return f.SeenStore.Close()
	}
	return nil
}

func (f *Factory) NewCronTrigger(cfg *config.CronTrigger) (core.TriggerProcessor, error) {
	return trigger.NewCronProcessor(cfg.Schedule, cfg.Timezone), nil
}

func (f *Factory) NewInternListSource(cfg *config.InternListSource) (core.SourceProcessor, error) {
	return source.NewInternListProcessor(cfg, f.InternListFetcher)
}

func (f *Factory) NewJobrightSource(cfg *config.JobrightSource) (core.SourceProcessor, error) {
	return source.NewJobrightProcessor(cfg, f.JobrightFetcher)
}

func (f *Factory) NewRSSSource(cfg *config.RSSSource) (core.SourceProcessor, error) {
	return source.NewRSSProcessor(cfg, f.RSSFetcher)
}

func (f *Factory) NewRedditSource(cfg *config.RedditSource) (core.SourceProcessor, error) {
	return source.NewRedditProcessor(cfg, f.RedditFetcher)
}

func (f *Factory) NewWindowFilter(cfg *config.WindowFilter) (core.FilterProcessor, error) {
	return filterproc.NewWindowProcessor(cfg, f.WindowDefault)
}

func (f *Factory) NewRuleFilter(cfg *config.RuleFilter) (core.FilterProcessor, error) {
	return filterproc.NewRuleProcessor(cfg)
}

func (f *Factory) NewSeenFilter() (core.FilterProcessor, error) {
	return filterproc.NewSeenProcessor(f.SeenStore)
}

func (f *Factory) NewMarkdownDigest(cfg *config.DigestConfig) (core.DigestProcessor, error) {
	return digest.NewMarkdownProcessor(cfg)
}

func (f *Factory) NewHeadlineDigest(cfg *config.DigestConfig) (core.DigestProcessor, error) {
	_ = cfg
	if f.LLMClient == nil {
		return nil, nil
	}
	temperature := 0.0
	if f.DefaultTemperature != nil {
		temperature = *f.DefaultTemperature
	}
	return digest.NewHeadlineProcessor(f.LLMClient, f.DefaultModel, temperature)
}

func (f *Factory) NewEmailOutput(cfg *config.EmailOutput) (core.OutputProcessor, error) {
	merged := f.mergeEmailConfig(cfg)
	sender := f.EmailSender
	if sender == nil {
		if merged.To == "" || merged.SMTPPassword == "" {
			f.Logger.Warn("email credentials missing, digests will print to stdout")
			sender = console.NewSender()
			if merged.To == "" {
				merged.To = "stdout@localhost"
			}
		} else {
			if err := smtp.ValidateConfig(merged.SMTPHost, merged.SMTPPort); err != nil {
				return nil, err
			}
			sender = smtp.NewSender(merged.SMTPHost, merged.SMTPPort, merged.SMTPUser, merged.SMTPPassword, merged.TLSMode, f.SMTPDefaults.InsecureSkipVerify)
		}
	}
	return output.NewEmailProcessor(merged, sender)
}

func (f *Factory) mergeEmailConfig(cfg *config.EmailOutput) *config.EmailOutput {
	merged := config.EmailOutput{}
	if cfg != nil {
		merged = *cfg
	}
	if merged.To == "" {
		merged.To = f.EmailDefaults.To
	}
	if merged.From == "" {
		merged.From = f.EmailDefaults.From
	}
	if merged.SMTPHost == "" {
		merged.SMTPHost = f.SMTPDefaults.Host
	}
	if merged.SMTPPort == 0 {
		merged.SMTPPort = f.SMTPDefaults.Port
	}
	if merged.SMTPUser == "" {
		merged.SMTPUser = f.SMTPDefaults.User
	}
	if merged.SMTPUser == "" {
		merged.SMTPUser = merged.To
	}
	if merged.SMTPPassword == "" {
		merged.SMTPPassword = f.SMTPDefaults.Password
	}
	if merged.SMTPPassword == "" {
		merged.SMTPPassword = f.EmailDefaults.AppPassword
	}
	if merged.TLSMode == "" {
		merged.TLSMode = f.SMTPDefaults.TLSMode
	}
	return &merged
}
