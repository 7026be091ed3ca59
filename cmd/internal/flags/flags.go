// Package flags holds the pipeline flags shared by the webml binaries and
// wires them into a pipeline.Generator.
package flags

import (
	"log/slog"
	"time"

	"github.com/fwojciec/webml"
	"github.com/fwojciec/webml/goquery"
	"github.com/fwojciec/webml/htmltomarkdown"
	webmlhttp "github.com/fwojciec/webml/http"
	"github.com/fwojciec/webml/lingua"
	"github.com/fwojciec/webml/pipeline"
	"github.com/fwojciec/webml/readability"
	webmlslog "github.com/fwojciec/webml/slog"
	"github.com/fwojciec/webml/yaml"
)

// Generator configures the fetcher and the pipeline. Embed it in a kong
// CLI struct with `embed:""`.
type Generator struct {
	Timeout        time.Duration `short:"t" default:"10s" env:"WEBML_TIMEOUT" help:"Fetch timeout"`
	UserAgent      string        `name:"user-agent" env:"WEBML_USER_AGENT" help:"Override the User-Agent header"`
	MaxBody        int64         `name:"max-body" default:"10485760" env:"WEBML_MAX_BODY" help:"Maximum response bytes read"`
	Profiles       string        `name:"profiles" env:"WEBML_PROFILES" help:"YAML file with extra site profiles"`
	Markdown       bool          `short:"m" env:"WEBML_MARKDOWN" help:"Render the content root as Markdown"`
	DetectLanguage bool          `name:"detect-language" env:"WEBML_DETECT_LANGUAGE" help:"Detect the language when the page does not declare one"`
	Enrich         bool          `env:"WEBML_ENRICH" help:"Add byline, excerpt, site name and publication date"`
	PageEntity     string        `name:"page-entity" default:"if-titled" enum:"if-titled,always" env:"WEBML_PAGE_ENTITY" help:"When to emit the page entity (if-titled, always)"`
	BlockOrder     string        `name:"block-order" default:"grouped" enum:"grouped,document" env:"WEBML_BLOCK_ORDER" help:"Text block order (grouped, document)"`
	MaxLinks       int           `name:"max-links" default:"400" env:"WEBML_MAX_LINKS" help:"Maximum page links (1-400)"`
}

// Build wires a Generator from the flags. A nil fetcher means a plain
// HTTP fetcher configured from the flags plus opts. The fetcher and the
// normalizer are wrapped in logging decorators.
func (f *Generator) Build(fetcher webml.Fetcher, logger *slog.Logger, opts ...webmlhttp.Option) (*pipeline.Generator, error) {
	policy, err := webml.ParsePageEntityPolicy(f.PageEntity)
	if err != nil {
		return nil, err
	}
	order, err := webml.ParseBlockOrder(f.BlockOrder)
	if err != nil {
		return nil, err
	}

	profiles := goquery.DefaultProfiles()
	if f.Profiles != "" {
		cfg, err := yaml.LoadProfiles(f.Profiles)
		if err != nil {
			return nil, err
		}
		profiles = cfg.Merge(profiles)
		logger.Debug("profiles loaded", "path", f.Profiles, "count", len(profiles))
	}

	if fetcher == nil {
		fetcher = f.fetcher(opts...)
	}

	normalizer := goquery.NewNormalizer(
		goquery.NewRegistry(profiles...),
		goquery.WithBlockOrder(order),
		goquery.WithPageLinkLimit(f.MaxLinks),
	)

	gen := &pipeline.Generator{
		Fetcher:    webmlslog.NewLoggingFetcher(fetcher, logger),
		Normalizer: webmlslog.NewLoggingNormalizer(normalizer, logger),
		Policy:     policy,
	}
	if f.Markdown {
		gen.Converter = htmltomarkdown.NewConverter()
	}
	if f.DetectLanguage {
		gen.LanguageDetector = lingua.NewDetector(nil)
	}
	if f.Enrich {
		gen.Enricher = readability.NewEnricher()
	}
	return gen, nil
}

func (f *Generator) fetcher(extra ...webmlhttp.Option) *webmlhttp.Fetcher {
	opts := []webmlhttp.Option{
		webmlhttp.WithTimeout(f.Timeout),
		webmlhttp.WithMaxBodySize(f.MaxBody),
	}
	if f.UserAgent != "" {
		opts = append(opts, webmlhttp.WithUserAgent(f.UserAgent))
	}
	return webmlhttp.NewFetcher(append(opts, extra...)...)
}
