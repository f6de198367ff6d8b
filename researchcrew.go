// Package researchcrew provides a high-level façade over the agent, crew
// and backend packages for turning a single topic into a finished research
// report. Most applications interact with this package by:
//  1. Resolving a backend once at startup via backend.Resolve
//  2. Creating a ResearchCrew via New() with the resolved Config
//  3. Calling Run() with a topic, a model identifier from the active
//     catalog and a temperature
//
// The façade assembles the fixed two-agent workflow (a researcher gathers
// findings, a writer turns them into a markdown post), wires both agents to
// one LLM client binding built for the resolved backend, and delegates
// sequential execution to crew.Crew. Input validation happens here, before
// any network call; generation failures surface as *crew.AbortError with
// the underlying *model.GenerationError intact.
package researchcrew

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/jarmanper/researchcrew/agent"
	"github.com/jarmanper/researchcrew/backend"
	"github.com/jarmanper/researchcrew/console"
	"github.com/jarmanper/researchcrew/crew"
	"github.com/jarmanper/researchcrew/logging"
	"github.com/jarmanper/researchcrew/model"
	"github.com/jarmanper/researchcrew/model/anthropic"
	"github.com/jarmanper/researchcrew/model/openai"
)

// ConfigError reports invalid input detected before any network call.
type ConfigError struct {
	Field  string
	Reason string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// BindingFactory builds the LLM client binding for one run. The default
// factory routes on the model identifier's provider prefix; override it in
// Options to substitute providers (or mocks) without touching crew code.
type BindingFactory func(cfg backend.Config, modelID string, temperature float64) (model.Binding, error)

// DefaultBindingFactory targets the resolved endpoint through the
// OpenAI-compatible adapter, except for anthropic/-prefixed identifiers
// which use the native Anthropic binding.
func DefaultBindingFactory(cfg backend.Config, modelID string, temperature float64) (model.Binding, error) {
	provider, name := backend.SplitModelID(modelID)

	if provider == "anthropic" {
		return anthropic.NewBinding(func(o *anthropic.Options) {
			o.Model = name
			o.Temperature = temperature
		}), nil
	}

	return openai.NewBinding(func(o *openai.Options) {
		o.Model = name
		o.Temperature = temperature
		o.BaseURL = cfg.Endpoint
		o.APIKey = cfg.Credential
	}), nil
}

// llmCallLogger is implemented by loggers (such as logging.CrewLogger)
// that record per-completion latency and outcome.
type llmCallLogger interface {
	LogLLMCall(model string, dur time.Duration, success bool, err error)
}

// loggedBinding decorates a binding so every completion is reported to the
// run's LLM call logger.
type loggedBinding struct {
	model.Binding
	log llmCallLogger
}

func (b *loggedBinding) Complete(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	out, err := b.Binding.Complete(ctx, prompt)
	b.log.LogLLMCall(b.Info().Name, time.Since(start), err == nil, err)
	return out, err
}

// Options configure the ResearchCrew instance.
type Options struct {
	// Logger receives structured progress records (defaults to NoOpLogger).
	Logger logging.Logger
	// Console receives human-readable progress lines (defaults to NopSink).
	Console console.Sink
	// BindingFactory overrides how model identifiers become bindings.
	BindingFactory BindingFactory
}

// ResearchCrew runs topic research pipelines against one resolved backend.
// It holds no per-run state: concurrent Run calls each construct their own
// agents, tasks and crew.
type ResearchCrew struct {
	cfg  backend.Config
	opts Options
}

// New creates a ResearchCrew bound to a resolved backend configuration.
func New(cfg backend.Config, optFns ...func(o *Options)) *ResearchCrew {
	opts := Options{
		Logger:         logging.NoOpLogger{},
		Console:        console.NopSink{},
		BindingFactory: DefaultBindingFactory,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &ResearchCrew{cfg: cfg, opts: opts}
}

// Request is one report request.
type Request struct {
	// Topic is what the agents research; must be non-empty.
	Topic string
	// Model must be an identifier from the active backend catalog.
	Model string
	// Temperature controls sampling randomness in [0.0, 1.0]; higher
	// values bias toward more varied continuations.
	Temperature float64
}

// Validate fails fast on inputs that would be rejected before generation.
func (r Request) Validate(cfg backend.Config) error {
	if strings.TrimSpace(r.Topic) == "" {
		return &ConfigError{Field: "topic", Reason: "must not be empty"}
	}
	if !cfg.HasModel(r.Model) {
		return &ConfigError{Field: "model", Reason: fmt.Sprintf("%q is not in the active %s catalog", r.Model, cfg.Mode)}
	}
	if math.IsNaN(r.Temperature) || r.Temperature < 0.0 || r.Temperature > 1.0 {
		return &ConfigError{Field: "temperature", Reason: fmt.Sprintf("%v is outside [0.0, 1.0]", r.Temperature)}
	}
	return nil
}

// Run executes the research workflow for req and returns the finished
// report as markdown. The whole pipeline aborts on the first task failure;
// see crew.AbortError.
func (c *ResearchCrew) Run(ctx context.Context, req Request) (string, error) {
	if err := req.Validate(c.cfg); err != nil {
		return "", err
	}

	binding, err := c.opts.BindingFactory(c.cfg, req.Model, req.Temperature)
	if err != nil {
		return "", fmt.Errorf("build binding: %w", err)
	}
	if cl, ok := c.opts.Logger.(llmCallLogger); ok {
		binding = &loggedBinding{Binding: binding, log: cl}
	}

	tasks, err := buildResearchTasks(req.Topic, binding)
	if err != nil {
		return "", err
	}

	cr, err := crew.New(tasks, func(o *crew.Options) {
		o.Logger = c.opts.Logger
		o.Console = c.opts.Console
	})
	if err != nil {
		return "", err
	}

	c.opts.Logger.Info("research run starting",
		"topic", req.Topic, "model", req.Model, "mode", string(c.cfg.Mode), "run_id", cr.RunID())

	return cr.Kickoff(ctx)
}

// buildResearchTasks assembles the fixed researcher -> writer workflow.
// Both agents share the supplied binding.
func buildResearchTasks(topic string, binding model.Binding) ([]*crew.Task, error) {
	researcher, err := agent.New(
		"Senior Research Analyst",
		fmt.Sprintf("Find comprehensive and factual information about %s", topic),
		fmt.Sprintf("You are an incredibly skilled researcher with a deep understanding of %s. "+
			"Even with your expertise, you remain humble and never make up information. "+
			"You thoroughly fact-check all your findings before presenting them.", topic),
		binding,
	)
	if err != nil {
		return nil, err
	}

	writer, err := agent.New(
		"Tech Content Strategist",
		"Summarize the researcher's findings into a clean, engaging post",
		fmt.Sprintf("You are a talented technical writer who can take complex information about %s "+
			"and make it accessible to a broad audience. You never change the facts - "+
			"you just present them in a compelling way.", topic),
		binding,
	)
	if err != nil {
		return nil, err
	}

	research, err := crew.NewTask(
		fmt.Sprintf("Conduct a comprehensive analysis of %s. "+
			"Identify key trends, major players, and future predictions. "+
			"Focus on the most current and relevant data from 2025 and 2026.", topic),
		"A detailed bulleted report of findings.",
		researcher,
	)
	if err != nil {
		return nil, err
	}

	write, err := crew.NewTask(
		fmt.Sprintf("Using the research provided, write a high-impact blog post about %s. "+
			"The tone should be professional yet engaging. "+
			"Use Markdown formatting with proper headers (##) and emphasis (**bold**).", topic),
		"A markdown-formatted blog post ready for publication.",
		writer,
	)
	if err != nil {
		return nil, err
	}

	return []*crew.Task{research, write}, nil
}
