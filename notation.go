package notation

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/neon-law-foundation/notation/internal/compiler"
	"github.com/neon-law-foundation/notation/internal/logging"
	"github.com/neon-law-foundation/notation/internal/metrics"
	"github.com/neon-law-foundation/notation/internal/presentation/graph"
	"github.com/neon-law-foundation/notation/internal/sanitize"
	"github.com/neon-law-foundation/notation/internal/validator"
	"github.com/neon-law-foundation/notation/pkg/domain"
	"github.com/neon-law-foundation/notation/pkg/frontmatter"
	"github.com/neon-law-foundation/notation/pkg/jsonfield"
	"github.com/neon-law-foundation/notation/pkg/ports"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
)

//go:embed VERSION
var version string

// Version is the release of this module.
var Version = strings.TrimSpace(version)

const tracerName = "github.com/neon-law-foundation/notation"

// Engine validates notation documents. It holds no per-call state and is safe
// for concurrent use.
type Engine struct {
	questions   ports.QuestionRegistry
	notations   ports.NotationRegistry
	logger      *slog.Logger
	metrics     *metrics.Metrics
	tracer      oteltrace.Tracer
	concurrency int
	maxSize     int
	parser      *compiler.Parser
	fields      *jsonfield.Registry
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithQuestionRegistry sets the registry used to resolve question codes.
// Without one, question references are not checked.
func WithQuestionRegistry(r ports.QuestionRegistry) Option {
	return func(e *Engine) {
		e.questions = r
	}
}

// WithNotationRegistry sets the registry used for code uniqueness.
// Without one, uniqueness is not checked.
func WithNotationRegistry(r ports.NotationRegistry) Option {
	return func(e *Engine) {
		e.notations = r
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithMetrics registers the engine's Prometheus instruments with reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(e *Engine) {
		e.metrics = metrics.New(reg)
	}
}

// WithTracerProvider sets the OpenTelemetry provider for validation spans.
// The global provider is used by default.
func WithTracerProvider(tp oteltrace.TracerProvider) Option {
	return func(e *Engine) {
		e.tracer = tp.Tracer(tracerName)
	}
}

// WithLookupConcurrency bounds parallel question lookups (default 4).
func WithLookupConcurrency(n int) Option {
	return func(e *Engine) {
		e.concurrency = n
	}
}

// WithMaxDocumentSize sets the largest accepted document in bytes (default 1 MiB).
func WithMaxDocumentSize(n int) Option {
	return func(e *Engine) {
		e.maxSize = n
	}
}

// New initializes a new validation Engine.
func New(opts ...Option) *Engine {
	eng := &Engine{
		concurrency: validator.DefaultLookupConcurrency,
		maxSize:     sanitize.DefaultMaxDocumentSize,
		parser:      compiler.NewParser(),
		fields:      jsonfield.NewRegistry(),
	}
	for _, opt := range opts {
		opt(eng)
	}
	if eng.logger == nil {
		eng.logger = logging.NewNop()
	}
	if eng.tracer == nil {
		eng.tracer = otel.GetTracerProvider().Tracer(tracerName)
	}
	return eng
}

// ValidateOption adjusts a single validation call.
type ValidateOption func(*validateOptions)

type validateOptions struct {
	warnings       bool
	skipUniqueness bool
	id             string
}

// WithWarnings includes warnings in the response.
func WithWarnings() ValidateOption {
	return func(o *validateOptions) {
		o.warnings = true
	}
}

// SkipUniqueness disables the duplicate code check, e.g. when re-validating a
// notation that is already stored under its code.
func SkipUniqueness() ValidateOption {
	return func(o *validateOptions) {
		o.skipUniqueness = true
	}
}

// WithValidationID tags logs and spans with id instead of a generated UUID.
func WithValidationID(id string) ValidateOption {
	return func(o *validateOptions) {
		o.id = id
	}
}

// Validate runs every check over raw and returns all findings. Content
// problems never produce an error; the error is non-nil only when ctx ends
// before validation completes.
func (e *Engine) Validate(ctx context.Context, raw string, opts ...ValidateOption) (domain.ValidationResponse, error) {
	var o validateOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.id == "" {
		o.id = uuid.NewString()
	}

	start := time.Now()
	ctx, span := e.tracer.Start(ctx, "notation.Validate",
		oteltrace.WithAttributes(attribute.String("validation.id", o.id)))
	defer span.End()

	r := &run{
		engine: e,
		opts:   o,
		logger: e.logger.With("validation_id", o.id),
	}
	if err := r.execute(ctx, raw); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return domain.ValidationResponse{}, err
	}

	res := domain.ValidationResponse{
		Valid:  len(r.errors) == 0,
		Errors: r.errors,
	}
	if res.Errors == nil {
		res.Errors = []domain.ValidationError{}
	}
	if o.warnings {
		res.Warnings = r.warnings
	}

	for _, v := range r.errors {
		e.metrics.IncrementFinding("error", v.Type)
	}
	for _, w := range r.warnings {
		e.metrics.IncrementFinding("warning", w.Type)
	}
	e.metrics.ObserveValidation(res.Valid, time.Since(start))
	span.SetAttributes(
		attribute.Bool("validation.valid", res.Valid),
		attribute.Int("validation.errors", len(r.errors)),
		attribute.Int("validation.warnings", len(r.warnings)),
	)
	r.logger.Info("notation validated",
		"code", r.code,
		"valid", res.Valid,
		"errors", len(r.errors),
		"warnings", len(r.warnings),
		"duration", time.Since(start),
	)
	return res, nil
}

// ValidateFile reads path and validates its content.
func (e *Engine) ValidateFile(ctx context.Context, path string, opts ...ValidateOption) (domain.ValidationResponse, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.ValidationResponse{}, fmt.Errorf("failed to read notation: %w", err)
	}
	return e.Validate(ctx, string(data), opts...)
}

// ValidateField validates a JSON field of the given kind.
func (e *Engine) ValidateField(kind jsonfield.Kind, text string) (domain.SchemaValidationResult, error) {
	res, err := e.fields.Validate(kind, text)
	if err != nil {
		return res, err
	}
	e.metrics.IncrementField(string(kind), res.IsValid)
	return res, nil
}

// FieldKinds lists the JSON field kinds ValidateField accepts.
func (e *Engine) FieldKinds() []jsonfield.Kind {
	return e.fields.Kinds()
}

// StateMachine extracts one machine from raw without running the checks.
func (e *Engine) StateMachine(raw string, machine domain.Machine) (domain.StateMachine, error) {
	clean, err := sanitize.Document(raw, e.maxSize)
	if err != nil {
		return nil, err
	}
	block, err := frontmatter.Split(clean)
	if err != nil {
		return nil, err
	}
	fm, err := e.parser.Parse(block.YAML, block.YAMLLine)
	if err != nil {
		return nil, err
	}
	value, ok := fm.Values[string(machine)]
	if !ok || value == nil {
		return nil, fmt.Errorf("%s is not defined", machine)
	}
	return compiler.BuildStateMachine(value)
}

// Graph renders one machine of raw as a Mermaid flowchart, highlighting
// unreachable states and cycles.
func (e *Engine) Graph(raw string, machine domain.Machine) (string, error) {
	m, err := e.StateMachine(raw, machine)
	if err != nil {
		return "", err
	}

	overlay := &graph.Overlay{}
	if m.HasBegin() {
		reachable := validator.Reachable(m)
		for _, s := range m.States() {
			if !reachable[s] {
				overlay.Unreachable = append(overlay.Unreachable, s)
			}
		}
		for _, cycle := range validator.Cycles(m) {
			overlay.Cyclic = append(overlay.Cyclic, cycle[:len(cycle)-1]...)
		}
	}
	return graph.GenerateMermaid(m, overlay), nil
}

// run holds the findings of one Validate call.
type run struct {
	engine   *Engine
	opts     validateOptions
	logger   *slog.Logger
	code     string
	errors   []domain.ValidationError
	warnings []domain.ValidationWarning
}

func (r *run) stage(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, oteltrace.Span) {
	r.logger.Debug("stage", "name", name)
	return r.engine.tracer.Start(ctx, "notation."+name, oteltrace.WithAttributes(attrs...))
}

func (r *run) fail(err domain.ValidationError) {
	r.errors = append(r.errors, err)
}

func (r *run) execute(ctx context.Context, raw string) error {
	e := r.engine

	clean, err := sanitize.Document(raw, e.maxSize)
	if err != nil {
		r.fail(admissionError(err))
		return nil
	}

	_, span := r.stage(ctx, "split")
	block, err := frontmatter.Split(clean)
	span.End()
	if err != nil {
		r.fail(splitError(err))
		return nil
	}

	_, span = r.stage(ctx, "structural")
	fm, err := e.parser.Parse(block.YAML, block.YAMLLine)
	if err != nil {
		span.End()
		r.fail(parseError(err))
		r.analyzeBody(ctx, block)
		return ctx.Err()
	}
	header, errs := validator.Structural(fm)
	span.End()
	r.errors = append(r.errors, errs...)
	r.code = header.Code

	for _, machine := range domain.Machines {
		value := header.Machine(machine)
		if value == nil {
			continue
		}
		if err := r.checkMachine(ctx, machine, value, fm.Line(string(machine))); err != nil {
			return err
		}
	}

	r.analyzeBody(ctx, block)

	if header.Code != "" && e.notations != nil && !r.opts.skipUniqueness {
		if err := r.checkUniqueness(ctx, header.Code, fm.Line("code")); err != nil {
			return err
		}
	}
	return ctx.Err()
}

func (r *run) checkMachine(ctx context.Context, machine domain.Machine, value any, line int) error {
	e := r.engine
	field := string(machine)

	ctx, span := r.stage(ctx, "state_machine", attribute.String("machine", field))
	defer span.End()

	m, err := compiler.BuildStateMachine(value)
	if err != nil {
		r.fail(domain.ValidationError{
			Type:       domain.ErrorInvalidStateMachine,
			Field:      field,
			Message:    fmt.Sprintf("%s: %v", field, err),
			Line:       line,
			Suggestion: "Write each state as a mapping from condition to target state",
		})
		return nil
	}

	errs, warnings := validator.StateMachine(machine, m)
	r.errors = append(r.errors, atLine(errs, line)...)
	r.warnings = append(r.warnings, warnings...)

	if e.questions == nil {
		return nil
	}
	rctx, rspan := r.stage(ctx, "resolve_questions", attribute.String("machine", field))
	defer rspan.End()

	missing, err := validator.NewResolver(e.questions, e.concurrency).Resolve(rctx, machine, m)
	e.metrics.IncrementLookup("question", err)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		rspan.RecordError(err)
		r.logger.Warn("question registry lookup failed", "machine", field, "error", err)
		r.fail(atLine([]domain.ValidationError{validator.RegistryUnavailable(field, err)}, line)[0])
		return nil
	}
	r.errors = append(r.errors, atLine(missing, line)...)
	return nil
}

func (r *run) analyzeBody(ctx context.Context, block frontmatter.Block) {
	_, span := r.stage(ctx, "variables")
	defer span.End()
	r.warnings = append(r.warnings, validator.AnalyzeVariables(validator.Variables(block.Body, block.BodyLine))...)
}

func (r *run) checkUniqueness(ctx context.Context, code string, line int) error {
	ctx, span := r.stage(ctx, "uniqueness")
	defer span.End()

	count, err := r.engine.notations.CountByCode(ctx, code)
	r.engine.metrics.IncrementLookup("notation", err)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		span.RecordError(err)
		r.logger.Warn("notation registry lookup failed", "code", code, "error", err)
		verr := validator.RegistryUnavailable("code", fmt.Errorf("%w: %w", domain.ErrRegistryUnavailable, err))
		verr.Line = line
		r.fail(verr)
		return nil
	}
	if count > 0 {
		r.fail(domain.ValidationError{
			Type:       domain.ErrorDuplicateCode,
			Field:      "code",
			Message:    fmt.Sprintf("code %q is already used by %d %s", code, count, pluralNotation(count)),
			Line:       line,
			Suggestion: "Choose a code that no other notation uses",
		})
	}
	return nil
}

func atLine(errs []domain.ValidationError, line int) []domain.ValidationError {
	for i := range errs {
		if errs[i].Line == 0 {
			errs[i].Line = line
		}
	}
	return errs
}

func pluralNotation(n int) string {
	if n == 1 {
		return "notation"
	}
	return "notations"
}

func admissionError(err error) domain.ValidationError {
	if errors.Is(err, domain.ErrDocumentTooLarge) {
		return domain.ValidationError{
			Type:       domain.ErrorDocumentTooLarge,
			Message:    err.Error(),
			Suggestion: "Split the notation or raise the size limit",
		}
	}
	return domain.ValidationError{
		Type:       domain.ErrorInvalidEncoding,
		Message:    err.Error(),
		Suggestion: "Save the document as UTF-8",
	}
}

func splitError(err error) domain.ValidationError {
	var fe *frontmatter.Error
	line := 0
	if errors.As(err, &fe) {
		line = fe.Line
	}
	if errors.Is(err, domain.ErrUnclosedFrontmatter) {
		return domain.ValidationError{
			Type:       domain.ErrorUnclosedFrontmatter,
			Message:    "frontmatter is not closed by a --- line",
			Line:       line,
			Suggestion: "Add a line containing only --- after the frontmatter",
		}
	}
	return domain.ValidationError{
		Type:       domain.ErrorMissingFrontmatter,
		Message:    "document must start with a --- line",
		Line:       line,
		Suggestion: "Start the document with --- followed by the YAML frontmatter",
	}
}

func parseError(err error) domain.ValidationError {
	var pe *compiler.ParseError
	line := 0
	if errors.As(err, &pe) {
		line = pe.Line
	}
	if errors.Is(err, domain.ErrNotAnObject) {
		return domain.ValidationError{
			Type:       domain.ErrorNotAnObject,
			Message:    err.Error(),
			Line:       line,
			Suggestion: "Write the frontmatter as key: value pairs",
		}
	}
	return domain.ValidationError{
		Type:       domain.ErrorYAMLSyntax,
		Message:    err.Error(),
		Line:       line,
		Suggestion: "Check indentation and quoting near the reported line",
	}
}
