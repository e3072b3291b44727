package bigbench

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix namespaces environment overrides, e.g. BIGBENCH_TRIALS.
const EnvPrefix = "BIGBENCH"

// EvaluationSpec requests one Evaluate(algorithm, n1, n2) run.
type EvaluationSpec struct {
	Algorithm AlgorithmID `yaml:"algorithm"`
	N1        int         `yaml:"n1"`
	N2        int         `yaml:"n2"`
}

// ProfileSpec requests a size sweep and power-law fit for one algorithm.
type ProfileSpec struct {
	Algorithm AlgorithmID `yaml:"algorithm"`
	Sizes     []int       `yaml:"sizes"`
}

// Plan is a batch of experiments sharing one harness configuration.
//
//	trials: 5
//	seed: 42
//	evaluations:
//	  - {algorithm: 3, n1: 500, n2: 1000}
//	profiles:
//	  - {algorithm: 1, sizes: [100000, 200000, 400000]}
type Plan struct {
	Harness     HarnessConfig    `yaml:",inline"`
	Evaluations []EvaluationSpec `yaml:"evaluations"`
	Profiles    []ProfileSpec    `yaml:"profiles"`
}

// LoadPlan decodes a YAML plan. Settings the document omits keep their
// DefaultHarnessConfig values.
func LoadPlan(r io.Reader) (Plan, error) {
	plan := Plan{Harness: DefaultHarnessConfig()}

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&plan); err != nil && !errors.Is(err, io.EOF) {
		return Plan{}, fmt.Errorf("decode plan: %w", err)
	}

	if err := plan.Validate(); err != nil {
		return Plan{}, err
	}
	return plan, nil
}

// LoadPlanFile reads and decodes the plan at path.
func LoadPlanFile(path string) (Plan, error) {
	f, err := os.Open(path)
	if err != nil {
		return Plan{}, fmt.Errorf("open plan: %w", err)
	}
	defer f.Close()

	plan, err := LoadPlan(f)
	if err != nil {
		return Plan{}, fmt.Errorf("%s: %w", path, err)
	}
	return plan, nil
}

// Validate checks every experiment before anything is timed.
func (p Plan) Validate() error {
	var errs []error

	if p.Harness.Trials < 1 {
		errs = append(errs, fmt.Errorf("trials must be at least 1, got %d", p.Harness.Trials))
	}
	if p.Harness.Warmup < 0 {
		errs = append(errs, fmt.Errorf("warmup must not be negative, got %d", p.Harness.Warmup))
	}

	for i, e := range p.Evaluations {
		if !e.Algorithm.Valid() {
			errs = append(errs, fmt.Errorf("evaluations[%d]: %w: %d", i, ErrInvalidAlgorithm, int(e.Algorithm)))
		}
		if e.N1 <= 0 || e.N2 <= 0 {
			errs = append(errs, fmt.Errorf("evaluations[%d]: %w: n1=%d n2=%d", i, ErrInvalidSize, e.N1, e.N2))
		}
	}

	for i, pr := range p.Profiles {
		if !pr.Algorithm.Valid() {
			errs = append(errs, fmt.Errorf("profiles[%d]: %w: %d", i, ErrInvalidAlgorithm, int(pr.Algorithm)))
		}
		if len(pr.Sizes) < 2 {
			errs = append(errs, fmt.Errorf("profiles[%d]: need at least 2 sizes, got %d", i, len(pr.Sizes)))
		}
		for _, n := range pr.Sizes {
			if n <= 0 {
				errs = append(errs, fmt.Errorf("profiles[%d]: %w: %d", i, ErrInvalidSize, n))
				break
			}
		}
	}

	return errors.Join(errs...)
}

// ApplyEnv overrides cfg from BIGBENCH_* environment variables.
// Unset variables leave the corresponding field untouched.
func ApplyEnv(cfg *HarnessConfig) error {
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return fmt.Errorf("environment config: %w", err)
	}
	return nil
}

// EvaluationResult is one evaluation outcome. Failures are kept as data.
type EvaluationResult struct {
	Evaluation
	Error string `json:"error,omitempty"`
}

// ProfileResult is one profile outcome with its fit.
type ProfileResult struct {
	Algorithm AlgorithmID `json:"algorithm"`
	Class     string      `json:"class"`
	Points    []Point     `json:"points"`
	Fit       *PowerLaw   `json:"fit,omitempty"`
	Matches   []int       `json:"matches,omitempty"` // Algorithms sharing the fitted class
	Error     string      `json:"error,omitempty"`
}

// Report collects the results of one RunPlan call.
type Report struct {
	RunID       string             `json:"run_id"`
	StartedAt   time.Time          `json:"started_at"`
	Elapsed     time.Duration      `json:"elapsed"`
	Trials      int                `json:"trials"`
	Evaluations []EvaluationResult `json:"evaluations"`
	Profiles    []ProfileResult    `json:"profiles"`
}

// RunPlan executes the plan's evaluations, then its profiles, in order, on a
// single harness. ctx is checked between experiments.
//
// Per-experiment failures (e.g. an undetermined percent error) are recorded
// in the report; only cancellation or an invalid plan aborts the run.
func RunPlan(ctx context.Context, plan Plan, logger *slog.Logger) (Report, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := plan.Validate(); err != nil {
		return Report{}, fmt.Errorf("invalid plan: %w", err)
	}

	cfg := plan.Harness
	cfg.Logger = logger
	harness := NewHarness(nil, nil, cfg)
	estimator := NewEstimator(harness, logger)

	report := Report{
		RunID:     uuid.NewString(),
		StartedAt: time.Now(),
		Trials:    cfg.Trials,
	}
	log := logger.With("run_id", report.RunID)
	log.Info("plan started",
		"evaluations", len(plan.Evaluations), "profiles", len(plan.Profiles), "trials", cfg.Trials)

	for _, spec := range plan.Evaluations {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		ev, err := estimator.Evaluate(spec.Algorithm, spec.N1, spec.N2)
		result := EvaluationResult{Evaluation: ev}
		if err != nil {
			result.Error = err.Error()
			log.Warn("evaluation failed", "algorithm", int(spec.Algorithm), "err", err)
		} else {
			log.Info("evaluation",
				"algorithm", int(spec.Algorithm), "n1", spec.N1, "n2", spec.N2,
				"predicted", ev.Predicted, "actual", ev.T2, "percent_error", ev.PercentError)
		}
		report.Evaluations = append(report.Evaluations, result)
	}

	for _, spec := range plan.Profiles {
		points, err := harness.Profile(ctx, spec.Algorithm, spec.Sizes)
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return report, err
		}

		result := ProfileResult{
			Algorithm: spec.Algorithm,
			Class:     spec.Algorithm.Class(),
			Points:    points,
		}
		if err == nil {
			var fit PowerLaw
			fit, err = FitPowerLaw(points)
			if err == nil {
				result.Fit = &fit
				for _, id := range fit.Classify() {
					result.Matches = append(result.Matches, int(id))
				}
			}
		}
		if err != nil {
			result.Error = err.Error()
			log.Warn("profile failed", "algorithm", int(spec.Algorithm), "err", err)
		} else {
			log.Info("profile",
				"algorithm", int(spec.Algorithm), "class", result.Class,
				"exponent", result.Fit.Exponent, "r_squared", result.Fit.RSquared)
		}
		report.Profiles = append(report.Profiles, result)
	}

	report.Elapsed = time.Since(report.StartedAt)
	log.Info("plan finished", "elapsed", report.Elapsed)

	return report, nil
}
