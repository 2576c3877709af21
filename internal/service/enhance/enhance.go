package enhance

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"
	"k8s.io/klog/v2"
)

var (
	// ErrUnavailable means no enhancement capability is configured or the
	// upstream cannot be reached at all.
	ErrUnavailable = errors.New("enhancement capability unavailable")
	// ErrEmptyResponse means the upstream answered but produced no usable
	// text. Kept distinct from ErrUnavailable so callers can retry instead of
	// assuming a total outage.
	ErrEmptyResponse = errors.New("empty response from enhancement upstream")
)

const systemInstruction = "You are a legal document enhancement assistant specializing in Indian law. " +
	"Improve the legal language, structure and completeness of the document you are given, " +
	"add any necessary legal disclaimers, and return only the enhanced document content, no additional commentary."

// Service is the single enhancement entry point. It is constructed with an
// explicit capability: either a Generator (AI providers) or the deterministic
// rule engine. A Service with neither reports ErrUnavailable on every call,
// there is no global handle probing.
type Service struct {
	gen        Generator
	rules      *RuleEnhancer
	timeout    time.Duration
	maxRetries int
}

// NewService builds an AI-backed enhancement service. gen may be nil when the
// capability is not configured.
func NewService(gen Generator, timeout time.Duration, maxRetries int) *Service {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if maxRetries <= 0 {
		maxRetries = 3
	}
	return &Service{gen: gen, timeout: timeout, maxRetries: maxRetries}
}

// NewRuleService builds an enhancement service backed by the deterministic
// clause-insertion engine. No network, no retry.
func NewRuleService() *Service {
	return &Service{rules: NewRuleEnhancer()}
}

// Enhance rewrites a rendered document. Each upstream attempt is bounded by
// the configured timeout, and transport failures and empty responses are
// retried with jittered backoff up to the attempt budget. The input content is
// never modified; on any failure the caller's draft is intact.
func (s *Service) Enhance(ctx context.Context, content, templateName string, formData map[string]string) (string, error) {
	if s.rules != nil {
		return s.rules.Enhance(content, templateName), nil
	}
	if s.gen == nil {
		return "", ErrUnavailable
	}

	prompt := buildPrompt(content, templateName, formData)

	backoff := retry.NewFibonacci(500 * time.Millisecond)
	backoff = retry.WithJitter(250*time.Millisecond, backoff)
	backoff = retry.WithMaxRetries(uint64(s.maxRetries-1), backoff)

	var enhanced string
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attemptCtx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()

		text, err := s.gen.Generate(attemptCtx, systemInstruction, prompt)
		if err != nil {
			if ctx.Err() != nil {
				// Caller canceled; give up immediately.
				return err
			}
			klog.V(6).Infof("enhancement attempt failed via %s: %v", s.gen.Name(), err)
			return retry.RetryableError(err)
		}
		if strings.TrimSpace(text) == "" {
			klog.V(6).Infof("enhancement attempt returned empty text via %s", s.gen.Name())
			return retry.RetryableError(ErrEmptyResponse)
		}
		enhanced = text
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrEmptyResponse) {
			return "", ErrEmptyResponse
		}
		return "", fmt.Errorf("enhance %q: %w", templateName, err)
	}
	return enhanced, nil
}

// Available reports whether any enhancement capability is configured.
func (s *Service) Available() bool {
	return s.rules != nil || s.gen != nil
}

func buildPrompt(content, templateName string, formData map[string]string) string {
	formJSON, err := json.MarshalIndent(formData, "", "  ")
	if err != nil {
		formJSON = []byte("{}")
	}

	return fmt.Sprintf(`Please review and enhance the following %s document:

%s

Form data used: %s

Please:
1. Ensure all legal language is accurate and appropriate for Indian law
2. Check for any missing clauses that should be included
3. Improve the formatting and structure
4. Add any necessary legal disclaimers
5. Ensure compliance with Indian legal standards

Return only the enhanced document content, no additional commentary.`, templateName, content, formJSON)
}
