// Package coach turns a coaching request into one upstream model call.
package coach

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/gios-blog/runcoach/internal/gemini"
	"github.com/gios-blog/runcoach/internal/intake"
	"github.com/gios-blog/runcoach/internal/prompt"
)

// NotConfiguredMessage is returned to the user when no upstream credential
// is configured
const NotConfiguredMessage = "API 키가 설정되지 않았습니다. GEMINI_API_KEY 환경 변수를 확인하세요."

// VertexNotConfiguredMessage is the Vertex AI counterpart
const VertexNotConfiguredMessage = "Vertex AI 클라이언트를 사용할 수 없습니다. GCP_PROJECT, GCP_LOCATION 환경 변수와 인증 정보를 확인하세요."

var (
	ErrNotConfigured       = errors.New(NotConfiguredMessage)
	ErrVertexNotConfigured = errors.New(VertexNotConfiguredMessage)
)

// IsNotConfigured reports whether err means no upstream is available
func IsNotConfigured(err error) bool {
	return errors.Is(err, ErrNotConfigured) || errors.Is(err, ErrVertexNotConfigured)
}

// Generator is an upstream model. Implemented by gemini.Client and
// gemini.VertexClient.
type Generator interface {
	GenerateContent(ctx context.Context, system string, contents []gemini.Content) (string, error)
}

// InputError marks a request the client should not have sent
type InputError struct {
	Err error
}

func (e *InputError) Error() string { return e.Err.Error() }
func (e *InputError) Unwrap() error { return e.Err }

type Options struct {
	// Generator may be nil; Reply then fails with NotConfigured
	Generator Generator
	// NotConfigured defaults to ErrNotConfigured
	NotConfigured error
	HistoryLimit  int
	Timeout       time.Duration
}

// Service composes the system instruction and transcript and relays the
// model reply. It keeps no state between calls.
type Service struct {
	gen           Generator
	notConfigured error
	historyLimit  int
	timeout       time.Duration
}

func NewService(opts Options) *Service {
	notConfigured := opts.NotConfigured
	if notConfigured == nil {
		notConfigured = ErrNotConfigured
	}
	return &Service{
		gen:           opts.Generator,
		notConfigured: notConfigured,
		historyLimit:  opts.HistoryLimit,
		timeout:       opts.Timeout,
	}
}

// Validate checks the fields a request must carry. History may be empty.
func (req Request) Validate() error {
	if req.UserData == nil {
		return &InputError{Err: errors.New("userData is required")}
	}
	if err := req.UserData.Validate(); err != nil {
		return &InputError{Err: fmt.Errorf("userData: %w", err)}
	}
	if req.CurrentDate == "" {
		return &InputError{Err: errors.New("currentDate is required")}
	}
	if _, err := intake.ParseDate(req.CurrentDate); err != nil {
		return &InputError{Err: fmt.Errorf("currentDate: %w", err)}
	}
	if strings.TrimSpace(req.Question) == "" {
		return &InputError{Err: errors.New("question is required")}
	}
	return nil
}

// Reply answers one coaching turn. A missing upstream is reported before
// anything else is looked at.
func (s *Service) Reply(ctx context.Context, req Request) (string, error) {
	if s.gen == nil {
		return "", s.notConfigured
	}
	if err := req.Validate(); err != nil {
		return "", err
	}

	system, err := prompt.System(*req.UserData, req.CurrentDate)
	if err != nil {
		return "", err
	}
	contents := Contents(req.History, req.Question, s.historyLimit)

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	log := zerolog.Ctx(ctx)
	log.Debug().
		Str("goal", string(req.UserData.Goal)).
		Int("history", len(req.History)).
		Int("contents", len(contents)).
		Msg("calling upstream model")

	start := time.Now()
	text, err := s.gen.GenerateContent(ctx, system, contents)
	if err != nil {
		return "", err
	}
	log.Info().Dur("upstream", time.Since(start)).Int("reply_len", len(text)).Msg("coaching reply")
	return text, nil
}
