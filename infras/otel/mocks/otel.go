// Package mocks provides tracer doubles for tests. NewOtel discards every
// span; NewRecorder keeps them for assertions.
package mocks

import (
	"context"
	"hotelsphere/infras/otel"
	"sync"
)

type noopOtel struct{}

func (noopOtel) NewScope(ctx context.Context, _, _ string) (context.Context, otel.Scope) {
	return ctx, noopScope{}
}

func NewOtel() otel.Otel {
	return noopOtel{}
}

type noopScope struct{}

func (noopScope) End()                           {}
func (noopScope) TraceError(_ error)             {}
func (noopScope) TraceIfError(_ error)           {}
func (noopScope) AddEvent(_ string)              {}
func (noopScope) SetAttribute(_ string, _ any)   {}
func (noopScope) SetAttributes(_ map[string]any) {}

// Span is what a Recorder kept of one scope.
type Span struct {
	Scope      string
	Name       string
	Events     []string
	Attributes map[string]any
	Errors     []error
	Ended      bool
}

// Recorder is an otel.Otel that keeps every span it opened.
type Recorder struct {
	mu    sync.Mutex
	spans []*Span
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) NewScope(ctx context.Context, scopeName, spanName string) (context.Context, otel.Scope) {
	span := &Span{Scope: scopeName, Name: spanName, Attributes: map[string]any{}}

	r.mu.Lock()
	r.spans = append(r.spans, span)
	r.mu.Unlock()

	return ctx, &recordedScope{recorder: r, span: span}
}

// Spans returns copies of the recorded spans in opening order.
func (r *Recorder) Spans() []Span {
	r.mu.Lock()
	defer r.mu.Unlock()

	spans := make([]Span, 0, len(r.spans))
	for _, span := range r.spans {
		spans = append(spans, *span)
	}

	return spans
}

// Find returns the first span with the given name.
func (r *Recorder) Find(name string) (Span, bool) {
	for _, span := range r.Spans() {
		if span.Name == name {
			return span, true
		}
	}

	return Span{}, false
}

type recordedScope struct {
	recorder *Recorder
	span     *Span
}

func (s *recordedScope) End() {
	s.recorder.mu.Lock()
	defer s.recorder.mu.Unlock()

	s.span.Ended = true
}

func (s *recordedScope) TraceError(err error) {
	s.recorder.mu.Lock()
	defer s.recorder.mu.Unlock()

	s.span.Errors = append(s.span.Errors, err)
}

func (s *recordedScope) TraceIfError(err error) {
	if err != nil {
		s.TraceError(err)
	}
}

func (s *recordedScope) AddEvent(name string) {
	s.recorder.mu.Lock()
	defer s.recorder.mu.Unlock()

	s.span.Events = append(s.span.Events, name)
}

func (s *recordedScope) SetAttribute(key string, value any) {
	s.recorder.mu.Lock()
	defer s.recorder.mu.Unlock()

	s.span.Attributes[key] = value
}

func (s *recordedScope) SetAttributes(attributes map[string]any) {
	for key, value := range attributes {
		s.SetAttribute(key, value)
	}
}
