package domain

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type profileContextKey struct{}

var ContextProfileKey = profileContextKey{}

func NewPerformanceProfile() *PerformanceProfile {
	return &PerformanceProfile{
		StartTime: time.Now(),
	}
}

type PerformanceProfileEvent struct {
	Name      string    `json:"name"`
	ElapsedMs int64     `json:"elapsedMs"`
	Time      time.Time `json:"time"`
}

type PerformanceProfile struct {
	StartTime time.Time                 `json:"-"`
	Events    []PerformanceProfileEvent `json:"events"`
	TotalMs   int64                     `json:"totalMs"`
}

func GetPerformanceProfile(ctx context.Context) *PerformanceProfile {
	profile, ok := ctx.Value(ContextProfileKey).(*PerformanceProfile)
	if !ok {
		return NewPerformanceProfile()
	}
	return profile
}

func (p *PerformanceProfile) End() {
	p.TotalMs = time.Since(p.StartTime).Milliseconds()
}

func (p *PerformanceProfile) Add(name string) {
	if len(p.Events) == 0 {
		p.Events = append(p.Events, PerformanceProfileEvent{
			Name:      name,
			ElapsedMs: 0,
			Time:      time.Now(),
		})
		return
	}
	lastEvent := p.Events[len(p.Events)-1]
	now := time.Now()
	p.Events = append(p.Events, PerformanceProfileEvent{
		Name:      name,
		ElapsedMs: now.Sub(lastEvent.Time).Milliseconds(),
		Time:      now,
	})
}

func (p *PerformanceProfile) Log(logger *zap.SugaredLogger, operation string) {
	p.End()
	logger.Infow("operation profile",
		"operation", operation,
		"totalMs", p.TotalMs,
		"events", p.Events,
	)
}
