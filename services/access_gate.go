package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/blogem/ipgate/models"
	"github.com/blogem/ipgate/repositories"
)

// DeniedDetails is the audit detail recorded for every gate denial
const DeniedDetails = "IP not whitelisted"

const mappedIPv4Prefix = "::ffff:"

var gateDecisions = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "ipgate_gate_decisions_total",
		Help: "Access gate decisions by outcome",
	},
	[]string{"decision"},
)

// Decision is the outcome of an access check
type Decision int

const (
	Deny Decision = iota
	Allow
)

func (d Decision) String() string {
	if d == Allow {
		return "allow"
	}
	return "deny"
}

// AccessGate decides whether a client IP may fetch a protected file and
// owns both audit writes of a protected download
type AccessGate interface {
	// Check looks up the client and records a denied file_access entry on
	// DENY. ALLOW writes nothing; a lookup or audit failure is returned as
	// an error and must not be treated as a denial.
	Check(ctx context.Context, rawIP string, fileID *int64) (Decision, error)

	// RecordServed appends the successful file_access entry once the
	// protected content has been delivered
	RecordServed(ctx context.Context, ip string, fileID *int64, details string) error
}

type accessGate struct {
	whitelist repositories.WhitelistRepository
	accessLog repositories.AccessLogRepository
	logger    *slog.Logger
}

// NewAccessGate creates the access gate over the given stores
func NewAccessGate(whitelist repositories.WhitelistRepository, accessLog repositories.AccessLogRepository, logger *slog.Logger) AccessGate {
	return &accessGate{
		whitelist: whitelist,
		accessLog: accessLog,
		logger:    logger,
	}
}

// NormalizeIP strips the IPv4-mapped IPv6 prefix ("::ffff:1.2.3.4" becomes
// "1.2.3.4"); any other value is returned unchanged
func NormalizeIP(raw string) string {
	if i := strings.Index(raw, mappedIPv4Prefix); i >= 0 {
		return raw[i+len(mappedIPv4Prefix):]
	}
	return raw
}

func (g *accessGate) Check(ctx context.Context, rawIP string, fileID *int64) (Decision, error) {
	ip := NormalizeIP(rawIP)

	allowed, err := g.whitelist.IsWhitelisted(ctx, ip)
	if err != nil {
		gateDecisions.WithLabelValues("error").Inc()
		g.logger.Error("whitelist lookup failed", slog.String("ip", ip), slog.Any("error", err))
		return Deny, fmt.Errorf("failed to verify ip address: %w", err)
	}

	if allowed {
		gateDecisions.WithLabelValues(Allow.String()).Inc()
		return Allow, nil
	}

	gateDecisions.WithLabelValues(Deny.String()).Inc()
	g.logger.Warn("access denied", slog.String("ip", ip), slog.Any("file_id", fileID))

	entry, err := models.NewAccessLogEntry(ip, fileID, models.EventFileAccess, models.StatusDenied, DeniedDetails)
	if err != nil {
		return Deny, fmt.Errorf("failed to build access log entry: %w", err)
	}
	if err := g.accessLog.Create(ctx, entry); err != nil {
		return Deny, fmt.Errorf("failed to record denied access: %w", err)
	}

	return Deny, nil
}

func (g *accessGate) RecordServed(ctx context.Context, ip string, fileID *int64, details string) error {
	entry, err := models.NewAccessLogEntry(NormalizeIP(ip), fileID, models.EventFileAccess, models.StatusSuccessful, details)
	if err != nil {
		return fmt.Errorf("failed to build access log entry: %w", err)
	}
	if err := g.accessLog.Create(ctx, entry); err != nil {
		return fmt.Errorf("failed to record served access: %w", err)
	}
	return nil
}
