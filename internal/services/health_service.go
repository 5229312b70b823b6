package services

import (
	"fmt"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"github.com/boomchecker/users-api/internal/models"
	"github.com/boomchecker/users-api/internal/validators"
)

// BuildVersion is set at link time:
//
//	go build -ldflags "-X github.com/boomchecker/users-api/internal/services.BuildVersion=1.2.3"
var BuildVersion string

// UnknownVersion is reported when no resolver yields a version
const UnknownVersion = "unknown"

// AppVersionEnv is the environment variable consulted when no build metadata is available
const AppVersionEnv = "APP_VERSION"

// VersionResolver returns a version string and true, or false when it has none
type VersionResolver func() (string, bool)

// LinkedVersionResolver resolves the version injected with -ldflags
func LinkedVersionResolver() VersionResolver {
	return func() (string, bool) {
		return nonBlank(BuildVersion)
	}
}

// BuildInfoResolver resolves the main module version recorded by the Go toolchain.
// Local builds report "(devel)", which is treated as absent.
func BuildInfoResolver(read func() (*debug.BuildInfo, bool)) VersionResolver {
	return func() (string, bool) {
		info, ok := read()
		if !ok || info == nil || info.Main.Version == "(devel)" {
			return "", false
		}
		return nonBlank(info.Main.Version)
	}
}

// EnvVersionResolver resolves the version from an environment variable on every call
func EnvVersionResolver(key string, lookup func(string) (string, bool)) VersionResolver {
	return func() (string, bool) {
		value, ok := lookup(key)
		if !ok {
			return "", false
		}
		return nonBlank(value)
	}
}

// DefaultVersionResolvers is the resolution chain used by the server:
// link-time version, then module build info, then APP_VERSION.
func DefaultVersionResolvers() []VersionResolver {
	return []VersionResolver{
		LinkedVersionResolver(),
		BuildInfoResolver(debug.ReadBuildInfo),
		EnvVersionResolver(AppVersionEnv, os.LookupEnv),
	}
}

func nonBlank(value string) (string, bool) {
	value = strings.TrimSpace(value)
	return value, value != ""
}

// HealthService computes readiness and liveness reports
type HealthService struct {
	startedAt time.Time
	now       func() time.Time
	resolvers []VersionResolver
}

// NewHealthService creates a health service for a process started at startedAt
func NewHealthService(startedAt time.Time, resolvers ...VersionResolver) *HealthService {
	return &HealthService{
		startedAt: startedAt.UTC(),
		now:       time.Now,
		resolvers: resolvers,
	}
}

// StartedAt returns the process start instant
func (s *HealthService) StartedAt() time.Time {
	return s.startedAt
}

// Version returns the first version yielded by the resolver chain, or "unknown"
func (s *HealthService) Version() string {
	for _, resolve := range s.resolvers {
		if version, ok := resolve(); ok {
			return version
		}
	}
	return UnknownVersion
}

// Uptime returns the time elapsed since the process started, never negative
func (s *HealthService) Uptime() time.Duration {
	uptime := s.now().Sub(s.startedAt)
	if uptime < 0 {
		return 0
	}
	return uptime
}

// Readiness builds the readiness check
func (s *HealthService) Readiness() models.HealthCheck {
	return s.check(models.ReadinessCheckName, models.CheckStatusReady)
}

// Liveness builds the liveness check
func (s *HealthService) Liveness() models.HealthCheck {
	return s.check(models.LivenessCheckName, models.CheckStatusAlive)
}

// Checks builds every check, readiness first
func (s *HealthService) Checks() []models.HealthCheck {
	return []models.HealthCheck{
		s.Readiness(),
		s.Liveness(),
	}
}

func (s *HealthService) check(name, checkStatus string) models.HealthCheck {
	uptime := s.Uptime()

	return models.HealthCheck{
		Name:   name,
		Status: models.HealthStatusUp,
		Data: models.HealthCheckData{
			From:          validators.FormatUTCTimestamp(s.startedAt),
			Uptime:        FormatUptime(uptime),
			UptimeSeconds: int64(uptime / time.Second),
			Version:       s.Version(),
			Status:        checkStatus,
		},
	}
}

// FormatUptime renders a duration as "1d 2h 3m 4s".
// Leading zero units are omitted; seconds are always shown.
func FormatUptime(d time.Duration) string {
	if d < 0 {
		d = 0
	}

	total := int64(d / time.Second)
	days := total / 86400
	hours := (total % 86400) / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	var b strings.Builder
	if days > 0 {
		fmt.Fprintf(&b, "%dd ", days)
	}
	if days > 0 || hours > 0 {
		fmt.Fprintf(&b, "%dh ", hours)
	}
	if days > 0 || hours > 0 || minutes > 0 {
		fmt.Fprintf(&b, "%dm ", minutes)
	}
	fmt.Fprintf(&b, "%ds", seconds)

	return b.String()
}
