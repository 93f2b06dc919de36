package defaults

import (
	"testing"
	"time"
)

func TestTimeoutConstants(t *testing.T) {
	tests := []struct {
		name     string
		timeout  time.Duration
		minValue time.Duration
		maxValue time.Duration
	}{
		// Loader timeouts
		{"LoaderTimeout", LoaderTimeout, 5 * time.Second, 30 * time.Second},
		{"LoaderRemoteTimeout", LoaderRemoteTimeout, 10 * time.Second, 60 * time.Second},

		// Handler timeouts
		{"PlanHandlerTimeout", PlanHandlerTimeout, 10 * time.Second, 60 * time.Second},
		{"PlanBuildTimeout", PlanBuildTimeout, 10 * time.Second, 30 * time.Second},

		// Server timeouts
		{"ServerReadTimeout", ServerReadTimeout, 5 * time.Second, 30 * time.Second},
		{"ServerWriteTimeout", ServerWriteTimeout, 15 * time.Second, 60 * time.Second},
		{"ServerIdleTimeout", ServerIdleTimeout, 30 * time.Second, 300 * time.Second},
		{"ServerShutdownTimeout", ServerShutdownTimeout, 10 * time.Second, 60 * time.Second},

		// HTTP client timeouts
		{"HTTPClientTimeout", HTTPClientTimeout, 10 * time.Second, 60 * time.Second},
		{"HTTPConnectTimeout", HTTPConnectTimeout, 1 * time.Second, 15 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.timeout < tt.minValue {
				t.Errorf("%s (%v) is below minimum expected value (%v)", tt.name, tt.timeout, tt.minValue)
			}
			if tt.timeout > tt.maxValue {
				t.Errorf("%s (%v) is above maximum expected value (%v)", tt.name, tt.timeout, tt.maxValue)
			}
		})
	}
}

func TestPlanBuildTimeoutLessThanHandler(t *testing.T) {
	// Plan build timeout should be less than handler timeout
	// to allow for error handling before the request times out
	if PlanBuildTimeout >= PlanHandlerTimeout {
		t.Errorf("PlanBuildTimeout (%v) should be less than PlanHandlerTimeout (%v)",
			PlanBuildTimeout, PlanHandlerTimeout)
	}
}

func TestServerTimeoutRelationships(t *testing.T) {
	// Read timeout should be shorter than write timeout
	if ServerReadTimeout > ServerWriteTimeout {
		t.Errorf("ServerReadTimeout (%v) should not exceed ServerWriteTimeout (%v)",
			ServerReadTimeout, ServerWriteTimeout)
	}

	// Idle timeout should be longer than write timeout
	if ServerIdleTimeout < ServerWriteTimeout {
		t.Errorf("ServerIdleTimeout (%v) should be at least ServerWriteTimeout (%v)",
			ServerIdleTimeout, ServerWriteTimeout)
	}
}

func TestHTTPClientTimeoutRelationships(t *testing.T) {
	// Connect timeout should be less than total timeout
	if HTTPConnectTimeout >= HTTPClientTimeout {
		t.Errorf("HTTPConnectTimeout (%v) should be less than HTTPClientTimeout (%v)",
			HTTPConnectTimeout, HTTPClientTimeout)
	}

	// TLS handshake timeout should be less than total timeout
	if HTTPTLSHandshakeTimeout >= HTTPClientTimeout {
		t.Errorf("HTTPTLSHandshakeTimeout (%v) should be less than HTTPClientTimeout (%v)",
			HTTPTLSHandshakeTimeout, HTTPClientTimeout)
	}
}

func TestPlannerDefaults(t *testing.T) {
	if PlanMinKCal > PlanMaxKCal {
		t.Errorf("PlanMinKCal (%d) should not exceed PlanMaxKCal (%d)", PlanMinKCal, PlanMaxKCal)
	}
	if PlanMaxCandidates <= 0 {
		t.Errorf("PlanMaxCandidates should be positive, got %d", PlanMaxCandidates)
	}
	if PlanMaxCandidates > ExhaustiveCandidateLimit {
		t.Errorf("PlanMaxCandidates (%d) should not exceed ExhaustiveCandidateLimit (%d)",
			PlanMaxCandidates, ExhaustiveCandidateLimit)
	}
	if ExhaustiveWarnThreshold >= ExhaustiveCandidateLimit {
		t.Errorf("ExhaustiveWarnThreshold (%d) should be below ExhaustiveCandidateLimit (%d)",
			ExhaustiveWarnThreshold, ExhaustiveCandidateLimit)
	}
	// Enumerating subsets of the full pool must fit a uint64 mask
	if ExhaustiveCandidateLimit >= 64 {
		t.Errorf("ExhaustiveCandidateLimit (%d) must stay below 64", ExhaustiveCandidateLimit)
	}
}
