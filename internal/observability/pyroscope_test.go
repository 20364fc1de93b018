package observability

import (
	"testing"

	"github.com/riskibarqy/football-data/internal/config"
	"github.com/riskibarqy/football-data/internal/platform/logging"
)

func TestInitPyroscope_Disabled(t *testing.T) {
	stop, err := InitPyroscope(config.Config{}, logging.NewNop())
	if err != nil {
		t.Fatalf("InitPyroscope error: %v", err)
	}
	if err := stop(); err != nil {
		t.Fatalf("stop error: %v", err)
	}
}

func TestProfileTags(t *testing.T) {
	tags := profileTags(config.Config{AppEnv: config.EnvProd, ServiceName: "football-data-api", ServiceVersion: "1.4.0"})
	if tags["env"] != "prod" || tags["service"] != "football-data-api" || tags["version"] != "1.4.0" {
		t.Fatalf("unexpected tags: %+v", tags)
	}

	if _, ok := profileTags(config.Config{})["version"]; ok {
		t.Fatalf("expected version tag omitted when unset")
	}
}
