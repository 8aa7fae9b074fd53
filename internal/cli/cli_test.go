package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"interventions/internal/core/roster"
	"interventions/internal/core/urgency"
	"interventions/internal/platform/config"
	perr "interventions/internal/platform/errors"
	kit "interventions/internal/platform/testkit"
	"interventions/internal/services/scheduler/domain"
	"interventions/internal/services/scheduler/service"
)

type envelope[T any] struct {
	StatusCode int            `json:"status_code"`
	Code       perr.ErrorCode `json:"code"`
	Field      string         `json:"field"`
	RequestID  string         `json:"request_id"`
	Data       T              `json:"data"`
}

// execute runs one command line with embedded seeds unless prefix env says otherwise
func execute(t *testing.T, prefix, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	root := NewRootCmd(config.New().Prefix(prefix))
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := execute(t, "CLI_TEST_", "", args...)
	if err != nil {
		t.Fatalf("%v: %v", args, err)
	}
	return out
}

func TestPredict_Text(t *testing.T) {
	out := mustRun(t, "predict", "gas", "leak!!!")
	kit.MustContain(t, out, "Urgency: 8/10")
	kit.MustContain(t, out, "Score: 0.850")
}

func TestPredict_Stdin(t *testing.T) {
	out, err := execute(t, "CLI_TEST_", "Park bench needs painting next week\n", "predict")
	if err != nil {
		t.Fatal(err)
	}
	kit.MustContain(t, out, "Urgency: 3/10")
	kit.MustContain(t, out, "Confidence: 100.0%")
}

func TestPredict_JSONEnvelope(t *testing.T) {
	kit.Serial(t)
	kit.Swap(t, &newID, func() string { return "cli-req-1" })

	out := mustRun(t, "predict", "--json", "CAR ACCIDENT - FIRE - PEOPLE TRAPPED - EMERGENCY!!!")
	var env envelope[domain.UrgencyResult]
	if err := json.Unmarshal([]byte(out), &env); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if env.StatusCode != http.StatusOK || env.RequestID != "cli-req-1" {
		t.Fatalf("envelope %+v", env)
	}
	if env.Data.Level != 8 {
		t.Fatalf("level = %d", env.Data.Level)
	}
	kit.MustApprox(t, "score", env.Data.Score, 0.85)
	kit.MustApprox(t, "confidence", env.Data.Confidence, 2.0/9.0)
}

func TestRank(t *testing.T) {
	cases := []struct {
		args []string
		want string
	}{
		{[]string{"--type", "ELECTRICAL", "--location", "Downtown", "--skills", "ELECTRICAL,HEIGHTS"}, "John Electric (Match Score: 1.0)"},
		{[]string{"--type", "PLUMBING", "--location", "Suburbs", "--skills", " PLUMBING, EMERGENCY "}, "Mike Plumber (Match Score: 0.9)"},
		{[]string{"--type", "plumbing", "--location", "Suburbs", "--skills", "plumbing,emergency"}, "Mike Plumber (Match Score: 0.5)"},
		{[]string{"--type", "CONSTRUCTION", "--location", "City Center", "--skills", "CONSTRUCTION,ROAD_WORK"}, "Sarah Builder (Match Score: 0.9)"},
		{[]string{"--type", "GENERAL", "--location", "Downtown", "--skills", "GENERAL"}, "Mike Plumber (Match Score: 0.7)"},
	}
	for _, c := range cases {
		out := mustRun(t, append([]string{"rank"}, c.args...)...)
		kit.MustContain(t, out, "Best Match: "+c.want)
	}
}

func TestRank_ValidationEnvelope(t *testing.T) {
	out, err := execute(t, "CLI_TEST_", "", "rank", "--json", "--type", strings.Repeat("X", 65))
	if perr.CodeOf(err) != perr.ErrorCodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	var env envelope[any]
	if jerr := json.Unmarshal([]byte(out), &env); jerr != nil {
		t.Fatalf("decode %q: %v", out, jerr)
	}
	if env.StatusCode != http.StatusBadRequest || env.Field != "problem_type" || env.Code != perr.ErrorCodeValidation {
		t.Fatalf("envelope %+v", env)
	}
}

func TestRank_PassesInputThrough(t *testing.T) {
	c, err := urgency.DefaultCorpus()
	if err != nil {
		t.Fatal(err)
	}
	d, err := roster.Load()
	if err != nil {
		t.Fatal(err)
	}
	in := domain.MatchInput{ProblemType: "electrical", Location: "Downtown", RequiredSkills: []string{"ELECTRICAL", "heights"}}
	want, _ := service.New(c, d).RankTechnicians(context.Background(), in)

	out := mustRun(t, "rank", "--json", "--type", " electrical ", "--location", "Downtown", "--skills", "ELECTRICAL,heights")
	var env envelope[domain.MatchResult]
	if err := json.Unmarshal([]byte(out), &env); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if env.Data != want {
		t.Fatalf("cli %+v, service %+v", env.Data, want)
	}
	if env.Data.Score >= 0.9 {
		t.Fatalf("lowercase type or skill was normalised: %+v", env.Data)
	}
}

func TestRank_EmptyTypeIsNeutral(t *testing.T) {
	out := mustRun(t, "rank", "--location", "Downtown", "--skills", "ELECTRICAL,HEIGHTS")
	kit.MustContain(t, out, "Best Match: John Electric (Match Score: 0.9)")
}

func TestRank_RejectsArgs(t *testing.T) {
	if _, err := execute(t, "CLI_TEST_", "", "rank", "extra"); err == nil {
		t.Fatalf("expected positional args to be rejected")
	}
}

func TestAssess(t *testing.T) {
	out := mustRun(t, "assess", "--type", "ELECTRICAL", "--location", "Downtown", "--skills", "ELECTRICAL,HEIGHTS",
		"CAR ACCIDENT - FIRE - PEOPLE TRAPPED - EMERGENCY!!!")
	kit.MustContain(t, out, "Assessment: ")
	kit.MustContain(t, out, "Urgency: 8/10")
	kit.MustContain(t, out, "Best Tech: John Electric (Match Score: 1.0)")
}

func TestTechnicians(t *testing.T) {
	out := mustRun(t, "technicians")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header plus 3 technicians, got %q", out)
	}
	kit.MustContain(t, lines[0], "NAME")
	for _, want := range []string{"John Electric", "Mike Plumber", "Sarah Builder", "ELECTRICAL,HEIGHTS,NETWORK"} {
		kit.MustContain(t, out, want)
	}
}

func TestModel_Limit(t *testing.T) {
	out := mustRun(t, "model", "--limit", "2")
	kit.MustContain(t, out, "Vocabulary: 40 words from 8 examples")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	// summary, blank, header and two words
	if len(lines) != 5 {
		t.Fatalf("got %d lines: %q", len(lines), out)
	}
}

func TestDemo(t *testing.T) {
	out := mustRun(t, "demo")
	for _, want := range []string{
		"=== REQUEST 1 ===",
		"Problem: CAR ACCIDENT - FIRE - PEOPLE TRAPPED - EMERGENCY!!!",
		"ML Urgency: 8/10",
		"Confidence: 22.2%",
		"Best Tech: John Electric (Match Score: 1.0)",
		"=== REQUEST 5 ===",
		"Problem: PLUMBING repair in Suburbs",
		"Required Skills: [PLUMBING, EMERGENCY]",
		"Best Match: Mike Plumber (Match Score: 0.9)",
	} {
		kit.MustContain(t, out, want)
	}

	only := mustRun(t, "demo", "urgency")
	if strings.Contains(only, "Required Skills") {
		t.Fatalf("urgency demo printed skill cases: %q", only)
	}
	if _, err := execute(t, "CLI_TEST_", "", "demo", "weather"); err == nil {
		t.Fatalf("expected unknown demo to be rejected")
	}
}

func TestSeedOverrideFailure(t *testing.T) {
	t.Setenv("CLI_BAD_CORE_SCHEDULER_ROSTER_FILE", filepath.Join(t.TempDir(), "missing.yaml"))

	out, err := execute(t, "CLI_BAD_", "", "technicians", "--json")
	if perr.CodeOf(err) != perr.ErrorCodeInvalidArgument {
		t.Fatalf("expected invalid argument, got %v", err)
	}
	var env envelope[any]
	if jerr := json.Unmarshal([]byte(out), &env); jerr != nil {
		t.Fatalf("decode %q: %v", out, jerr)
	}
	if env.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d", env.StatusCode)
	}
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return p
}

const adaRoster = "version: 1\ntechnicians:\n  - name: Ada Pipes\n    home_location: Harbor\n    skills: [PLUMBING]\n"

func TestRosterFlag(t *testing.T) {
	roster := writeFile(t, "roster.yaml", adaRoster)
	out := mustRun(t, "technicians", "--roster", roster)
	kit.MustContain(t, out, "Ada Pipes")
	if strings.Contains(out, "John Electric") {
		t.Fatalf("embedded roster leaked: %q", out)
	}
}

func TestConfigFile(t *testing.T) {
	roster := writeFile(t, "roster.yaml", adaRoster)
	cfg := writeFile(t, "cli.yaml", "json: true\nroster_file: "+roster+"\n")

	out := mustRun(t, "technicians", "--config", cfg)
	var env envelope[[]domain.Technician]
	if err := json.Unmarshal([]byte(out), &env); err != nil {
		t.Fatalf("config json: true should print the envelope, got %q: %v", out, err)
	}
	if len(env.Data) != 1 || env.Data[0].Name != "Ada Pipes" {
		t.Fatalf("technicians %+v", env.Data)
	}

	if _, err := execute(t, "CLI_TEST_", "", "technicians", "--config", filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected missing --config file to fail")
	}
}
