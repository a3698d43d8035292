package relay

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/propertymatcher/listings-relay/internal/config"
	"github.com/propertymatcher/listings-relay/internal/model"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestBuildRunRequest_PromptContents(t *testing.T) {
	criteria := model.SearchCriteria{
		Location: strPtr("Quebec City"),
		MinPrice: intPtr(200000),
		MaxPrice: intPtr(500000),
		BedsMin:  intPtr(2),
	}
	criteria.Normalize()

	req, err := BuildRunRequest(8, criteria)
	if err != nil {
		t.Fatalf("BuildRunRequest returned error: %v", err)
	}

	for _, want := range []string{"Find up to 8", "Quebec City", "200000"} {
		if !strings.Contains(req.InputAsText, want) {
			t.Errorf("instruction text missing %q: %s", want, req.InputAsText)
		}
	}
}

func TestBuildRunRequest_PreservesUnicode(t *testing.T) {
	criteria := model.SearchCriteria{Keywords: strPtr("près du fleuve")}
	criteria.Normalize()

	req, err := BuildRunRequest(3, criteria)
	if err != nil {
		t.Fatalf("BuildRunRequest returned error: %v", err)
	}
	if !strings.Contains(req.InputAsText, "près du fleuve") {
		t.Errorf("unicode keywords were escaped: %s", req.InputAsText)
	}
	if strings.Contains(req.InputAsText, `\u`) {
		t.Errorf("instruction text contains escape sequences: %s", req.InputAsText)
	}
}

func TestBuildRunRequest_AbsentFieldsRenderNull(t *testing.T) {
	criteria := model.SearchCriteria{Location: strPtr("Lévis")}
	criteria.Normalize()

	req, err := BuildRunRequest(5, criteria)
	if err != nil {
		t.Fatalf("BuildRunRequest returned error: %v", err)
	}

	raw, err := json.Marshal(req.InputVariables)
	if err != nil {
		t.Fatalf("marshal variables: %v", err)
	}
	var vars map[string]json.RawMessage
	if err := json.Unmarshal(raw, &vars); err != nil {
		t.Fatalf("unmarshal variables: %v", err)
	}

	for _, field := range []string{"location", "min_price", "max_price", "beds_min", "baths_min", "property_types", "keywords"} {
		if _, ok := vars[field]; !ok {
			t.Errorf("variables payload missing field %q", field)
		}
	}
	if string(vars["min_price"]) != "null" {
		t.Errorf("absent min_price = %s, want null", vars["min_price"])
	}
	if string(vars["property_types"]) != "[]" {
		t.Errorf("normalized property_types = %s, want []", vars["property_types"])
	}
}

func TestResolveTarget_Headers(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Config
		want    map[string]string
		wantNot []string
	}{
		{
			name: "base headers",
			cfg: config.Config{
				UpstreamAPIKey: "sk-test",
				AgentID:        "agt_1",
				UpstreamBase:   config.DefaultUpstreamBase,
			},
			want: map[string]string{
				"Authorization": "Bearer sk-test",
				"Content-Type":  "application/json",
				"OpenAI-Beta":   "agents=v1",
			},
			wantNot: []string{"OpenAI-Project", "OpenAI-Organization", "User-Agent"},
		},
		{
			name: "tenant headers when configured",
			cfg: config.Config{
				UpstreamAPIKey: "sk-test",
				AgentID:        "wf_1",
				UpstreamBase:   config.DefaultUpstreamBase,
				ProjectID:      "proj_9",
				OrganizationID: "org_4",
				UserAgent:      "listings-relay/1.2.0",
			},
			want: map[string]string{
				"OpenAI-Project":      "proj_9",
				"OpenAI-Organization": "org_4",
				"User-Agent":          "listings-relay/1.2.0",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := ResolveTarget(&tt.cfg)
			for k, v := range tt.want {
				if got := target.Headers.Get(k); got != v {
					t.Errorf("header %s = %q, want %q", k, got, v)
				}
			}
			for _, k := range tt.wantNot {
				if got := target.Headers.Get(k); got != "" {
					t.Errorf("header %s = %q, want unset", k, got)
				}
			}
		})
	}
}
