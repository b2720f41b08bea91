package models

import (
	"errors"
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseMetrics(t *testing.T) {
	form := url.Values{
		"weight": {"70"},
		"height": {" 5.75 "},
		"age":    {"30"},
		"sex":    {"Male"},
	}

	got, err := ParseMetrics(form)
	if err != nil {
		t.Fatalf("ParseMetrics returned error: %v", err)
	}

	want := Metrics{WeightKg: 70, HeightFeet: 5.75, Age: 30, Sex: "male"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseMetrics() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseMetricsValidation(t *testing.T) {
	tests := []struct {
		name string
		form url.Values
		msg  string
	}{
		{"non numeric weight", url.Values{"weight": {"abc"}, "height": {"5"}, "age": {"30"}, "sex": {"male"}}, msgNotNumeric},
		{"missing height", url.Values{"weight": {"70"}, "age": {"30"}, "sex": {"male"}}, msgNotNumeric},
		{"fractional age", url.Values{"weight": {"70"}, "height": {"5"}, "age": {"30.5"}, "sex": {"male"}}, msgNotNumeric},
		{"zero weight", url.Values{"weight": {"0"}, "height": {"5"}, "age": {"30"}, "sex": {"male"}}, msgNotPositive},
		{"negative age", url.Values{"weight": {"70"}, "height": {"5"}, "age": {"-1"}, "sex": {"male"}}, msgNotPositive},
		{"nan height", url.Values{"weight": {"70"}, "height": {"NaN"}, "age": {"30"}, "sex": {"male"}}, msgNotPositive},
		{"infinite weight", url.Values{"weight": {"Inf"}, "height": {"5"}, "age": {"30"}, "sex": {"male"}}, msgNotNumeric},
		{"infinite height", url.Values{"weight": {"70"}, "height": {"+Inf"}, "age": {"30"}, "sex": {"male"}}, msgNotNumeric},
		{"height underflows bmi", url.Values{"weight": {"70"}, "height": {"1e-200"}, "age": {"30"}, "sex": {"male"}}, msgNotNumeric},
		{"bmr out of range", url.Values{"weight": {"1e300"}, "height": {"1e200"}, "age": {"30"}, "sex": {"male"}}, msgNotNumeric},
		{"unknown sex", url.Values{"weight": {"70"}, "height": {"5"}, "age": {"30"}, "sex": {"other"}}, msgBadSex},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMetrics(tt.form)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Expected ValidationError, got %v", err)
			}
			if verr.Message != tt.msg {
				t.Errorf("Expected message %q, got %q", tt.msg, verr.Message)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("BMI_PORT", "9090")
	t.Setenv("BMI_LOG_DIR", "")
	t.Setenv("BMI_OPEN_BROWSER", "true")
	t.Setenv("BMI_CHART_THEME", "")
	t.Setenv("BMI_ASSETS_HOST", "http://localhost/assets/")

	got := LoadConfig()
	want := Config{
		Port:        "9090",
		LogDir:      "logs",
		OpenBrowser: true,
		ChartTheme:  "macarons",
		AssetsHost:  "http://localhost/assets/",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("LoadConfig() mismatch (-want +got):\n%s", diff)
	}

	t.Setenv("BMI_OPEN_BROWSER", "not-a-bool")
	if LoadConfig().OpenBrowser {
		t.Error("Expected invalid BMI_OPEN_BROWSER to fall back to false")
	}
}
