package server

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gobmi/models"
)

func newTestConfig() models.Config {
	return models.Config{
		ChartTheme: "macarons",
		AssetsHost: "http://localhost/assets/",
	}
}

func newTestRouter() http.Handler {
	return NewRouter(newTestConfig())
}

func doRequest(t *testing.T, method, target, contentType, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, req)
	return rec
}

func TestIndexHandler(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `name="weight"`) {
		t.Error("Expected the calculator form")
	}
}

func TestIndexHandlerRejects(t *testing.T) {
	if rec := doRequest(t, http.MethodPut, "/", "", ""); rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected 405, got %d", rec.Code)
	}
	if rec := doRequest(t, http.MethodGet, "/unknown", "", ""); rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", rec.Code)
	}
}

func TestResultsHandler(t *testing.T) {
	form := url.Values{
		"weight": {"70"},
		"height": {"5.75"},
		"age":    {"30"},
		"sex":    {"male"},
	}

	rec := doRequest(t, http.MethodPost, "/", "application/x-www-form-urlencoded", form.Encode())
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	body := rec.Body.String()
	for _, want := range []string{
		"<dd>22.8</dd>",
		"<dd>Normal weight</dd>",
		`id="bmiChart"`,
		`"text":"Your BMI: 22.8"`,
		`<script src="http://localhost/assets/echarts.min.js"></script>`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("Expected body to contain %q", want)
		}
	}
}

func TestResultsHandlerValidation(t *testing.T) {
	form := url.Values{
		"weight": {"70"},
		"height": {"5.75"},
		"age":    {"30"},
		"sex":    {"unknown"},
	}

	rec := doRequest(t, http.MethodPost, "/", "application/x-www-form-urlencoded", form.Encode())
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Sex must be &#39;male&#39; or &#39;female&#39;.") {
		t.Errorf("Expected validation message, got:\n%s", rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), "goecharts_") {
		t.Error("Expected no chart on a rejected form")
	}
}

func TestResultsHandlerRejectsUncomputableInput(t *testing.T) {
	for _, tt := range []struct {
		name   string
		weight string
		height string
	}{
		{"infinite weight", "Inf", "5.75"},
		{"height underflows bmi", "70", "1e-200"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			form := url.Values{
				"weight": {tt.weight},
				"height": {tt.height},
				"age":    {"30"},
				"sex":    {"male"},
			}
			rec := doRequest(t, http.MethodPost, "/", "application/x-www-form-urlencoded", form.Encode())
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("Expected 400, got %d", rec.Code)
			}
			if !strings.Contains(rec.Body.String(), "Please enter valid numeric values") {
				t.Errorf("Expected validation message, got:\n%s", rec.Body.String())
			}
		})
	}
}

func TestChartHandlerGet(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/chart?bmi=22.3", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	if !strings.Contains(body, "<title>Your BMI: 22.3</title>") {
		t.Error("Expected page title with the BMI")
	}
	if !strings.Contains(body, `"name":"Obesity"`) {
		t.Error("Expected the default categories")
	}
}

func TestChartHandlerErrors(t *testing.T) {
	tests := []struct {
		name        string
		method      string
		target      string
		contentType string
		body        string
		want        int
	}{
		{"bad bmi", http.MethodGet, "/chart?bmi=abc", "", "", http.StatusBadRequest},
		{"nan bmi", http.MethodGet, "/chart?bmi=NaN", "", "", http.StatusBadRequest},
		{"missing target", http.MethodGet, "/chart?bmi=22.3&target=missing", "", "", http.StatusInternalServerError},
		{"bad json", http.MethodPost, "/chart", "application/json", "{", http.StatusBadRequest},
		{"unknown field", http.MethodPost, "/chart", "application/json", `{"labels":[],"extra":1}`, http.StatusBadRequest},
		{"mismatched input", http.MethodPost, "/chart", "application/json", `{"labels":["a","b"],"ranges":[1],"user_bmi":20}`, http.StatusInternalServerError},
		{"wrong method", http.MethodDelete, "/chart", "", "", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, tt.method, tt.target, tt.contentType, tt.body)
			if rec.Code != tt.want {
				t.Errorf("Expected %d, got %d: %s", tt.want, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestChartHandlerPost(t *testing.T) {
	body := `{"labels":["Obesity","Normal"],"ranges":[40,24.9],"user_bmi":33.33}`

	rec := doRequest(t, http.MethodPost, "/chart?target=bmiChart", "application/json", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	out := rec.Body.String()
	if !strings.Contains(out, `{"name":"Obesity","value":40,"itemStyle":{"color":"#007bff"}}`) {
		t.Errorf("Expected first slice to take the first palette color, got:\n%s", out)
	}
	if !strings.Contains(out, `"text":"Your BMI: 33.33"`) {
		t.Error("Expected the title to keep the submitted value")
	}
}

func TestHealthHandler(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/healthz", "", "")
	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Errorf("Expected 200 ok, got %d %q", rec.Code, rec.Body.String())
	}
}
