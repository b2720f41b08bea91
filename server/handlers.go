package server

import (
	"encoding/json"
	"errors"
	"log"
	"math"
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	"github.com/gobmi/models"
	"github.com/gobmi/templates"
)

// defaultTarget is the slot every page in the app reserves for the BMI chart.
const defaultTarget = "bmiChart"

type handler struct {
	chartOpts ChartOptions
}

// HTTP handlers
func (h *handler) indexHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case http.MethodGet:
		templ.Handler(templates.Index("")).ServeHTTP(w, r)
	case http.MethodPost:
		h.resultsHandler(w, r)
	default:
		http.Error(w, "Invalid request method", http.StatusMethodNotAllowed)
	}
}

func (h *handler) resultsHandler(w http.ResponseWriter, r *http.Request) {
	err := r.ParseForm()
	if err != nil {
		templ.Handler(templates.Index("Failed to parse form data"), templ.WithStatus(http.StatusBadRequest)).ServeHTTP(w, r)
		return
	}

	metrics, err := models.ParseMetrics(r.PostForm)
	if err != nil {
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			log.Println("Rejected form input:", verr)
			templ.Handler(templates.Index(verr.Message), templ.WithStatus(http.StatusBadRequest)).ServeHTTP(w, r)
			return
		}
		h.fail(w, r, err)
		return
	}

	results := models.Evaluate(metrics)
	log.Printf("Computed BMI %.1f (%s)", results.BMI, results.Category)

	surface := NewSurface(defaultTarget)
	if err := RenderChart(surface, defaultTarget, results.Chart, h.chartOpts); err != nil {
		h.fail(w, r, err)
		return
	}

	component := templates.Results(results, templates.ChartView(surface.Slot(defaultTarget)))
	templ.Handler(component).ServeHTTP(w, r)
}

// chartHandler renders the chart on its own page. GET builds the standard
// categories from ?bmi=, POST takes a JSON ChartInput. ?target= picks the slot.
func (h *handler) chartHandler(w http.ResponseWriter, r *http.Request) {
	var input models.ChartInput

	switch r.Method {
	case http.MethodGet:
		bmi, err := strconv.ParseFloat(r.URL.Query().Get("bmi"), 64)
		if err != nil || math.IsNaN(bmi) || math.IsInf(bmi, 0) {
			http.Error(w, "Invalid bmi value", http.StatusBadRequest)
			return
		}
		input = models.NewChartInput(bmi)
	case http.MethodPost:
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&input); err != nil {
			http.Error(w, "Invalid chart data: "+err.Error(), http.StatusBadRequest)
			return
		}
	default:
		http.Error(w, "Invalid request method", http.StatusMethodNotAllowed)
		return
	}

	target := r.URL.Query().Get("target")
	if target == "" {
		target = defaultTarget
	}

	surface := NewSurface(defaultTarget)
	if err := RenderChart(surface, target, input, h.chartOpts); err != nil {
		h.fail(w, r, err)
		return
	}

	component := templates.ChartPage(ChartTitle(input.UserBMI), templates.ChartView(surface.Slot(defaultTarget)))
	templ.Handler(component).ServeHTTP(w, r)
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}

func (h *handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	log.Printf("Request %s %s failed: %v", r.Method, r.URL.Path, err)
	templ.Handler(templates.Error(err.Error()), templ.WithStatus(http.StatusInternalServerError)).ServeHTTP(w, r)
}
