package models

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Default category labels and their upper bounds, in slice order.
var (
	CategoryLabels = []string{"Underweight", "Normal", "Overweight", "Obesity"}
	CategoryRanges = []float64{18.5, 24.9, 29.9, 40}
)

// Config holds the application configuration
type Config struct {
	Port        string
	LogDir      string
	OpenBrowser bool
	ChartTheme  string
	AssetsHost  string
}

// ChartInput describes the doughnut chart shown on the results page.
type ChartInput struct {
	Labels  []string  `json:"labels"`
	Ranges  []float64 `json:"ranges"`
	UserBMI float64   `json:"user_bmi"`
}

// Metrics are the raw values submitted through the form.
type Metrics struct {
	WeightKg   float64
	HeightFeet float64
	Age        int
	Sex        string
}

// Results are the rounded values shown to the user.
type Results struct {
	BMI            float64
	BodyFat        float64
	BMR            int
	Category       string
	Risk           string
	Recommendation string
	Chart          ChartInput
}

// ValidationError is returned when submitted form values cannot be used.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// NewChartInput builds the standard category chart for the given BMI.
func NewChartInput(bmi float64) ChartInput {
	labels := make([]string, len(CategoryLabels))
	copy(labels, CategoryLabels)
	ranges := make([]float64, len(CategoryRanges))
	copy(ranges, CategoryRanges)

	return ChartInput{
		Labels:  labels,
		Ranges:  ranges,
		UserBMI: round(bmi, 1),
	}
}

// LoadConfig reads the configuration from the environment, falling back to defaults.
func LoadConfig() Config {
	return Config{
		Port:        getEnv("BMI_PORT", "8080"),
		LogDir:      getEnv("BMI_LOG_DIR", "logs"),
		OpenBrowser: getEnvBool("BMI_OPEN_BROWSER", false),
		ChartTheme:  getEnv("BMI_CHART_THEME", "macarons"),
		AssetsHost:  getEnv("BMI_ASSETS_HOST", "https://go-echarts.github.io/go-echarts-assets/assets/"),
	}
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
