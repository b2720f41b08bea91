package models

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	msgNotNumeric  = "Please enter valid numeric values for weight, height, and age."
	msgNotPositive = "Weight, height, and age must be positive."
	msgBadSex      = "Sex must be 'male' or 'female'."
)

// ParseMetrics reads the calculator form. Weight is in kilograms and height in feet.
func ParseMetrics(form url.Values) (Metrics, error) {
	weight, err := strconv.ParseFloat(strings.TrimSpace(form.Get("weight")), 64)
	if err != nil {
		return Metrics{}, &ValidationError{Field: "weight", Message: msgNotNumeric}
	}
	height, err := strconv.ParseFloat(strings.TrimSpace(form.Get("height")), 64)
	if err != nil {
		return Metrics{}, &ValidationError{Field: "height", Message: msgNotNumeric}
	}
	age, err := strconv.Atoi(strings.TrimSpace(form.Get("age")))
	if err != nil {
		return Metrics{}, &ValidationError{Field: "age", Message: msgNotNumeric}
	}

	if math.IsInf(weight, 0) || math.IsInf(height, 0) {
		return Metrics{}, &ValidationError{Field: "metrics", Message: msgNotNumeric}
	}
	// NaN compares false against everything, so check the positive case
	if !(weight > 0) || !(height > 0) || age <= 0 {
		return Metrics{}, &ValidationError{Field: "metrics", Message: msgNotPositive}
	}

	sex := cases.Lower(language.English).String(strings.TrimSpace(form.Get("sex")))
	if sex != "male" && sex != "female" {
		return Metrics{}, &ValidationError{Field: "sex", Message: msgBadSex}
	}

	m := Metrics{
		WeightKg:   weight,
		HeightFeet: height,
		Age:        age,
		Sex:        sex,
	}
	if !computable(m) {
		return Metrics{}, &ValidationError{Field: "metrics", Message: msgNotNumeric}
	}
	return m, nil
}

// computable reports whether finite inputs still give a finite BMI and a BMR
// that fits an int. Tiny heights underflow to zero and make the BMI infinite.
func computable(m Metrics) bool {
	heightM := m.HeightFeet * feetToMetres
	bmi := CalculateBMI(m.WeightKg, heightM)
	if math.IsInf(bmi, 0) || math.IsNaN(bmi) {
		return false
	}
	bmr := CalculateBMR(m.WeightKg, heightM, m.Age, m.Sex)
	return math.Abs(bmr) <= math.MaxInt32
}
