package models

import "math"

const feetToMetres = 0.3048

// CalculateBMI returns weight divided by height squared.
func CalculateBMI(weightKg, heightM float64) float64 {
	return weightKg / (heightM * heightM)
}

// CalculateBodyFat estimates body fat percentage using the Deurenberg formula.
func CalculateBodyFat(bmi float64, age int, sex string) float64 {
	if sex == "male" {
		return (1.20 * bmi) + (0.23 * float64(age)) - 16.2
	}
	return (1.20 * bmi) + (0.23 * float64(age)) - 5.4
}

// CalculateBMR uses the Mifflin-St Jeor equation, height in metres.
func CalculateBMR(weightKg, heightM float64, age int, sex string) float64 {
	heightCm := heightM * 100
	base := (10 * weightKg) + (6.25 * heightCm) - (5 * float64(age))
	if sex == "male" {
		return base + 5
	}
	return base - 161
}

// Category returns the BMI category and its health risk.
func Category(bmi float64) (string, string) {
	switch {
	case bmi < 18.5:
		return "Underweight", "Risk of nutritional deficiency; consult a dietitian."
	case bmi <= 24.9:
		return "Normal weight", "Low health risk; maintain healthy habits."
	case bmi >= 25 && bmi <= 29.9:
		return "Overweight", "Increased risk of cardiovascular issues; consider lifestyle changes."
	default:
		return "Obesity", "High risk of diabetes, heart disease; seek medical advice."
	}
}

func Recommendation(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Consider a balanced diet to gain healthy weight. Consult a nutritionist."
	case bmi >= 25:
		return "Incorporate regular exercise and a balanced diet. Consult a healthcare provider."
	default:
		return "Maintain your current healthy lifestyle!"
	}
}

// Evaluate computes every result shown on the results page.
// Metrics are expected to have passed ParseMetrics.
func Evaluate(m Metrics) Results {
	heightM := m.HeightFeet * feetToMetres

	bmi := CalculateBMI(m.WeightKg, heightM)
	bodyFat := CalculateBodyFat(bmi, m.Age, m.Sex)
	bmr := CalculateBMR(m.WeightKg, heightM, m.Age, m.Sex)
	category, risk := Category(bmi)

	return Results{
		BMI:            round(bmi, 1),
		BodyFat:        round(bodyFat, 1),
		BMR:            int(math.RoundToEven(bmr)),
		Category:       category,
		Risk:           risk,
		Recommendation: Recommendation(bmi),
		Chart:          NewChartInput(bmi),
	}
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
