package service

import (
	"strconv"

	"github.com/yusufkecer/bmi-calculator-backend/internal/domain"
)

const (
	healthyBMIMin = 18.5
	healthyBMIMax = 24.9
)

var categoryNotes = map[domain.Category]string{
	domain.Underweight: "You are under the normal weight range. Consider gaining weight healthily.",
	domain.Normal:      "Great — your weight is within the normal range.",
	domain.Overweight:  "You are above the recommended weight range. Consider lifestyle adjustments.",
	domain.Obesity:     "Your BMI is in the obesity range. Consult a healthcare professional.",
}

type BMIService struct{}

func NewBMIService() *BMIService {
	return &BMIService{}
}

// Calculate expects a validated measurement and never fails.
func (s *BMIService) Calculate(m domain.Measurement) domain.BMIResult {
	bmi := ComputeBMI(m.WeightKg, m.HeightM)
	category, note := Classify(bmi)
	minKg, maxKg := HealthyWeightRange(m.HeightM)

	return domain.BMIResult{
		BMI:                round(bmi, 1),
		Category:           category,
		Note:               note,
		HeightM:            round(m.HeightM, 2),
		HealthyWeightMinKg: minKg,
		HealthyWeightMaxKg: maxKg,
	}
}

func ComputeBMI(weightKg, heightM float64) float64 {
	return weightKg / (heightM * heightM)
}

// Classify maps an unrounded BMI to its category. Each threshold belongs to the
// higher category.
func Classify(bmi float64) (domain.Category, string) {
	var c domain.Category
	switch {
	case bmi < 18.5:
		c = domain.Underweight
	case bmi < 25:
		c = domain.Normal
	case bmi < 30:
		c = domain.Overweight
	default:
		c = domain.Obesity
	}
	return c, categoryNotes[c]
}

func HealthyWeightRange(heightM float64) (float64, float64) {
	sq := heightM * heightM
	return round(healthyBMIMin*sq, 1), round(healthyBMIMax*sq, 1)
}

// round formats through strconv so ties are resolved on the exact binary value,
// which keeps e.g. 76.25625 -> 76.3 and 2.675 -> 2.67.
func round(v float64, places int) float64 {
	r, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', places, 64), 64)
	return r
}
