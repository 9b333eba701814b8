package domain

import "encoding/json"

type Category int

const (
	Underweight Category = iota
	Normal
	Overweight
	Obesity
)

func (c Category) String() string {
	switch c {
	case Underweight:
		return "Underweight"
	case Normal:
		return "Normal"
	case Overweight:
		return "Overweight"
	case Obesity:
		return "Obesity"
	default:
		return "Unknown"
	}
}

func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Measurement is a validated weight/height pair, both strictly positive.
type Measurement struct {
	WeightKg float64
	HeightM  float64
}

// BMIRequest keeps the raw field values so the handler can tell an absent
// field from a null one and accept numbers as well as numeric strings.
type BMIRequest struct {
	WeightKg json.RawMessage `json:"weight_kg"`
	HeightM  json.RawMessage `json:"height_m"`
	HeightCm json.RawMessage `json:"height_cm"`
}

type BMIResult struct {
	BMI                float64  `json:"bmi"`
	Category           Category `json:"category"`
	Note               string   `json:"note"`
	HeightM            float64  `json:"height_m"`
	HealthyWeightMinKg float64  `json:"healthy_weight_min_kg"`
	HealthyWeightMaxKg float64  `json:"healthy_weight_max_kg"`
}
