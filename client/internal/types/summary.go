package types

import (
	"math"
	"strings"
)

// Nutrient numbers used when summarising a food.
const (
	NutrientEnergy        = "208"
	NutrientEnergyAtwater = "957"
	NutrientProtein       = "203"
	NutrientFat           = "204"
	NutrientCarbohydrate  = "205"
)

// Macronutrients in grams.
type Macronutrients struct {
	Fat     float64 `json:"fat"`
	Carbs   float64 `json:"carbs"`
	Protein float64 `json:"protein"`
}

// Serving is a serving size with its unit.
type Serving struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// PerServing holds label values for one serving.
type PerServing struct {
	Calories float64 `json:"calories"`
	Macronutrients
}

// FoodSummary is a compact view of a food: name, energy and macronutrients as
// reported per 100 g, plus per-serving label values for branded foods.
type FoodSummary struct {
	FdcID          int            `json:"food_id"`
	Name           string         `json:"name"`
	Calories       int            `json:"calories"`
	Macronutrients Macronutrients `json:"macronutrients"`
	Serving        *Serving       `json:"serving,omitempty"`
	PerServing     *PerServing    `json:"nutrition_per_serving,omitempty"`
}

// Summarize builds a FoodSummary. Nutrients missing from the record are
// reported as zero; serving data is only set when the record carries it.
func Summarize(f *Food) *FoodSummary {
	if f == nil {
		return nil
	}
	amounts := make(map[string]float64, len(f.FoodNutrients))
	byName := make(map[string]float64, len(f.FoodNutrients))
	for _, n := range f.FoodNutrients {
		if num := n.NutrientNumber(); num != "" {
			if _, seen := amounts[num]; !seen {
				amounts[num] = n.Amount
			}
		}
		// Energy is reported in both kcal and kJ under the same name.
		if strings.EqualFold(n.Unit(), "kJ") {
			continue
		}
		name := strings.ToLower(n.NutrientName())
		if _, seen := byName[name]; !seen {
			byName[name] = n.Amount
		}
	}
	lookup := func(name string, numbers ...string) float64 {
		for _, num := range numbers {
			if v, ok := amounts[num]; ok {
				return v
			}
		}
		return byName[name]
	}

	s := &FoodSummary{
		FdcID:    f.FdcID,
		Name:     strings.ToLower(f.Description),
		Calories: int(math.Round(lookup("energy", NutrientEnergy, NutrientEnergyAtwater))),
		Macronutrients: Macronutrients{
			Fat:     lookup("total lipid (fat)", NutrientFat),
			Carbs:   lookup("carbohydrate, by difference", NutrientCarbohydrate),
			Protein: lookup("protein", NutrientProtein),
		},
	}
	if f.ServingSize > 0 {
		s.Serving = &Serving{Value: f.ServingSize, Unit: strings.ToLower(f.ServingSizeUnit)}
	}
	if ln := f.LabelNutrients; ln != nil {
		s.PerServing = &PerServing{
			Calories: ln.Calories.value(),
			Macronutrients: Macronutrients{
				Fat:     ln.Fat.value(),
				Carbs:   ln.Carbohydrates.value(),
				Protein: ln.Protein.value(),
			},
		}
	}
	return s
}

func (v *LabelValue) value() float64 {
	if v == nil {
		return 0
	}
	return v.Value
}
