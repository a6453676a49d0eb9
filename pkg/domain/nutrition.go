package domain

var NutritionFields = []string{"calorie", "carbohydrate", "protein", "fat", "sodium", "cholesterol"}

// NutritionEstimate is the model's per-serving estimate, keyed by NutritionFields.
// Values are passed through as parsed; nothing checks ranges or presence.
type NutritionEstimate map[string]any

type FoodRequest struct {
	Name       string `json:"name"`
	Ingredient string `json:"ingredient"`
}
