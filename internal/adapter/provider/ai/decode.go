package ai

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/heartmarshall/nutrigym-backend/internal/domain"
)

type wireDish struct {
	DishName    string     `json:"dishName"`
	Ingredients []wireFood `json:"ingredients"`
}

type wireFood struct {
	Name     string  `json:"name"`
	Calories number  `json:"calories"`
	Protein  number  `json:"protein"`
	Carbs    number  `json:"carbs"`
	Fat      number  `json:"fat"`
	Grams    *number `json:"grams"`
}

// number accepts a JSON number or a numeric string. Anything else reads as 0.
type number float64

func (n *number) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(strings.Trim(string(b), `"`))
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*n = 0
		return nil
	}
	*n = number(f)
	return nil
}

// Decode extracts the dish array from a model response and normalizes it.
// A single dish object is accepted in place of an array.
func Decode(raw string) ([]domain.AnalyzedDish, error) {
	body, err := extractJSON(raw)
	if err != nil {
		return nil, err
	}

	var wire []wireDish
	if body[0] == '{' {
		var one wireDish
		if err := json.Unmarshal([]byte(body), &one); err != nil {
			return nil, fmt.Errorf("decode dish: %w", err)
		}
		wire = []wireDish{one}
	} else if err := json.Unmarshal([]byte(body), &wire); err != nil {
		return nil, fmt.Errorf("decode dishes: %w", err)
	}

	dishes := make([]domain.AnalyzedDish, 0, len(wire))
	for _, w := range wire {
		d := domain.AnalyzedDish{DishName: w.DishName}
		for _, f := range w.Ingredients {
			in := domain.FoodInput{
				Name:     f.Name,
				Calories: float64(f.Calories),
				Protein:  float64(f.Protein),
				Carbs:    float64(f.Carbs),
				Fat:      float64(f.Fat),
			}
			if f.Grams != nil {
				g := float64(*f.Grams)
				in.Grams = &g
			}
			d.Ingredients = append(d.Ingredients, in)
		}
		dishes = append(dishes, d)
	}
	return Normalize(dishes), nil
}

// Normalize clamps negative or non-finite macros to 0, drops ingredients
// without a name and dishes without ingredients.
func Normalize(dishes []domain.AnalyzedDish) []domain.AnalyzedDish {
	out := make([]domain.AnalyzedDish, 0, len(dishes))
	for _, d := range dishes {
		nd := domain.AnalyzedDish{DishName: strings.TrimSpace(d.DishName)}
		for _, in := range d.Ingredients {
			in = in.Normalize()
			if in.Name == "" {
				continue
			}
			in.Calories = clamp(in.Calories)
			in.Protein = clamp(in.Protein)
			in.Carbs = clamp(in.Carbs)
			in.Fat = clamp(in.Fat)
			nd.Ingredients = append(nd.Ingredients, in)
		}
		if len(nd.Ingredients) == 0 {
			continue
		}
		if nd.DishName == "" {
			nd.DishName = nd.Ingredients[0].Name
		}
		out = append(out, nd)
	}
	return out
}

func clamp(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// extractJSON returns the outermost JSON array, or object when no array
// starts first, skipping any prose or code fences around it.
func extractJSON(s string) (string, error) {
	arr := strings.Index(s, "[")
	obj := strings.Index(s, "{")

	open, closer := arr, "]"
	if arr == -1 || (obj != -1 && obj < arr) {
		open, closer = obj, "}"
	}
	if open == -1 {
		return "", errors.New("no JSON found in response")
	}
	end := strings.LastIndex(s, closer)
	if end <= open {
		return "", errors.New("no JSON found in response")
	}
	return s[open : end+1], nil
}
