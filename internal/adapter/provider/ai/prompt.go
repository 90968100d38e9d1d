package ai

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/heartmarshall/nutrigym-backend/internal/domain"
)

const dishShape = `[{"dishName": "<nombre del plato>", "ingredients": [{"name": "<ingrediente>", "calories": 0, "protein": 0, "carbs": 0, "fat": 0, "grams": 0}]}]`

// RecognizeImagePrompt is the instruction sent with a food photo.
func RecognizeImagePrompt(lang language.Tag) string {
	return "Analiza la comida de esta imagen.\n" + recognizeTail(lang)
}

// RecognizeTextPrompt embeds a meal description in the same instruction.
func RecognizeTextPrompt(lang language.Tag, description string) string {
	return fmt.Sprintf("Analiza esta descripción de una comida: %q\n", strings.TrimSpace(description)) + recognizeTail(lang)
}

func recognizeTail(lang language.Tag) string {
	var b strings.Builder
	b.WriteString("Identifica cada plato distinto y descomponlo en sus ingredientes. ")
	b.WriteString("Para cada ingrediente estima las calorías, las proteínas, los carbohidratos y las grasas en gramos, y su peso aproximado en gramos.\n")
	b.WriteString("Devuelve un arreglo JSON de platos con esta forma:\n")
	b.WriteString(dishShape)
	b.WriteString("\nSi hay varios platos, devuelve un objeto por plato. ")
	fmt.Fprintf(&b, "Escribe los nombres de los platos y de los ingredientes en %s.", languageName(lang))
	return b.String()
}

var dietLabels = map[string]string{
	domain.DietBalanced:      "Balanceada",
	domain.DietLowCarb:       "Baja en Carbs",
	domain.DietKeto:          "Keto",
	domain.DietVegan:         "Vegana",
	domain.DietMediterranean: "Mediterránea",
}

// PlanPrompt builds the one-day plan request from the profile targets.
func PlanPrompt(lang language.Tag, p domain.UserProfile, in domain.PlanInput) string {
	goal := domain.GoalMaintain
	if p.Goal != nil && p.Goal.IsValid() {
		goal = *p.Goal
	}

	diet := strings.TrimSpace(in.DietType)
	if diet == "" {
		diet = domain.DietBalanced
	}
	if label, ok := dietLabels[diet]; ok {
		diet = label
	}

	prefs := strings.TrimSpace(in.Preferences)
	if prefs == "" {
		prefs = "ninguna"
	}

	var b strings.Builder
	b.WriteString("Crea un plan de comidas de 1 día para un usuario con los siguientes detalles:\n")
	fmt.Fprintf(&b, "- Objetivo: %s\n", goal.Label())
	fmt.Fprintf(&b, "- Calorías: %d kcal, Proteínas: %dg, Carbs: %dg, Grasas: %dg\n",
		p.CalorieGoal, p.ProteinGoal, p.CarbGoal, p.FatGoal)
	fmt.Fprintf(&b, "- Tipo de dieta: %s\n", diet)
	fmt.Fprintf(&b, "- Preferencias: %s\n\n", prefs)
	fmt.Fprintf(&b, "Estructura la respuesta en Markdown en %s con un resumen total y un tono amigable.", languageName(lang))
	return b.String()
}

func languageName(lang language.Tag) string {
	if name := display.Self.Name(lang); name != "" {
		return name
	}
	return "español"
}
