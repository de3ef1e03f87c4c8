// Package content holds the static game data: the trivia question bank and
// the character roster. The coordinator never consults these - duel
// outcomes arrive from clients as playerResult events - so both are served
// as opaque read-only tables.
package content

import "slices"

type Character struct {
	Name      string `json:"name"`
	Img       string `json:"img"`
	MaxHealth int    `json:"maxHealth"`
	Special   string `json:"special"`
}

type Question struct {
	Prompt  string   `json:"q"`
	Options []string `json:"options"`
	Correct int      `json:"correct"`
}

var characters = []Character{
	{Name: "Ardilla Roja", Img: "ardilla.png", MaxHealth: 100, Special: "Nuez"},
	{Name: "Ratón", Img: "raton.png", MaxHealth: 100, Special: "Ataque doble"},
	{Name: "Capibara", Img: "capibara.png", MaxHealth: 100, Special: "Meditación"},
}

var questions = []Question{
	{Prompt: "¿Qué orden de mamíferos es el más diverso del planeta?", Options: []string{"Carnivora", "Rodentia", "Chiroptera", "Primates"}, Correct: 1},
	{Prompt: "¿Cuántas especies aproximadas de roedores existen?", Options: []string{"500", "1.200", "2.050", "4.000"}, Correct: 2},
	{Prompt: "¿En qué continente no se encuentran los roedores de forma natural?", Options: []string{"Asia", "Oceanía", "África", "Antártida"}, Correct: 3},
	{Prompt: "¿Cuál de los siguientes animales NO pertenece al orden Rodentia?", Options: []string{"Hámster", "Conejillo de Indias", "Murciélago", "Capibara"}, Correct: 2},
	{Prompt: "¿Qué característica dental distingue a los roedores?", Options: []string{"Incisivos curvos y puntiagudos", "Dientes de crecimiento continuo", "Presencia de caninos desarrollados", "Falta total de premolares"}, Correct: 1},
	{Prompt: "¿Qué espacio vacío se encuentra entre los incisivos y los molares?", Options: []string{"Arco cigomático", "Diastema", "Conducto dental", "Cavidad bucal"}, Correct: 1},
	{Prompt: "El capibara puede alcanzar un peso superior a:", Options: []string{"10 kg", "25 kg", "60 kg", "100 kg"}, Correct: 2},
	{Prompt: "Los bigotes o vibrisas en los roedores sirven principalmente para:", Options: []string{"Regular la temperatura corporal", "Detectar vibraciones y orientarse", "Masticar mejor los alimentos", "Almacenar grasa"}, Correct: 1},
	{Prompt: "¿Qué tipo de dieta presentan la mayoría de los roedores?", Options: []string{"Exclusivamente herbívora", "Exclusivamente carnívora", "Omnívora", "Frugívora"}, Correct: 2},
	{Prompt: "¿Cuál de estos roedores puede capturar peces?", Options: []string{"Rata", "Puercoespín", "Ardilla voladora", "Capibara"}, Correct: 0},
	{Prompt: "¿Cuál es una función ecológica destacada de los roedores?", Options: []string{"Predar sobre mamíferos grandes", "Dispersar semillas", "Fijar nitrógeno en el suelo", "Controlar hongos"}, Correct: 1},
	{Prompt: "Los roedores son fundamentales en las cadenas tróficas porque:", Options: []string{"Son grandes depredadores", "Compiten con aves y reptiles", "Constituyen presas de muchos carnívoros", "Evitan la propagación de plantas"}, Correct: 2},
}

func Characters() []Character { return slices.Clone(characters) }

func Questions() []Question { return slices.Clone(questions) }
