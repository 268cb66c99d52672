package util

import (
	"fmt"

	"karma/internal/rng"
)

var adjectives = []string{
	"Fast", "Slow", "Quick", "Speedy", "Gracious", "Happy", "Funny", "Red", "Blue", "Green",
	"Fuzzy", "Smiling", "Grand", "Ultimate", "Prime", "Alpha", "Lucky", "Sly", "Bold", "Patient",
}

var animals = []string{
	"Dog", "Cat", "Mouse", "Shark", "Hippo", "Giraffe", "Lion", "Tiger", "Bear", "Otter",
	"Dolphin", "Hedgehog", "Snake", "Eagle", "Wolf", "Fox", "Panda", "Owl", "Badger", "Crow",
}

var random rng.Generator = rng.Crypto{}

// GetRandomName returns a random name by combining an adjective with an animal
// Used to name bots when the configuration does not
func GetRandomName() string {
	adjectivesIndex := random.Intn(len(adjectives))
	animalsIndex := random.Intn(len(animals))

	return fmt.Sprintf("%s %s", adjectives[adjectivesIndex], animals[animalsIndex])
}
