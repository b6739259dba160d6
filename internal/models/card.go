package models

// Difficulty grades a knowledge card for onboarding-level filtering
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// KnowledgeCard is an immutable content unit in the knowledge catalog.
// Cards are authored statically, validated on load and never mutated;
// consumers look them up by ID.
type KnowledgeCard struct {
	ID              string     `yaml:"id" json:"id" validate:"required"`
	Title           string     `yaml:"title" json:"title" validate:"required"`
	Category        string     `yaml:"category" json:"category" validate:"required"`
	Teaser          string     `yaml:"teaser" json:"teaser" validate:"required"`
	Explanation     string     `yaml:"explanation" json:"explanation" validate:"required"`
	Example         string     `yaml:"example" json:"example"`
	FunFact         string     `yaml:"fun_fact" json:"funFact"`
	RelatedConcepts []string   `yaml:"related_concepts" json:"relatedConcepts"`
	Tags            []string   `yaml:"tags" json:"tags"`
	Difficulty      Difficulty `yaml:"difficulty" json:"difficulty" validate:"oneof=beginner intermediate advanced"`
	AccentColor     string     `yaml:"accent_color" json:"accentColor" validate:"omitempty,hexcolor"`
}
