// Package creative holds the fixed category set and the system
// instruction bound to each category.
package creative

import (
	"slices"

	"github.com/dmitrijs2005/ideae/internal/common"
)

const (
	CategoryWriting        = "writing"
	CategoryDesign         = "design"
	CategoryProblemSolving = "problem-solving"
	CategoryGiftIdeas      = "gift-ideas"
	CategoryProjectNames   = "project-names"
	CategoryContentIdeas   = "content-ideas"
)

var defaultInstructions = map[string]string{
	CategoryWriting: "You are a creative writing assistant helping someone overcome writer's block.\n" +
		"Generate unique, inspiring writing prompts and story ideas. Be specific and imaginative.\n" +
		"Provide 3 distinct creative suggestions based on the user's input.",
	CategoryDesign: "You are a design inspiration expert. Help users find creative visual concepts,\n" +
		"color palettes, layout ideas, and aesthetic directions. Be specific about visual elements.\n" +
		"Provide 3 distinct creative design suggestions based on the user's input.",
	CategoryProblemSolving: "You are a creative problem-solving consultant. Help users think outside\n" +
		"the box and find innovative solutions. Use lateral thinking and unconventional approaches.\n" +
		"Provide 3 distinct creative solutions based on the user's input.",
	CategoryGiftIdeas: "You are a thoughtful gift curator. Suggest unique, personalized gift ideas\n" +
		"that go beyond typical suggestions. Consider the recipient's interests and the occasion.\n" +
		"Provide 3 distinct creative gift suggestions based on the user's input.",
	CategoryProjectNames: "You are a naming expert and branding specialist. Generate memorable,\n" +
		"creative names for projects, businesses, products, or creative works.\n" +
		"Provide 5 distinct creative name suggestions based on the user's input.",
	CategoryContentIdeas: "You are a content strategist and creative director. Generate engaging\n" +
		"content ideas for blogs, social media, videos, or other creative platforms.\n" +
		"Provide 3 distinct creative content suggestions based on the user's input.",
}

// Instructions maps each allowed category to its system instruction.
// It is read-only once built.
type Instructions struct {
	byCategory map[string]string
}

// NewInstructions copies table into an Instructions value.
func NewInstructions(table map[string]string) *Instructions {
	m := make(map[string]string, len(table))
	for k, v := range table {
		m[k] = v
	}
	return &Instructions{byCategory: m}
}

// DefaultInstructions returns the production category table.
func DefaultInstructions() *Instructions {
	return NewInstructions(defaultInstructions)
}

// Lookup returns the instruction bound to category, or
// common.ErrInvalidCategory when the category is not in the set.
func (in *Instructions) Lookup(category string) (string, error) {
	s, ok := in.byCategory[category]
	if !ok {
		return "", common.ErrInvalidCategory
	}
	return s, nil
}

// Categories returns the allowed categories in sorted order.
func (in *Instructions) Categories() []string {
	out := make([]string, 0, len(in.byCategory))
	for k := range in.byCategory {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
