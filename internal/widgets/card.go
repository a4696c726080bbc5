package widgets

import (
	"fmt"
	"net/url"

	"solana-patterns/internal/models"
)

const DetailPathPrefix = "/pattern/"

func PatternPath(id string) string {
	return DetailPathPrefix + url.PathEscape(id)
}

// PatternCard — плитка паттерна в списке. Index нужен только для задержки анимации.
type PatternCard struct {
	ID          string
	Title       string
	Description string
	Category    string
	Severity    models.Severity
	Href        string
	Index       int
}

func NewPatternCard(p models.SecurityPattern, index int) PatternCard {
	return PatternCard{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Category:    p.Category,
		Severity:    p.Severity,
		Href:        PatternPath(p.ID),
		Index:       index,
	}
}

func NewPatternCards(patterns []models.SecurityPattern) []PatternCard {
	cards := make([]PatternCard, len(patterns))
	for i, p := range patterns {
		cards[i] = NewPatternCard(p, i)
	}
	return cards
}

func (c PatternCard) AnimationDelay() string {
	return fmt.Sprintf("%dms", c.Index*80)
}
