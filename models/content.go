package models

import (
	"github.com/abdulrahman-nisar/UpliftAI/store"
)

// ContentType classifies catalog content.
type ContentType string

const (
	ContentQuote       ContentType = "Quote"
	ContentTip         ContentType = "Tip"
	ContentAffirmation ContentType = "Affirmation"
	ContentArticle     ContentType = "Article"
)

func (t ContentType) Valid() bool {
	switch t {
	case ContentQuote, ContentTip, ContentAffirmation, ContentArticle:
		return true
	}
	return false
}

// Content is a retrievable piece of wellness content (quote, tip,
// affirmation or article). Category is a free string such as "Stress",
// "Motivation" or "Gratitude".
type Content struct {
	ID       string   `json:"id"`
	Text     string   `json:"text"`
	Type     string   `json:"type"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
	Author   string   `json:"author,omitempty"`
}

func (c *Content) Doc() store.Document {
	tags := c.Tags
	if tags == nil {
		tags = []string{}
	}
	doc := store.Document{
		"text":     c.Text,
		"type":     c.Type,
		"category": c.Category,
		"tags":     tags,
	}
	if c.Author != "" {
		doc["author"] = c.Author
	}
	return doc
}

func ContentFromDoc(id string, doc store.Document) *Content {
	return &Content{
		ID:       id,
		Text:     docString(doc, "text"),
		Type:     docString(doc, "type"),
		Category: docString(doc, "category"),
		Tags:     docStrings(doc, "tags"),
		Author:   docString(doc, "author"),
	}
}
