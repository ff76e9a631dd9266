// Package seed loads lesson content from YAML into the database.
package seed

import (
	"context"
	"fmt"
	"io"
	"os"

	"nurvo_backend/internal/model"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Content struct {
	Topics []Topic `yaml:"topics"`
}

type Topic struct {
	ID       uint      `yaml:"id"`
	Name     string    `yaml:"name"`
	Chapters []Chapter `yaml:"chapters"`
}

type Chapter struct {
	ID            uint           `yaml:"id"`
	Name          string         `yaml:"name"`
	Conversations []Conversation `yaml:"conversations"`
}

type Conversation struct {
	ID         uint   `yaml:"id"`
	Dialogue   string `yaml:"dialogue"`
	SecondStep string `yaml:"second_step"`
}

type Result struct {
	Topics        int
	Chapters      int
	Conversations int
}

func Decode(r io.Reader) (*Content, error) {
	var c Content
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func LoadFile(path string) (*Content, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

func (c *Content) validate() error {
	chapters := make(map[uint]bool)
	conversations := make(map[uint]bool)
	for _, t := range c.Topics {
		if t.ID == 0 || t.Name == "" {
			return fmt.Errorf("topic %q needs an id and a name", t.Name)
		}
		for _, ch := range t.Chapters {
			if ch.ID == 0 || ch.Name == "" {
				return fmt.Errorf("chapter %q of topic %d needs an id and a name", ch.Name, t.ID)
			}
			if chapters[ch.ID] {
				return fmt.Errorf("chapter id %d used twice", ch.ID)
			}
			chapters[ch.ID] = true
			for _, conv := range ch.Conversations {
				if conv.ID == 0 {
					return fmt.Errorf("conversation of chapter %d needs an id", ch.ID)
				}
				if conversations[conv.ID] {
					return fmt.Errorf("conversation id %d used twice", conv.ID)
				}
				conversations[conv.ID] = true
			}
		}
	}
	return nil
}

// Apply writes the content in one transaction. Rows with an existing id are
// overwritten, so running it twice is harmless.
func Apply(ctx context.Context, db *gorm.DB, c *Content) (Result, error) {
	var res Result
	upsert := clause.OnConflict{UpdateAll: true}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, t := range c.Topics {
			if err := tx.Clauses(upsert).Create(&model.Topic{ID: t.ID, Name: t.Name}).Error; err != nil {
				return fmt.Errorf("topic %d: %w", t.ID, err)
			}
			res.Topics++

			for _, ch := range t.Chapters {
				if err := tx.Clauses(upsert).Create(&model.Chapter{ID: ch.ID, Name: ch.Name, TopicID: t.ID}).Error; err != nil {
					return fmt.Errorf("chapter %d: %w", ch.ID, err)
				}
				res.Chapters++

				for _, conv := range ch.Conversations {
					row := &model.Conversation{
						ID:         conv.ID,
						ChapterID:  ch.ID,
						Dialogue:   conv.Dialogue,
						SecondStep: conv.SecondStep,
					}
					if err := tx.Clauses(upsert).Create(row).Error; err != nil {
						return fmt.Errorf("conversation %d: %w", conv.ID, err)
					}
					res.Conversations++
				}
			}
		}
		return nil
	})
	return res, err
}
