package models

import "time"

type QuizItem struct {
	ID            uint      `gorm:"primaryKey" json:"-"`
	BatchID       string    `gorm:"size:36;not null;index" json:"-"`
	Question      string    `gorm:"type:text;not null" json:"question"`
	OptionA       string    `gorm:"type:text;not null" json:"optionA"`
	OptionB       string    `gorm:"type:text;not null" json:"optionB"`
	OptionC       string    `gorm:"type:text;not null" json:"optionC"`
	OptionD       string    `gorm:"type:text;not null" json:"optionD"`
	CorrectAnswer string    `gorm:"type:text;not null" json:"correctAnswer"`
	CreatedAt     time.Time `json:"-"`
}

// Cells returns the item's fields in CSV column order.
func (q QuizItem) Cells() []string {
	return []string{q.Question, q.OptionA, q.OptionB, q.OptionC, q.OptionD, q.CorrectAnswer}
}
