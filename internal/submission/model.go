package submission

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TestSubmission is a student's scored questionnaire. Answers holds the
// raw questionId→value object as submitted. The unique index on AccountID
// backs the one-submission-per-student upsert.
type TestSubmission struct {
	ID              string         `json:"id" gorm:"primaryKey;size:36"`
	AccountID       string         `json:"accountId" gorm:"size:36;uniqueIndex;not null"`
	PersonalityType int            `json:"personalityType"`
	Answers         datatypes.JSON `json:"answers" gorm:"type:jsonb"`
	CreatedAt       time.Time      `json:"createdAt"`
}

func (s *TestSubmission) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
