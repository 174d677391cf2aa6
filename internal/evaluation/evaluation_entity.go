package evaluation

import (
	"time"

	"github.com/google/uuid"
)

// Evaluation adalah satu nilai per kategori. Kunci alami
// (evaluated, evaluator, category, term) dijaga index unik; pengiriman
// ulang kombinasi yang sama ditolak sebagai duplikat.
type Evaluation struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EvaluatedID uuid.UUID `gorm:"column:evaluated_id;type:uuid;not null;uniqueIndex:uq_evaluation_natural;index"`
	EvaluatorID uuid.UUID `gorm:"column:evaluator_id;type:uuid;not null;uniqueIndex:uq_evaluation_natural"`
	CategoryID  string    `gorm:"column:category_id;type:varchar(50);not null;uniqueIndex:uq_evaluation_natural"`
	TermID      string    `gorm:"column:term_id;type:varchar(20);not null;uniqueIndex:uq_evaluation_natural;index"`
	Score       int       `gorm:"column:score;type:smallint;not null"`
	Note        *string   `gorm:"column:note;type:text"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (Evaluation) TableName() string {
	return "evaluations"
}

const (
	ScoreMin = 1
	ScoreMax = 100
)

func ValidScore(score int) bool {
	return score >= ScoreMin && score <= ScoreMax
}
