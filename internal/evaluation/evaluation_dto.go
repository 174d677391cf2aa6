package evaluation

type SubmitEvaluationRequest struct {
	EvaluatedID string         `json:"evaluated_id" binding:"required,uuid"`
	TermID      string         `json:"term_id" binding:"required"`
	Scores      map[string]int `json:"scores" binding:"required"`
	Note        *string        `json:"note"`
}

type EvaluationResponse struct {
	ID          string  `json:"id"`
	EvaluatedID string  `json:"evaluated_id"`
	EvaluatorID string  `json:"evaluator_id"`
	CategoryID  string  `json:"category_id"`
	TermID      string  `json:"term_id"`
	Score       int     `json:"score"`
	Note        *string `json:"note,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

// TermSummary merangkum seluruh nilai seorang karyawan pada satu term.
type TermSummary struct {
	TermID     string               `json:"term_id"`
	TotalScore int                  `json:"total_score"`
	Count      int                  `json:"count"`
	Entries    []EvaluationResponse `json:"entries"`
}
