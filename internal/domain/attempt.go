package domain

import "time"

// Attempt links a team to one email. An attempt is "open" until the team
// submits a selection; the selection is written exactly once.
type Attempt struct {
	ID             int       `json:"id"`
	TeamID         int       `json:"teamId"`
	EmailID        int       `json:"emailId"`
	SelectedOption *string   `json:"selectedOption"`
	Reasoning      *string   `json:"reasoning,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Open reports whether the attempt has not been answered yet.
func (a *Attempt) Open() bool {
	return a.SelectedOption == nil
}

// AttemptView is an attempt hydrated with its email content. Correctness
// fields are populated only after submission.
type AttemptView struct {
	AttemptID      int          `json:"attemptId"`
	SelectedOption *string      `json:"selectedOption"`
	Reasoning      *string      `json:"reasoning,omitempty"`
	Email          EmailContent `json:"email"`
	IsCorrect      *bool        `json:"isCorrect,omitempty"`
	CorrectAnswer  Category     `json:"correctAnswer,omitempty"`
}

// AttemptState is the result of asking for the current attempt. Done
// signals a terminal state (threshold reached or content exhausted),
// which is not an error.
type AttemptState struct {
	Done    bool         `json:"done"`
	Count   int          `json:"count"`
	Message string       `json:"message,omitempty"`
	Attempt *AttemptView `json:"attempt,omitempty"`
}

// SubmitResult is the outcome of a submission. Business-rule rejections
// set Error and Message; they are expected conditions, not faults. On
// success Updated holds the scored attempt and Next the freshly created
// one (nil when the team is finished or no emails remain).
type SubmitResult struct {
	Error   bool         `json:"error,omitempty"`
	Message string       `json:"message,omitempty"`
	Done    bool         `json:"done"`
	Count   int          `json:"count,omitempty"`
	Updated *AttemptView `json:"updated,omitempty"`
	Next    *AttemptView `json:"next,omitempty"`
}

// SubmitRequest is the body of POST /game/attempt/{attemptId}/submit
type SubmitRequest struct {
	Selection string `json:"selection"`
	Reasoning string `json:"reasoning,omitempty"`
}

// AttemptResult is one row of a team's answer history, annotated with
// correctness against the email's category.
type AttemptResult struct {
	AttemptID      int      `json:"attemptId"`
	TeamID         int      `json:"teamId"`
	EmailID        int      `json:"emailId"`
	SelectedOption *string  `json:"selectedOption"`
	Reasoning      *string  `json:"reasoning,omitempty"`
	CorrectAnswer  Category `json:"correctAnswer"`
	IsCorrect      bool     `json:"isCorrect"`
}

// ScoreAttempt reports whether a selection is correct for an email of the
// given category. Pure; an empty or unsubmitted selection is incorrect.
func ScoreAttempt(selection string, category Category) bool {
	return selection != "" && Category(selection) == category
}
