package domain

// Category classifies a seeded email as legitimate or phishing
type Category string

const (
	CategoryLegit    Category = "legit"
	CategoryPhishing Category = "phishing"
)

// ValidSelection reports whether s names one of the two answer options.
func ValidSelection(s string) bool {
	return s == string(CategoryLegit) || s == string(CategoryPhishing)
}

// Email is a seeded question unit. Emails are immutable during gameplay;
// they are inserted once at database initialization (or admin reset).
type Email struct {
	ID       int      `json:"id"`
	Category Category `json:"category"`
	Subject  string   `json:"subject"`
	SentFrom string   `json:"from"`
	SentTo   string   `json:"to"`
	Date     string   `json:"date"`
	HTML     string   `json:"html"`
}

// EmailContent is the email as presented to a team: everything except the
// category, which would give the answer away.
type EmailContent struct {
	ID      int    `json:"id"`
	Subject string `json:"subject"`
	From    string `json:"from"`
	To      string `json:"to"`
	Date    string `json:"date"`
	HTML    string `json:"html"`
}

// Content strips the category from an email for presentation.
func (e Email) Content() EmailContent {
	return EmailContent{
		ID:      e.ID,
		Subject: e.Subject,
		From:    e.SentFrom,
		To:      e.SentTo,
		Date:    e.Date,
		HTML:    e.HTML,
	}
}
