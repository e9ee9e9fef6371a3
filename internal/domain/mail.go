package domain

type MailMessage struct {
	Type string `json:"type"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

type WelcomeMailData struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Username string `json:"username"`
}
