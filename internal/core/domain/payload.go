package domain

// TextPayload is the text-only request shape. Pointers tell an absent field from an empty one.
type TextPayload struct {
	Subject *string `json:"subject" validate:"required"`
	Body    *string `json:"body" validate:"required"`
	Sender  *string `json:"sender" validate:"required"`
}

func NewTextPayload(subject, body, sender string) TextPayload {
	return TextPayload{
		Subject: &subject,
		Body:    &body,
		Sender:  &sender,
	}
}

func (p TextPayload) BodyText() string {
	if p.Body == nil {
		return ""
	}
	return *p.Body
}

func (p TextPayload) SubjectText() string {
	if p.Subject == nil {
		return ""
	}
	return *p.Subject
}

func (p TextPayload) SenderText() string {
	if p.Sender == nil {
		return ""
	}
	return *p.Sender
}
