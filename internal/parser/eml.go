package parser

import (
	"bytes"
	"fmt"
	"net/mail"
	"strings"

	"github.com/jhillyerd/enmime"
	log "github.com/sirupsen/logrus"

	"stoik.com/phishscan/internal/core/domain"
)

// EMLParser turns a raw RFC 5322 message into a domain.Message.
type EMLParser struct{}

func NewEMLParser() *EMLParser {
	return &EMLParser{}
}

func (p *EMLParser) Parse(raw []byte) (*domain.Message, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, fmt.Errorf("%w: empty message", domain.ErrMalformedInput)
	}

	env, err := enmime.ReadEnvelope(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read envelope: %v", domain.ErrMalformedInput, err)
	}

	msg := &domain.Message{
		From:                  env.GetHeader("From"),
		ReplyTo:               env.GetHeader("Reply-To"),
		ReturnPath:            env.GetHeader("Return-Path"),
		Subject:               env.GetHeader("Subject"),
		MessageID:             env.GetHeader("Message-Id"),
		Received:              env.GetHeaderValues("Received"),
		AuthenticationResults: env.GetHeaderValues("Authentication-Results"),
		Headers:               make(map[string][]string),
		Text:                  env.Text,
		HTML:                  env.HTML,
	}

	for _, key := range env.GetHeaderKeys() {
		msg.Headers[key] = env.GetHeaderValues(key)
	}

	if date := env.GetHeader("Date"); date != "" {
		if parsed, err := mail.ParseDate(date); err == nil {
			msg.Date = parsed
			msg.HasDate = true
		}
	}

	for _, a := range env.Attachments {
		msg.Attachments = append(msg.Attachments, domain.Attachment{
			FileName:    a.FileName,
			ContentType: a.ContentType,
			Content:     a.Content,
		})
	}

	walkParts(env.Root, func(part *enmime.Part) {
		msg.Parts = append(msg.Parts, domain.MIMEPart{
			ContentType: strings.ToLower(part.ContentType),
			FileName:    part.FileName,
			Disposition: strings.ToLower(part.Disposition),
		})
	})

	for _, e := range env.Errors {
		msg.ParseErrors = append(msg.ParseErrors, fmt.Sprintf("%s: %s", e.Name, e.Detail))
	}

	log.WithFields(log.Fields{
		"attachments": len(msg.Attachments),
		"parts":       len(msg.Parts),
		"errors":      len(msg.ParseErrors),
	}).Debug("Message parsed")

	return msg, nil
}

func walkParts(part *enmime.Part, visit func(*enmime.Part)) {
	for p := part; p != nil; p = p.NextSibling {
		visit(p)
		walkParts(p.FirstChild, visit)
	}
}
