package domain

import "time"

type URLDescriptor struct {
	FullURL string `json:"full_url"`
	Domain  string `json:"domain"`
	Path    string `json:"path"`
	Scheme  string `json:"scheme"`
}

// Evidence is the raw input handed to every evaluator. Message is nil on the text pathway.
type Evidence struct {
	URLs    []URLDescriptor
	Message *Message
}

// Message is a parsed full email with its headers, parts and attachments.
type Message struct {
	From                  string
	ReplyTo               string
	ReturnPath            string
	Subject               string
	MessageID             string
	Date                  time.Time
	HasDate               bool
	Received              []string
	AuthenticationResults []string
	Headers               map[string][]string
	Text                  string
	HTML                  string
	Attachments           []Attachment
	Parts                 []MIMEPart
	ParseErrors           []string
}

type Attachment struct {
	FileName    string
	ContentType string
	Content     []byte
}

type MIMEPart struct {
	ContentType string
	FileName    string
	Disposition string
}

// Brand is a protected name together with the domains it legitimately sends from.
type Brand struct {
	Name    string
	Domains []string
}
