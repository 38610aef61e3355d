package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stoik.com/phishscan/internal/core/domain"
	"stoik.com/phishscan/internal/core/port"
)

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time {
	return fixedNow
}

func cleanMessage() *domain.Message {
	return &domain.Message{
		From:                  "Alice <alice@example.com>",
		ReplyTo:               "alice@example.com",
		ReturnPath:            "<bounce@mail.example.com>",
		Subject:               "Quarterly report",
		MessageID:             "<abc123@mail.example.com>",
		Date:                  fixedNow.Add(-2 * time.Hour),
		HasDate:               true,
		Received:              []string{"from mail.example.com (mail.example.com [203.0.113.5]) by mx.example.net"},
		AuthenticationResults: []string{"mx.example.net; spf=pass smtp.mailfrom=example.com; dkim=pass header.d=example.com; dmarc=pass"},
		Text:                  "See attached.",
		Parts: []domain.MIMEPart{
			{ContentType: "text/plain"},
			{ContentType: "text/html"},
		},
	}
}

func evaluateMessage(e port.Evaluator, msg *domain.Message) domain.CategoryResult {
	return e.Evaluate(domain.Evidence{URLs: []domain.URLDescriptor{}, Message: msg})
}

func TestEvaluators_OnePerCategory(t *testing.T) {
	evaluators := NewEvaluators(DefaultPolicy(), DefaultBrands(), nil)

	seen := map[domain.Category]bool{}
	for _, e := range evaluators {
		seen[e.Category()] = true
	}
	assert.Len(t, evaluators, len(domain.CategoryOrder))
	for _, category := range domain.CategoryOrder {
		assert.True(t, seen[category], string(category))
	}
}

func TestEvaluators_TextPathwayLeavesMessageCategoriesEmpty(t *testing.T) {
	for _, e := range NewEvaluators(DefaultPolicy(), DefaultBrands(), fixedClock) {
		result := e.Evaluate(domain.Evidence{URLs: []domain.URLDescriptor{}})

		assert.Equal(t, e.Category(), result.Category)
		assert.NotNil(t, result.Findings)
		assert.Empty(t, result.Findings, string(e.Category()))
	}
}

func TestEvaluators_CleanMessageHasNoFindings(t *testing.T) {
	for _, e := range NewEvaluators(DefaultPolicy(), DefaultBrands(), fixedClock) {
		result := evaluateMessage(e, cleanMessage())

		assert.Empty(t, rules(result), string(e.Category()))
	}
}

func TestEvaluate_CategoriesWithoutEvaluatorAreEmpty(t *testing.T) {
	registry := map[domain.Category]port.Evaluator{
		domain.CategoryURL: NewURLSecurityEvaluator(DefaultPolicy(), DefaultBrands()),
	}
	u, err := NormalizeURL("http://192.168.1.10/")
	require.NoError(t, err)

	findings := Evaluate(registry, domain.Evidence{URLs: []domain.URLDescriptor{u}})

	assert.Len(t, findings, len(domain.CategoryOrder))
	assert.Equal(t, 30, findings[domain.CategoryURL].Score())
	assert.Equal(t, domain.EmptyResult(domain.CategoryTiming), findings[domain.CategoryTiming])
}

func TestAuthenticationEvaluator(t *testing.T) {
	tests := []struct {
		name    string
		headers []string
		rules   []string
	}{
		{"all pass", []string{"mx; spf=pass; dkim=pass; dmarc=pass"}, []string{}},
		{"dmarc fail", []string{"mx.google.com; spf=pass smtp.mailfrom=x.com; dkim=pass; dmarc=fail (p=REJECT)"}, []string{RuleDMARCFail}},
		{"spf softfail", []string{"mx; spf=softfail smtp.mailfrom=x.com"}, []string{RuleSPFFail}},
		{"everything fails", []string{"mx; SPF=fail; DKIM=fail; DMARC=fail"}, []string{RuleSPFFail, RuleDKIMFail, RuleDMARCFail}},
		{"first verdict wins", []string{"mx; dkim=pass", "other; dkim=fail"}, []string{}},
		{"no header", nil, []string{}},
	}

	evaluator := NewAuthenticationEvaluator(DefaultPolicy())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := cleanMessage()
			msg.AuthenticationResults = tt.headers

			assert.Equal(t, tt.rules, rules(evaluateMessage(evaluator, msg)))
		})
	}
}

func TestDomainEvaluator(t *testing.T) {
	evaluator := NewDomainEvaluator(DefaultPolicy(), DefaultBrands())

	msg := cleanMessage()
	msg.From = "PayPal Service <service@paypa1.com>"
	msg.ReplyTo = "refunds@gmail.com"
	msg.ReturnPath = "<bounce@paypa1.com>"
	result := evaluateMessage(evaluator, msg)

	assert.Equal(t, []string{RuleSenderLookalike, RuleReplyToMismatch}, rules(result))
	assert.Equal(t, 40, result.Score())
	assert.Equal(t, map[string]string{"sender_domain": "paypa1.com"}, result.Details)

	msg = cleanMessage()
	msg.ReturnPath = "<bounce@bulk-mailer.net>"
	assert.Equal(t, []string{RuleReturnPathMismatch}, rules(evaluateMessage(evaluator, msg)))

	msg = cleanMessage()
	msg.From = "Service <service@paypal.com>"
	msg.ReplyTo = ""
	msg.ReturnPath = "<bounce@em.paypal.com>"
	assert.Empty(t, rules(evaluateMessage(evaluator, msg)))
}

func TestAttachmentEvaluator(t *testing.T) {
	executable := append([]byte("MZ"), make([]byte, 64)...)

	tests := []struct {
		name       string
		attachment domain.Attachment
		rules      []string
	}{
		{"pdf", domain.Attachment{FileName: "invoice.pdf", Content: []byte("%PDF-1.7")}, []string{}},
		{"exe", domain.Attachment{FileName: "setup.exe", Content: executable}, []string{RuleDangerousAttachment}},
		{"double extension", domain.Attachment{FileName: "invoice.pdf.exe", Content: executable}, []string{RuleDangerousAttachment, RuleDoubleExtension}},
		{"macro document", domain.Attachment{FileName: "Payroll.XLSM"}, []string{RuleMacroDocument}},
		{"disguised executable", domain.Attachment{FileName: "report.pdf", Content: executable}, []string{RuleDisguisedExecutable}},
	}

	evaluator := NewAttachmentEvaluator(DefaultPolicy())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := cleanMessage()
			msg.Attachments = []domain.Attachment{tt.attachment}

			result := evaluateMessage(evaluator, msg)

			assert.Equal(t, tt.rules, rules(result))
			assert.Equal(t, []string{tt.attachment.FileName}, result.Details)
		})
	}
}

func TestInfrastructureEvaluator(t *testing.T) {
	evaluator := NewInfrastructureEvaluator(DefaultPolicy())

	msg := cleanMessage()
	msg.Received = nil
	for i := range 11 {
		msg.Received = append(msg.Received, fmt.Sprintf("from relay%d.example.net by relay%d.example.net", i, i+1))
	}
	result := evaluateMessage(evaluator, msg)
	assert.Equal(t, []string{RuleExcessiveHops}, rules(result))
	assert.Equal(t, map[string]int{"hops": 11}, result.Details)

	msg = cleanMessage()
	msg.Received = append(msg.Received, "from unknown (HELO bulk) ([198.51.100.7]) by mx.example.net")
	assert.Equal(t, []string{RuleUnnamedRelay}, rules(evaluateMessage(evaluator, msg)))

	msg = cleanMessage()
	msg.Received = []string{"from [198.51.100.7] by mx.example.net; Sun, 1 Jun 2025 10:00:00 +0000"}
	assert.Equal(t, []string{RuleUnnamedRelay}, rules(evaluateMessage(evaluator, msg)))
}

func TestHeaderEvaluator(t *testing.T) {
	evaluator := NewHeaderEvaluator(DefaultPolicy())

	msg := cleanMessage()
	msg.MessageID = ""
	assert.Equal(t, []string{RuleMissingMessageID}, rules(evaluateMessage(evaluator, msg)))

	msg = cleanMessage()
	msg.MessageID = "<1234@bulk-sender.biz>"
	assert.Equal(t, []string{RuleMessageIDMismatch}, rules(evaluateMessage(evaluator, msg)))

	msg = cleanMessage()
	msg.From = ""
	assert.Equal(t, []string{RuleMissingFrom}, rules(evaluateMessage(evaluator, msg)))
}

func TestTimingEvaluator(t *testing.T) {
	evaluator := NewTimingEvaluator(DefaultPolicy(), fixedClock)

	tests := []struct {
		name    string
		date    time.Time
		hasDate bool
		rules   []string
	}{
		{"recent", fixedNow.Add(-time.Hour), true, []string{}},
		{"slightly ahead", fixedNow.Add(2 * time.Hour), true, []string{}},
		{"future", fixedNow.Add(48 * time.Hour), true, []string{RuleFutureDate}},
		{"stale", fixedNow.AddDate(-2, 0, 0), true, []string{RuleStaleDate}},
		{"missing", time.Time{}, false, []string{RuleMissingDate}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := cleanMessage()
			msg.Date = tt.date
			msg.HasDate = tt.hasDate

			assert.Equal(t, tt.rules, rules(evaluateMessage(evaluator, msg)))
		})
	}
}

func TestMIMEEvaluator(t *testing.T) {
	evaluator := NewMIMEEvaluator(DefaultPolicy())

	msg := cleanMessage()
	msg.ParseErrors = []string{"Malformed Header: bad line"}
	assert.Equal(t, []string{RuleMalformedMIME}, rules(evaluateMessage(evaluator, msg)))

	msg = cleanMessage()
	msg.Parts = []domain.MIMEPart{{ContentType: "text/html"}, {ContentType: "text/plain", Disposition: "attachment", FileName: "notes.txt"}}
	assert.Equal(t, []string{RuleHTMLOnly}, rules(evaluateMessage(evaluator, msg)))
}
