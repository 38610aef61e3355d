package service

import (
	"fmt"
	"path"
	"slices"
	"strings"

	"github.com/h2non/filetype"

	"stoik.com/phishscan/internal/core/domain"
)

var executableKinds = []string{"exe", "elf", "dex", "wasm"}

type AttachmentEvaluator struct {
	policy Policy
}

func NewAttachmentEvaluator(policy Policy) *AttachmentEvaluator {
	return &AttachmentEvaluator{policy: policy}
}

func (e *AttachmentEvaluator) Category() domain.Category {
	return domain.CategoryAttachment
}

func (e *AttachmentEvaluator) Evaluate(evidence domain.Evidence) domain.CategoryResult {
	findings := newFindingList(e.policy)
	if evidence.Message == nil {
		return findings.result(domain.CategoryAttachment, nil)
	}

	names := make([]string, 0, len(evidence.Message.Attachments))
	for _, a := range evidence.Message.Attachments {
		name := strings.ToLower(strings.TrimSpace(a.FileName))
		names = append(names, a.FileName)
		ext := strings.TrimPrefix(path.Ext(name), ".")

		if slices.Contains(e.policy.DangerousExtensions, ext) {
			findings.add(RuleDangerousAttachment, fmt.Sprintf("Dangerous attachment type .%s (%s)", ext, a.FileName))
			if strings.Count(name, ".") >= 2 {
				findings.add(RuleDoubleExtension, fmt.Sprintf("Attachment %s uses a double extension", a.FileName))
			}
		}
		if slices.Contains(e.policy.MacroExtensions, ext) {
			findings.add(RuleMacroDocument, fmt.Sprintf("Macro-enabled document attached (%s)", a.FileName))
		}
		if len(a.Content) > 0 {
			kind, err := filetype.Match(a.Content)
			if err == nil && slices.Contains(executableKinds, kind.Extension) && kind.Extension != ext {
				findings.add(RuleDisguisedExecutable, fmt.Sprintf("Attachment %s contains an executable (%s)", a.FileName, kind.MIME.Value))
			}
		}
	}

	return findings.result(domain.CategoryAttachment, names)
}

type MIMEEvaluator struct {
	policy Policy
}

func NewMIMEEvaluator(policy Policy) *MIMEEvaluator {
	return &MIMEEvaluator{policy: policy}
}

func (e *MIMEEvaluator) Category() domain.Category {
	return domain.CategoryMIME
}

func (e *MIMEEvaluator) Evaluate(evidence domain.Evidence) domain.CategoryResult {
	findings := newFindingList(e.policy)
	msg := evidence.Message
	if msg == nil {
		return findings.result(domain.CategoryMIME, nil)
	}

	if len(msg.ParseErrors) > 0 {
		findings.add(RuleMalformedMIME, fmt.Sprintf("Malformed MIME structure (%d parse errors)", len(msg.ParseErrors)))
	}

	var hasText, hasHTML bool
	for _, p := range msg.Parts {
		switch strings.ToLower(p.ContentType) {
		case "text/plain":
			hasText = hasText || p.Disposition != "attachment"
		case "text/html":
			hasHTML = hasHTML || p.Disposition != "attachment"
		}
	}
	if hasHTML && !hasText {
		findings.add(RuleHTMLOnly, "Message has an HTML body without a plain-text alternative")
	}

	return findings.result(domain.CategoryMIME, nil)
}
