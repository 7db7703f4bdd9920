package locale

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/language"

	"github.com/warp/leave-eligibility/childcare"
	"github.com/warp/leave-eligibility/generic"
)

// Line is a labeled value, e.g. a milestone date.
type Line struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ConditionLine is one core predicate with its localized label.
type ConditionLine struct {
	Code  childcare.ConditionCode `json:"code"`
	Label string                  `json:"label"`
	Met   bool                    `json:"met"`
}

// Report is a Result rendered for display in one locale.
type Report struct {
	Locale          string          `json:"locale"`
	Headline        string          `json:"headline"`
	Message         string          `json:"message"`
	Milestones      []Line          `json:"milestones"`
	ConditionsTitle string          `json:"conditionsTitle"`
	Conditions      []ConditionLine `json:"conditions"`
	AdviceTitle     string          `json:"adviceTitle"`
	Advice          []string        `json:"advice"`
	Tenure          string          `json:"tenure"`
}

// FieldMessage is a localized validation error.
type FieldMessage struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Render localizes res for tag.
func (c *Catalog) Render(tag language.Tag, res childcare.Result) Report {
	tag = c.Match(tag)
	p := c.Printer(tag)

	headline := LabelNotEligible
	if res.IsEligible {
		headline = LabelEligible
	}

	report := Report{
		Locale:   tag.String(),
		Headline: p.Sprintf(headline),
		Message:  p.Sprintf(res.Message.Key()),
		Milestones: []Line{
			{Label: p.Sprintf(LabelOneYearBirthday), Value: c.FormatDate(tag, res.ChildOneYearBirthday)},
			{Label: p.Sprintf(LabelOneHalfBirthday), Value: c.FormatDate(tag, res.ChildOneHalfYearBirthday)},
		},
		ConditionsTitle: p.Sprintf(LabelConditions),
		AdviceTitle:     p.Sprintf(LabelAdvice),
		Advice:          make([]string, 0, len(res.Advice)),
		Tenure:          p.Sprintf(LabelTenureAtBirth, res.TenureAtBirth.Round(1).Float64()),
	}

	for _, cond := range res.Conditions() {
		report.Conditions = append(report.Conditions, ConditionLine{
			Code:  cond.Code,
			Label: p.Sprintf(cond.Code.Key()),
			Met:   cond.Met,
		})
	}
	for _, code := range res.Advice {
		report.Advice = append(report.Advice, p.Sprintf(code.Key()))
	}
	return report
}

// RenderErrors localizes validation errors, keeping their order.
func (c *Catalog) RenderErrors(tag language.Tag, verrs generic.ValidationErrors) []FieldMessage {
	p := c.Printer(tag)
	out := make([]FieldMessage, 0, len(verrs))
	for _, fe := range verrs {
		msg := fe.Error()
		if _, ok := c.Text(tag, fe.Key()); ok {
			msg = p.Sprintf(fe.Key())
		}
		out = append(out, FieldMessage{Field: fe.Field, Code: fe.Code, Message: msg})
	}
	return out
}

// FormatDate renders tp with the locale's date layout.
func (c *Catalog) FormatDate(tag language.Tag, tp generic.TimePoint) string {
	return tp.Format(c.DateLayout(tag))
}

// WriteText writes the report as plain text, one section per block.
func (r Report) WriteText(w io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s\n\n", r.Headline, r.Message)
	for _, l := range r.Milestones {
		fmt.Fprintf(&b, "%s: %s\n", l.Label, l.Value)
	}
	fmt.Fprintf(&b, "%s\n\n%s\n", r.Tenure, r.ConditionsTitle)
	for _, cond := range r.Conditions {
		mark := "✗"
		if cond.Met {
			mark = "✓"
		}
		fmt.Fprintf(&b, "  %s %s\n", mark, cond.Label)
	}
	if len(r.Advice) > 0 {
		fmt.Fprintf(&b, "\n%s\n", r.AdviceTitle)
		for _, a := range r.Advice {
			fmt.Fprintf(&b, "  • %s\n", a)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}
