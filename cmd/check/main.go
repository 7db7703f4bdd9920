/*
main.go - One-shot eligibility check from the command line

PURPOSE:
  Evaluates a single submission and prints the localized report, or the
  raw result as JSON. Starts from the blank-form defaults (or a preset via
  -scenario) and applies the flags given.

EXIT CODES:
  0  evaluated (eligible or not)
  1  output failure
  2  usage or validation error

EXAMPLES:
  ./check -birth=2025-06-01 -start=2023-01-01 -insured
  ./check -scenario=contract-ends-early -lang=ja
  ./check -birth=2025-06-01 -type=contract -start=2023-01-01 -end=2026-11-01 -days=2 -json
*/
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"

	"github.com/warp/leave-eligibility/api"
	"github.com/warp/leave-eligibility/childcare"
	"github.com/warp/leave-eligibility/generic"
	"github.com/warp/leave-eligibility/locale"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type output struct {
	Input  childcare.FormData `json:"input"`
	Result api.ResultDTO      `json:"result"`
	Report locale.Report      `json:"report"`
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		f        childcare.FormData
		lang     = fs.String("lang", locale.BaseLocale.String(), "report locale")
		asJSON   = fs.Bool("json", false, "print JSON instead of text")
		scenario = fs.String("scenario", "", "start from a preset submission")
	)
	fs.StringVar(&f.ExpectedBirthDate, "birth", "", "expected birth date (YYYY-MM-DD)")
	fs.StringVar(&f.EmploymentType, "type", "", "full-time, contract, part-time or temp")
	fs.StringVar(&f.EmploymentStartDate, "start", "", "employment start date (YYYY-MM-DD)")
	fs.StringVar(&f.ContractEndDate, "end", "", "contract end date (YYYY-MM-DD)")
	fs.IntVar(&f.WeeklyWorkDays, "days", 0, "work days per week (1-7)")
	fs.BoolVar(&f.EnrolledInEmploymentInsurance, "insured", false, "enrolled in employment insurance")
	fs.BoolVar(&f.PlanningToWorkDuringLeave, "work-during-leave", false, "planning to work during leave")
	fs.BoolVar(&f.PartnerTakingLeave, "partner-leave", false, "partner is also taking leave")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %v\n", fs.Args())
		return 2
	}

	form := childcare.DefaultFormData()
	if *scenario != "" {
		s, err := childcare.FindScenario(*scenario)
		if generic.IsNotFound(err) {
			fmt.Fprintf(stderr, "unknown scenario %q, available:\n", *scenario)
			for _, p := range childcare.Scenarios() {
				fmt.Fprintf(stderr, "  %s\n", p.ID)
			}
			return 2
		}
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return 1
		}
		form = s.Form
	}
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "birth":
			form.ExpectedBirthDate = f.ExpectedBirthDate
		case "type":
			form.EmploymentType = f.EmploymentType
		case "start":
			form.EmploymentStartDate = f.EmploymentStartDate
		case "end":
			form.ContractEndDate = f.ContractEndDate
		case "days":
			form.WeeklyWorkDays = f.WeeklyWorkDays
		case "insured":
			form.EnrolledInEmploymentInsurance = f.EnrolledInEmploymentInsurance
		case "work-during-leave":
			form.PlanningToWorkDuringLeave = f.PlanningToWorkDuringLeave
		case "partner-leave":
			form.PartnerTakingLeave = f.PartnerTakingLeave
		}
	})

	catalog := locale.Default()
	tag, ok := catalog.ParseTag(*lang)
	if !ok {
		fmt.Fprintf(stderr, "unsupported locale %q, using %s\n", *lang, locale.BaseLocale)
	}

	in, err := childcare.ParseForm(form)
	if err != nil {
		var verrs generic.ValidationErrors
		if !errors.As(err, &verrs) {
			fmt.Fprintf(stderr, "%v\n", err)
			return 2
		}
		for _, fm := range catalog.RenderErrors(tag, verrs) {
			fmt.Fprintf(stderr, "%s: %s\n", fm.Field, fm.Message)
		}
		return 2
	}

	res := childcare.Evaluate(in)
	report := catalog.Render(tag, res)

	if *asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(output{
			Input:  in.ToFormData(),
			Result: api.NewResultDTO(res),
			Report: report,
		}); err != nil {
			fmt.Fprintf(stderr, "write json: %v\n", err)
			return 1
		}
		return 0
	}

	if err := report.WriteText(stdout); err != nil {
		fmt.Fprintf(stderr, "write report: %v\n", err)
		return 1
	}
	return 0
}
