package childcare

import (
	"errors"
	"strconv"
	"strings"

	"github.com/warp/leave-eligibility/generic"
)

// Field names as submitted by the form, also used as error keys.
const (
	FieldExpectedBirthDate   = "expectedBirthDate"
	FieldEmploymentType      = "employmentType"
	FieldEmploymentStartDate = "employmentStartDate"
	FieldContractEndDate     = "contractEndDate"
	FieldWeeklyWorkDays      = "weeklyWorkDays"
)

// Field error codes.
const (
	CodeRequired              = "required"
	CodeConditionallyRequired = "conditionally_required"
	CodeInvalidDate           = "invalid_date"
	CodeInvalidEnum           = "invalid_enum"
	CodeOutOfRange            = "out_of_range"
)

// FieldErrorKeys lists the catalog key of every field error ParseForm can produce.
var FieldErrorKeys = []string{
	"error." + FieldExpectedBirthDate + "." + CodeRequired,
	"error." + FieldExpectedBirthDate + "." + CodeInvalidDate,
	"error." + FieldEmploymentType + "." + CodeInvalidEnum,
	"error." + FieldEmploymentStartDate + "." + CodeRequired,
	"error." + FieldEmploymentStartDate + "." + CodeInvalidDate,
	"error." + FieldContractEndDate + "." + CodeConditionallyRequired,
	"error." + FieldContractEndDate + "." + CodeInvalidDate,
	"error." + FieldWeeklyWorkDays + "." + CodeOutOfRange,
}

// FormData is a submission as entered: dates are YYYY-MM-DD strings and the
// contract end date may be empty.
type FormData struct {
	ExpectedBirthDate             string `json:"expectedBirthDate"`
	EmploymentType                string `json:"employmentType"`
	EmploymentStartDate           string `json:"employmentStartDate"`
	ContractEndDate               string `json:"contractEndDate"`
	WeeklyWorkDays                int    `json:"weeklyWorkDays"`
	EnrolledInEmploymentInsurance bool   `json:"enrolledInEmploymentInsurance"`
	PlanningToWorkDuringLeave     bool   `json:"planningToWorkDuringLeave"`
	PartnerTakingLeave            bool   `json:"partnerTakingLeave"`
}

// DefaultFormData returns the values a blank form starts with.
func DefaultFormData() FormData {
	return FormData{
		EmploymentType: string(EmploymentFullTime),
		WeeklyWorkDays: 5,
	}
}

// ParseForm validates a submission and converts it to an Input.
// Every violation is reported, in field order, as generic.ValidationErrors.
func ParseForm(f FormData) (Input, error) {
	var verrs generic.ValidationErrors

	birth, fe := requiredDate(FieldExpectedBirthDate, f.ExpectedBirthDate)
	if fe != nil {
		verrs = append(verrs, fe)
	}

	empType, err := ParseEmploymentType(f.EmploymentType)
	if err != nil {
		verrs = append(verrs, &generic.FieldError{
			Field: FieldEmploymentType,
			Code:  CodeInvalidEnum,
			Value: f.EmploymentType,
			Err:   generic.ErrInvalidEnum,
		})
	}

	start, fe := requiredDate(FieldEmploymentStartDate, f.EmploymentStartDate)
	if fe != nil {
		verrs = append(verrs, fe)
	}

	var end *generic.TimePoint
	switch raw := strings.TrimSpace(f.ContractEndDate); {
	case raw == "" && empType.HasFixedTerm():
		verrs = append(verrs, &generic.FieldError{
			Field: FieldContractEndDate,
			Code:  CodeConditionallyRequired,
			Err:   generic.ErrConditionallyRequired,
		})
	case raw != "":
		tp, err := generic.ParseTimePoint(raw)
		if err != nil {
			verrs = append(verrs, invalidDate(FieldContractEndDate, f.ContractEndDate))
		} else {
			end = &tp
		}
	}

	if f.WeeklyWorkDays < 1 || f.WeeklyWorkDays > 7 {
		verrs = append(verrs, &generic.FieldError{
			Field: FieldWeeklyWorkDays,
			Code:  CodeOutOfRange,
			Value: strconv.Itoa(f.WeeklyWorkDays),
			Err:   generic.ErrOutOfRange,
		})
	}

	if err := verrs.ErrOrNil(); err != nil {
		return Input{}, err
	}

	return Input{
		ExpectedBirthDate:             birth,
		EmploymentType:                empType,
		EmploymentStartDate:           start,
		ContractEndDate:               end,
		WeeklyWorkDays:                f.WeeklyWorkDays,
		EnrolledInEmploymentInsurance: f.EnrolledInEmploymentInsurance,
		PlanningToWorkDuringLeave:     f.PlanningToWorkDuringLeave,
		PartnerTakingLeave:            f.PartnerTakingLeave,
	}, nil
}

// ToFormData converts an Input back into its submitted form.
func (in Input) ToFormData() FormData {
	f := FormData{
		ExpectedBirthDate:             in.ExpectedBirthDate.String(),
		EmploymentType:                string(in.EmploymentType),
		EmploymentStartDate:           in.EmploymentStartDate.String(),
		WeeklyWorkDays:                in.WeeklyWorkDays,
		EnrolledInEmploymentInsurance: in.EnrolledInEmploymentInsurance,
		PlanningToWorkDuringLeave:     in.PlanningToWorkDuringLeave,
		PartnerTakingLeave:            in.PartnerTakingLeave,
	}
	if in.ContractEndDate != nil {
		f.ContractEndDate = in.ContractEndDate.String()
	}
	return f
}

func requiredDate(field, raw string) (generic.TimePoint, *generic.FieldError) {
	if strings.TrimSpace(raw) == "" {
		return generic.TimePoint{}, &generic.FieldError{Field: field, Code: CodeRequired, Err: generic.ErrRequired}
	}
	tp, err := generic.ParseTimePoint(raw)
	if errors.Is(err, generic.ErrInvalidDate) {
		return generic.TimePoint{}, invalidDate(field, raw)
	}
	return tp, nil
}

func invalidDate(field, raw string) *generic.FieldError {
	return &generic.FieldError{Field: field, Code: CodeInvalidDate, Value: raw, Err: generic.ErrInvalidDate}
}
